// Package models defines the library management schema.
package models

import "time"

// User is a member or librarian.
type User struct {
	ID       uint   `gorm:"column:user_id;primaryKey" json:"userId"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"password"`
	Name     string `gorm:"size:64" json:"name"`
	Role     string `gorm:"size:32" json:"role"`
	Contact  *int64 `json:"contact"`
}

func (User) TableName() string { return "users" }

// Stock is a book title with copy counts. The user is the librarian who
// registered it.
type Stock struct {
	ID                uint   `gorm:"column:book_id;primaryKey" json:"bookId"`
	Title             string `gorm:"size:255;not null" json:"title"`
	Author            string `gorm:"size:128" json:"author"`
	Subject           string `gorm:"size:64" json:"subject"`
	TotalQuantity     int    `gorm:"column:total_quantity;not null" json:"totalQuantity"`
	AvailableQuantity int    `gorm:"column:available_quantity;not null" json:"availableQuantity"`
	Status            string `gorm:"size:32" json:"status"`
	UserID            uint   `gorm:"column:user_id;not null" json:"userId"`

	// *Ref fields exist so migration emits the foreign-key constraints;
	// they are never preloaded or serialized.
	UserRef *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Stock) TableName() string { return "stock" }

// BookIssue is one copy lent out. Status is free-form text, matching the
// stored data.
type BookIssue struct {
	ID         uint       `gorm:"column:book_issue_id;primaryKey" json:"bookIssueId"`
	UserID     *uint      `gorm:"column:user_id" json:"userId"`
	BookID     uint       `gorm:"column:book_id;not null" json:"bookId"`
	IssueDate  time.Time  `gorm:"column:issue_date;not null" json:"issueDate"`
	ReturnDate *time.Time `gorm:"column:return_date" json:"returnDate"`
	DueDate    time.Time  `gorm:"column:due_date;not null" json:"dueDate"`
	FineAmount *float64   `gorm:"column:fine_amount" json:"fineAmount"`
	Status     string     `gorm:"size:32;not null" json:"status"`

	UserRef *User  `gorm:"foreignKey:UserID;references:ID" json:"-"`
	BookRef *Stock `gorm:"foreignKey:BookID;references:ID" json:"-"`
}

func (BookIssue) TableName() string { return "book_issue" }

// Notify is a reminder sent about an issue.
type Notify struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Message     string    `gorm:"size:255;not null" json:"message"`
	SentAt      time.Time `gorm:"column:sent_at;not null" json:"sentAt"`
	BookIssueID uint      `gorm:"column:book_issue_id;not null" json:"bookIssueId"`
	UserID      uint      `gorm:"column:user_id;not null" json:"userId"`

	IssueRef *BookIssue `gorm:"foreignKey:BookIssueID;references:ID" json:"-"`
	UserRef  *User      `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Notify) TableName() string { return "notify" }
