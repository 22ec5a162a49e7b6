// Package models defines the college admissions schema. An application
// carries a unique form id; the fees payment references the application
// through that secondary key rather than the primary key.
package models

import "time"

// User is an applicant or staff login.
type User struct {
	ID       uint   `gorm:"column:user_id;primaryKey" json:"userId"`
	Name     string `gorm:"size:64" json:"name"`
	Role     string `gorm:"size:32" json:"role"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"password"`
	Age      *int   `json:"age"`
}

func (User) TableName() string { return "users" }

// DesiredCourse is a course an application can aim at. Duration keeps the
// original HH:MM:SS text form; nothing computes on it.
type DesiredCourse struct {
	ID         uint   `gorm:"column:course_id;primaryKey" json:"courseId"`
	CourseType string `gorm:"size:64;not null" json:"courseType"`
	Duration   string `gorm:"size:16" json:"duration"`
}

func (DesiredCourse) TableName() string { return "desired_course" }

// Document is an uploaded file reference.
type Document struct {
	ID   uint   `gorm:"column:document_id;primaryKey" json:"documentId"`
	File string `gorm:"size:255;not null" json:"file"`
}

func (Document) TableName() string { return "document" }

// Application is an admission form. FormID is the unique secondary key the
// fees payment resolves against; it never changes after creation.
type Application struct {
	ID         uint      `gorm:"column:app_id;primaryKey" json:"appId"`
	Name       string    `gorm:"size:64" json:"name"`
	DOB        time.Time `gorm:"column:dob" json:"dob"`
	Address    string    `gorm:"size:255" json:"address"`
	Percentage string    `gorm:"size:16" json:"percentage"`
	Subject    string    `gorm:"size:64" json:"subject"`
	Status     string    `gorm:"size:32" json:"status"`
	FormID     int       `gorm:"column:form_id;uniqueIndex;not null" json:"formId"`
	UserID     *uint     `gorm:"column:user_id" json:"userId"`
	CourseID   *uint     `gorm:"column:course_id" json:"courseId"`
	DocumentID *uint     `gorm:"column:document_id" json:"documentId"`

	// *Ref fields exist so migration emits the foreign-key constraints;
	// they are never preloaded or serialized.
	UserRef     *User          `gorm:"foreignKey:UserID;references:ID" json:"-"`
	CourseRef   *DesiredCourse `gorm:"foreignKey:CourseID;references:ID" json:"-"`
	DocumentRef *Document      `gorm:"foreignKey:DocumentID;references:ID" json:"-"`
}

func (Application) TableName() string { return "application" }

// FeesPayment settles one application's fees. FormID holds the application's
// form id; Application is filled by the service with an explicit lookup and
// is not a column.
type FeesPayment struct {
	ID        uint   `gorm:"column:fees_payment_id;primaryKey" json:"feesPaymentId"`
	PayMethod string `gorm:"column:pay_method;size:32;not null" json:"payMethod"`
	Status    string `gorm:"size:32;not null" json:"status"`
	FormID    int    `gorm:"column:form_id;uniqueIndex;not null" json:"formId"`

	Application *Application `gorm:"-" json:"application,omitempty"`
}

func (FeesPayment) TableName() string { return "fees_payment" }
