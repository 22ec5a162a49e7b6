// Package models defines the budget tracker schema. Amount columns carry the
// JSON-number values of the original wire format; relationships are explicit
// foreign-key columns.
package models

import "time"

// User owns accounts and transactions.
type User struct {
	ID       uint   `gorm:"column:user_id;primaryKey" json:"userId"`
	Name     string `gorm:"size:64" json:"name"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"password"`
	Email    string `gorm:"size:128" json:"email"`
}

func (User) TableName() string { return "users" }

// Account is a named money store. AccountNumber is unique and immutable; a
// blank one is generated at create time.
type Account struct {
	ID            uint   `gorm:"column:account_id;primaryKey" json:"accountId"`
	AccountType   string `gorm:"size:32;not null" json:"accountType"`
	AccountNumber string `gorm:"size:64;uniqueIndex;not null" json:"accountNumber"`
	UserID        uint   `gorm:"column:user_id;not null" json:"userId"`

	// *Ref fields exist so migration emits the foreign-key constraints;
	// they are never preloaded or serialized.
	UserRef *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Account) TableName() string { return "accounts" }

// Income is money arriving on an account.
type Income struct {
	ID         uint      `gorm:"column:income_id;primaryKey" json:"incomeId"`
	IncomeType string    `gorm:"size:64;not null" json:"incomeType"`
	Amount     float64   `gorm:"not null" json:"amount"`
	IncomeDate time.Time `json:"incomeDate"`
	UserID     uint      `gorm:"column:user_id;not null" json:"userId"`
	AccountID  *uint     `gorm:"column:account_id" json:"accountId"`

	UserRef    *User    `gorm:"foreignKey:UserID;references:ID" json:"-"`
	AccountRef *Account `gorm:"foreignKey:AccountID;references:ID" json:"-"`
}

func (Income) TableName() string { return "incomes" }

// Expense is money leaving an account.
type Expense struct {
	ID          uint      `gorm:"column:expense_id;primaryKey" json:"expenseId"`
	Category    string    `gorm:"size:64;not null" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	ExpenseDate time.Time `json:"expenseDate"`
	UserID      uint      `gorm:"column:user_id;not null" json:"userId"`
	AccountID   *uint     `gorm:"column:account_id" json:"accountId"`

	UserRef    *User    `gorm:"foreignKey:UserID;references:ID" json:"-"`
	AccountRef *Account `gorm:"foreignKey:AccountID;references:ID" json:"-"`
}

func (Expense) TableName() string { return "expenses" }

// Budget caps spending in a category against an income.
type Budget struct {
	ID          uint    `gorm:"column:budget_id;primaryKey" json:"budgetId"`
	Category    string  `gorm:"size:64;not null" json:"category"`
	BudgetLimit float64 `gorm:"column:budget_limit;not null" json:"budgetLimit"`
	IncomeID    uint    `gorm:"column:income_id;not null" json:"incomeId"`

	IncomeRef *Income `gorm:"foreignKey:IncomeID;references:ID" json:"-"`
}

func (Budget) TableName() string { return "budget" }

// Goal is a savings target on an account.
type Goal struct {
	ID           uint    `gorm:"column:goal_id;primaryKey" json:"goalId"`
	GoalName     string  `gorm:"size:64;not null" json:"goalName"`
	TargetAmount float64 `gorm:"not null" json:"targetAmount"`
	AccountID    uint    `gorm:"column:account_id;not null" json:"accountId"`

	AccountRef *Account `gorm:"foreignKey:AccountID;references:ID" json:"-"`
}

func (Goal) TableName() string { return "goals" }
