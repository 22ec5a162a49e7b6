// Package budget wires the personal budget tracker: accounts, incomes,
// expenses, category budgets and savings goals.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backend-suite/internal/budget/models"
	"backend-suite/internal/crud"
	"backend-suite/internal/storage"
)

type App struct {
	Users    *crud.Service[models.User]
	Accounts *crud.Service[models.Account]
	Incomes  *crud.Service[models.Income]
	Expenses *crud.Service[models.Expense]
	Budgets  *crud.Service[models.Budget]
	Goals    *crud.Service[models.Goal]
}

func New(db *gorm.DB) *App {
	return &App{
		Users: crud.New(storage.NewRepo[models.User](db, "user"),
			func(u *models.User) { u.ID = 0 },
			func(dst, src *models.User) {
				dst.Name = src.Name
				dst.Password = src.Password
				dst.Email = src.Email
			}),

		Accounts: crud.New(storage.NewRepo[models.Account](db, "account"),
			func(a *models.Account) { a.ID = 0 },
			func(dst, src *models.Account) {
				// account number is assigned once and never rewritten
				dst.AccountType = src.AccountType
				dst.UserID = src.UserID
			}).WithBeforeCreate(func(a *models.Account) error {
			if a.AccountNumber == "" {
				a.AccountNumber = uuid.NewString()
			}
			return nil
		}),

		Incomes: crud.New(storage.NewRepo[models.Income](db, "income"),
			func(i *models.Income) { i.ID = 0 },
			func(dst, src *models.Income) {
				dst.IncomeType = src.IncomeType
				dst.Amount = src.Amount
				dst.IncomeDate = src.IncomeDate
				dst.UserID = src.UserID
				dst.AccountID = src.AccountID
			}).WithBeforeCreate(func(i *models.Income) error {
			if i.IncomeDate.IsZero() {
				i.IncomeDate = time.Now()
			}
			return nil
		}),

		Expenses: crud.New(storage.NewRepo[models.Expense](db, "expense"),
			func(e *models.Expense) { e.ID = 0 },
			func(dst, src *models.Expense) {
				dst.Category = src.Category
				dst.Amount = src.Amount
				dst.ExpenseDate = src.ExpenseDate
				dst.UserID = src.UserID
				dst.AccountID = src.AccountID
			}).WithBeforeCreate(func(e *models.Expense) error {
			if e.ExpenseDate.IsZero() {
				e.ExpenseDate = time.Now()
			}
			return nil
		}),

		Budgets: crud.New(storage.NewRepo[models.Budget](db, "budget"),
			func(b *models.Budget) { b.ID = 0 },
			func(dst, src *models.Budget) {
				dst.Category = src.Category
				dst.BudgetLimit = src.BudgetLimit
				dst.IncomeID = src.IncomeID
			}),

		Goals: crud.New(storage.NewRepo[models.Goal](db, "goal"),
			func(g *models.Goal) { g.ID = 0 },
			func(dst, src *models.Goal) {
				dst.GoalName = src.GoalName
				dst.TargetAmount = src.TargetAmount
				dst.AccountID = src.AccountID
			}),
	}
}

// ExpensesByUser lists a user's expenses.
func (a *App) ExpensesByUser(ctx context.Context, userID uint) ([]models.Expense, error) {
	return a.Expenses.Repo().Find(ctx, "user_id = ?", userID)
}
