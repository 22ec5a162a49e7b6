// Package library wires the library management app: the book stock, issue
// records and overdue notifications.
package library

import (
	"context"

	"gorm.io/gorm"

	"backend-suite/internal/crud"
	"backend-suite/internal/library/models"
	"backend-suite/internal/storage"
)

type App struct {
	Users  *crud.Service[models.User]
	Stocks *crud.Service[models.Stock]
	Issues *crud.Service[models.BookIssue]
	Notify *crud.Service[models.Notify]
}

func New(db *gorm.DB) *App {
	return &App{
		Users: crud.New(storage.NewRepo[models.User](db, "user"),
			func(u *models.User) { u.ID = 0 },
			func(dst, src *models.User) {
				dst.Password = src.Password
				dst.Name = src.Name
				dst.Role = src.Role
				dst.Contact = src.Contact
			}),

		Stocks: crud.New(storage.NewRepo[models.Stock](db, "book"),
			func(s *models.Stock) { s.ID = 0 },
			func(dst, src *models.Stock) {
				dst.Title = src.Title
				dst.Author = src.Author
				dst.Subject = src.Subject
				dst.TotalQuantity = src.TotalQuantity
				dst.AvailableQuantity = src.AvailableQuantity
				dst.Status = src.Status
				dst.UserID = src.UserID
			}),

		Issues: crud.New(storage.NewRepo[models.BookIssue](db, "book issue"),
			func(i *models.BookIssue) { i.ID = 0 },
			func(dst, src *models.BookIssue) {
				dst.UserID = src.UserID
				dst.BookID = src.BookID
				dst.IssueDate = src.IssueDate
				dst.ReturnDate = src.ReturnDate
				dst.DueDate = src.DueDate
				dst.FineAmount = src.FineAmount
				dst.Status = src.Status
			}),

		Notify: crud.New(storage.NewRepo[models.Notify](db, "notification"),
			func(n *models.Notify) { n.ID = 0 },
			func(dst, src *models.Notify) {
				dst.Message = src.Message
				dst.SentAt = src.SentAt
				dst.BookIssueID = src.BookIssueID
				dst.UserID = src.UserID
			}),
	}
}

// StocksByUser lists the books a librarian registered.
func (a *App) StocksByUser(ctx context.Context, userID uint) ([]models.Stock, error) {
	return a.Stocks.Repo().Find(ctx, "user_id = ?", userID)
}

// SearchByTitle does a case-insensitive substring match on the title.
func (a *App) SearchByTitle(ctx context.Context, title string) ([]models.Stock, error) {
	return a.Stocks.Repo().Find(ctx, "lower(title) LIKE lower(?)", "%"+title+"%")
}

// SearchByAuthor does a case-insensitive substring match on the author.
func (a *App) SearchByAuthor(ctx context.Context, author string) ([]models.Stock, error) {
	return a.Stocks.Repo().Find(ctx, "lower(author) LIKE lower(?)", "%"+author+"%")
}

// IssuesByUser lists a member's issue records.
func (a *App) IssuesByUser(ctx context.Context, userID uint) ([]models.BookIssue, error) {
	return a.Issues.Repo().Find(ctx, "user_id = ?", userID)
}

// IssuesByBook lists the issue records of one book.
func (a *App) IssuesByBook(ctx context.Context, bookID uint) ([]models.BookIssue, error) {
	return a.Issues.Repo().Find(ctx, "book_id = ?", bookID)
}

// IssuesByStatus lists issue records with the given status text.
func (a *App) IssuesByStatus(ctx context.Context, status string) ([]models.BookIssue, error) {
	return a.Issues.Repo().Find(ctx, "status = ?", status)
}

// NotificationsByUser lists the reminders sent to one member.
func (a *App) NotificationsByUser(ctx context.Context, userID uint) ([]models.Notify, error) {
	return a.Notify.Repo().Find(ctx, "user_id = ?", userID)
}

// NotificationsByIssue lists the reminders sent about one issue record.
func (a *App) NotificationsByIssue(ctx context.Context, issueID uint) ([]models.Notify, error) {
	return a.Notify.Repo().Find(ctx, "book_issue_id = ?", issueID)
}
