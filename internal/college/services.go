// Package college wires the admissions app: applications keyed by a unique
// form id, their courses, documents and fees payments.
package college

import (
	"context"

	"gorm.io/gorm"

	"backend-suite/internal/apperr"
	"backend-suite/internal/college/models"
	"backend-suite/internal/crud"
	"backend-suite/internal/storage"
)

type App struct {
	Users        *crud.Service[models.User]
	Courses      *crud.Service[models.DesiredCourse]
	Documents    *crud.Service[models.Document]
	Applications *crud.Service[models.Application]
	Payments     *crud.Service[models.FeesPayment]

	db *gorm.DB
}

func New(db *gorm.DB) *App {
	return &App{
		db: db,

		Users: crud.New(storage.NewRepo[models.User](db, "user"),
			func(u *models.User) { u.ID = 0 },
			func(dst, src *models.User) {
				dst.Name = src.Name
				dst.Role = src.Role
				dst.Password = src.Password
				dst.Age = src.Age
			}),

		Courses: crud.New(storage.NewRepo[models.DesiredCourse](db, "course"),
			func(c *models.DesiredCourse) { c.ID = 0 },
			func(dst, src *models.DesiredCourse) {
				dst.CourseType = src.CourseType
				dst.Duration = src.Duration
			}),

		Documents: crud.New(storage.NewRepo[models.Document](db, "document"),
			func(d *models.Document) { d.ID = 0 },
			func(dst, src *models.Document) {
				dst.File = src.File
			}),

		Applications: crud.New(storage.NewRepo[models.Application](db, "application"),
			func(a *models.Application) { a.ID = 0 },
			func(dst, src *models.Application) {
				// form id stays fixed for the life of the application
				dst.Name = src.Name
				dst.DOB = src.DOB
				dst.Address = src.Address
				dst.Percentage = src.Percentage
				dst.Subject = src.Subject
				dst.Status = src.Status
				dst.UserID = src.UserID
				dst.CourseID = src.CourseID
				dst.DocumentID = src.DocumentID
			}),

		Payments: crud.New(storage.NewRepo[models.FeesPayment](db, "fees payment"),
			func(p *models.FeesPayment) { p.ID = 0 },
			func(dst, src *models.FeesPayment) {
				dst.PayMethod = src.PayMethod
				dst.Status = src.Status
			}),
	}
}

// CreatePayment resolves the application by form id and inserts the payment
// in one transaction, so the payment cannot land against a form that
// disappeared between lookup and insert. The resolved application rides along
// in the response.
func (a *App) CreatePayment(ctx context.Context, p *models.FeesPayment) (*models.FeesPayment, error) {
	p.ID = 0
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		apps := a.Applications.Repo().WithTx(tx)
		application, err := apps.First(ctx, p.FormID, "form_id = ?", p.FormID)
		if err != nil {
			return err
		}
		if err := a.Payments.Repo().WithTx(tx).Create(ctx, p); err != nil {
			return err
		}
		p.Application = application
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetPayment loads a payment together with its application.
func (a *App) GetPayment(ctx context.Context, id uint) (*models.FeesPayment, error) {
	p, err := a.Payments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	application, err := a.Applications.Repo().First(ctx, p.FormID, "form_id = ?", p.FormID)
	if err != nil {
		if apperr.IsNotFound(err) {
			// application deleted after payment; return the bare payment
			return p, nil
		}
		return nil, err
	}
	p.Application = application
	return p, nil
}

// ListPayments loads all payments with their applications attached.
func (a *App) ListPayments(ctx context.Context) ([]models.FeesPayment, error) {
	recs, err := a.Payments.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		application, err := a.Applications.Repo().First(ctx, recs[i].FormID,
			"form_id = ?", recs[i].FormID)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		recs[i].Application = application
	}
	return recs, nil
}
