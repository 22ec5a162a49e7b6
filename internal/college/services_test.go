package college_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"backend-suite/internal/apperr"
	"backend-suite/internal/college"
	"backend-suite/internal/college/models"
	"backend-suite/internal/database"
)

func setup(t *testing.T) (*college.App, *gorm.DB) {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, database.MigrateCollege(db))
	return college.New(db), db
}

func mkApplication(t *testing.T, app *college.App, formID int) *models.Application {
	t.Helper()
	a, err := app.Applications.Create(context.Background(), &models.Application{
		Name:   "Kiran",
		Status: "SUBMITTED",
		FormID: formID,
	})
	require.NoError(t, err)
	return a
}

func TestCreatePaymentResolvesApplication(t *testing.T) {
	app, _ := setup(t)
	a := mkApplication(t, app, 5001)

	p, err := app.CreatePayment(context.Background(), &models.FeesPayment{
		PayMethod: "UPI", Status: "PAID", FormID: 5001,
	})
	require.NoError(t, err)
	require.NotNil(t, p.Application)
	// the embedded application carries its own primary key, not the form id
	assert.Equal(t, a.ID, p.Application.ID)
	assert.Equal(t, 5001, p.Application.FormID)
	require.NotZero(t, p.ID)
}

func TestCreatePaymentUnknownForm(t *testing.T) {
	app, db := setup(t)
	mkApplication(t, app, 5001)

	_, err := app.CreatePayment(context.Background(), &models.FeesPayment{
		PayMethod: "UPI", Status: "PAID", FormID: 9999,
	})
	assert.True(t, apperr.IsNotFound(err))

	var n int64
	require.NoError(t, db.Model(&models.FeesPayment{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreatePaymentDuplicateForm(t *testing.T) {
	app, _ := setup(t)
	mkApplication(t, app, 5001)

	ctx := context.Background()
	_, err := app.CreatePayment(ctx, &models.FeesPayment{PayMethod: "UPI", Status: "PAID", FormID: 5001})
	require.NoError(t, err)
	_, err = app.CreatePayment(ctx, &models.FeesPayment{PayMethod: "CARD", Status: "PAID", FormID: 5001})
	assert.True(t, apperr.IsConflict(err))
}

func TestGetPaymentEmbedsApplication(t *testing.T) {
	app, _ := setup(t)
	a := mkApplication(t, app, 7001)

	ctx := context.Background()
	created, err := app.CreatePayment(ctx, &models.FeesPayment{PayMethod: "UPI", Status: "PAID", FormID: 7001})
	require.NoError(t, err)

	got, err := app.GetPayment(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Application)
	assert.Equal(t, a.ID, got.Application.ID)

	recs, err := app.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].Application)
}

func TestPaymentUpdateKeepsForm(t *testing.T) {
	app, _ := setup(t)
	mkApplication(t, app, 7001)

	ctx := context.Background()
	created, err := app.CreatePayment(ctx, &models.FeesPayment{PayMethod: "UPI", Status: "PENDING", FormID: 7001})
	require.NoError(t, err)

	merged, err := app.Payments.Update(ctx, created.ID, &models.FeesPayment{
		PayMethod: "CARD", Status: "PAID", FormID: 1234,
	})
	require.NoError(t, err)
	assert.Equal(t, "PAID", merged.Status)
	assert.Equal(t, 7001, merged.FormID)
}

func TestApplicationUpdateKeepsForm(t *testing.T) {
	app, _ := setup(t)
	a := mkApplication(t, app, 8001)

	merged, err := app.Applications.Update(context.Background(), a.ID, &models.Application{
		Name: "Kiran K", Status: "APPROVED", FormID: 9999,
	})
	require.NoError(t, err)
	assert.Equal(t, 8001, merged.FormID)
	assert.Equal(t, "APPROVED", merged.Status)
}

func TestCourseRoundTrip(t *testing.T) {
	app, _ := setup(t)
	ctx := context.Background()

	c, err := app.Courses.Create(ctx, &models.DesiredCourse{CourseType: "BSc", Duration: "03:00:00"})
	require.NoError(t, err)

	got, err := app.Courses.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "03:00:00", got.Duration)

	require.NoError(t, app.Courses.Delete(ctx, c.ID))
	err = app.Courses.Delete(ctx, c.ID)
	assert.True(t, apperr.IsNotFound(err))
}
