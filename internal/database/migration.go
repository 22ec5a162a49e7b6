package database

import (
	"fmt"

	"gorm.io/gorm"

	budget "backend-suite/internal/budget/models"
	clinic "backend-suite/internal/clinic/models"
	college "backend-suite/internal/college/models"
	grocery "backend-suite/internal/grocery/models"
	library "backend-suite/internal/library/models"
)

// Each app migrates its own schema; parents are listed before children so
// the generated foreign keys resolve.

func MigrateGrocery(db *gorm.DB) error {
	return migrate(db,
		&grocery.User{},
		&grocery.Product{},
		&grocery.Discount{},
		&grocery.Cart{},
		&grocery.Order{},
		&grocery.Payment{},
		&grocery.Delivery{},
	)
}

func MigrateBudget(db *gorm.DB) error {
	return migrate(db,
		&budget.User{},
		&budget.Account{},
		&budget.Income{},
		&budget.Expense{},
		&budget.Budget{},
		&budget.Goal{},
	)
}

func MigrateCollege(db *gorm.DB) error {
	return migrate(db,
		&college.User{},
		&college.DesiredCourse{},
		&college.Document{},
		&college.Application{},
		&college.FeesPayment{},
	)
}

func MigrateLibrary(db *gorm.DB) error {
	return migrate(db,
		&library.User{},
		&library.Stock{},
		&library.BookIssue{},
		&library.Notify{},
	)
}

func MigrateClinic(db *gorm.DB) error {
	return migrate(db,
		&clinic.Patient{},
		&clinic.Doctor{},
		&clinic.Consultation{},
		&clinic.HealthRecord{},
		&clinic.MedicalHistory{},
	)
}

func migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
