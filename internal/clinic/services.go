// Package clinic wires the patient monitoring app: patients, doctors and the
// records tying them together.
package clinic

import (
	"gorm.io/gorm"

	"backend-suite/internal/clinic/models"
	"backend-suite/internal/crud"
	"backend-suite/internal/storage"
)

type App struct {
	Patients      *crud.Service[models.Patient]
	Doctors       *crud.Service[models.Doctor]
	Consultations *crud.Service[models.Consultation]
	HealthRecords *crud.Service[models.HealthRecord]
	Histories     *crud.Service[models.MedicalHistory]
}

func New(db *gorm.DB) *App {
	return &App{
		Patients: crud.New(storage.NewRepo[models.Patient](db, "patient"),
			func(p *models.Patient) { p.ID = 0 },
			func(dst, src *models.Patient) {
				dst.PName = src.PName
				dst.PAge = src.PAge
				dst.PGender = src.PGender
				dst.PContact = src.PContact
			}),

		Doctors: crud.New(storage.NewRepo[models.Doctor](db, "doctor"),
			func(d *models.Doctor) { d.ID = 0 },
			func(dst, src *models.Doctor) {
				dst.DName = src.DName
				dst.DSpeciality = src.DSpeciality
				dst.DExperience = src.DExperience
				dst.DContact = src.DContact
			}),

		Consultations: crud.New(storage.NewRepo[models.Consultation](db, "consultation"),
			func(c *models.Consultation) { c.ID = 0 },
			func(dst, src *models.Consultation) {
				dst.Feedback = src.Feedback
				dst.PatientID = src.PatientID
				dst.DoctorID = src.DoctorID
			}),

		HealthRecords: crud.New(storage.NewRepo[models.HealthRecord](db, "health record"),
			func(h *models.HealthRecord) { h.ID = 0 },
			func(dst, src *models.HealthRecord) {
				dst.HType = src.HType
				dst.HReadings = src.HReadings
				dst.PatientID = src.PatientID
			}),

		Histories: crud.New(storage.NewRepo[models.MedicalHistory](db, "medical history"),
			func(m *models.MedicalHistory) { m.ID = 0 },
			func(dst, src *models.MedicalHistory) {
				dst.PatientID = src.PatientID
				dst.DoctorID = src.DoctorID
				dst.HealthRecordID = src.HealthRecordID
			}),
	}
}
