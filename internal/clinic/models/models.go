// Package models defines the patient monitoring schema.
package models

// Patient is a monitored person.
type Patient struct {
	ID       uint   `gorm:"column:p_id;primaryKey" json:"pId"`
	PName    string `gorm:"column:p_name;size:64" json:"pName"`
	PAge     *int   `gorm:"column:p_age" json:"pAge"`
	PGender  string `gorm:"column:p_gender;size:16" json:"pGender"`
	PContact string `gorm:"column:p_contact;size:32" json:"pContact"`
}

func (Patient) TableName() string { return "patient" }

// Doctor treats patients.
type Doctor struct {
	ID          uint   `gorm:"column:d_id;primaryKey" json:"dId"`
	DName       string `gorm:"column:d_name;size:64" json:"dName"`
	DSpeciality string `gorm:"column:d_speciality;size:64" json:"dSpeciality"`
	DExperience *int   `gorm:"column:d_experience" json:"dExperience"`
	DContact    string `gorm:"column:d_contact;size:32" json:"dContact"`
}

func (Doctor) TableName() string { return "doctor" }

// Consultation records one patient/doctor meeting.
type Consultation struct {
	ID        uint   `gorm:"column:a_id;primaryKey" json:"aId"`
	Feedback  string `gorm:"size:255" json:"feedback"`
	PatientID *uint  `gorm:"column:patient_id" json:"patientId"`
	DoctorID  *uint  `gorm:"column:doctor_id" json:"doctorId"`

	// *Ref fields exist so migration emits the foreign-key constraints;
	// they are never preloaded or serialized.
	PatientRef *Patient `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	DoctorRef  *Doctor  `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Consultation) TableName() string { return "consultation" }

// HealthRecord is one set of readings for a patient.
type HealthRecord struct {
	ID        uint   `gorm:"column:h_id;primaryKey" json:"hId"`
	HType     string `gorm:"column:h_type;size:64" json:"hType"`
	HReadings string `gorm:"column:h_readings;size:255" json:"hReadings"`
	PatientID *uint  `gorm:"column:patient_id" json:"patientId"`

	PatientRef *Patient `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (HealthRecord) TableName() string { return "health_record" }

// MedicalHistory links a patient, the treating doctor and a health record.
type MedicalHistory struct {
	ID             uint  `gorm:"column:m_id;primaryKey" json:"mId"`
	PatientID      *uint `gorm:"column:patient_id" json:"patientId"`
	DoctorID       *uint `gorm:"column:doctor_id" json:"doctorId"`
	HealthRecordID *uint `gorm:"column:health_record_id" json:"healthRecordId"`

	PatientRef *Patient      `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	DoctorRef  *Doctor       `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
	RecordRef  *HealthRecord `gorm:"foreignKey:HealthRecordID;references:ID" json:"-"`
}

func (MedicalHistory) TableName() string { return "medical_history" }
