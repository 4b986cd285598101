package models

import (
	"time"
)

// VaccineRecord is one scheduled dose of a vaccine for a child.
type VaccineRecord struct {
	BaseModel
	ChildID         string     `gorm:"size:36;index;not null" json:"childId"`
	VaccineID       string     `gorm:"size:36" json:"vaccineId"`
	VaccineCode     string     `gorm:"size:20;index;not null" json:"vaccineCode"`
	DiseaseName     string     `gorm:"size:100" json:"diseaseName,omitempty"`
	VaccineName     string     `gorm:"size:100" json:"vaccineName,omitempty"`
	DoseNumber      int        `json:"doseNumber"`
	InoculationDate time.Time  `gorm:"index;not null" json:"inoculationDate"`
	ActualDate      *time.Time `json:"actualDate,omitempty"`

	// Relations
	Child Child `gorm:"foreignKey:ChildID" json:"-"`
}

// IsCompleted reports whether the dose was actually given.
func (v *VaccineRecord) IsCompleted() bool {
	return v.ActualDate != nil
}
