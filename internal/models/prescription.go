package models

import (
	"time"
)

// Prescription is a hospital visit record for a child.
type Prescription struct {
	BaseModel
	ChildID              string    `gorm:"size:36;index;not null" json:"childId"`
	Date                 time.Time `gorm:"index;not null" json:"date"`
	Hospital             string    `gorm:"size:255;not null" json:"hospital"`
	Doctor               string    `gorm:"size:100" json:"doctor"`
	Diagnoses            string    `gorm:"type:text" json:"diagnoses"`
	TreatmentMethod      string    `gorm:"size:255" json:"treatmentMethod"`
	Medicines            string    `gorm:"type:text" json:"medicines"`
	PrescriptionImageURL *string   `gorm:"size:512" json:"prescriptionImageUrl"`
	Memo                 *string   `gorm:"type:text" json:"memo"`

	// Relations
	Child Child `gorm:"foreignKey:ChildID" json:"-"`
}

// OwnerID implements Owner. The Child relation must be preloaded; an empty
// owner never matches a caller.
func (p *Prescription) OwnerID() string { return p.Child.UserID }

// PrescriptionView is a prescription without its child-ownership fields.
type PrescriptionView struct {
	ID                   string    `json:"id"`
	Date                 time.Time `json:"date"`
	Hospital             string    `json:"hospital"`
	Doctor               string    `json:"doctor"`
	Diagnoses            string    `json:"diagnoses"`
	TreatmentMethod      string    `json:"treatmentMethod"`
	Medicines            string    `json:"medicines"`
	PrescriptionImageURL *string   `json:"prescriptionImageUrl"`
	Memo                 *string   `json:"memo"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// View strips the ownership fields from p.
func (p *Prescription) View() PrescriptionView {
	return PrescriptionView{
		ID:                   p.ID,
		Date:                 p.Date,
		Hospital:             p.Hospital,
		Doctor:               p.Doctor,
		Diagnoses:            p.Diagnoses,
		TreatmentMethod:      p.TreatmentMethod,
		Medicines:            p.Medicines,
		PrescriptionImageURL: p.PrescriptionImageURL,
		Memo:                 p.Memo,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
