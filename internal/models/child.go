package models

import (
	"time"
)

// Sex of a child as stored by the app.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Child belongs to exactly one User.
type Child struct {
	BaseModel
	UserID            string    `gorm:"size:36;index;not null" json:"-"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	BirthDate         time.Time `json:"birthDate"`
	Sex               Sex       `gorm:"size:1" json:"sex"`
	Weight            float64   `json:"weight"`
	Height            float64   `json:"height"`
	HeadCircumference float64   `json:"headCircumference"`
	ProfileImageURL   string    `gorm:"size:512" json:"profileImageUrl,omitempty"`

	// Relations
	User           User            `gorm:"foreignKey:UserID" json:"-"`
	Prescriptions  []Prescription  `gorm:"foreignKey:ChildID" json:"-"`
	VaccineRecords []VaccineRecord `gorm:"foreignKey:ChildID" json:"-"`
}

// OwnerID implements Owner.
func (c *Child) OwnerID() string { return c.UserID }

// AgeAt returns the child's age in full years on the given day.
func (c *Child) AgeAt(now time.Time) int {
	birth := c.BirthDate.In(now.Location())
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// ChildDetail is the API view of a child with derived fields.
type ChildDetail struct {
	Child
	Age int `json:"age"`
}
