package models

// Report is a generated summary image. Reports belong to the User directly.
type Report struct {
	BaseModel
	UserID   string `gorm:"size:36;index;not null" json:"userId"`
	Title    string `gorm:"size:255" json:"title,omitempty"`
	ImageURL string `gorm:"size:512;not null" json:"imageUrl"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// OwnerID implements Owner.
func (r *Report) OwnerID() string { return r.UserID }
