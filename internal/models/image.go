package models

// Image is an uploaded file stored in the database.
type Image struct {
	BaseModel
	UserID      string `gorm:"size:36;index;not null" json:"-"`
	FileName    string `gorm:"size:255;not null" json:"fileName"`
	ContentType string `gorm:"size:100;not null" json:"contentType"`
	Size        int64  `json:"size"`
	Data        []byte `gorm:"type:longblob;not null" json:"-"`
}

// OwnerID implements Owner.
func (i *Image) OwnerID() string { return i.UserID }
