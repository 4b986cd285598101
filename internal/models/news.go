package models

// News is a global, read-only article.
type News struct {
	BaseModel
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	ImageURL string `gorm:"size:512" json:"imageUrl,omitempty"`
}
