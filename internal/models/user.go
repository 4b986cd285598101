package models

// User is a parent account. UserID is the identifier issued by the external
// login provider and carried as the JWT subject.
type User struct {
	BaseModel
	UserID   string `gorm:"uniqueIndex;size:191;not null" json:"userId"`
	Nickname string `gorm:"size:100" json:"nickname"`

	// Relations (not always preloaded)
	Children []Child  `gorm:"foreignKey:UserID" json:"children,omitempty"`
	Reports  []Report `gorm:"foreignKey:UserID" json:"-"`
}

// Owner is implemented by records that belong to exactly one User.
type Owner interface {
	// OwnerID returns the internal id of the owning User.
	OwnerID() string
}
