package models

// User is an authenticated account. Band members created at sign-up share the
// account id, and the display name is kept in sync with the roster entry.
type User struct {
	BaseModel
	Email         string `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email,max=255"`
	PasswordHash  string `json:"-" gorm:"size:100;not null"`
	DisplayName   string `json:"display_name" gorm:"size:200;not null" validate:"required,max=200"`
	EmailVerified bool   `json:"email_verified" gorm:"not null;default:false"`
	Disabled      bool   `json:"disabled" gorm:"not null;default:false"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
