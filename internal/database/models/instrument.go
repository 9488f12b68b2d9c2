package models

// Instrument is a named role category assignable to band members
type Instrument struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
}

// TableName returns the table name for Instrument
func (Instrument) TableName() string {
	return "instruments"
}
