package models

// User represents a registered user record
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"type:varchar(80);uniqueIndex;not null"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
