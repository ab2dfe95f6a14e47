package models

// Client represents a client record owned by a user within a company
type Client struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"type:varchar(80);not null"`
	Email     string `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	Phone     string `json:"phone" gorm:"type:varchar(20);not null"`
	UserID    uint   `json:"user_id" gorm:"not null"`
	CompanyID uint   `json:"company_id" gorm:"not null"`

	// Relationships
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
