package models

import "time"

// ClientUser links a client to a user. The table exists for schema parity
// with the soft-link association; no endpoint mutates it yet.
type ClientUser struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	ClientID  uint       `json:"client_id" gorm:"not null"`
	UserID    uint       `json:"user_id" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
	Active    bool       `json:"active" gorm:"default:true"`

	// Relationships
	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for the ClientUser model
func (ClientUser) TableName() string {
	return "client_users"
}
