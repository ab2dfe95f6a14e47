package models

// Company represents a company that owns client records
type Company struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(80);uniqueIndex;not null"`
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}
