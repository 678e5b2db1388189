package models

type Company struct {
	BaseModel
	Name        string `gorm:"size:200;not null;index"`
	Description string `gorm:"type:text"`
	Website     string `gorm:"size:255"`
	Industry    string `gorm:"size:100"`
	Size        string `gorm:"size:50"`
	Location    string `gorm:"size:200"`
	LogoURL     string `gorm:"size:500"`
	OwnerID     string `gorm:"type:uuid;not null;index"`
	IsVerified  bool   `gorm:"not null"`
}
