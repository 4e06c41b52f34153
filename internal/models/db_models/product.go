package db_models

type Product struct {
	BaseModel
	Title       string  `gorm:"size:255;not null"`
	Description string  `gorm:"type:text;not null"`
	NewPrice    float64 `gorm:"not null"`
	OldPrice    *float64
	CoverImage  string `gorm:"size:512;not null"`
	Category    string `gorm:"size:128;index;not null"`
}
