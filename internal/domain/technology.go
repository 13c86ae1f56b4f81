package domain

import "time"

const (
	TechCategoryDatabase = "database"
	TechCategoryLanguage = "language"
	TechCategoryFrontend = "frontend"
	TechCategoryBackend  = "backend"
)

type Technology struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_technologies_name_category"`
	Category  string    `json:"category" gorm:"size:50;not null;uniqueIndex:idx_technologies_name_category"`
	IconClass *string   `json:"icon_class" gorm:"size:100"`
	IconURL   *string   `json:"icon_url" gorm:"size:255"`
	IsCustom  bool      `json:"is_custom" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (Technology) TableName() string { return "technologies" }
