package domain

import "time"

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// Skill belongs to a free-text category; categories are not stored on their
// own and only exist as groups of skills sharing the same label.
type Skill struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"size:100;not null"`
	Category     string     `json:"category" gorm:"size:100;not null;index"`
	Level        SkillLevel `json:"level" gorm:"size:20;not null"`
	Icon         string     `json:"icon" gorm:"size:255"`
	TechnologyID *int64     `json:"technology_id" gorm:"index"`
	DisplayOrder int        `json:"display_order" gorm:"not null;default:0"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Skill) TableName() string { return "skills" }
