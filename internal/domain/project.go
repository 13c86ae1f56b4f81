package domain

import "time"

type ProjectStatus string

const (
	ProjectCompleted   ProjectStatus = "completed"
	ProjectDevelopment ProjectStatus = "development"
	ProjectUpdating    ProjectStatus = "updating"
)

type Project struct {
	ID           int64         `json:"id" gorm:"primaryKey"`
	Title        string        `json:"title" gorm:"size:200;not null"`
	Description  string        `json:"description" gorm:"type:text"`
	Status       ProjectStatus `json:"status" gorm:"size:20;not null"`
	ImagePath    *string       `json:"image_path" gorm:"size:255"`
	GithubURL    string        `json:"github_url" gorm:"size:255"`
	DemoURL      string        `json:"demo_url" gorm:"size:255"`
	DisplayOrder int           `json:"display_order" gorm:"not null;default:0"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	// Tech is assembled from project_technologies, ordered by sort_index.
	Tech []string `json:"tech" gorm:"-"`
}

func (Project) TableName() string { return "projects" }

// ProjectTechnology links a project to a technology by name. The name is
// free text and is not required to match a row in technologies.
type ProjectTechnology struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	ProjectID  int64  `json:"project_id" gorm:"not null;index"`
	Technology string `json:"technology" gorm:"size:100;not null"`
	SortIndex  int    `json:"sort_index" gorm:"not null"`
}

func (ProjectTechnology) TableName() string { return "project_technologies" }
