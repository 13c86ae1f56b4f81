package domain

import "time"

// Profile is the single row describing the site owner.
type Profile struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Title       string    `json:"title" gorm:"size:150"`
	Punchline   string    `json:"punchline" gorm:"size:255"`
	About       string    `json:"about" gorm:"type:text"`
	Email       string    `json:"email" gorm:"size:255"`
	Phone       string    `json:"phone" gorm:"size:50"`
	Location    string    `json:"location" gorm:"size:150"`
	ImagePath   *string   `json:"image_path" gorm:"size:255"`
	ResumePath  *string   `json:"resume_path" gorm:"size:255"`
	GithubURL   *string   `json:"github_url" gorm:"size:255"`
	LinkedinURL *string   `json:"linkedin_url" gorm:"size:255"`
	TwitterURL  *string   `json:"twitter_url" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profile" }
