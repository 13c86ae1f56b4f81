package domain

import "time"

const DefaultMessageSubject = "No subject"

// Message is a contact-form submission.
type Message struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Subject   string    `json:"subject" gorm:"size:255;not null"`
	Body      string    `json:"message" gorm:"column:message;type:text;not null"`
	IPAddress string    `json:"ip_address" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (Message) TableName() string { return "messages" }
