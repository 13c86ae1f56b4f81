package domain

import "time"

// ActivityLog is one audit entry. It is written through sqlx, hence the db
// tags next to the gorm ones used for migrations.
type ActivityLog struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	AdminID   *int64    `json:"admin_id" db:"admin_id" gorm:"index"`
	Action    string    `json:"action" db:"action" gorm:"size:50;not null;index"`
	Details   string    `json:"details" db:"details" gorm:"type:text"`
	IPAddress string    `json:"ip_address" db:"ip_address" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;index"`
}

func (ActivityLog) TableName() string { return "activity_log" }
