package domain

import "time"

// Contact is a single address-book entry. Name, email and description are
// normalized to lowercase before persisting. OwnerID is stamped in a second
// write during creation, so it is empty only transiently.
type Contact struct {
	ID          string    `json:"_id" gorm:"primaryKey"`
	OwnerID     string    `json:"userId" gorm:"index"`
	Name        string    `json:"name" gorm:"size:30;not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:40;not null"`
	Description string    `json:"description" gorm:"size:250;not null"`
	Category    int       `json:"category" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
