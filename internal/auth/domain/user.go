package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ContactRefs is the ordered list of contact ids owned by a user, stored as
// a JSON text column. Order is insertion order.
type ContactRefs []string

func (r ContactRefs) Value() (driver.Value, error) {
	if r == nil {
		r = ContactRefs{}
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *ContactRefs) Scan(value interface{}) error {
	if value == nil {
		*r = ContactRefs{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return errors.New("unsupported column type for contact refs")
	}
}

type User struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	Email       string      `json:"email" gorm:"uniqueIndex;size:40;not null"`
	Password    string      `json:"-" gorm:"size:100;not null"` // Never return password in JSON
	IsAdmin     bool        `json:"isAdmin" gorm:"default:false"`
	ContactRefs ContactRefs `json:"data" gorm:"type:text"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
