package models

import "time"

type Customer struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Email        string    `gorm:"not null" json:"email"`
	Phone        string    `gorm:"not null" json:"phone"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Profile      string    `json:"profile,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Customer) GetID() uint { return c.ID }

func (c *Customer) Attachments() []Attachment {
	return []Attachment{{Field: "profile", Ref: &c.Profile}}
}

func (c *Customer) UniqueKeys() []UniqueKey {
	return []UniqueKey{
		{Column: "email", Field: "email", Value: c.Email},
		{Column: "phone", Field: "phone", Value: c.Phone, Exact: true},
	}
}
