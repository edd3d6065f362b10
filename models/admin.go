package models

import "time"

// Admin is a back-office account. Admins sign in with email and password
// and manage the catalog, orders and stock.
type Admin struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a *Admin) GetID() uint { return a.ID }

func (a *Admin) Attachments() []Attachment { return nil }

func (a *Admin) UniqueKeys() []UniqueKey {
	return []UniqueKey{{Column: "email", Field: "email", Value: a.Email}}
}
