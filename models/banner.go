package models

import "time"

type Banner struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Project   string    `gorm:"not null" json:"project"`
	Platform  string    `gorm:"not null" json:"platform"`
	Image     string    `gorm:"not null" json:"banner_image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Banner) GetID() uint { return b.ID }

func (b *Banner) Attachments() []Attachment {
	return []Attachment{{Field: "bannerImage", Ref: &b.Image}}
}

func (b *Banner) UniqueKeys() []UniqueKey { return nil }
