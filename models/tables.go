package models

import "time"

type User struct {
	ID           int       `gorm:"primary_key;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // json:"-" prevents password from being exposed in API
	GoogleID     *string   `gorm:"index" json:"google_id,omitempty"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BibleVersion struct {
	ID       int    `gorm:"primary_key;autoIncrement" json:"id"`
	Slug     string `gorm:"unique;not null;index" json:"slug"` // nvi, acf, kjv...
	Name     string `gorm:"not null" json:"name"`
	Language string `gorm:"not null;index" json:"language"`
}

type Category struct {
	ID          int    `gorm:"primary_key;autoIncrement" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"unique;not null;index" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	GroupLabel  string `gorm:"index" json:"group"` // agrupamento para a UI (Teologia, Virtudes...)
}

// BibleVerse stores unique verse content. A reference+version pair is unique;
// the text is captured the first time anyone classifies that verse.
type BibleVerse struct {
	ID        int       `gorm:"primary_key;autoIncrement" json:"id"`
	Reference string    `gorm:"not null;uniqueIndex:uix_verse_reference_version;index" json:"reference"` // e.g. "Provérbios 1:1-3"
	Version   string    `gorm:"size:10;not null;uniqueIndex:uix_verse_reference_version;index" json:"version"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VerseClassification is one row per (principal, verse, category).
// Exactly one of UserID/DeviceID is set: user rows for authenticated
// classifications, device rows for anonymous ones.
type VerseClassification struct {
	ID           uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID       *int      `gorm:"index;index:idx_vc_user_created;uniqueIndex:uix_vc_user_verse_category" json:"user_id,omitempty"`
	DeviceID     *string   `gorm:"index;uniqueIndex:uix_vc_device_verse_category" json:"device_id,omitempty"`
	BibleVerseID int       `gorm:"not null;index:idx_vc_verse_category;uniqueIndex:uix_vc_user_verse_category;uniqueIndex:uix_vc_device_verse_category" json:"bible_verse_id"`
	CategoryID   int       `gorm:"not null;index;index:idx_vc_verse_category;uniqueIndex:uix_vc_user_verse_category;uniqueIndex:uix_vc_device_verse_category" json:"category_id"`
	CreatedAt    time.Time `gorm:"index:idx_vc_user_created" json:"created_at"`
}
