package models

import "time"

// Project is a portfolio project entry with full CRUD lifecycle from the
// admin dashboard.
type Project struct {
	ID           string     `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	Description  string     `json:"description" db:"description"`
	Details      string     `json:"details,omitempty" db:"details"`
	ImageURL     string     `json:"image_url,omitempty" db:"image_url"`
	Technologies []string   `json:"technologies" db:"technologies"`
	Category     string     `json:"category,omitempty" db:"category"`
	LiveURL      string     `json:"live_url,omitempty" db:"live_url"`
	SourceURL    string     `json:"source_url,omitempty" db:"source_url"`
	Featured     bool       `json:"featured" db:"featured"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}
