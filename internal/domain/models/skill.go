package models

import "time"

// Category groups skills on the public skills page.
type Category struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Skill belongs to a category by foreign id. Deleting a category with
// dependent skills is rejected (RESTRICT), never cascaded.
type Skill struct {
	ID         string    `json:"id" db:"id"`
	CategoryID string    `json:"category_id" db:"category_id"`
	Name       string    `json:"name" db:"name"`
	Level      int       `json:"level" db:"level"` // 0-100 proficiency
	Icon       string    `json:"icon,omitempty" db:"icon"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
