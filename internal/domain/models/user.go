package models

import "time"

// User is the portfolio owner's public profile record. It is seeded once
// and only ever updated, never created or deleted through the API. This is
// a distinct entity from the administrative login identity (see auth.go).
type User struct {
	ID        string     `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Title     string     `json:"title" db:"title"`
	Email     string     `json:"email" db:"email"`
	Bio       string     `json:"bio" db:"bio"`
	Location  string     `json:"location,omitempty" db:"location"`
	Phone     string     `json:"phone,omitempty" db:"phone"`
	GithubURL string     `json:"github_url,omitempty" db:"github_url"`
	LinkedIn  string     `json:"linkedin_url,omitempty" db:"linkedin_url"`
	Twitter   string     `json:"twitter_url,omitempty" db:"twitter_url"`
	Website   string     `json:"website_url,omitempty" db:"website_url"`
	ImageURL  string     `json:"image_url,omitempty" db:"image_url"`
	ResumeURL string     `json:"resume_url,omitempty" db:"resume_url"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}
