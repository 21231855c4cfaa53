package config

// Field length limits enforced by service-level validation.
const (
	MaxTitleLength       = 200
	MaxNameLength        = 100
	MaxEmailLength       = 254
	MaxSubjectLength     = 200
	MaxDescriptionLength = 2000
	MaxDetailsLength     = 20000
	MaxBioLength         = 5000
	MaxURLLength         = 2048
	MaxTechnologies      = 30

	// MaxUploadBytes caps multipart upload size (10MB).
	MaxUploadBytes = 10 << 20
)
