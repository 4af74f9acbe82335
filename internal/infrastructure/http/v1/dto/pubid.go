package dto

import "time"

// GeneratePublicIDResponse carries a freshly issued public identifier.
type GeneratePublicIDResponse struct {
	PublicID   string `json:"publicId"`
	EntityType string `json:"entityType"`
}

// MaskRequest is the payload for configuring a mask template.
type MaskRequest struct {
	Mask string `json:"mask" binding:"required"`
}

// MaskResponse describes a configured mask.
type MaskResponse struct {
	EntityType string    `json:"entityType"`
	Mask       string    `json:"mask"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ValidateMaskRequest is the payload for advisory mask validation.
type ValidateMaskRequest struct {
	Mask string `json:"mask"`
}

// ValidateMaskResponse carries the advisory validation verdict.
type ValidateMaskResponse struct {
	Valid bool `json:"valid"`
}

// CounterResponse describes the stored counter state for a key.
type CounterResponse struct {
	EntityType   string `json:"entityType"`
	CurrentValue int64  `json:"currentValue"`
}
