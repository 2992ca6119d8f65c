package server

import (
	"github.com/rezonia/zugferd/internal/ram"
)

// ProfileResponse describes one profile
type ProfileResponse struct {
	Name      string `json:"name"`
	Rank      int    `json:"rank"`
	Guideline string `json:"guideline"`
	Fields    int    `json:"fields"`
}

// CapabilitiesResponse is the response for the capabilities endpoint
type CapabilitiesResponse struct {
	Profile string          `json:"profile"`
	Fields  []FieldResponse `json:"fields"`
}

// FieldResponse describes one field of a profile
type FieldResponse struct {
	Field string `json:"field"`
	Mode  string `json:"mode"`
	Since string `json:"since"`
}

// BuildResponse is the response for the documents endpoint
type BuildResponse struct {
	Profile   string                    `json:"profile"`
	Guideline string                    `json:"guideline"`
	Document  *ram.CrossIndustryInvoice `json:"document"`
	Skipped   []string                  `json:"skipped,omitempty"`
}

// FitResponse reports how a description fits one profile
type FitResponse struct {
	Profile string   `json:"profile"`
	Skipped []string `json:"skipped,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details string   `json:"details,omitempty"`
	Skipped []string `json:"skipped,omitempty"`
}
