package model

import "portfolio-api/pkg/imageai"

type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

type CoverRequest struct {
	Slug   string `json:"slug"`
	Prompt string `json:"prompt"`
}

type PlaceholdersRequest struct {
	Slug  string                `json:"slug"`
	Files []imageai.Placeholder `json:"files,omitempty"`
}
