package model

// Package is an extension active in the host.
type Package struct {
	Name    string `json:"name" validate:"required"`
	Path    string `json:"path" validate:"required"`
	Version string `json:"version"`
}
