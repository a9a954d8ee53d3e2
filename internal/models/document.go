// Package models defines the domain types for Sowilo.
package models

import "time"

// Document represents a Markdown file in the workspace.
type Document struct {
	Path      string                 `json:"path"`
	Body      string                 `json:"body"`
	Meta      map[string]interface{} `json:"meta,omitempty"`
	Title     string                 `json:"title,omitempty"`
	Tags      []string               `json:"tags,omitempty"`
	Checksum  string                 `json:"checksum"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// DocumentMetadata is a lightweight representation returned by list operations.
type DocumentMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
