package workflowfile

import "errors"

// Platform directories under the workflows root.
const (
	PlatformN8N      = "n8n"
	PlatformZapier   = "zapier"
	PlatformExamples = "examples"
)

// Platforms is the scan order used by List, ValidateAll and Stats.
var Platforms = []string{PlatformN8N, PlatformZapier, PlatformExamples}

const (
	TemplateFile  = "workflow-template.json"
	GeneratedBy   = "Generated by workflowctl"
	unknown       = "Unknown"
	noDescription = "No description"
)

var (
	ErrInvalidPlatform  = errors.New("platform must be 'n8n' or 'zapier'")
	ErrTemplateNotFound = errors.New("template file not found")
	ErrEmptyName        = errors.New("workflow name is required")
)

// Entry summarises one workflow file.
type Entry struct {
	Filename    string   `json:"filename"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Tags        []string `json:"tags,omitempty"`
	Active      bool     `json:"active,omitempty"`
	Status      string   `json:"status,omitempty"`
	Description string   `json:"description,omitempty"`
	Size        int64    `json:"size"`
}

// Listing groups entries by platform. Files that could not be read are reported in Skipped.
type Listing struct {
	Workflows map[string][]Entry `json:"workflows"`
	Skipped   []string           `json:"skipped,omitempty"`
}

// Validation is the result of checking one file.
type Validation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	FilePath string   `json:"file_path"`
	FileSize int64    `json:"file_size"`
}

type PlatformStats struct {
	Count int   `json:"count"`
	Size  int64 `json:"size"`
}

type Stats struct {
	TotalFiles int                      `json:"total_files"`
	TotalSize  int64                    `json:"total_size"`
	ByPlatform map[string]PlatformStats `json:"by_platform"`
}
