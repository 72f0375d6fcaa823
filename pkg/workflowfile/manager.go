package workflowfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Manager reads and writes workflow definition files under one root directory.
type Manager struct {
	dir string
	now func() time.Time
}

// New creates the platform directories under dir when missing.
func New(dir string) (*Manager, error) {
	for _, p := range Platforms {
		if err := os.MkdirAll(filepath.Join(dir, p), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %w", p, err)
		}
	}
	return &Manager{dir: dir, now: time.Now}, nil
}

func (m *Manager) files(platform string) ([]string, error) {
	return filepath.Glob(filepath.Join(m.dir, platform, "*.json"))
}

// List summarises every workflow file, or only those of platform when it is not empty.
func (m *Manager) List(platform string) (Listing, error) {
	platforms := Platforms
	if platform != "" {
		platforms = []string{platform}
	}

	listing := Listing{Workflows: make(map[string][]Entry, len(platforms))}
	for _, p := range platforms {
		paths, err := m.files(p)
		if err != nil {
			return Listing{}, fmt.Errorf("failed to scan %s: %w", p, err)
		}

		entries := []Entry{}
		for _, path := range paths {
			entry, err := readEntry(p, path)
			if err != nil {
				listing.Skipped = append(listing.Skipped, fmt.Sprintf("%s: %v", path, err))
				continue
			}
			entries = append(entries, entry)
		}
		listing.Workflows[p] = entries
	}

	return listing, nil
}

func readEntry(platform, path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Entry{}, err
	}
	doc, err := readObject(path)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{Filename: filepath.Base(path), Size: info.Size()}
	switch platform {
	case PlatformZapier:
		zap, _ := doc["zap"].(map[string]any)
		entry.Name = stringField(zap, "name", unknown)
		entry.Version = stringField(zap, "version", unknown)
		entry.Tags = stringSlice(zap["tags"])
		entry.Status = stringField(zap, "status", unknown)
	case PlatformExamples:
		entry.Name = stringField(doc, "name", unknown)
		entry.Version = stringField(doc, "version", unknown)
		entry.Description = stringField(doc, "description", noDescription)
	default:
		entry.Name = stringField(doc, "name", unknown)
		entry.Version = stringField(doc, "versionId", unknown)
		entry.Tags = stringSlice(doc["tags"])
		entry.Active, _ = doc["active"].(bool)
	}
	return entry, nil
}

// Validate checks one file. Structural gaps are warnings; unreadable or non-object JSON is an error.
func (m *Manager) Validate(path string) Validation {
	v := Validation{Valid: true, Errors: []string{}, Warnings: []string{}, FilePath: path}
	if info, err := os.Stat(path); err == nil {
		v.FileSize = info.Size()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		v.Valid = false
		v.Errors = append(v.Errors, fmt.Sprintf("Error reading file: %v", err))
		return v
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		v.Valid = false
		v.Errors = append(v.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return v
	}

	doc, ok := decoded.(map[string]any)
	if !ok {
		v.Valid = false
		v.Errors = append(v.Errors, "Root must be a JSON object")
		return v
	}

	if zapRaw, ok := doc["zap"]; ok {
		zap, _ := zapRaw.(map[string]any)
		for _, field := range []string{"id", "name", "triggers", "actions"} {
			if _, ok := zap[field]; !ok {
				v.Warnings = append(v.Warnings, "Missing field: "+field)
			}
		}
		if !truthy(zap["triggers"]) {
			v.Warnings = append(v.Warnings, "No triggers defined")
		}
		if !truthy(zap["actions"]) {
			v.Warnings = append(v.Warnings, "No actions defined")
		}
		return v
	}

	if _, ok := doc["nodes"]; ok {
		if !truthy(doc["nodes"]) {
			v.Warnings = append(v.Warnings, "No nodes defined")
		}
		if !truthy(doc["connections"]) {
			v.Warnings = append(v.Warnings, "No connections defined")
		}
		return v
	}

	v.Warnings = append(v.Warnings, "Unknown workflow format")
	return v
}

// ValidateAll validates every file, grouped by platform.
func (m *Manager) ValidateAll() (map[string][]Validation, error) {
	results := make(map[string][]Validation, len(Platforms))
	for _, p := range Platforms {
		paths, err := m.files(p)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", p, err)
		}
		results[p] = []Validation{}
		for _, path := range paths {
			results[p] = append(results[p], m.Validate(path))
		}
	}
	return results, nil
}

// Create writes a new workflow for platform from the examples template and returns its path.
func (m *Manager) Create(platform, name, description string) (string, error) {
	if platform != PlatformN8N && platform != PlatformZapier {
		return "", ErrInvalidPlatform
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	template, err := readObject(filepath.Join(m.dir, PlatformExamples, TemplateFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrTemplateNotFound
		}
		return "", fmt.Errorf("failed to read template: %w", err)
	}

	ts := m.now().UTC().Format("2006-01-02T15:04:05.000000") + "Z"
	template["id"] = uuid.NewString()
	template["name"] = name
	template["description"] = description
	template["created_at"] = ts
	template["updated_at"] = ts
	template["author"] = GeneratedBy

	out, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode workflow: %w", err)
	}

	path := filepath.Join(m.dir, platform, Filename(name))
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("failed to write workflow: %w", err)
	}
	return path, nil
}

// Filename derives the file name of a generated workflow.
func Filename(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-") + "-v1.0.json"
}

// Stats counts files and bytes per platform.
func (m *Manager) Stats() (Stats, error) {
	stats := Stats{ByPlatform: make(map[string]PlatformStats, len(Platforms))}
	for _, p := range Platforms {
		paths, err := m.files(p)
		if err != nil {
			return Stats{}, fmt.Errorf("failed to scan %s: %w", p, err)
		}

		ps := PlatformStats{}
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			ps.Count++
			ps.Size += info.Size()
		}
		stats.ByPlatform[p] = ps
		stats.TotalFiles += ps.Count
		stats.TotalSize += ps.Size
	}
	return stats, nil
}

func readObject(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return doc, nil
}

func stringField(doc map[string]any, key, fallback string) string {
	v, ok := doc[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func stringSlice(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch t := item.(type) {
		case string:
			out = append(out, t)
		case map[string]any:
			// n8n exports tags as objects
			if name, ok := t["name"].(string); ok {
				out = append(out, name)
			}
		}
	}
	return out
}

// truthy treats nil, empty collections and empty strings as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	}
	return true
}
