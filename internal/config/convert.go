package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/banshee-data/th2fits/internal/histogram"
)

// ExampleConfigPath is the checked-in example settings file.
const ExampleConfigPath = "config/th2fits.example.json"

// ConvertConfig holds the conversion settings that may be kept in a file
// instead of repeated on every command line. Unset fields fall back to the
// defaults returned by the Get* methods.
type ConvertConfig struct {
	Reverse     *bool   `json:"reverse,omitempty"`
	WCS         *bool   `json:"wcs,omitempty"`
	RowBound    *string `json:"row_bound,omitempty"` // "x" or "y"
	AtomicWrite *bool   `json:"atomic_write,omitempty"`

	// Optional previews
	PreviewPNG  *string `json:"preview_png,omitempty"`
	PreviewHTML *string `json:"preview_html,omitempty"`
}

// Helper functions to create pointers
func ptrBool(v bool) *bool       { return &v }
func ptrString(v string) *string { return &v }

// EmptyConfig returns a ConvertConfig with all fields set to nil.
func EmptyConfig() *ConvertConfig {
	return &ConvertConfig{}
}

// DefaultConfig returns a ConvertConfig with every field set to its default.
func DefaultConfig() *ConvertConfig {
	return &ConvertConfig{
		Reverse:     ptrBool(false),
		WCS:         ptrBool(true),
		RowBound:    ptrString("x"),
		AtomicWrite: ptrBool(true),
		PreviewPNG:  ptrString(""),
		PreviewHTML: ptrString(""),
	}
}

// LoadConfig loads a ConvertConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
func LoadConfig(path string) (*ConvertConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *ConvertConfig) Validate() error {
	if c.RowBound != nil {
		if _, err := histogram.ParseRowBound(*c.RowBound); err != nil {
			return fmt.Errorf("row_bound: %w", err)
		}
	}

	if c.PreviewPNG != nil && *c.PreviewPNG != "" {
		if ext := strings.ToLower(filepath.Ext(*c.PreviewPNG)); ext != ".png" {
			return fmt.Errorf("preview_png must have .png extension, got %q", ext)
		}
	}

	if c.PreviewHTML != nil && *c.PreviewHTML != "" {
		if ext := strings.ToLower(filepath.Ext(*c.PreviewHTML)); ext != ".html" && ext != ".htm" {
			return fmt.Errorf("preview_html must have .html extension, got %q", ext)
		}
	}

	return nil
}

// GetReverse returns the reverse value or the default.
func (c *ConvertConfig) GetReverse() bool {
	if c.Reverse == nil {
		return false // default
	}
	return *c.Reverse
}

// GetWCS returns the wcs value or the default.
func (c *ConvertConfig) GetWCS() bool {
	if c.WCS == nil {
		return true // default
	}
	return *c.WCS
}

// GetRowBound returns the parsed row_bound or the default.
func (c *ConvertConfig) GetRowBound() histogram.RowBound {
	if c.RowBound == nil {
		return histogram.RowBoundX // default
	}
	b, err := histogram.ParseRowBound(*c.RowBound)
	if err != nil {
		return histogram.RowBoundX // default on parse error
	}
	return b
}

// GetAtomicWrite returns the atomic_write value or the default.
func (c *ConvertConfig) GetAtomicWrite() bool {
	if c.AtomicWrite == nil {
		return true // default
	}
	return *c.AtomicWrite
}

// GetPreviewPNG returns the preview_png path, empty when disabled.
func (c *ConvertConfig) GetPreviewPNG() string {
	if c.PreviewPNG == nil {
		return ""
	}
	return *c.PreviewPNG
}

// GetPreviewHTML returns the preview_html path, empty when disabled.
func (c *ConvertConfig) GetPreviewHTML() string {
	if c.PreviewHTML == nil {
		return ""
	}
	return *c.PreviewHTML
}
