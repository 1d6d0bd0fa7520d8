// Package config provides configuration loading and management for the
// changelog tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/changelog/changeset"
	"github.com/c360studio/changelog/graph"
	"github.com/c360studio/changelog/render"
)

// Config represents the complete changelog tool configuration
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Render  RenderConfig  `yaml:"render"`
	Convert ConvertConfig `yaml:"convert"`
	Watch   WatchConfig   `yaml:"watch"`
}

// InputConfig configures where release facts come from
type InputConfig struct {
	// Path is the input document, a local path or http(s) URL
	Path string `yaml:"path"`
	// Format is the serialization format hint (turtle, jsonld)
	Format string `yaml:"format"`
	// Vocabulary picks the changelog schema (auto, legacy, current)
	Vocabulary string `yaml:"vocabulary"`
	// ProjectName is the fallback display name for unnamed projects
	ProjectName string `yaml:"project_name"`
	// Scoped restricts project discovery to projects the input
	// document links explicitly
	Scoped bool `yaml:"scoped"`
}

// RenderConfig configures the text output
type RenderConfig struct {
	// Output is the rendered changelog path
	Output string `yaml:"output"`
	// Width is the output width in columns
	Width int `yaml:"width"`
	// Sort orders releases (semver, lexical)
	Sort string `yaml:"sort"`
}

// ConvertConfig configures the external XML conversion
type ConvertConfig struct {
	// Output is the RDF/XML output path
	Output string `yaml:"output"`
	// Tool is the converter binary (default: rapper)
	Tool string `yaml:"tool"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Debounce is how long to wait for more changes before re-rendering
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path:       "Changes.ttl",
			Format:     string(graph.FormatTurtle),
			Vocabulary: string(changeset.VocabularyAuto),
			Scoped:     true,
		},
		Render: RenderConfig{
			Output: "Changes",
			Width:  render.DefaultWidth,
			Sort:   string(render.SortSemver),
		},
		Convert: ConvertConfig{
			Output: "Changes.xml",
			Tool:   "rapper",
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path is required")
	}
	if _, err := graph.ParseFormat(c.Input.Format); err != nil {
		return fmt.Errorf("input.format: %w", err)
	}
	if _, err := changeset.ParseVocabulary(c.Input.Vocabulary); err != nil {
		return fmt.Errorf("input.vocabulary: %w", err)
	}
	if c.Render.Output == "" {
		return fmt.Errorf("render.output is required")
	}
	if c.Render.Width < 20 {
		return fmt.Errorf("render.width must be at least 20, got %d", c.Render.Width)
	}
	if _, err := render.ParseSortMode(c.Render.Sort); err != nil {
		return fmt.Errorf("render.sort: %w", err)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// Merge overlays non-zero values from other onto c
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Input.Path != "" {
		c.Input.Path = other.Input.Path
	}
	if other.Input.Format != "" {
		c.Input.Format = other.Input.Format
	}
	if other.Input.Vocabulary != "" {
		c.Input.Vocabulary = other.Input.Vocabulary
	}
	if other.Input.ProjectName != "" {
		c.Input.ProjectName = other.Input.ProjectName
	}
	if other.Render.Output != "" {
		c.Render.Output = other.Render.Output
	}
	if other.Render.Width != 0 {
		c.Render.Width = other.Render.Width
	}
	if other.Render.Sort != "" {
		c.Render.Sort = other.Render.Sort
	}
	if other.Convert.Output != "" {
		c.Convert.Output = other.Convert.Output
	}
	if other.Convert.Tool != "" {
		c.Convert.Tool = other.Convert.Tool
	}
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
