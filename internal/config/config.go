// Package config loads the pokercoach HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokercoach/coach"
)

// DefaultPath is the config file looked up when no path is given
const DefaultPath = "pokercoach.hcl"

// Config represents the complete pokercoach configuration
type Config struct {
	Server  ServerSettings
	Trainer TrainerSettings
	Scoring coach.Config
}

// ServerSettings contains HTTP/WebSocket server configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// TrainerSettings configures scenario generation and the saved profile
type TrainerSettings struct {
	Profile string `hcl:"profile,optional"`
	Mode    string `hcl:"mode,optional"`
	Seed    int64  `hcl:"seed,optional"`
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "server"},
		{Type: "trainer"},
		{Type: "scoring"},
		{Type: "category_equity"},
		{Type: "made_hand_bonus"},
	},
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Trainer: TrainerSettings{
			Profile: "pokercoach-profile.json",
			Mode:    "hands",
		},
		Scoring: coach.DefaultConfig(),
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; attributes left out of a block keep their default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.decode(src, filename); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes HCL source over the defaults
func Parse(src []byte, filename string) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(src, filename); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	for _, block := range content.Blocks {
		var target any
		switch block.Type {
		case "server":
			target = &c.Server
		case "trainer":
			target = &c.Trainer
		case "scoring":
			target = &c.Scoring
		case "category_equity":
			target = &c.Scoring.CategoryEquity
		case "made_hand_bonus":
			target = &c.Scoring.MadeHandBonus
		}
		if diags := gohcl.DecodeBody(block.Body, nil, target); diags.HasErrors() {
			return fmt.Errorf("failed to decode %s block: %s", block.Type, diags.Error())
		}
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	switch c.Trainer.Mode {
	case "hands", "game":
	default:
		return fmt.Errorf("invalid trainer mode: %s", c.Trainer.Mode)
	}

	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	return nil
}

// ServerAddress returns the host:port the server listens on
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
