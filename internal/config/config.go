package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config is the root configuration for tsheet, stored in
// ~/.tsheet/config.json. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	// DataPath points at a timesheet JSON file. Empty uses the
	// dataset built into the binary.
	DataPath string `json:"data_path"`
	// ExportDir is where export files are written. Empty means the
	// current directory.
	ExportDir string `json:"export_dir"`
	// DefaultMember preselects a member filter for the daily view.
	// Empty selects the first member in the dataset.
	DefaultMember string `json:"default_member"`
}

// EnvDataPath overrides data_path when set, either in the process
// environment or a .env file in the working directory.
const EnvDataPath = "TSHEET_DATA"

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON
// parsing, allowing human-readable documentation inside the file.
const configTemplate = `// tsheet configuration – ~/.tsheet/config.json
//
// All settings are optional; the built-in defaults work out of the box
// with the bundled sample dataset.
{
  // Path to a timesheet JSON file (same shape as the bundled dataset).
  // Leave empty to use the dataset built into the binary.
  // Can also be set with the TSHEET_DATA environment variable or a .env file.
  "data_path": "",

  // Directory where export files (PDF/XLSX/CSV/JSON) are written.
  // Leave empty to write into the current directory.
  "export_dir": "",

  // Member preselected in the daily view when --member is not given.
  // Leave empty to default to the first member in the dataset.
  "default_member": ""
}
`

// configFilePath returns the path to ~/.tsheet/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tsheet", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.tsheet/config.json, creating it with annotated defaults
// on first run, then applies environment overrides. A .env file in the
// working directory is honoured when present.
func Load() (Config, error) {
	var cfg Config

	path, err := configFilePath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: write the annotated template so users can
		// discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		cleaned := stripLineComments(data)
		if err := json.Unmarshal(cleaned, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv layers .env and process-environment overrides on top of the
// file config.
func applyEnv(cfg *Config) {
	// Absent .env files are fine; only explicit overrides matter.
	_ = godotenv.Load()
	if v := os.Getenv(EnvDataPath); v != "" {
		cfg.DataPath = v
	}
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
