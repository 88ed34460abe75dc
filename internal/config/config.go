// Package config resolves recetario settings from defaults, an optional YAML
// file and RECETARIO_* environment variables, in increasing precedence.
// Command-line flags are applied on top by the CLI.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/roach88/recetario/internal/recipe"
)

// EnvPrefix is the prefix of environment overrides (RECETARIO_DB, ...).
const EnvPrefix = "RECETARIO"

// Keys.
const (
	KeyDB          = "db"
	KeyCatalog     = "catalog"
	KeyTitle       = "title"
	KeyNotesHeader = "notes_header"
	KeyFileName    = "file_name"
	KeyOutputDir   = "output_dir"
)

// DefaultDB is the database file used when nothing else is configured.
const DefaultDB = "recetario.db"

// Config holds the resolved settings.
type Config struct {
	// DB is the SQLite file holding the recipe.
	DB string

	// Catalog is an optional CUE catalog file. Empty means the built-in one.
	Catalog string

	// OutputDir is where exported files go. Empty means the working directory.
	OutputDir string

	Labels recipe.Labels
}

// Load resolves the configuration. path names an optional YAML config file;
// when empty only defaults and the environment apply. A path that is given
// but missing is an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	labels := recipe.DefaultLabels()
	v.SetDefault(KeyDB, DefaultDB)
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyTitle, labels.Title)
	v.SetDefault(KeyNotesHeader, labels.NotesHeader)
	v.SetDefault(KeyFileName, labels.FileName)
	v.SetDefault(KeyOutputDir, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		DB:        v.GetString(KeyDB),
		Catalog:   v.GetString(KeyCatalog),
		OutputDir: v.GetString(KeyOutputDir),
		Labels: recipe.Labels{
			Title:       v.GetString(KeyTitle),
			NotesHeader: v.GetString(KeyNotesHeader),
			FileName:    v.GetString(KeyFileName),
		},
	}

	if cfg.DB == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyDB)
	}
	if strings.ContainsAny(cfg.Labels.FileName, `/\`) {
		return nil, fmt.Errorf("%s must be a bare name, got %q", KeyFileName, cfg.Labels.FileName)
	}

	return cfg, nil
}
