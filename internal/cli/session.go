package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/catalog"
	"github.com/roach88/recetario/internal/config"
	"github.com/roach88/recetario/internal/kv"
	"github.com/roach88/recetario/internal/recipe"
)

// session is everything a store command needs: resolved settings, the
// catalog, the open database and the restored recipe.
type session struct {
	cfg   *config.Config
	cat   *catalog.Catalog
	db    *kv.Store
	store *recipe.Store
	log   *slog.Logger
	out   *OutputFormatter
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// newLogger returns a text logger on w, at debug level when verbose.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadSettings resolves the config (flags over file/env/defaults) and the
// catalog. It does not touch the database.
func loadSettings(opts *RootOptions, out *OutputFormatter) (*config.Config, *catalog.Catalog, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		code := ErrCodeConfig
		if errors.Is(err, fs.ErrNotExist) {
			code = ErrCodeNotFound
		}
		return nil, nil, out.Fail(ExitCommandError, code, err.Error(), nil)
	}
	if opts.Database != "" {
		cfg.DB = opts.Database
	}
	if opts.Catalog != "" {
		cfg.Catalog = opts.Catalog
	}

	if cfg.Catalog == "" {
		return cfg, catalog.Default(), nil
	}

	out.VerboseLog("Loading catalog from %s", cfg.Catalog)
	cat, err := catalog.LoadFile(cfg.Catalog)
	if err != nil {
		code := ErrCodeCatalog
		if errors.Is(err, fs.ErrNotExist) {
			code = ErrCodeNotFound
		}
		return nil, nil, out.Fail(ExitCommandError, code, err.Error(), nil)
	}
	return cfg, cat, nil
}

// openSession loads settings, opens the database and restores the recipe.
// The caller must Close the session.
func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	out := newFormatter(opts, cmd)

	cfg, cat, err := loadSettings(opts, out)
	if err != nil {
		return nil, err
	}

	log := newLogger(opts, cmd.ErrOrStderr())

	log.Debug("opening database", "path", cfg.DB)
	db, err := kv.Open(cfg.DB)
	if err != nil {
		_ = out.Error(ErrCodeDatabase, "failed to open database", err.Error())
		return nil, WrapExitError(ExitCommandError, ErrCodeDatabase+": failed to open database", err)
	}

	st := recipe.NewStore(cat,
		recipe.WithPersistence(recipe.NewPersistence(db, log)),
		recipe.WithLogger(log),
	)
	st.Load(commandContext(cmd))
	out.VerboseLog("Loaded %d entries for %d diner(s)", st.Len(), st.Diners())

	return &session{cfg: cfg, cat: cat, db: db, store: st, log: log, out: out}, nil
}

// Close closes the database.
func (s *session) Close() {
	if err := s.db.Close(); err != nil {
		s.log.Error("error closing database", "error", err)
	}
}

// ctx returns the command context.
func (s *session) ctx(cmd *cobra.Command) context.Context {
	return commandContext(cmd)
}
