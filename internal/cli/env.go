package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/config"
	"github.com/roach88/catalogue/internal/datastore"
	"github.com/roach88/catalogue/internal/store"
	"github.com/roach88/catalogue/internal/vocab"
)

// formatter builds the OutputFormatter for cmd. Diagnostics go to stderr so
// JSON on stdout stays parseable.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// loadConfig reads --config (or ./catalogue.yaml when present) and applies
// flag overrides.
func (o *RootOptions) loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if o.ConfigPath != "" {
		cfg, err = config.Load(o.ConfigPath)
	} else {
		cfg, err = config.LoadOptional(config.DefaultPath)
	}
	if err != nil {
		return config.Config{}, err
	}

	if o.DataFile != "" {
		cfg.DataFile = o.DataFile
	}
	if o.OutputDir != "" {
		cfg.OutputDir = o.OutputDir
	}
	if o.IndexPath != "" {
		cfg.IndexPath = o.IndexPath
	}
	if o.NoIndex {
		cfg.IndexPath = ""
	}
	return cfg, cfg.Validate()
}

// logLevel is debug with --verbose, info otherwise.
func (o *RootOptions) logLevel() slog.Level {
	if o.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// setup loads config, builds the formatter and logs to cmd's stderr.
// Config errors are already reported when it returns one.
func (o *RootOptions) setup(cmd *cobra.Command) (config.Config, *OutputFormatter, *slog.Logger, error) {
	f := o.formatter(cmd)
	cfg, err := o.loadConfig()
	if err != nil {
		return cfg, f, nil, f.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}
	logger := newLogger(o.logLevel(), cmd.ErrOrStderr(), nil)
	logger.Debug("config loaded", "data_file", cfg.DataFile, "output_dir", cfg.OutputDir, "index_path", cfg.IndexPath)
	return cfg, f, logger, nil
}

func loadTables(cfg config.Config) (*vocab.Tables, error) {
	if cfg.Vocabulary == "" {
		return vocab.Default(), nil
	}
	return vocab.Load(cfg.Vocabulary)
}

// openIndex opens or creates the index. It returns nil without error when
// the index is disabled.
func openIndex(cfg config.Config) (*store.Store, error) {
	if cfg.IndexPath == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.IndexPath), 0755); err != nil {
		return nil, fmt.Errorf("create index dir: %w", err)
	}
	return store.Open(cfg.IndexPath)
}

// openExistingIndex is openIndex for read-only commands: a missing index
// file yields nil rather than a fresh empty database.
func openExistingIndex(cfg config.Config) (*store.Store, error) {
	if cfg.IndexPath == "" {
		return nil, nil
	}
	if _, err := os.Stat(cfg.IndexPath); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return store.Open(cfg.IndexPath)
}

func closeIndex(st *store.Store, logger *slog.Logger) {
	if st == nil {
		return
	}
	if err := st.Close(); err != nil {
		logger.Error("error closing index", "error", err)
	}
}

// readRecords decodes the data file, reporting failures through f.
// A missing file is a command error; an unparseable one is a failure.
func readRecords(f *OutputFormatter, data *datastore.File) ([]catalogue.Record, error) {
	records, err := data.Records()
	var decodeErr *datastore.DecodeError
	switch {
	case err == nil:
		return records, nil
	case errors.Is(err, os.ErrNotExist):
		return nil, f.Fail(ExitCommandError, ErrCodeDatastore,
			fmt.Sprintf("data file not found: %s (run init first)", data.Path), err)
	case errors.Is(err, datastore.ErrFormat), errors.As(err, &decodeErr):
		return nil, f.Fail(ExitFailure, ErrCodeFormat, "failed to parse data file", err)
	default:
		return nil, f.Fail(ExitCommandError, ErrCodeDatastore, "failed to read data file", err)
	}
}

// commandContext returns cmd's context, or Background when it has none.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// signalContext derives a context cancelled on SIGINT/SIGTERM. The stop
// func must be called to release the signal handler.
func signalContext(cmd *cobra.Command, logger *slog.Logger) (context.Context, context.CancelFunc) {
	// Use command's context if available (for testing), otherwise create one
	ctx, cancel := context.WithCancel(commandContext(cmd))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, stopping after the current cycle", "signal", sig)
			cancel()
		case <-ctx.Done():
			// Parent context cancelled (e.g., from test)
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan) // Prevent signal handler leak
		cancel()
	}
}
