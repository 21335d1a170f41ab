package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/hightemp/countrygen/internal/config"
	"github.com/hightemp/countrygen/internal/fetch"
	"github.com/hightemp/countrygen/internal/generate"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []fetch.Option{fetch.WithTimeout(cfg.Timeout)}
	if showProgress {
		opts = append(opts, fetch.WithProgress(os.Stderr))
	}
	client := fetch.NewClient(opts...)

	if !cfg.DryRun {
		statusf("Fetching %s...\n", cfg.Location)
	}
	startTime := time.Now()

	res, err := generate.Run(ctx, cfg, client)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		_, err := os.Stdout.Write(res.Output)
		return err
	}

	elapsed := time.Since(startTime)
	successf("\nGenerated %s in %v\n", cfg.Filename, elapsed.Round(time.Millisecond))
	detailf("  Encoding", "%s\n", res.Document.Encoding)
	detailf("  Entries", "%d\n", len(res.Entries))
	detailf("  Countries plus", "%d\n", len(res.Tables.CountriesPlus))
	if res.ManifestErr != nil {
		warnf("Warning: %v\n", res.ManifestErr)
	} else if cfg.Manifest != "" {
		detailf("  Manifest", "%s\n", cfg.Manifest)
	}

	return nil
}

// loadConfig builds the configuration from defaults, the optional config
// file and explicitly set flags, in increasing order of precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, &usageError{err}
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if configFile == "" || flags.Changed("location") {
		cfg.Location = location
	}
	if configFile == "" || flags.Changed("filename") {
		cfg.Filename = filename
	}
	if configFile == "" || flags.Changed("default-encoding") {
		cfg.DefaultEncoding = defaultEncoding
	}
	if configFile == "" || flags.Changed("format") {
		cfg.Format = outputFormat
	}
	if configFile == "" || flags.Changed("package") {
		cfg.Package = packageName
	}
	if configFile == "" || flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if configFile == "" || flags.Changed("manifest") {
		cfg.Manifest = manifestPath
	}
	cfg.DryRun = dryRun

	if err := cfg.Validate(); err != nil {
		return nil, &usageError{err}
	}
	return cfg, nil
}

// usageError marks errors caused by invalid flags or configuration.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	var (
		usageErr  *usageError
		fetchErr  *fetch.FetchError
		decodeErr *fetch.DecodeError
		writeErr  *generate.WriteError
	)
	switch {
	case errors.As(err, &fetchErr):
		return ExitFetchFailed
	case errors.As(err, &decodeErr):
		return ExitDecodeFailed
	case errors.As(err, &writeErr):
		return ExitWriteFailed
	case errors.As(err, &usageErr):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}
