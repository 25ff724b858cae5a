package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pfrederiksen/kalendarz/internal/config"
	"github.com/pfrederiksen/kalendarz/internal/export"
	"github.com/pfrederiksen/kalendarz/internal/liturgy"
	"github.com/pfrederiksen/kalendarz/internal/logger"
	"github.com/pfrederiksen/kalendarz/internal/source"
	"github.com/pfrederiksen/kalendarz/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess      = 0
	ExitError        = 1
	ExitNotPublished = 2
)

var (
	flagBaseURL      string
	flagFormat       string
	flagSimple       bool
	flagTranslations string
	flagVerbose      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kalendarz <year> <output-dir>",
		Short: "Export the Polish liturgical calendar for a year to JSON",
		Long: `Downloads the liturgical calendar for the given year in ICS format,
cleans and translates the celebration names, adds the Sunday (A/B/C) and
weekday (1/2) lectionary cycles and writes <output-dir>/<year>.json.`,
		Example:       "  kalendarz 2025 ~/kalendarz\n  kalendarz --simple --format list 2026 ./out",
		Args:          validateArgs,
		RunE:          runExport,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Calendar server, overrides "+config.EnvBaseURL)
	cmd.Flags().StringVar(&flagFormat, "format", string(export.FormatObject), "Output layout: object (keyed by name) or list")
	cmd.Flags().BoolVar(&flagSimple, "simple", false, "Omit the rok_litera and rok_cyfra fields")
	cmd.Flags().StringVar(&flagTranslations, "translations", "", "YAML file with extra name translations")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// validateArgs requires exactly a numeric year and an output directory
func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	if _, err := strconv.Atoi(args[0]); err != nil {
		return fmt.Errorf("year %q is not a valid number", args[0])
	}
	return nil
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	// Arguments are valid from here on; don't print usage for runtime failures
	cmd.SilenceUsage = true

	// The year is validated as a number but used as typed, so "0025"
	// fetches 0025-pl-PL.ics and writes 0025.json.
	year := args[0]
	outputDir := args[1]
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := setupLogger(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}

	format := export.Format(strings.ToLower(flagFormat))
	if format != export.FormatObject && format != export.FormatList {
		return fmt.Errorf("invalid format: %s (must be 'object' or 'list')", flagFormat)
	}

	variant := export.Advanced
	if flagSimple {
		variant = export.Simple
	}

	if flagBaseURL != "" {
		cfg.BaseURL = strings.TrimRight(flagBaseURL, "/")
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --base-url: %w", err)
		}
	}

	translator, err := liturgy.DefaultTranslator(flagTranslations)
	if err != nil {
		return fmt.Errorf("loading translations: %w", err)
	}
	logger.SetGauge("translations.loaded", float64(translator.Len()))

	store, err := storage.New(outputDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	client := source.New(cfg.BaseURL, cfg.UserAgent, cfg.Timeout)

	fmt.Fprintf(out, "Fetching calendar for %s from %s\n", year, client.URL(year))

	ics, err := client.Fetch(cmd.Context(), year)
	if err != nil {
		return fmt.Errorf("calendar for %s: %w", year, err)
	}

	fmt.Fprintln(out, "Calendar downloaded, converting events...")

	events, err := liturgy.NewConverter(translator).ConvertICS(ics)
	if err != nil {
		return fmt.Errorf("converting calendar: %w", err)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, events, format, variant); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}

	result, err := store.Save(year, buf.Bytes())
	if err != nil {
		return fmt.Errorf("saving calendar: %w", err)
	}

	writeSummary(out, &runSummary{
		Year:       year,
		Path:       result.Path,
		Dir:        store.Dir(),
		CreatedDir: result.CreatedDir,
		EventCount: len(events),
		Format:     format,
		Variant:    variant,
	})

	logger.Debug("run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	return nil
}

func setupLogger(cfg *config.Config, w io.Writer) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, w))
	return nil
}

// Run executes the command with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, source.ErrNotPublished):
		logger.Warn("calendar not published", logger.Fields{"args": args})
		fmt.Fprintf(stdout, "Info: %v (HTTP 404)\n", err)
		return ExitNotPublished
	default:
		logger.Error("export failed", logger.Fields{"args": args}, err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
}
