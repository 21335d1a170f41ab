// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/hightemp/countrygen/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags
var (
	configFile      string
	location        string
	filename        string
	defaultEncoding string
	outputFormat    string
	packageName     string
	timeout         time.Duration
	manifestPath    string
	dryRun          bool
	showProgress    bool
	noColor         bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "countrygen",
	Short: "Generate ISO 3166 country tables from the ISO country list",
	Long: `countrygen downloads the semicolon-delimited ISO 3166 country list,
normalizes the country names and writes a source file defining three
lookup tables:

  countries           nicely titled names ("Bahamas, The")
  countries_plus      titled names plus inverted forms ("The Bahamas"),
                      sorted alphabetically ignoring accents
  official_countries  names exactly as published

Examples:
  countrygen
  countrygen --location file:///tmp/list-en1-semic-3.txt
  countrygen --format go --package iso -o internal/iso/countries_gen.go
  countrygen --dry-run`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithCode(exitCodeFor(err), fmt.Sprintf("Error: %v", err))
	}
}

func init() {
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Flags().StringVar(&configFile, "config", "", "YAML configuration file")
	rootCmd.Flags().StringVar(&location, "location", config.DefaultLocation, "URL or path of the semicolon-delimited country list")
	rootCmd.Flags().StringVarP(&filename, "filename", "o", config.DefaultFilename, "output file path")
	rootCmd.Flags().StringVar(&defaultEncoding, "default-encoding", config.DefaultEncoding, "encoding used when the source declares no charset")
	rootCmd.Flags().StringVar(&outputFormat, "format", config.DefaultFormat, "output format: cpp or go")
	rootCmd.Flags().StringVar(&packageName, "package", config.DefaultPackage, "package name for the go format")
	rootCmd.Flags().DurationVar(&timeout, "timeout", config.DefaultTimeout, "fetch timeout")
	rootCmd.Flags().StringVar(&manifestPath, "manifest", "", "write a JSON manifest of the run to this path")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the generated file instead of writing it")
	rootCmd.Flags().BoolVar(&showProgress, "progress", false, "show a download progress bar")

	rootCmd.AddCommand(versionCmd)
}

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitFetchFailed  = 3
	ExitDecodeFailed = 4
	ExitWriteFailed  = 5
)

func exitWithCode(code int, msg string) {
	errorColor.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
