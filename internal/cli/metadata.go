package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mockhouse/mockhouse/internal/logging"
	"github.com/mockhouse/mockhouse/internal/tui"
	"github.com/mockhouse/mockhouse/internal/wheel"
	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Metadata operations for wheel files",
	Long: `Metadata commands for inspecting wheel files.

Available commands:
  show      Extract and print the metadata of a wheel
  validate  Parse and validate wheel metadata without printing it

Examples:
  # Print metadata as human-readable text
  mockhouse metadata show ./dist/dummy_project-0.0.1.dev1-py3-none-any.whl

  # Print the raw mapping as JSON
  mockhouse metadata show ./dist/dummy_project-0.0.1.dev1-py3-none-any.whl --json

  # Validate every wheel in a directory
  mockhouse metadata validate ./dist`,
}

var metadataShowCmd = &cobra.Command{
	Use:   "show <wheel|dir>...",
	Short: "Extract and print wheel metadata",
	Long: `Extract the metadata entry from each wheel and print its raw mapping.

The pipeline locates the METADATA (or PKG-INFO) entry, parses the header
block, and validates it against the schema. A directory argument is scanned
recursively for *.whl files.

Examples:
  # Human-readable output
  mockhouse metadata show demo-1.0-py3-none-any.whl

  # Machine-readable output
  mockhouse metadata show demo-1.0-py3-none-any.whl --json
  mockhouse metadata show demo-1.0-py3-none-any.whl --yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMetadataShow,
}

var metadataValidateCmd = &cobra.Command{
	Use:   "validate <wheel|dir>...",
	Short: "Validate wheel metadata",
	Long: `Parse and validate the metadata of each wheel, reporting per file.

Each filename is also cross-checked against the extracted metadata: the
distribution and version segments must identify the same project, comparing
distributions under name normalization.

Fails with a semantic exit code on the first wheel whose filename is
malformed or whose metadata is missing, malformed, or schema-invalid.

Examples:
  mockhouse metadata validate ./dist
  mockhouse metadata validate a-1.0-py3-none-any.whl b-2.0-py3-none-any.whl`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMetadataValidate,
}

var (
	showJSON bool
	showYAML bool
)

func init() {
	rootCmd.AddCommand(metadataCmd)
	metadataCmd.AddCommand(metadataShowCmd)
	metadataCmd.AddCommand(metadataValidateCmd)

	metadataShowCmd.Flags().BoolVar(&showJSON, "json", false, "Output the raw mapping as JSON")
	metadataShowCmd.Flags().BoolVar(&showYAML, "yaml", false, "Output the raw mapping as YAML")
}

// runMetadataShow extracts and prints metadata for each wheel argument
func runMetadataShow(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	switch {
	case showJSON && showYAML:
		return fmt.Errorf("%w: --json and --yaml are mutually exclusive", mockhouse.ErrInvalidConfig)
	case showJSON:
		format = "json"
	case showYAML:
		format = "yaml"
	}

	paths, err := wheelArgs(args, wheel.ScanDir)
	if err != nil {
		return err
	}

	color := tui.UseColor(tui.ParseColorMode(cfg.Output.Color))
	out := cmd.OutOrStdout()

	for _, path := range paths {
		logger.Verbose("extracting metadata from %s", path)

		raw, err := wheel.ExtractMetadata(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		switch format {
		case "json":
			err = renderJSON(out, raw)
		case "yaml":
			err = renderYAML(out, raw)
		default:
			err = renderText(out, path, raw, color)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// runMetadataValidate parses and validates each wheel, reporting per file
func runMetadataValidate(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	paths, err := wheelArgs(args, wheel.ScanDir)
	if err != nil {
		return err
	}

	color := tui.UseColor(tui.ColorAuto)
	out := cmd.OutOrStdout()
	for _, path := range paths {
		logger.Verbose("validating %s", path)

		fn, err := wheel.ParseFilename(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", statusSymbol(false, color), path, err)
			return fmt.Errorf("%s: %w", path, err)
		}

		rec, err := wheel.Extract(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", statusSymbol(false, color), path, err)
			return fmt.Errorf("%s: %w", path, err)
		}

		if !fn.Matches(rec.Name(), rec.Version()) {
			err := fmt.Errorf("%w: filename says %s %s, metadata says %s %s",
				mockhouse.ErrInvalidMetadata, fn.Distribution, fn.Version, rec.Name(), rec.Version())
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", statusSymbol(false, color), path, err)
			return fmt.Errorf("%s: %w", path, err)
		}

		fmt.Fprintf(out, "%s %s %s\n", statusSymbol(true, color), path,
			muted(fmt.Sprintf("(%s %s)", rec.Name(), rec.Version()), color))
	}
	return nil
}
