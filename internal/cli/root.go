package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mockhouse/mockhouse/internal/config"
	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

const asciiLogo = `                      _    _
  _ __ ___   ___  ___| | _| |__   ___  _   _ ___  ___
 | '_ ` + "`" + ` _ \ / _ \/ __| |/ / '_ \ / _ \| | | / __|/ _ \
 | | | | | | (_) | (__|   <| | | | (_) | |_| \__ \  __/
 |_| |_| |_|\___/ \___|_|\_\_| |_|\___/ \__,_|___/\___|`

var rootCmd = &cobra.Command{
	Use:   "mockhouse",
	Short: "Wheel metadata inspection tool",
	Long: asciiLogo + `

mockhouse reads distribution metadata out of wheel archives: it locates the
METADATA (or PKG-INFO) entry, parses the header block into a raw mapping,
validates it against the core-metadata schema extended with the repeatable
Variant field, and verifies RECORD checksums.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Wheel archive unreadable or corrupt
  12 - No metadata entry found in the archive
  13 - Metadata present but malformed or invalid
  14 - RECORD checksum verification failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for mockhouse")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// loadProjectConfig loads .env into the environment, then mockhouse.yaml
// from the working directory. A missing config file yields defaults.
func loadProjectConfig() (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg = &config.ProjectConfig{}
		} else {
			return nil, err
		}
	}

	// Environment overrides, set directly or via .env.
	if v := os.Getenv("MOCKHOUSE_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("MOCKHOUSE_COLOR"); v != "" {
		cfg.Output.Color = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// wheelArgs expands command arguments into wheel paths: a directory
// argument is scanned for wheels, anything else is taken as a wheel path.
func wheelArgs(args []string, scan func(string) ([]string, error)) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, err := scan(arg)
			if err != nil {
				return nil, err
			}
			if len(found) == 0 {
				return nil, fmt.Errorf("%w: no wheel files in %s", mockhouse.ErrInvalidConfig, arg)
			}
			paths = append(paths, found...)
			continue
		}
		paths = append(paths, arg)
	}
	return paths, nil
}
