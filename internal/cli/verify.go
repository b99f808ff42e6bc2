package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mockhouse/mockhouse/internal/logging"
	"github.com/mockhouse/mockhouse/internal/tui"
	"github.com/mockhouse/mockhouse/internal/wheel"
	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <wheel|dir>...",
	Short: "Verify RECORD checksums",
	Long: `Verify each wheel's contents against its RECORD manifest.

Every archive entry's sha256 digest and size are recomputed and compared to
the recorded values, and presence is checked in both directions: entries
missing from the manifest and manifest rows missing from the archive are
both reported.

Examples:
  mockhouse verify demo-1.0-py3-none-any.whl
  mockhouse verify ./dist`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

// runVerify checks RECORD consistency for each wheel argument
func runVerify(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	paths, err := wheelArgs(args, wheel.ScanDir)
	if err != nil {
		return err
	}

	color := tui.UseColor(tui.ColorAuto)
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range paths {
		logger.Verbose("verifying %s", path)

		mismatches, err := wheel.VerifyRecord(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if len(mismatches) == 0 {
			fmt.Fprintf(out, "%s %s\n", statusSymbol(true, color), path)
			continue
		}

		failed++
		fmt.Fprintf(out, "%s %s\n", statusSymbol(false, color), path)
		for _, m := range mismatches {
			fmt.Fprintf(out, "  %s %s: %s\n", tui.SymbolBullet, m.Path, m.Reason)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d wheel(s) failed verification", mockhouse.ErrVerifyFailed, failed)
	}
	return nil
}
