package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mchris2/logsweep/pkg/cli"
	"github.com/mchris2/logsweep/pkg/pipeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the environment without archiving anything",
	Long: `Run the pre-run environment checks and print the outcome of each:
retention windows, source root readability, destination and log
directory writability, and filesystem compression reclaim capability.

Unlike "run", which stops at the first failed check, validate reports
every check so a broken environment can be fixed in one pass.

Examples:
  # Check the configured environment
  logsweep validate

  # Check a specific config file
  logsweep validate --config /etc/logsweep/config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	checks := pipeline.Preflight(cfg, nil)

	failed := 0
	for _, check := range checks {
		if check.OK() {
			fmt.Printf("  ok    %-35s %s\n", check.Name, check.Detail)
		} else {
			failed++
			fmt.Printf("  FAIL  %-35s %s: %v\n", check.Name, check.Detail, check.Err)
		}
	}

	fmt.Println()
	if failed > 0 {
		return cli.NewExitError(cli.ExitCodeValidation,
			fmt.Errorf("%d of %d checks failed", failed, len(checks)))
	}
	fmt.Printf("All %d checks passed.\n", len(checks))
	return nil
}
