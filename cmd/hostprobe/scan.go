package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipefold/hostprobe/internal/export"
	"github.com/pipefold/hostprobe/internal/scan"
)

var scanConcurrency int

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Evaluate every application probe and report the results",
	Long: `Evaluate every application's environment probe and print a per-application
report. Unlike detection, which stops at the first match, scan shows all
applications whose markers are present — useful when diagnosing why
detection picked (or failed to pick) a host.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 4,
		"maximum probes evaluated at once")
}

func runScan(cmd *cobra.Command, _ []string) error {
	reg, _, err := buildRegistry()
	if err != nil {
		return err
	}

	report, err := scan.Run(cmd.Context(), reg, scanConcurrency)
	if err != nil {
		return err
	}

	if jsonOut {
		return export.WriteJSON(os.Stdout, report)
	}

	for _, s := range report.Statuses {
		marker := "  "
		label := "absent"
		if s.Matched {
			marker = "->"
			label = "present"
		}
		fmt.Printf("  %s %-20s %-22s [%s]\n", marker, s.ID, s.DisplayName, label)
	}
	fmt.Printf("\n%d of %d application environments present.\n",
		len(report.Matched()), len(report.Statuses))
	return nil
}
