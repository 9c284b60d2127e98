package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pipefold/hostprobe/internal/export"
	"github.com/pipefold/hostprobe/internal/hostapp"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the application detection catalog",
	Long: `List every application hostprobe can detect, in registry order.

The order matters: the probe sweep returns the first matching application.
Use --json for a machine-readable catalog, e.g.:

  hostprobe list --json | jq '.applications[].id'`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	reg, _, err := buildRegistry()
	if err != nil {
		return err
	}
	providers := hostapp.DefaultVersionProviders()

	if jsonOut {
		return export.WriteJSON(os.Stdout, export.Catalog(reg, providers))
	}

	for _, d := range reg.All() {
		aliases := ""
		if len(d.ExecutableAliases) > 0 {
			aliases = "exe: " + strings.Join(d.ExecutableAliases, ", ")
		}
		fmt.Printf("  %-20s %-22s %s\n", d.ID, d.DisplayName(), aliases)
	}
	return nil
}
