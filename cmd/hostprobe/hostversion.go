package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipefold/hostprobe/internal/hostapp"
)

var hostVersionCmd = &cobra.Command{
	Use:   "host-version <id>",
	Short: "Print a host application's version, when it can be determined",
	Long: `Print the version of the given host application. Only a few hosts expose
a cheap version source; for the rest this reports that no provider exists.`,
	Args: cobra.ExactArgs(1),
	RunE: runHostVersion,
}

func runHostVersion(_ *cobra.Command, args []string) error {
	id := args[0]

	reg, _, err := buildRegistry()
	if err != nil {
		return err
	}
	if _, ok := reg.GetByID(id); !ok {
		return fmt.Errorf("unknown application id %q", id)
	}

	v, supported, err := hostapp.LookupVersion(hostapp.DefaultVersionProviders(), id)
	if err != nil {
		return fmt.Errorf("version lookup for %q: %w", id, err)
	}
	if !supported {
		fmt.Printf("No version provider for %q.\n", id)
		return nil
	}

	fmt.Println(v)
	return nil
}
