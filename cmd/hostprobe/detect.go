package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipefold/hostprobe/internal/export"
)

func runDetect(_ *cobra.Command, _ []string) error {
	reg, override, err := buildRegistry()
	if err != nil {
		return err
	}

	res := newResolver(reg, override).Resolve()

	if jsonOut {
		return export.WriteJSON(os.Stdout, export.Detection(res))
	}

	if res.Descriptor == nil {
		fmt.Println("No host application detected.")
		return nil
	}

	fmt.Printf("%s (%s) [strategy: %s]\n",
		res.Descriptor.DisplayName(), res.Descriptor.ID, res.Strategy)
	return nil
}
