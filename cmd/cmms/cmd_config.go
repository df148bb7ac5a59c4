package main

import (
	"fmt"
	"os"

	"cmms/internal/config"

	"github.com/spf13/cobra"
)

var forceInit bool

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()

	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
	return nil
}
