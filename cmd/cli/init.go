package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/paramlint/paramlint/internal/config"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default .paramlint.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			target := filepath.Join(root, ".paramlint.yaml")
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("%s already exists", target)
			}

			if err := config.SaveProjectConfig(root, config.DefaultProjectConfig()); err != nil {
				return err
			}

			fmt.Printf("Wrote %s\n", target)
			return nil
		},
	}

	return cmd
}
