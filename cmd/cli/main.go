package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:     "paramlint",
		Short:   "paramlint - parameter count linting for JavaScript",
		Long:    `paramlint flags functions, methods, and constructors that declare more parameters than your project allows.`,
		Version: version,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cobra.OnInitialize(func() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if ok, _ := rootCmd.PersistentFlags().GetBool("verbose"); ok {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	})

	// Add subcommands
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(initCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
