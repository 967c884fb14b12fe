package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rgbctl",
	Short: "Configure colour profiles for an RGB LED controller",
	Long: `rgbctl edits named colour profiles for an RGB LED strip controller.

Each profile holds a colour, a lighting mode (static, rainbow, fade or
strobe), a step interval and the output pins. Profiles are edited in an
interactive terminal UI with a hex field and per-channel gradient sliders,
and can be inspected or converted from the command line.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. an invalid hex value)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "rgbctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newColorCmd())
	rootCmd.AddCommand(newFrameCmd())
}
