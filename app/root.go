// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-media-admin",
	Short: "GoMediaAdmin is a web-based management service for media content",
	Long: `GoMediaAdmin is a web-based management service for media content
that serves categories, media items, sliders and site configuration from a
relational or REST backend, and issues signed upload grants.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
