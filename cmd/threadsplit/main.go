// threadsplit - split long text into numbered social media threads
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shivavenkatesh/threadsplit/internal/config"
	"github.com/shivavenkatesh/threadsplit/internal/logger"
)

var (
	// Version is set at build time
	Version = "dev"

	// Global flags
	envFile  string
	logLevel string
	logJSON  bool
	verbose  bool

	// Loaded in PersistentPreRunE
	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "threadsplit",
	Short: "Split long text into a numbered thread",
	Long: `threadsplit turns long-form text into a thread of segments that each fit
within 280 characters, numbered like "3/12".

Words are never broken up. A word too long to fit on its own is kept whole and
reported as a warning instead of failing.

Examples:
  # Split text given on the command line
  threadsplit split "Some long thought that needs to become a thread..."

  # Split a file and show boxes for each tweet
  threadsplit split --file essay.txt --render

  # Copy the exported thread to the clipboard
  cat essay.txt | threadsplit export --copy

  # Dry-run posting the thread as a reply chain
  threadsplit post --file essay.txt --delay 1s

  # Serve the HTTP API or MCP tools
  threadsplit serve
  threadsplit mcp`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			loaded.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-json") {
			loaded.Log.JSON = logJSON
		}
		if verbose {
			loaded.Log.Level = "debug"
		}
		cfg = loaded

		logger.SetupLogger(cfg.Log.Level, cfg.Log.JSON)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file with THREADSPLIT_* settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}
