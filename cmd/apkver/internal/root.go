package internal

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// logger is shared by all commands. It writes to the command's stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "apkver",
	Level:  log.WarnLevel,
})

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "apkver",
	Short: "apkver compares and validates package versions",
	Long: `apkver compares and validates package versions in the scheme used by
Alpine's package keeper: {digit}{.digit}...{letter}{_suf{#}}...{-r#}`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	logger.SetOutput(cmd.ErrOrStderr())
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}
