package internal

import (
	"fmt"

	"github.com/goplus/apkver/pkgs/apk"
	"github.com/spf13/cobra"
)

var validateQuiet bool

var validateCmd = &cobra.Command{
	Use:   "validate VERSION...",
	Short: "Check that versions are well formed",
	Long:  `Validate prints every malformed version and fails if there is any.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Do not print invalid versions")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	invalid := 0
	for _, v := range args {
		if apk.Validate(v) {
			logger.Debug("valid version", "version", v)
			continue
		}
		invalid++
		if !validateQuiet {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d versions are invalid", invalid, len(args))
	}
	return nil
}
