package internal

import (
	"fmt"

	"github.com/goplus/apkver/pkgs/apk"
	"github.com/spf13/cobra"
)

var compareTest bool

var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Compare two versions",
	Long: `Compare prints -1 if A is older than B, 0 if they are equal and 1 if A is newer.
With --test it prints <, = or > instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVarP(&compareTest, "test", "t", false, "Print <, = or > instead of a number")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, b := args[0], args[1]
	warnInvalid(a, b)

	if compareTest {
		fmt.Fprintln(cmd.OutOrStdout(), apk.Test(a, b))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), apk.Compare(a, b))
	return nil
}

// warnInvalid logs a warning for every malformed version. Such versions are
// still ordered, but the order carries no meaning.
func warnInvalid(versions ...string) {
	for _, v := range versions {
		if !apk.Validate(v) {
			logger.Warn("invalid version, ordering is not meaningful", "version", v)
		}
	}
}
