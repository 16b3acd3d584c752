package internal

import (
	"fmt"

	"github.com/goplus/apkver/pkgs/apk"
	"github.com/goplus/apkver/pkgs/mod/module"
	"github.com/goplus/apkver/pkgs/mod/versions"
	"github.com/spf13/cobra"
)

var latestCmd = &cobra.Command{
	Use:   "latest INDEX",
	Short: "Print the newest version of each package in an index file",
	Long: `Latest reads a JSON or YAML index file and prints id@version for the newest
version of every package. Entries with an invalid version are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runLatest,
}

func init() {
	rootCmd.AddCommand(latestCmd)
}

func runLatest(cmd *cobra.Command, args []string) error {
	idx, err := versions.Parse(args[0], nil)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	for _, m := range latest(idx) {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
	return nil
}

// latest returns the newest valid version of every package in idx.
func latest(idx *versions.Index) []module.Version {
	valid := make([]module.Version, 0, len(idx.Packages))
	for _, p := range idx.Packages {
		if !apk.Validate(p.Version) {
			logger.Warn("skipping invalid version", "package", p.ID, "version", p.Version)
			continue
		}
		valid = append(valid, p)
	}
	return module.Latest(apk.Compare, valid)
}
