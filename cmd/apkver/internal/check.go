package internal

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/goplus/apkver/pkgs/apk"
	"github.com/goplus/apkver/pkgs/mod/module"
	"github.com/goplus/apkver/pkgs/mod/versions"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var checkJobs int

var checkCmd = &cobra.Command{
	Use:   "check INDEX...",
	Short: "Validate every version listed in index files",
	Long: `Check reads JSON or YAML index files and prints every entry whose version is
malformed. It fails if any entry is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

var invalidColor = color.New(color.FgRed)

func init() {
	checkCmd.Flags().IntVarP(&checkJobs, "jobs", "j", 4, "Number of index files read in parallel")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	results, err := checkFiles(args, checkJobs)
	if err != nil {
		return err
	}

	invalid := 0
	for i, bad := range results {
		for _, m := range bad {
			invalidColor.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[i], m)
		}
		invalid += len(bad)
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid versions", invalid)
	}
	return nil
}

// checkFiles parses the index files concurrently and returns the invalid
// entries of each, in the order of files.
func checkFiles(files []string, jobs int) ([][]module.Version, error) {
	results := make([][]module.Version, len(files))

	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			idx, err := versions.Parse(file, nil)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}
			results[i] = idx.Invalid(apk.Validate)
			logger.Debug("checked index", "file", file, "packages", len(idx.Packages), "invalid", len(results[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
