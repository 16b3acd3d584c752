package internal

import (
	"fmt"
	"slices"

	"github.com/goplus/apkver/pkgs/apk"
	"github.com/spf13/cobra"
)

var sortReverse bool

var sortCmd = &cobra.Command{
	Use:   "sort VERSION...",
	Short: "Sort versions from oldest to newest",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSort,
}

func init() {
	sortCmd.Flags().BoolVarP(&sortReverse, "reverse", "r", false, "Sort from newest to oldest")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	warnInvalid(args...)

	versions := sortVersions(args, sortReverse)
	for _, v := range versions {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

func sortVersions(in []string, reverse bool) []string {
	versions := slices.Clone(in)
	if reverse {
		slices.SortStableFunc(versions, func(a, b string) int {
			return apk.Compare(b, a)
		})
		return versions
	}
	apk.Sort(versions)
	return versions
}
