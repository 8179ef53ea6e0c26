package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

var (
	searchCaseInsensitive bool
	searchPrecise         bool
	searchWhole           bool
	searchIgnoreFragment  bool
	searchOpen            string
	searchColumns         string
)

var searchCmd = &cobra.Command{
	Use:   "search <docset> <query>...",
	Short: "List docset pages that match a query",
	Long: `Searches a downloaded docset by page name, or with --precise by full
page content. Results are numbered; pass a number back via --open to
display that page. Repeating a search with identical parameters is
served from the result cache.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchCaseInsensitive, "ignore-case", "i", false, "ignore character case")
	searchCmd.Flags().BoolVarP(&searchPrecise, "precise", "p", false, "look inside files (like `grep`)")
	searchCmd.Flags().BoolVarP(&searchWhole, "whole", "w", false, "search for the whole sentence")
	searchCmd.Flags().BoolVarP(&searchIgnoreFragment, "ignore-fragment", "f", false, "for --open: ignore the fragment and open the entire page")
	searchCmd.Flags().StringVarP(&searchOpen, "open", "o", "", "open n-th result")
	searchCmd.Flags().StringVarP(&searchColumns, "columns", "c", "", "for --open: make output N columns wide")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	docset := args[0]
	query := strings.Join(args[1:], " ")
	if searchWhole {
		// Wrapping the query in spaces is what makes whole-word mode a
		// different search, and must flow into the cache fingerprint.
		query = " " + query + " "
	}

	opts := domain.SearchOptions{
		Query:  query,
		Docset: docset,
		Flags: domain.SearchFlags{
			CaseInsensitive: searchCaseInsensitive,
			Precise:         searchPrecise,
			Whole:           searchWhole,
			IgnoreFragment:  searchIgnoreFragment,
		},
	}

	var warnings []string
	width, warnings := applyColumns(searchColumns, terminalWidth(), warnings)

	if searchOpen == "" {
		// Lets you notice when a flag swallowed part of your query.
		cmd.Printf("Searching for `%s`...\n", query)
	}

	ctx := context.Background()
	results, searchWarnings, err := searchService.Search(ctx, opts)
	if err != nil {
		return err
	}
	warnings = append(warnings, searchWarnings...)

	opened := false
	if searchOpen != "" {
		n, convErr := strconv.Atoi(searchOpen)
		switch {
		case convErr != nil:
			warnings = append(warnings, "`--open` requires a number.")
		default:
			sel, ok := results.Resolve(n, opts.Flags.IgnoreFragment)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("`--open %d` is out of bounds.", n))
			} else {
				if err := searchService.Open(ctx, docset, sel, width); err != nil {
					return err
				}
				opened = true
			}
		}
	}

	if !opened {
		printListing(cmd, docset, results, opts.Flags.Precise)
	}
	printWarnings(cmd, warnings)
	return nil
}
