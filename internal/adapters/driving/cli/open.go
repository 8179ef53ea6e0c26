package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

var openColumns string

var openCmd = &cobra.Command{
	Use:   "open <docset> <page>",
	Short: "Display a docset page",
	Long: `Prints a page from a downloaded docset. Pages can be located with
the search command; a '#' suffix addresses a section within the page.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringVarP(&openColumns, "columns", "c", "", "make output N columns wide")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	docset := args[0]
	page := strings.Join(args[1:], " ")
	item, fragment := domain.SplitFragment(page)

	var warnings []string
	width, warnings := applyColumns(openColumns, terminalWidth(), warnings)

	err := searchService.Open(context.Background(), docset, domain.Selection{Item: item, Fragment: fragment}, width)
	if err != nil {
		return err
	}

	printWarnings(cmd, warnings)
	return nil
}
