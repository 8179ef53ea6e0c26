package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// presenterStyles collects the lipgloss styles used by result listings.
type presenterStyles struct {
	Header   lipgloss.Style
	Number   lipgloss.Style
	Fragment lipgloss.Style
	Context  lipgloss.Style
	Ellipsis lipgloss.Style
	Warning  lipgloss.Style
}

var styles = presenterStyles{
	Header:   lipgloss.NewStyle().Bold(true),
	Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Fragment: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Context:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	Ellipsis: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

// printListing writes the numbered result listing: exact matches first
// under indices 1..E, then (in precise mode) vague matches under
// E+1..E+V.
func printListing(cmd *cobra.Command, docset string, results domain.ResultSet, precise bool) {
	if len(results.Exact) > 0 {
		cmd.Println(styles.Header.Render(fmt.Sprintf("Exact matches in `%s`:", docset)))
		printExactResults(cmd, results.Exact, 1)
	} else {
		cmd.Println(styles.Header.Render(fmt.Sprintf("No exact matches in `%s`.", docset)))
	}

	if !precise {
		return
	}

	if len(results.Vague) > 0 {
		cmd.Println(styles.Header.Render(fmt.Sprintf("Mentions in other files from `%s`:", docset)))
		printVagueResults(cmd, results.Vague, len(results.Exact)+1)
	} else {
		cmd.Println(styles.Header.Render(fmt.Sprintf("No mentions in other files from `%s`.", docset)))
	}
}

// printExactResults groups consecutive results sharing an item: the
// group head prints the item with its fragment marker, followers print
// an indented fragment marker only.
func printExactResults(cmd *cobra.Command, results []domain.ExactResult, startIndex int) {
	prevItem := ""
	for i, result := range results {
		number := styles.Number.Render(fmt.Sprintf("%4d", startIndex+i))
		switch {
		case result.Fragment == nil:
			cmd.Printf("%s  %s\n", number, result.Item)
		case result.Item == prevItem:
			cmd.Printf("      %s  %s\n", number, styles.Fragment.Render("#"+*result.Fragment))
		default:
			cmd.Printf("%s  %s%s\n", number, result.Item, styles.Fragment.Render(", #"+*result.Fragment))
		}
		prevItem = result.Item
	}
}

// printVagueResults prints each item followed by its context snippets
// in file-read order.
func printVagueResults(cmd *cobra.Command, results []domain.VagueResult, startIndex int) {
	for i, result := range results {
		cmd.Printf("%s  %s\n", styles.Number.Render(fmt.Sprintf("%4d", startIndex+i)), result.Item)
		for _, context := range result.Contexts {
			cmd.Printf("        %s%s%s\n",
				styles.Ellipsis.Render("..."),
				styles.Context.Render(context),
				styles.Ellipsis.Render("..."))
		}
	}
}

// printWarnings flushes accumulated warnings after the primary output
// so they do not obscure the listing.
func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, warning := range warnings {
		cmd.PrintErrln(styles.Warning.Render("warning: " + warning))
	}
}
