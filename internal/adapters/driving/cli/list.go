package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var listLocal bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show available docsets",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listLocal, "local", "l", false, "only show downloaded docsets")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	entries, err := docsetService.List(context.Background(), listLocal)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		if listLocal {
			cmd.Println("No docsets downloaded yet. See `docdex download`.")
		} else {
			cmd.Println("The registry is empty.")
		}
		return nil
	}

	for _, entry := range entries {
		cmd.Printf("%s  %s\n", entry.Slug, styles.Fragment.Render("("+entry.Name+")"))
	}
	return nil
}
