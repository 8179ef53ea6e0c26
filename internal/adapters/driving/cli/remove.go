package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <docset>...",
	Short: "Delete downloaded docsets",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	for _, name := range args {
		if err := docsetService.Remove(ctx, name); err != nil {
			return err
		}
		cmd.Printf("Removed `%s`.\n", name)
	}
	return nil
}
