package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

var fetchForce bool

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the registry of available docsets",
	Long: `Downloads the registry listing every docset the mirror provides.
A registry younger than a week is not re-downloaded unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVarP(&fetchForce, "force", "f", false, "update even if the registry is recent")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	err := docsetService.Fetch(context.Background(), fetchForce)
	if errors.Is(err, domain.ErrRegistryFresh) {
		cmd.Println("Docset registry is recent enough. Use --force to re-fetch.")
		return nil
	}
	if err != nil {
		return err
	}

	cmd.Println("Fetched the docset registry. See `docdex list` for available docsets.")
	return nil
}
