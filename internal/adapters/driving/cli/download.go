package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

var downloadForce bool

var downloadCmd = &cobra.Command{
	Use:   "download <docset>...",
	Short: "Download docsets",
	Long: `Downloads one or more docsets from the mirror and unpacks them for
local searching. Available docsets can be displayed using list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().BoolVarP(&downloadForce, "force", "f", false, "overwrite an already downloaded docset")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var warnings []string
	for _, name := range args {
		err := docsetService.Download(ctx, name, downloadForce)
		if errors.Is(err, domain.ErrAlreadyDownloaded) {
			warnings = append(warnings, fmt.Sprintf("Docset `%s` is already downloaded, use --force to overwrite.", name))
			continue
		}
		if err != nil {
			return err
		}
		cmd.Printf("Downloaded `%s`.\n", name)
	}

	printWarnings(cmd, warnings)
	return nil
}
