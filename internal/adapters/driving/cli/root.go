// Package cli implements the cobra command surface of docdex.
package cli

import (
	"github.com/spf13/cobra"

	cachefile "github.com/custodia-labs/docdex-cli/internal/adapters/driven/cache/file"
	configfile "github.com/custodia-labs/docdex-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/docsets"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/index"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/render"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/scan"
	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docdex-cli/internal/core/services"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

var version = "0.3.0"

var (
	verbose bool

	// Services are wired on first run; tests inject mocks instead.
	searchService driving.SearchService
	docsetService driving.DocsetService

	// maxWidth caps the detected terminal width, from settings.
	maxWidth = 80
)

var rootCmd = &cobra.Command{
	Use:   "docdex",
	Short: "Search DevDocs docsets from the terminal",
	Long: `docdex downloads DevDocs-compatible docsets and searches them locally,
by page name or by full page content, without leaving the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if searchService != nil && docsetService != nil {
			return nil
		}
		return initServices(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "print diagnostic messages")
}

// initServices builds the production adapter graph.
func initServices(cmd *cobra.Command) error {
	programDir, err := configfile.ProgramDir()
	if err != nil {
		return err
	}
	settings, err := configfile.LoadSettings(programDir)
	if err != nil {
		return err
	}
	maxWidth = settings.MaxWidth

	store := docsets.NewStore(programDir)
	registry := docsets.NewRegistry(programDir)
	client := docsets.NewClient(settings.RegistryURL, settings.DownloadsURL)
	catalog := index.NewCatalog()
	cache := cachefile.New(programDir)
	renderer := render.New(cmd.OutOrStdout())

	searchService = services.NewSearchService(
		store,
		scan.NewFilenameSearcher(catalog),
		scan.NewContentSearcher(domain.PageExtension),
		cache,
		renderer,
	)
	docsetService = services.NewDocsetService(registry, client, store)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
