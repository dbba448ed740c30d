package main

import (
	"github.com/spf13/cobra"

	mockfill "github.com/goliatone/go-mockfill"
	"github.com/goliatone/go-mockfill/pkg/catalog"
	"github.com/goliatone/go-mockfill/pkg/source"
)

var indexURLs []string

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "List the content lists offered by the configured indexes",
	RunE:  runLists,
}

func init() {
	listsCmd.Flags().StringArrayVar(&indexURLs, "index", nil, "list index URL or path (repeatable; defaults to the configured indexes)")
}

func runLists(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	printCatalog(cmd.OutOrStdout(), cat)
	return nil
}

func loaderOptions() []source.LoaderOption {
	return []source.LoaderOption{
		source.WithHTTPClient(appConfig.HTTP.Client()),
		source.WithMaxBytes(appConfig.HTTP.MaxBytes),
	}
}

// loadCatalog fetches the configured indexes and prepends the built-in
// pseudo lists.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	urls := indexURLs
	if len(urls) == 0 {
		urls = appConfig.IndexURLs
	}

	fetched, err := catalog.Fetch(commandContext(cmd), mockfill.NewFetcher(loaderOptions()...), urls, logger)
	if err != nil {
		return nil, err
	}

	cat := catalog.New(catalog.Defaults())
	for _, g := range fetched.Groups() {
		cat.Add(g)
	}
	for _, f := range fetched.Failures() {
		cat.RecordFailure(f.IndexURL, f.Err)
	}
	return cat, nil
}
