package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/batsched/batsched/config"
	"github.com/batsched/batsched/core/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog related commands",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the preflight validation pass over the catalog",
	RunE:  runCatalogValidate,
}

var catalogLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List catalog courses and section counts",
	RunE:  runCatalogLs,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogLsCmd)
	rootCmd.AddCommand(catalogCmd)
}

func loadCatalog() (*catalog.Catalog, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return catalog.Load(cfg.CatalogPath)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "catalog valid: %d sections across %d courses\n", cat.Len(), len(cat.Courses()))
	return nil
}

func runCatalogLs(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	for _, course := range cat.Courses() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d sections\n", course, len(cat.Sections(course)))
	}
	return nil
}
