package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ivaneres/coffee/internal/filter"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search records across all beans",
	Long: `Search espresso records by equipment or by attributes of the bean they
were pulled from. At least one criterion is required; matching is a
case-insensitive substring test.`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

var searchCriteria filter.Criteria

func init() {
	searchCmd.Flags().StringVar(&searchCriteria.Machine, "machine", "", "match the machine name")
	searchCmd.Flags().StringVar(&searchCriteria.Grinder, "grinder", "", "match the grinder name")
	searchCmd.Flags().StringVar(&searchCriteria.BeanVariety, "variety", "", "match the bean variety")
	searchCmd.Flags().StringVar(&searchCriteria.BeanRoaster, "roaster", "", "match the bean roaster")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	if searchCriteria.Empty() {
		return fmt.Errorf("at least one of --machine, --grinder, --variety, --roaster is required")
	}

	records, err := app.client.ListRecords(cmd.Context(), searchCriteria.Query())
	if err != nil {
		return err
	}
	beans, err := app.client.ListBeans(cmd.Context())
	if err != nil {
		return err
	}
	matched := filter.Records(records, filter.BeanLookup(beans), searchCriteria)

	if len(matched) == 0 {
		fmt.Println("No records match.")
		return nil
	}
	printRecords(matched)
	return nil
}
