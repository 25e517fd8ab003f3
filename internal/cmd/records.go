package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/util"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List and manage espresso records",
}

var recordsListCmd = &cobra.Command{
	Use:   "list <bean-id>",
	Short: "List the records for one bean",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsList,
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsDelete,
}

func init() {
	recordsCmd.AddCommand(recordsListCmd, recordsDeleteCmd)
	rootCmd.AddCommand(recordsCmd)
}

func runRecordsList(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	beanID, err := parseID(args[0])
	if err != nil {
		return err
	}
	records, err := app.client.ListRecords(cmd.Context(), &api.RecordQuery{BeanID: beanID})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No records for this bean.")
		return nil
	}

	printRecords(records)
	return nil
}

func runRecordsDelete(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := app.client.DeleteRecord(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted record %d\n", id)
	return nil
}

// notesColumnWidth bounds the NOTES column so long tasting notes don't blow
// out the table.
const notesColumnWidth = 32

func printRecords(records []api.EspressoRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBEAN\tMACHINE\tGRINDER\tDOSE\tTIME\tYIELD\tRATING\tNOTES")
	for _, rec := range records {
		notes := "-"
		if rec.Notes != nil && *rec.Notes != "" {
			notes = util.TruncateString(*rec.Notes, notesColumnWidth)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.ID, rec.BeanID, rec.Machine, rec.Grinder,
			formatMeasure(rec.Dose), formatMeasure(rec.ExtractionTime),
			formatMeasure(rec.YieldAmount), formatRating(rec.Rating), notes)
	}
	_ = w.Flush()
}
