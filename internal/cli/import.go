package cli

import (
	"fmt"
	"os"

	"store-offers-api/internal/importer"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk create offers from a CSV file",
	Long: `Reads a CSV file with the header
  name,description,appIds,tags,imageUrl,time,properties,itemIds,prices
and creates one offer per row. List columns hold JSON arrays, time holds a JSON
object of Unix milliseconds. Rows that fail are reported and the import goes on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			return errors.New("please provide a CSV file (--file)")
		}

		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "open csv")
		}
		defer f.Close()

		rows, err := importer.ReadRows(f)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		results := importer.New(client, Log).Run(cmd.Context(), rows)
		for _, r := range results {
			if r.Failed() {
				fmt.Fprintf(cmd.ErrOrStderr(), "line %d\tFAILED\t%v\n", r.Line, r.Err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "line %d\t%s\t%s\n", r.Line, r.OfferID, r.Name)
		}

		if failed := importer.CountFailed(results); failed > 0 {
			return errors.Newf("%d of %d rows failed", failed, len(results))
		}
		Log.Infof("imported %d offers", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringP("file", "f", "", "CSV file to import")
}
