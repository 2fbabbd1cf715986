package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "Inspect store offers",
}

var offersGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print offers by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, _ := cmd.Flags().GetStringSlice("id")
		asJSON, _ := cmd.Flags().GetBool("json")
		if len(ids) == 0 {
			return errors.New("please provide at least one offer id (--id)")
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		body, err := client.GetOffers(cmd.Context(), ids)
		if err != nil {
			return err
		}

		if asJSON {
			fmt.Fprintln(cmd.OutOrStdout(), string(body))
			return nil
		}
		offers := gjson.ParseBytes(body).Array()
		if len(offers) == 0 {
			Log.Warn("no offers found")
		}
		for _, o := range offers {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\titems=%s\tprices=%s\ttags=%s\n",
				o.Get("id").Str,
				o.Get("name").Str,
				o.Get("itemIds").Raw,
				o.Get("prices").Raw,
				o.Get("tags").Raw,
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(offersCmd)
	offersCmd.AddCommand(offersGetCmd)
	offersGetCmd.Flags().StringSlice("id", nil, "Offer id, repeat or comma separate for several")
	offersGetCmd.Flags().Bool("json", false, "Print the raw JSON response")
}
