package price

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/togtokh-dev/cloud-ev/cloudev"
	"github.com/togtokh-dev/cloud-ev/cmd/root"
)

var (
	connectorID string
	amount      float64
	kwh         float64
)

var PriceCmd = &cobra.Command{
	Use:   "price",
	Short: "Quote the price of a charging session",
	Long: `Ask the server what a session on a connector would cost. Quote either by
amount of money or by energy; leave the other at zero.`,
	Example: `  # What do 16.3 kWh cost on this connector?
  cloud-ev price --connector-id 8daa0f30-97d4-4ac3-85e3-0a65915d3828 --kwh 16.3

  # How much energy do I get for 10000?
  cloud-ev price --connector-id 8daa0f30-97d4-4ac3-85e3-0a65915d3828 --amount 10000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("cloud-ev client not initialized")
		}

		res := client.Info.Price(cloudev.PriceParams{
			Amount:      amount,
			KWh:         kwh,
			ConnectorID: connectorID,
		})
		if !res.Success {
			return fmt.Errorf("failed to quote price: %s", res.Message)
		}

		fmt.Printf("Amount: %.2f\n", res.Data.Amount)
		fmt.Printf("Energy: %.2f kWh\n", res.Data.KWh)
		fmt.Printf("Time:   %.0f min\n", res.Data.Time)
		return nil
	},
}

func init() {
	PriceCmd.Flags().StringVar(&connectorID, "connector-id", "", "Connector ID (required)")
	PriceCmd.Flags().Float64Var(&amount, "amount", 0, "Amount of money to quote for")
	PriceCmd.Flags().Float64Var(&kwh, "kwh", 0, "Energy in kWh to quote for")

	PriceCmd.MarkFlagRequired("connector-id")

	root.RootCmd.AddCommand(PriceCmd)
}
