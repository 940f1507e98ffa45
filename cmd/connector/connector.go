package connector

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/togtokh-dev/cloud-ev/cmd/root"
)

var ConnectorCmd = &cobra.Command{
	Use:   "connector <qr-value>",
	Short: "Look up a connector by its QR value",
	Long: `Resolve a scanned QR value to the connector, its station and its park.
The connector id shown here is what the price and session commands expect.`,
	Args: cobra.ExactArgs(1),
	Example: `  # Look up the connector behind a QR code
  cloud-ev connector "110A43120069=1"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("cloud-ev client not initialized")
		}

		res := client.Info.ConnectorByQR(args[0])
		if !res.Success {
			return fmt.Errorf("failed to look up connector: %s", res.Message)
		}

		lookup := res.Data
		fmt.Printf("Park:      %s (%s)\n", lookup.Park.Name, lookup.Park.ID)
		fmt.Printf("Station:   %s (%s)\n", lookup.Station.Name, lookup.Station.ID)
		fmt.Printf("Connector: #%d %s · %s %s · %.0f kW · %.0f/kWh\n",
			lookup.Connector.ConnectorID,
			lookup.Connector.ID,
			lookup.Connector.CurrentType,
			lookup.Connector.ConnectorType,
			lookup.Connector.PowerKW,
			lookup.Connector.KWPrice,
		)
		fmt.Printf("Status:    %s\n", lookup.Connector.Status)
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(ConnectorCmd)
}
