package park

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/togtokh-dev/cloud-ev/cloudev"
	"github.com/togtokh-dev/cloud-ev/cmd/root"
)

var ParkCmd = &cobra.Command{
	Use:   "park <park-id>",
	Short: "Show a park with its stations and connectors",
	Args:  cobra.ExactArgs(1),
	Example: `  # Show the full tree of one park
  cloud-ev park 29996bca-17bf-4694-b1d9-91a9ae5751ab`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("cloud-ev client not initialized")
		}

		res := client.Info.Park(args[0])
		if !res.Success {
			return fmt.Errorf("failed to get park: %s", res.Message)
		}

		printParkDetail(res.Data)
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(ParkCmd)
}

func printParkDetail(p cloudev.ParkDetail) {
	fmt.Printf("%s (%s)\n", p.Name, p.ID)
	fmt.Printf("%s · %.6f,%.6f · %s\n", p.LocationText, p.GeoLat, p.GeoLng, p.ContactPhoneNumber)

	var rows [][]string
	for _, s := range p.Stations {
		for _, conn := range s.Connectors {
			rows = append(rows, []string{
				s.Name,
				fmt.Sprintf("%d", conn.ConnectorID),
				string(conn.ConnectorType),
				string(conn.Format),
				string(conn.CurrentType),
				fmt.Sprintf("%.0f kW", conn.PowerKW),
				fmt.Sprintf("%.0f", conn.KWPrice),
				string(conn.Status),
			})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		Headers("STATION", "CONN", "PLUG TYPE", "FORMAT", "AC/DC", "POWER", "PRICE/kWh", "STATUS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return lipgloss.NewStyle().Bold(true).PaddingLeft(1).PaddingRight(1)
			}
			baseStyle := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
			if col > 0 {
				return baseStyle.AlignHorizontal(lipgloss.Center)
			}
			return baseStyle
		}).
		Rows(rows...)

	fmt.Println(t)
}
