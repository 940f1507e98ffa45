package parks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/togtokh-dev/cloud-ev/cloudev"
	"github.com/togtokh-dev/cloud-ev/cmd/root"
)

var (
	nested bool
	near   string
)

var ParksCmd = &cobra.Command{
	Use:   "parks",
	Short: "List charging parks",
	Long: `List the charging parks of the network.

By default the flat listing is shown. With --nested every park is expanded
into its stations and connectors. With --near the flat listing is sorted by
distance from the given coordinates.`,
	Example: `  # List all parks
  cloud-ev parks

  # List parks with their stations and connectors
  cloud-ev parks --nested

  # List parks nearest to a location first
  cloud-ev parks --near 47.918,106.917`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("cloud-ev client not initialized")
		}

		if nested {
			res := client.Info.ParkDetails()
			if !res.Success {
				return fmt.Errorf("failed to list parks: %s", res.Message)
			}
			printParkDetails(res.Data)
			return nil
		}

		res := client.Info.Parks()
		if !res.Success {
			return fmt.Errorf("failed to list parks: %s", res.Message)
		}

		if len(res.Data) == 0 {
			fmt.Println("No parks found.")
			return nil
		}

		if near != "" {
			lat, lng, err := parseNear(near)
			if err != nil {
				return err
			}
			printParksWithDistance(cloudev.SortParksByDistance(res.Data, lat, lng), lat, lng)
			return nil
		}

		printParks(res.Data)
		return nil
	},
}

func init() {
	ParksCmd.Flags().BoolVar(&nested, "nested", false, "Include stations and connectors")
	ParksCmd.Flags().StringVar(&near, "near", "", "Sort by distance from 'lat,lng'")

	root.RootCmd.AddCommand(ParksCmd)
}

func parseNear(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid --near value %q, expected 'lat,lng'", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %s", parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %s", parts[1])
	}
	return lat, lng, nil
}

func activeMark(active bool) string {
	if active {
		return "✅"
	}
	return "❌"
}

func newParkTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return lipgloss.NewStyle().Bold(true).PaddingLeft(1).PaddingRight(1)
			}
			baseStyle := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
			if col > 1 {
				return baseStyle.AlignHorizontal(lipgloss.Center)
			}
			return baseStyle
		})
}

func printParks(parks []cloudev.Park) {
	var rows [][]string
	for _, p := range parks {
		rows = append(rows, []string{p.ID, p.Name, p.LocationText, activeMark(p.Active)})
	}
	t := newParkTable("ID", "NAME", "LOCATION", "ACTIVE").Rows(rows...)
	fmt.Println(t)
}

func printParksWithDistance(parks []cloudev.Park, lat, lng float64) {
	var rows [][]string
	for _, p := range parks {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.LocationText,
			fmt.Sprintf("%.1f km", cloudev.Distance(lat, lng, p)/1000),
			activeMark(p.Active),
		})
	}
	t := newParkTable("ID", "NAME", "LOCATION", "DISTANCE", "ACTIVE").Rows(rows...)
	fmt.Println(t)
}

func printParkDetails(parks []cloudev.ParkDetail) {
	var rows [][]string
	for _, p := range parks {
		for _, s := range p.Stations {
			if len(s.Connectors) == 0 {
				rows = append(rows, []string{p.Name, s.Name, "-", "-", "-", string(s.Status)})
				continue
			}
			for _, conn := range s.Connectors {
				rows = append(rows, []string{
					p.Name,
					s.Name,
					fmt.Sprintf("%d", conn.ConnectorID),
					string(conn.ConnectorType),
					fmt.Sprintf("%.0f kW", conn.PowerKW),
					string(conn.Status),
				})
			}
		}
	}
	t := newParkTable("PARK", "STATION", "CONN", "PLUG TYPE", "POWER", "STATUS").Rows(rows...)
	fmt.Println(t)
}
