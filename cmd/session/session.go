package session

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/togtokh-dev/cloud-ev/cloudev"
	"github.com/togtokh-dev/cloud-ev/cmd/root"
)

var (
	connectorID string
	stopKW      float64
	idTag       string
)

var SessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start, inspect and stop charging sessions",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a charging session on a connector",
	Long: `Start a charging session. Starting twice creates two sessions; keep the
returned session id for info/stop/invoice calls.`,
	Example: `  # Start charging
  cloud-ev session start --connector-id 8daa0f30-97d4-4ac3-85e3-0a65915d3828

  # Start charging and stop after 30 kWh
  cloud-ev session start --connector-id 8daa0f30-97d4-4ac3-85e3-0a65915d3828 --stop-kw 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("cloud-ev client not initialized")
		}

		params := cloudev.SessionStartParams{ConnectorID: connectorID}
		if cmd.Flags().Changed("stop-kw") {
			params.StopKW = &stopKW
		}
		if idTag != "" {
			params.IDTag = &idTag
		}

		res := client.Session.Start(params)
		if !res.Success {
			return fmt.Errorf("failed to start session: %s", res.Message)
		}

		fmt.Printf("✅ Session started: %s\n", res.Data.ID)
		printSession(res.Data)
		return nil
	},
}

var sessionInfoCmd = &cobra.Command{
	Use:   "info <session-id>",
	Short: "Show the current state of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("cloud-ev client not initialized")
		}

		res := client.Session.Info(args[0])
		if !res.Success {
			return fmt.Errorf("failed to get session: %s", res.Message)
		}

		printSession(res.Data)
		return nil
	},
}

var sessionStopCmd = &cobra.Command{
	Use:   "stop <session-id>",
	Short: "Stop a charging session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("cloud-ev client not initialized")
		}

		res := client.Session.Stop(args[0])
		if !res.Success {
			return fmt.Errorf("failed to stop session: %s", res.Message)
		}

		fmt.Printf("✅ Stop requested\n")
		printSession(res.Data)
		return nil
	},
}

func init() {
	sessionStartCmd.Flags().StringVar(&connectorID, "connector-id", "", "Connector ID (required)")
	sessionStartCmd.Flags().Float64Var(&stopKW, "stop-kw", 0, "Stop automatically after this much energy (kWh)")
	sessionStartCmd.Flags().StringVar(&idTag, "id-tag", "", "RFID tag identifier")
	sessionStartCmd.MarkFlagRequired("connector-id")

	SessionCmd.AddCommand(sessionStartCmd)
	SessionCmd.AddCommand(sessionInfoCmd)
	SessionCmd.AddCommand(sessionStopCmd)

	root.RootCmd.AddCommand(SessionCmd)
}

func orDash(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

func orDashStr(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func printSession(s cloudev.Session) {
	rows := [][]string{
		{"ID", s.ID},
		{"Status", string(s.Status)},
		{"Park", fmt.Sprintf("%s (%s)", s.Location.ParkName, s.Location.ParkID)},
		{"Station", fmt.Sprintf("%s (%s)", s.Location.StationName, s.Location.StationID)},
		{"Connector", fmt.Sprintf("#%d %s", s.Location.ConnectorNo, s.Location.ConnectorID)},
		{"Started", orDashStr(s.StartedAt)},
		{"Stopped", orDashStr(s.StoppedAt)},
		{"Energy", orDash(s.TotalKWh, "%.2f kWh")},
		{"Duration", orDash(s.TotalMinutes, "%.0f min")},
		{"Amount", orDash(s.TotalAmount, "%.2f")},
	}
	if s.Invoice != nil {
		rows = append(rows, []string{"Invoice", fmt.Sprintf("%s · %s · %.2f", s.Invoice.InvoiceID, s.Invoice.PaymentMethod, s.Invoice.Amount)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			baseStyle := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
			if col == 0 {
				return baseStyle.Foreground(lipgloss.Color("241"))
			}
			return baseStyle.Bold(true)
		}).
		Rows(rows...)

	fmt.Println(t)
}
