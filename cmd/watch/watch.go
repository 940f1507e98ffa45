package watch

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/go-co-op/gocron/v2"
	"github.com/spf13/cobra"

	"github.com/togtokh-dev/cloud-ev/cloudev"
	"github.com/togtokh-dev/cloud-ev/cmd/root"
)

var (
	interval int
	once     bool
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			MarginBottom(1)

	chargingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			MarginTop(1)
)

var WatchCmd = &cobra.Command{
	Use:   "watch <session-id>",
	Short: "Watch live telemetry of a charging session",
	Long: `Poll the session info endpoint on a fixed interval and display the
session's status, totals and telemetry snapshot. Watching is read-only.`,
	Args: cobra.ExactArgs(1),
	Example: `  # Watch a session, updating every 5 seconds
  cloud-ev watch 9f7c7504-4c0f-4098-a33e-ba1b3b7bf25c

  # Show the session once and exit
  cloud-ev watch 9f7c7504-4c0f-4098-a33e-ba1b3b7bf25c --once

  # Update every 10 seconds
  cloud-ev watch 9f7c7504-4c0f-4098-a33e-ba1b3b7bf25c --interval 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("cloud-ev client not initialized")
		}
		sessionID := args[0]

		if once {
			return showSession(client, sessionID)
		}

		s, err := gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %w", err)
		}
		defer func() { _ = s.Shutdown() }()

		_, err = s.NewJob(
			gocron.DurationJob(time.Duration(interval)*time.Second),
			gocron.NewTask(func() {
				if err := showSession(client, sessionID); err != nil {
					root.GetLogger().Errorf("Watch update failed: %v", err)
				}
			}),
			gocron.WithStartAt(gocron.WithStartImmediately()),
		)
		if err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}

		s.Start()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		return nil
	},
}

func init() {
	WatchCmd.Flags().IntVar(&interval, "interval", 5, "Update interval in seconds")
	WatchCmd.Flags().BoolVar(&once, "once", false, "Show the session once and exit")

	root.RootCmd.AddCommand(WatchCmd)
}

func showSession(client *cloudev.Client, sessionID string) error {
	res := client.Session.Info(sessionID)
	if !res.Success {
		return fmt.Errorf("failed to get session: %s", res.Message)
	}

	printSessionView(res.Data)
	return nil
}

func printSessionView(s cloudev.Session) {
	if !once {
		fmt.Print("\033[H\033[2J")
	}

	fmt.Println(titleStyle.Render("LIVE SESSION DATA"))

	rows := [][]string{
		{"Session", s.ID},
		{"Status", styledStatus(s.Status)},
		{"Connector", fmt.Sprintf("%s #%d", s.Location.StationName, s.Location.ConnectorNo)},
		{"Energy", floatOrDash(s.TotalKWh, "%.2f kWh")},
		{"Duration", floatOrDash(s.TotalMinutes, "%.0f min")},
		{"Amount", floatOrDash(s.TotalAmount, "%.2f")},
		{"Power", floatOrDash(s.Info.Power, "%.2f kW")},
		{"Voltage", floatOrDash(s.Info.Voltage, "%.1f V")},
		{"Current", floatOrDash(s.Info.Current, "%.1f A")},
		{"SoC", floatOrDash(s.Info.SoC, "%.0f%%")},
		{"Updated", time.Now().Format("15:04:05")},
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

	if !once {
		fmt.Println(hintStyle.Render("Press Ctrl+C to exit"))
	}
}

func floatOrDash(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

func styledStatus(status cloudev.SessionStatus) string {
	switch status {
	case cloudev.SessionStatusRunning:
		return chargingStyle.Render("⚡ running")
	case cloudev.SessionStatusCreated, cloudev.SessionStatusStopping:
		return warningStyle.Render("↻ " + string(status))
	case cloudev.SessionStatusFailed:
		return errorStyle.Render("✗ failed")
	default:
		return string(status)
	}
}
