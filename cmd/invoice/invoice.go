package invoice

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/togtokh-dev/cloud-ev/cloudev"
	"github.com/togtokh-dev/cloud-ev/cmd/root"
)

var (
	sessionID  string
	invoiceID  string
	paidAmount float64
	traID      string
)

var InvoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Settle session invoices",
}

var invoicePayCmd = &cobra.Command{
	Use:   "pay",
	Short: "Mark a session invoice as paid",
	Long: `Report a payment for a session invoice. Paying twice is a duplicate charge
at the business level; the client does not deduplicate.`,
	Example: `  cloud-ev invoice pay \
    --session-id 9f7c7504-4c0f-4098-a33e-ba1b3b7bf25c \
    --invoice-id INV-20251017-0001 \
    --paid-amount 12300 \
    --tra-id TRX-987654321`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("cloud-ev client not initialized")
		}

		res := client.Invoice.Pay(cloudev.InvoicePayParams{
			SessionID:  sessionID,
			InvoiceID:  invoiceID,
			PaidAmount: paidAmount,
			TraID:      traID,
		})
		if !res.Success {
			return fmt.Errorf("failed to pay invoice: %s", res.Message)
		}

		fmt.Printf("✅ Invoice paid: %s\n", res.Data.ID)
		return nil
	},
}

func init() {
	invoicePayCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	invoicePayCmd.Flags().StringVar(&invoiceID, "invoice-id", "", "Invoice ID (required)")
	invoicePayCmd.Flags().Float64Var(&paidAmount, "paid-amount", 0, "Paid amount (required)")
	invoicePayCmd.Flags().StringVar(&traID, "tra-id", "", "Payment provider transaction ID (required)")

	invoicePayCmd.MarkFlagRequired("session-id")
	invoicePayCmd.MarkFlagRequired("invoice-id")
	invoicePayCmd.MarkFlagRequired("paid-amount")
	invoicePayCmd.MarkFlagRequired("tra-id")

	InvoiceCmd.AddCommand(invoicePayCmd)
	root.RootCmd.AddCommand(InvoiceCmd)
}
