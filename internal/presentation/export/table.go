package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bibbank/cdbsim/internal/application/dto"
)

// WriteTable renders the month-by-month projection as an aligned text table
// followed by the final summary block.
func WriteTable(w io.Writer, result dto.SimulationResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "Month\tWithdrawal\tInvested\tGross\tProfit\tTax\tNet\t")
	for _, s := range result.Snapshots {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			s.Month,
			s.WithdrawalDate.Format("2006-01-02"),
			s.TotalInvested.StringFixed(2),
			s.GrossBalance.StringFixed(2),
			s.GrossProfit.StringFixed(2),
			s.TaxAmount.StringFixed(2),
			s.NetBalance.StringFixed(2),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sum := result.Summary
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Final summary (month %d)\n", len(result.Snapshots))
	fmt.Fprintf(w, "  Total invested:  %s\n", sum.TotalInvested.StringFixed(2))
	fmt.Fprintf(w, "  Gross balance:   %s\n", sum.GrossBalance.StringFixed(2))
	fmt.Fprintf(w, "  Gross profit:    %s\n", sum.GrossProfit.StringFixed(2))
	fmt.Fprintf(w, "  Withholding tax: %s\n", sum.TaxAmount.StringFixed(2))
	fmt.Fprintf(w, "  Net balance:     %s\n", sum.NetBalance.StringFixed(2))
	fmt.Fprintf(w, "  Monthly rate:    %s%%\n", sum.MonthlyRate.Mul(hundred).Round(4).String())

	return nil
}
