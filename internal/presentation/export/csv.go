package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/bibbank/cdbsim/internal/application/dto"
)

// csvHeader fixes the column order of the delimited output: month index,
// withdrawal date, total invested, gross balance, gross profit, tax amount,
// net balance.
var csvHeader = []string{
	"month",
	"withdrawal_date",
	"total_invested",
	"gross_balance",
	"gross_profit",
	"tax_amount",
	"net_balance",
}

// WriteCSV serializes the snapshots as CSV with 2-decimal monetary fields
// and ISO 8601 withdrawal dates.
func WriteCSV(w io.Writer, snapshots []dto.SnapshotDTO) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, s := range snapshots {
		record := []string{
			strconv.Itoa(s.Month),
			s.WithdrawalDate.Format("2006-01-02"),
			s.TotalInvested.StringFixed(2),
			s.GrossBalance.StringFixed(2),
			s.GrossProfit.StringFixed(2),
			s.TaxAmount.StringFixed(2),
			s.NetBalance.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", s.Month, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
