// cdbsim — CDB IPCA+ monthly-contribution simulator
//
// CLI entrypoint using the cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bibbank/cdbsim/internal/application/dto"
	"github.com/bibbank/cdbsim/internal/application/usecase"
	"github.com/bibbank/cdbsim/internal/domain/model"
	"github.com/bibbank/cdbsim/internal/domain/service"
	"github.com/bibbank/cdbsim/internal/infrastructure/scenario"
	"github.com/bibbank/cdbsim/internal/presentation/export"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var hundred = decimal.NewFromInt(100)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cdbsim",
	Short: "CDB IPCA+ simulator with monthly contributions",
	Long: `cdbsim projects the month-by-month balance of a CDB IPCA+ investment
built from fixed monthly contributions. For every candidate withdrawal month
it compounds each contribution over its own holding period, applies the
regressive withholding tax table per contribution, and reports the gross
balance, tax owed, and net balance.`,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(simulateCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cdbsim %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
	},
}

// --- Simulate Command ---

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulation and print the month-by-month table",
	Long: `Run a simulation from flags or from a YAML scenario file. The table and
final summary go to stdout; --csv, --html and --pdf additionally write the
projection to files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := requestFromFlags(cmd)
		if err != nil {
			return err
		}

		uc := usecase.NewRunSimulation(service.NewValuationEngine())
		result, err := uc.Execute(context.Background(), req)
		if err != nil {
			return err
		}

		if err := export.WriteTable(os.Stdout, result); err != nil {
			return err
		}

		if path, _ := cmd.Flags().GetString("csv"); path != "" {
			if err := writeFile(path, func(f *os.File) error {
				return export.WriteCSV(f, result.Snapshots)
			}); err != nil {
				return err
			}
			fmt.Printf("\nCSV written to %s\n", path)
		}

		if path, _ := cmd.Flags().GetString("html"); path != "" {
			if err := writeFile(path, func(f *os.File) error {
				return export.WriteHTML(f, result)
			}); err != nil {
				return err
			}
			fmt.Printf("HTML report written to %s\n", path)
		}

		if path, _ := cmd.Flags().GetString("pdf"); path != "" {
			data, err := export.BuildPDF(result)
			if err != nil {
				return fmt.Errorf("build PDF report: %w", err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write PDF report: %w", err)
			}
			fmt.Printf("PDF report written to %s\n", path)
		}

		return nil
	},
}

func init() {
	simulateCmd.Flags().String("scenario", "", "YAML scenario file (overrides parameter flags)")
	simulateCmd.Flags().String("amount", "100.00", "monthly contribution")
	simulateCmd.Flags().String("rate", "12.0", "annual rate in percent (inflation index + spread)")
	simulateCmd.Flags().Int("years", 5, "horizon in years")
	simulateCmd.Flags().Int("months", 0, "horizon in months (overrides --years)")
	simulateCmd.Flags().String("timing", "begin", "contribution timing: begin or end of month")
	simulateCmd.Flags().String("start", "", "first contribution date (YYYY-MM-DD, default today)")
	simulateCmd.Flags().String("csv", "", "write the projection to a CSV file")
	simulateCmd.Flags().String("html", "", "write an HTML report with chart")
	simulateCmd.Flags().String("pdf", "", "write a PDF report")
}

func requestFromFlags(cmd *cobra.Command) (dto.SimulationRequest, error) {
	if path, _ := cmd.Flags().GetString("scenario"); path != "" {
		return scenario.Load(path)
	}

	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return dto.SimulationRequest{}, fmt.Errorf("invalid --amount: %w", err)
	}

	rateStr, _ := cmd.Flags().GetString("rate")
	ratePercent, err := decimal.NewFromString(rateStr)
	if err != nil {
		return dto.SimulationRequest{}, fmt.Errorf("invalid --rate: %w", err)
	}

	months, _ := cmd.Flags().GetInt("months")
	if months == 0 {
		years, _ := cmd.Flags().GetInt("years")
		months = years * 12
	}

	timing, err := parseTimingFlag(cmd)
	if err != nil {
		return dto.SimulationRequest{}, err
	}

	startDate := time.Now().UTC()
	if startStr, _ := cmd.Flags().GetString("start"); startStr != "" {
		startDate, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return dto.SimulationRequest{}, fmt.Errorf("invalid --start (want YYYY-MM-DD): %w", err)
		}
	}

	return dto.SimulationRequest{
		MonthlyContribution: amount,
		AnnualRate:          ratePercent.Div(hundred),
		Periods:             months,
		Timing:              timing,
		StartDate:           startDate,
	}, nil
}

func parseTimingFlag(cmd *cobra.Command) (string, error) {
	timing, _ := cmd.Flags().GetString("timing")
	switch timing {
	case "begin", "beginning", string(model.TimingBeginningOfMonth):
		return string(model.TimingBeginningOfMonth), nil
	case "end", string(model.TimingEndOfMonth):
		return string(model.TimingEndOfMonth), nil
	default:
		return "", fmt.Errorf("invalid --timing %q: want begin or end", timing)
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
