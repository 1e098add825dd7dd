package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/brandscope/brandscope/core"
	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/schema"
)

// WriteBreakdownResults outputs per-brand position and sentiment percentages,
// dispatching based on the output format configured.
func WriteBreakdownResults(breakdowns []core.BrandBreakdown, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, breakdowns)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, breakdownCSVHeader(), func(csvWriter *csv.Writer) error {
				return writeCSVRowsForBreakdowns(csvWriter, breakdowns, fmtFloat)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for breakdowns")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBreakdownTable(breakdowns, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

func breakdownCSVHeader() []string {
	return []string{
		"brand",
		"is_owner",
		"first_pct",
		"second_pct",
		"third_pct",
		"other_pct",
		"positive_pct",
		"neutral_pct",
		"negative_pct",
		"mixed_pct",
	}
}

func writeCSVRowsForBreakdowns(w *csv.Writer, breakdowns []core.BrandBreakdown, fmtFloat func(float64) string) error {
	for _, b := range breakdowns {
		rec := []string{
			b.BrandName,
			strconv.FormatBool(b.IsOwner),
			fmtFloat(b.Positions.FirstPct),
			fmtFloat(b.Positions.SecondPct),
			fmtFloat(b.Positions.ThirdPct),
			fmtFloat(b.Positions.OtherPct),
			fmtFloat(b.Sentiment.PositivePct),
			fmtFloat(b.Sentiment.NeutralPct),
			fmtFloat(b.Sentiment.NegativePct),
			fmtFloat(b.Sentiment.MixedPct),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeBreakdownTable generates and writes the human-readable table.
func writeBreakdownTable(breakdowns []core.BrandBreakdown, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Brand", "1st%", "2nd%", "3rd%", "Other%", "Pos%", "Neu%", "Neg%", "Mixed%"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxBrandWidth(cfg)
	var data [][]string
	for _, b := range breakdowns {
		name := contract.TruncateName(b.BrandName, maxWidth)
		if b.IsOwner {
			name += " *"
		}
		data = append(data, []string{
			name,
			fmtFloat(b.Positions.FirstPct),
			fmtFloat(b.Positions.SecondPct),
			fmtFloat(b.Positions.ThirdPct),
			fmtFloat(b.Positions.OtherPct),
			fmtFloat(b.Sentiment.PositivePct),
			fmtFloat(b.Sentiment.NeutralPct),
			fmtFloat(b.Sentiment.NegativePct),
			fmtFloat(b.Sentiment.MixedPct),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d brands. * marks %s\n", len(breakdowns), cfg.OwnerBrand); err != nil {
		return err
	}
	return nil
}
