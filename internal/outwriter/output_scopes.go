package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/schema"
)

// WriteScopeResults outputs a summary of stored scopes, dispatching based on
// the output format configured.
func WriteScopeResults(infos []schema.ScopeInfo, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, infos)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"scope", "scope_value", "brands", "total_responses", "last_calculated", "age_days"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, info := range infos {
					rec := []string{
						string(info.Scope),
						info.ScopeValue,
						strconv.Itoa(info.Brands),
						strconv.Itoa(info.TotalResponses),
						info.LastCalculated.Format(contract.DateTimeFormat),
						strconv.Itoa(contract.RecordAgeDays(info.LastCalculated)),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for scopes")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScopeTable(infos, w)
		}, "Wrote table")
	}
}

// writeScopeTable generates and writes the human-readable table.
func writeScopeTable(infos []schema.ScopeInfo, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Scope", "Value", "Brands", "Responses", "Calculated", "Age (days)"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, info := range infos {
		value := info.ScopeValue
		if value == "" {
			value = "-"
		}
		data = append(data, []string{
			string(info.Scope),
			value,
			strconv.Itoa(info.Brands),
			strconv.Itoa(info.TotalResponses),
			info.LastCalculated.Format(contract.DateTimeFormat),
			strconv.Itoa(contract.RecordAgeDays(info.LastCalculated)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d stored scopes\n", len(infos)); err != nil {
		return err
	}
	return nil
}
