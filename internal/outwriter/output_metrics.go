package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/schema"
)

// WriteMetricDefinitions outputs the metric reference, dispatching based on
// the output format configured.
func WriteMetricDefinitions(cfg *contract.Config) error {
	defs := schema.MetricDefinitions

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"key", "name", "kind", "ranked", "direction", "description"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, def := range defs {
					rec := []string{
						string(def.Key),
						def.Name,
						def.Kind,
						strconv.FormatBool(def.Ranked),
						def.Direction,
						def.Description,
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for metric definitions")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricTable(defs, w)
		}, "Wrote table")
	}
}

// writeMetricTable generates and writes the human-readable table.
func writeMetricTable(defs []schema.MetricDefinition, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Key", "Name", "Kind", "Ranked", "Direction", "Description"})

	var data [][]string
	for _, def := range defs {
		direction := def.Direction
		if direction == "" {
			direction = "-"
		}
		data = append(data, []string{
			string(def.Key),
			def.Name,
			def.Kind,
			strconv.FormatBool(def.Ranked),
			direction,
			def.Description,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
