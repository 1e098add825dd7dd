package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/internal/parquet"
	"github.com/brandscope/brandscope/schema"
)

// WriteReportResults outputs the ranked brand report, dispatching based on the output format configured.
func WriteReportResults(record schema.MetricRecord, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSONResults(record, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSVResults(record, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.ExportRecords([]schema.MetricRecord{record}, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(record, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeReportJSONResults handles opening the file and calling the JSON writer.
func writeReportJSONResults(record schema.MetricRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForReport(w, record, cfg)
	}, "Wrote JSON")
}

// writeReportCSVResults handles opening the file and calling the CSV writer.
func writeReportCSVResults(record schema.MetricRecord, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForReport(csvWriter, record, cfg, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// displayRank resolves the rank shown in the first column. Metrics without
// stored ranks (sentiment, mentions) fall back to display order.
func displayRank(entry *schema.BrandMetrics, sortBy schema.MetricKey, position int) int {
	if rank := schema.RankValue(entry, sortBy); rank > 0 {
		return rank
	}
	return position + 1
}

// brandCell renders the brand name column, marking the owner brand.
func brandCell(entry *schema.BrandMetrics, maxWidth int) string {
	name := contract.TruncateName(entry.BrandName, maxWidth)
	if entry.IsOwner {
		return name + " *"
	}
	return name
}

// writeReportTable generates and writes the human-readable table.
func writeReportTable(record schema.MetricRecord, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Brand", "Visibility", "Label", "SoV", "AvgPos", "Depth", "CitShare", "Sentiment"}
	if cfg.Detail {
		headers = append(headers, "Mentions", "Appear", "1st", "2nd", "3rd", "Citations")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxWidth := getMaxBrandWidth(cfg)
	var data [][]string
	for i := range record.BrandMetrics {
		entry := &record.BrandMetrics[i]

		label := contract.GetPlainLabel(entry.VisibilityScore)
		if cfg.UseColors {
			label = contract.GetColorLabel(entry.VisibilityScore)
		}

		// Prepare the row data as a slice of strings
		row := []string{
			strconv.Itoa(displayRank(entry, cfg.SortBy, i)), // Rank
			brandCell(entry, maxWidth),                      // Brand
			fmtFloat(entry.VisibilityScore),                 // Visibility
			label,                           // Label
			fmtFloat(entry.ShareOfVoice),    // SoV
			fmtFloat(entry.AvgPosition),     // AvgPos
			fmtFloat(entry.DepthOfMention),  // Depth
			fmtFloat(entry.CitationShare),   // CitShare
			fmtFloat(entry.SentimentScore),  // Sentiment
		}
		if cfg.Detail {
			row = append(
				row,
				fmt.Sprintf(intFmt, entry.TotalMentions),    // Mentions
				fmt.Sprintf(intFmt, entry.TotalAppearances), // Appear
				fmt.Sprintf(intFmt, entry.Count1st),         // 1st
				fmt.Sprintf(intFmt, entry.Count2nd),         // 2nd
				fmt.Sprintf(intFmt, entry.Count3rd),         // 3rd
				fmt.Sprintf(intFmt, entry.TotalCitations),   // Citations
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	// Compute summary stats
	scopeLabel := string(record.Scope)
	if record.ScopeValue != "" {
		scopeLabel = fmt.Sprintf("%s=%s", record.Scope, record.ScopeValue)
	}
	if _, err := fmt.Fprintf(writer, "Showing %d brands for scope %s (tests: %d, responses: %d). * marks %s\n",
		len(record.BrandMetrics), scopeLabel, record.TotalTests, record.TotalResponses, cfg.OwnerBrand); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Report completed in %v, sorted by %s. Store backend: %s\n", duration, cfg.SortBy, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForReport writes the ranked brand report in CSV format.
func writeCSVResultsForReport(w *csv.Writer, record schema.MetricRecord, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"rank",
		"brand",
		"is_owner",
		"label",
		"visibility_score",
		"visibility_rank",
		"share_of_voice",
		"share_of_voice_rank",
		"avg_position",
		"avg_position_rank",
		"depth_of_mention",
		"depth_rank",
		"citation_share",
		"citation_share_rank",
		"sentiment_score",
		"total_mentions",
		"total_appearances",
		"total_citations",
		"scope",
		"scope_value",
		"last_calculated",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := range record.BrandMetrics {
		entry := &record.BrandMetrics[i]
		rec := []string{
			strconv.Itoa(displayRank(entry, cfg.SortBy, i)),       // Rank
			entry.BrandName,                                       // Brand
			strconv.FormatBool(entry.IsOwner),                     // Owner flag
			contract.GetPlainLabel(entry.VisibilityScore),         // Label
			fmtFloat(entry.VisibilityScore),                       // Visibility
			fmt.Sprintf(intFmt, entry.VisibilityRank),             // Visibility Rank
			fmtFloat(entry.ShareOfVoice),                          // Share of Voice
			fmt.Sprintf(intFmt, entry.ShareOfVoiceRank),           // Share of Voice Rank
			fmtFloat(entry.AvgPosition),                           // Average Position
			fmt.Sprintf(intFmt, entry.AvgPositionRank),            // Average Position Rank
			fmtFloat(entry.DepthOfMention),                        // Depth of Mention
			fmt.Sprintf(intFmt, entry.DepthRank),                  // Depth Rank
			fmtFloat(entry.CitationShare),                         // Citation Share
			fmt.Sprintf(intFmt, entry.CitationShareRank),          // Citation Share Rank
			fmtFloat(entry.SentimentScore),                        // Sentiment
			fmt.Sprintf(intFmt, entry.TotalMentions),              // Mentions
			fmt.Sprintf(intFmt, entry.TotalAppearances),           // Appearances
			fmt.Sprintf(intFmt, entry.TotalCitations),             // Citations
			string(record.Scope),                                  // Scope
			record.ScopeValue,                                     // Scope Value
			record.LastCalculated.Format(contract.DateTimeFormat), // Calculation Date
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForReport writes the ranked brand report in JSON format.
func writeJSONResultsForReport(w io.Writer, record schema.MetricRecord, cfg *contract.Config) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONBrandResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.BrandMetrics
	}
	type JSONReport struct {
		Scope          schema.Scope      `json:"scope"`
		ScopeValue     string            `json:"scopeValue,omitempty"`
		TotalTests     int               `json:"totalTests"`
		TotalResponses int               `json:"totalResponses"`
		LastCalculated time.Time         `json:"lastCalculated"`
		SortBy         schema.MetricKey  `json:"sortBy"`
		Brands         []JSONBrandResult `json:"brands"`
	}

	brands := make([]JSONBrandResult, len(record.BrandMetrics))
	for i := range record.BrandMetrics {
		entry := record.BrandMetrics[i]
		brands[i] = JSONBrandResult{
			Rank:         displayRank(&entry, cfg.SortBy, i),
			Label:        contract.GetPlainLabel(entry.VisibilityScore),
			BrandMetrics: entry,
		}
	}

	output := JSONReport{
		Scope:          record.Scope,
		ScopeValue:     record.ScopeValue,
		TotalTests:     record.TotalTests,
		TotalResponses: record.TotalResponses,
		LastCalculated: record.LastCalculated,
		SortBy:         cfg.SortBy,
		Brands:         brands,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
