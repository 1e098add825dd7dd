// Package parquet provides data structures and functions for exporting
// brand metric data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/brandscope/brandscope/schema"
)

// BrandMetricRow is one brand's metrics within one scope, flattened for
// columnar analysis. Each stored record fans out to one row per brand.
type BrandMetricRow struct {
	// Scope identifies the analytical slice (overall, platform, topic, persona)
	Scope string `parquet:"scope,snappy"`

	// ScopeValue is the slice value, empty for the overall scope
	ScopeValue string `parquet:"scope_value,snappy"`

	// LastCalculated is when the upstream pipeline computed the record
	LastCalculated time.Time `parquet:"last_calculated,snappy"`

	BrandID   string `parquet:"brand_id,snappy"`
	BrandName string `parquet:"brand_name,snappy"`
	IsOwner   bool   `parquet:"is_owner,snappy"`

	VisibilityScore float64 `parquet:"visibility_score,snappy"`
	ShareOfVoice    float64 `parquet:"share_of_voice,snappy"`
	AvgPosition     float64 `parquet:"avg_position,snappy"`
	DepthOfMention  float64 `parquet:"depth_of_mention,snappy"`
	CitationShare   float64 `parquet:"citation_share,snappy"`
	SentimentScore  float64 `parquet:"sentiment_score,snappy"`

	VisibilityRank    int32 `parquet:"visibility_rank,snappy"`
	ShareOfVoiceRank  int32 `parquet:"share_of_voice_rank,snappy"`
	AvgPositionRank   int32 `parquet:"avg_position_rank,snappy"`
	DepthRank         int32 `parquet:"depth_rank,snappy"`
	CitationShareRank int32 `parquet:"citation_share_rank,snappy"`

	Count1st   int32 `parquet:"count_1st,snappy"`
	Count2nd   int32 `parquet:"count_2nd,snappy"`
	Count3rd   int32 `parquet:"count_3rd,snappy"`
	CountOther int32 `parquet:"count_other,snappy"`

	TotalAppearances int32 `parquet:"total_appearances,snappy"`
	TotalMentions    int32 `parquet:"total_mentions,snappy"`

	BrandCitationsTotal  int32 `parquet:"brand_citations_total,snappy"`
	EarnedCitationsTotal int32 `parquet:"earned_citations_total,snappy"`
	SocialCitationsTotal int32 `parquet:"social_citations_total,snappy"`
	TotalCitations       int32 `parquet:"total_citations,snappy"`

	SentimentPositive int32 `parquet:"sentiment_positive,snappy"`
	SentimentNeutral  int32 `parquet:"sentiment_neutral,snappy"`
	SentimentNegative int32 `parquet:"sentiment_negative,snappy"`
	SentimentMixed    int32 `parquet:"sentiment_mixed,snappy"`
}

// ConvertRecords flattens metric records to one row per (scope, brand).
func ConvertRecords(records []schema.MetricRecord) []BrandMetricRow {
	var rows []BrandMetricRow
	for _, record := range records {
		for i := range record.BrandMetrics {
			rows = append(rows, convertEntry(&record, &record.BrandMetrics[i]))
		}
	}
	return rows
}

func convertEntry(record *schema.MetricRecord, entry *schema.BrandMetrics) BrandMetricRow {
	return BrandMetricRow{
		Scope:          string(record.Scope),
		ScopeValue:     record.ScopeValue,
		LastCalculated: record.LastCalculated,

		BrandID:   entry.BrandID,
		BrandName: entry.BrandName,
		IsOwner:   entry.IsOwner,

		VisibilityScore: entry.VisibilityScore,
		ShareOfVoice:    entry.ShareOfVoice,
		AvgPosition:     entry.AvgPosition,
		DepthOfMention:  entry.DepthOfMention,
		CitationShare:   entry.CitationShare,
		SentimentScore:  entry.SentimentScore,

		VisibilityRank:    int32(entry.VisibilityRank),
		ShareOfVoiceRank:  int32(entry.ShareOfVoiceRank),
		AvgPositionRank:   int32(entry.AvgPositionRank),
		DepthRank:         int32(entry.DepthRank),
		CitationShareRank: int32(entry.CitationShareRank),

		Count1st:   int32(entry.Count1st),
		Count2nd:   int32(entry.Count2nd),
		Count3rd:   int32(entry.Count3rd),
		CountOther: int32(entry.CountOther),

		TotalAppearances: int32(entry.TotalAppearances),
		TotalMentions:    int32(entry.TotalMentions),

		BrandCitationsTotal:  int32(entry.BrandCitationsTotal),
		EarnedCitationsTotal: int32(entry.EarnedCitationsTotal),
		SocialCitationsTotal: int32(entry.SocialCitationsTotal),
		TotalCitations:       int32(entry.TotalCitations),

		SentimentPositive: int32(entry.Sentiment.Positive),
		SentimentNeutral:  int32(entry.Sentiment.Neutral),
		SentimentNegative: int32(entry.Sentiment.Negative),
		SentimentMixed:    int32(entry.Sentiment.Mixed),
	}
}

// WriteBrandMetricsParquet writes brand metric rows to a Parquet file.
func WriteBrandMetricsParquet(rows []BrandMetricRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the BrandMetricRow struct tags
	writer := parquet.NewGenericWriter[BrandMetricRow](file)
	defer func() { _ = writer.Close() }()

	// Write all rows to the file
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ExportRecords flattens and writes metric records in one step.
func ExportRecords(records []schema.MetricRecord, outputPath string) error {
	return WriteBrandMetricsParquet(ConvertRecords(records), outputPath)
}
