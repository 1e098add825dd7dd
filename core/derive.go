package core

import (
	"github.com/brandscope/brandscope/schema"
)

// PositionShares is the percentage view of a brand's list positions.
type PositionShares struct {
	FirstPct  float64 `json:"firstPct"`
	SecondPct float64 `json:"secondPct"`
	ThirdPct  float64 `json:"thirdPct"`
	OtherPct  float64 `json:"otherPct"`
}

// SentimentShares is the percentage view of a brand's sentiment buckets.
type SentimentShares struct {
	PositivePct float64 `json:"positivePct"`
	NeutralPct  float64 `json:"neutralPct"`
	NegativePct float64 `json:"negativePct"`
	MixedPct    float64 `json:"mixedPct"`
}

// pct converts a bucket count to a percentage of total, rounded to two
// decimals. A zero total yields 0, never NaN or Inf.
func pct(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return schema.Round2(float64(count) / float64(total) * 100)
}

// PositionDistribution derives position percentages from a brand's raw
// position counts. All-zero counts produce all-zero percentages.
func PositionDistribution(entry schema.BrandMetrics) PositionShares {
	total := entry.Count1st + entry.Count2nd + entry.Count3rd + entry.CountOther
	return PositionShares{
		FirstPct:  pct(entry.Count1st, total),
		SecondPct: pct(entry.Count2nd, total),
		ThirdPct:  pct(entry.Count3rd, total),
		OtherPct:  pct(entry.CountOther, total),
	}
}

// SentimentShare derives sentiment percentages from a brand's raw
// sentiment bucket counts. All-zero counts produce all-zero percentages.
func SentimentShare(entry schema.BrandMetrics) SentimentShares {
	s := entry.Sentiment
	total := s.Positive + s.Neutral + s.Negative + s.Mixed
	return SentimentShares{
		PositivePct: pct(s.Positive, total),
		NeutralPct:  pct(s.Neutral, total),
		NegativePct: pct(s.Negative, total),
		MixedPct:    pct(s.Mixed, total),
	}
}
