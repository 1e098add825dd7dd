package core

import (
	"math"
	"testing"

	"github.com/brandscope/brandscope/schema"
	"github.com/stretchr/testify/assert"
)

// TestPositionDistribution verifies percentage derivation from raw
// position counts.
func TestPositionDistribution(t *testing.T) {
	entry := schema.BrandMetrics{
		Count1st:   2,
		Count2nd:   1,
		Count3rd:   1,
		CountOther: 0,
	}

	shares := PositionDistribution(entry)

	assert.Equal(t, 50.0, shares.FirstPct)
	assert.Equal(t, 25.0, shares.SecondPct)
	assert.Equal(t, 25.0, shares.ThirdPct)
	assert.Equal(t, 0.0, shares.OtherPct)
}

// TestPositionDistributionZeroCounts verifies all-zero counts produce
// all-zero percentages, never NaN or Inf.
func TestPositionDistributionZeroCounts(t *testing.T) {
	shares := PositionDistribution(schema.BrandMetrics{})

	assert.Equal(t, PositionShares{}, shares)
}

// TestSentimentShare verifies sentiment bucket percentages, including the
// zero-total case.
func TestSentimentShare(t *testing.T) {
	entry := schema.BrandMetrics{
		Sentiment: schema.SentimentBreakdown{Positive: 3, Neutral: 3, Negative: 2, Mixed: 1},
	}

	shares := SentimentShare(entry)

	assert.Equal(t, 33.33, shares.PositivePct)
	assert.Equal(t, 33.33, shares.NeutralPct)
	assert.Equal(t, 22.22, shares.NegativePct)
	assert.Equal(t, 11.11, shares.MixedPct)

	assert.Equal(t, SentimentShares{}, SentimentShare(schema.BrandMetrics{}))
}

// FuzzPositionDistribution checks percentage safety over arbitrary counts:
// results must be finite and inside [0, 100].
func FuzzPositionDistribution(f *testing.F) {
	f.Add(2, 1, 1, 0)
	f.Add(0, 0, 0, 0)
	f.Add(-1, 5, 0, 3)

	f.Fuzz(func(t *testing.T, first, second, third, other int) {
		entry := schema.BrandMetrics{
			Count1st:   first,
			Count2nd:   second,
			Count3rd:   third,
			CountOther: other,
		}
		shares := PositionDistribution(entry)

		for _, v := range []float64{shares.FirstPct, shares.SecondPct, shares.ThirdPct, shares.OtherPct} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite percentage %v for counts %d/%d/%d/%d", v, first, second, third, other)
			}
		}
		if first >= 0 && second >= 0 && third >= 0 && other >= 0 {
			for _, v := range []float64{shares.FirstPct, shares.SecondPct, shares.ThirdPct, shares.OtherPct} {
				if v < 0 || v > 100 {
					t.Fatalf("percentage %v out of range for counts %d/%d/%d/%d", v, first, second, third, other)
				}
			}
		}
	})
}
