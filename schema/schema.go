// Package schema has configs, models and global variables for all parts of brandscope.
package schema

import "time"

// SentimentBreakdown counts responses by sentiment classification for one brand.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
	Mixed    int `json:"mixed"`
}

// BrandMetrics represents one brand's computed performance within a scope.
// Rate metrics are derived upstream from raw LLM response scorecards; rank
// fields are scope-relative and recomputed whenever the brand set changes.
type BrandMetrics struct {
	BrandID   string `json:"brandId"`
	BrandName string `json:"brandName"`
	IsOwner   bool   `json:"isOwner"` // Set upstream; authoritative when present

	VisibilityScore float64 `json:"visibilityScore"` // 0-100, share of responses mentioning the brand
	ShareOfVoice    float64 `json:"shareOfVoice"`    // 0-100, brand's share of all brand mentions
	AvgPosition     float64 `json:"avgPosition"`     // Mean list position across appearances (1 = first)
	DepthOfMention  float64 `json:"depthOfMention"`  // Share of response word count about the brand
	CitationShare   float64 `json:"citationShare"`   // Brand's fraction of all surfaced citations
	SentimentScore  float64 `json:"sentimentScore"`  // 0-100, weighted sentiment across responses

	VisibilityRank    int `json:"visibilityRank"`
	ShareOfVoiceRank  int `json:"shareOfVoiceRank"`
	AvgPositionRank   int `json:"avgPositionRank"`
	DepthRank         int `json:"depthRank"`
	CitationShareRank int `json:"citationShareRank"`

	Count1st   int `json:"count1st"`
	Count2nd   int `json:"count2nd"`
	Count3rd   int `json:"count3rd"`
	CountOther int `json:"countOther"`

	TotalAppearances int `json:"totalAppearances"`
	TotalMentions    int `json:"totalMentions"`

	BrandCitationsTotal  int `json:"brandCitationsTotal"`
	EarnedCitationsTotal int `json:"earnedCitationsTotal"`
	SocialCitationsTotal int `json:"socialCitationsTotal"`
	TotalCitations       int `json:"totalCitations"`

	Sentiment SentimentBreakdown `json:"sentimentBreakdown"`
}

// MetricRecord is one analytical slice: a set of per-brand metrics computed
// for a scope (overall, one platform, one topic, or one persona). Records
// with FilteredScope are synthesized by the merge engine and never persisted.
type MetricRecord struct {
	Scope          Scope          `json:"scope"`
	ScopeValue     string         `json:"scopeValue,omitempty"`
	BrandMetrics   []BrandMetrics `json:"brandMetrics"`
	TotalTests     int            `json:"totalTests"`
	TotalResponses int            `json:"totalResponses"`
	LastCalculated time.Time      `json:"lastCalculated"`
}

// Clone returns a deep copy of the record. Callers that hand records to the
// engine from a shared cache should clone on read.
func (r MetricRecord) Clone() MetricRecord {
	clone := r
	if r.BrandMetrics != nil {
		clone.BrandMetrics = make([]BrandMetrics, len(r.BrandMetrics))
		copy(clone.BrandMetrics, r.BrandMetrics)
	}
	return clone
}

// ScopeInfo summarizes the stored records for one (scope, scopeValue) slice.
type ScopeInfo struct {
	Scope          Scope     `json:"scope"`
	ScopeValue     string    `json:"scopeValue"`
	Brands         int       `json:"brands"`
	TotalResponses int       `json:"totalResponses"`
	LastCalculated time.Time `json:"lastCalculated"`
}

// StoreStatus holds status information about the metric store.
type StoreStatus struct {
	Backend    string           `json:"backend"`
	Connected  bool             `json:"connected"`
	Records    int64            `json:"records"`
	Selections int64            `json:"selections"`
	LastImport time.Time        `json:"lastImport"`
	TableSizes map[string]int64 `json:"tableSizes"`
}
