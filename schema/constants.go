package schema

// Custom string types for type safety.
type (
	// Scope represents the analytical slice a MetricRecord covers.
	Scope string

	// MetricKey identifies one brand metric for ranking and sorting.
	MetricKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the metric store.
	DatabaseBackend string
)

// All scopes supported.
const (
	OverallScope  Scope = "overall"
	PlatformScope Scope = "platform"
	TopicScope    Scope = "topic"
	PersonaScope  Scope = "persona"

	// FilteredScope marks a record synthesized by merging other records.
	FilteredScope Scope = "filtered"
)

// Metric keys used in ranking, sorting and output.
const (
	VisibilityMetric    MetricKey = "visibilityScore"
	ShareOfVoiceMetric  MetricKey = "shareOfVoice"
	AvgPositionMetric   MetricKey = "avgPosition"
	DepthMetric         MetricKey = "depthOfMention"
	CitationShareMetric MetricKey = "citationShare"
	SentimentMetric     MetricKey = "sentimentScore"
	MentionsMetric      MetricKey = "totalMentions"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// RankedMetrics lists the metrics that carry a persistent rank field,
// in the order ranks are recomputed after a merge.
var RankedMetrics = []MetricKey{
	VisibilityMetric,
	ShareOfVoiceMetric,
	AvgPositionMetric,
	DepthMetric,
	CitationShareMetric,
}

// HigherIsBetter maps each rankable metric to its direction. AvgPosition is
// the lone inversion: position 1 beats position 4.
var HigherIsBetter = map[MetricKey]bool{
	VisibilityMetric:    true,
	ShareOfVoiceMetric:  true,
	DepthMetric:         true,
	CitationShareMetric: true,
	MentionsMetric:      true,
	AvgPositionMetric:   false,
}

// ValidScopes lists all valid persisted scopes.
var ValidScopes = map[Scope]struct{}{
	OverallScope:  {},
	PlatformScope: {},
	TopicScope:    {},
	PersonaScope:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidSortMetrics lists the metrics a report can be sorted by.
var ValidSortMetrics = map[MetricKey]struct{}{
	VisibilityMetric:    {},
	ShareOfVoiceMetric:  {},
	AvgPositionMetric:   {},
	DepthMetric:         {},
	CitationShareMetric: {},
	SentimentMetric:     {},
	MentionsMetric:      {},
}

// MetricValue reads the value of a metric from a brand entry.
// Invalid numbers (NaN, Inf) are coerced to 0 so they never propagate
// into sorts, ranks or averages.
func MetricValue(m *BrandMetrics, key MetricKey) float64 {
	var v float64
	switch key {
	case VisibilityMetric:
		v = m.VisibilityScore
	case ShareOfVoiceMetric:
		v = m.ShareOfVoice
	case AvgPositionMetric:
		v = m.AvgPosition
	case DepthMetric:
		v = m.DepthOfMention
	case CitationShareMetric:
		v = m.CitationShare
	case SentimentMetric:
		v = m.SentimentScore
	case MentionsMetric:
		v = float64(m.TotalMentions)
	}
	return SafeFloat(v)
}

// SetMetricValue writes the value of a rate metric on a brand entry.
// MentionsMetric is count-typed and not settable through this path.
func SetMetricValue(m *BrandMetrics, key MetricKey, v float64) {
	switch key {
	case VisibilityMetric:
		m.VisibilityScore = v
	case ShareOfVoiceMetric:
		m.ShareOfVoice = v
	case AvgPositionMetric:
		m.AvgPosition = v
	case DepthMetric:
		m.DepthOfMention = v
	case CitationShareMetric:
		m.CitationShare = v
	case SentimentMetric:
		m.SentimentScore = v
	}
}

// RankValue reads the rank paired with a ranked metric. Returns 0 for
// metrics without a persistent rank field.
func RankValue(m *BrandMetrics, key MetricKey) int {
	switch key {
	case VisibilityMetric:
		return m.VisibilityRank
	case ShareOfVoiceMetric:
		return m.ShareOfVoiceRank
	case AvgPositionMetric:
		return m.AvgPositionRank
	case DepthMetric:
		return m.DepthRank
	case CitationShareMetric:
		return m.CitationShareRank
	}
	return 0
}

// SetRank writes the rank paired with a ranked metric. Metrics without a
// persistent rank field are a no-op.
func SetRank(m *BrandMetrics, key MetricKey, rank int) {
	switch key {
	case VisibilityMetric:
		m.VisibilityRank = rank
	case ShareOfVoiceMetric:
		m.ShareOfVoiceRank = rank
	case AvgPositionMetric:
		m.AvgPositionRank = rank
	case DepthMetric:
		m.DepthRank = rank
	case CitationShareMetric:
		m.CitationShareRank = rank
	}
}
