package keyword

// Trend labels for the recent-publication ratio.
const (
	TrendRising    = "Rising"
	TrendStable    = "Stable"
	TrendDeclining = "Declining"
)

// classifyTrend labels the corpus from the share of items published in the
// last 30 days. Both boundaries are exclusive: a ratio of exactly 0.3 or
// exactly 0.1 is Stable.
func classifyTrend(s corpusStats) string {
	ratio := s.recentRatio()
	switch {
	case ratio > 0.3:
		return TrendRising
	case ratio < 0.1:
		return TrendDeclining
	default:
		return TrendStable
	}
}
