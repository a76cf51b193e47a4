package keyword

import "math"

// Composite scores are weighted sums of independently capped sub-factors,
// re-clamped to their final range. Every ratio guards a zero denominator
// with max(1, d); a non-empty corpus never reports zero opportunity or
// demand.

// scoreOpportunity rates how much room the keyword leaves for new content.
func scoreOpportunity(s corpusStats) int {
	// size/4*25 saturates at four items; below that the volume signal is
	// deliberately coarse (whole 25-point steps).
	volume := math.Min(25, float64(s.size/4*25))

	// Logarithmic so growth decelerates at very high view counts.
	performance := math.Min(30, math.Log10(math.Max(1, s.meanViews))/7*30)

	growth := math.Min(25, s.recent90MeanView/math.Max(1, s.meanViews)*20)

	engagement := math.Min(20, s.meanLikes/math.Max(1, s.meanViews)*2000)

	return clampScore(volume+performance+growth+engagement, 1, 100)
}

// scoreDemand rates how much audience search interest the corpus suggests.
func scoreDemand(s corpusStats) int {
	videoCount := math.Min(30, float64(s.size)/100*30)

	// May go negative below 100 mean views; the final clamp floors it.
	views := math.Min(40, (math.Log10(math.Max(1, s.meanViews))-2)*8)

	recentActivity := math.Min(20, float64(s.recent30Count)/math.Max(1, float64(s.size))*20)

	uploadFrequency := math.Min(10, float64(s.size)/10*2)

	return clampScore(videoCount+views+recentActivity+uploadFrequency, 1, 100)
}

// scoreCompetition rates how crowded the keyword already is.
func scoreCompetition(s corpusStats) int {
	size := math.Max(1, float64(s.size))

	dominance := float64(s.dominantChannels) / size * 30
	optimization := float64(s.titleMatches) / size * 40
	recency := math.Min(30, float64(s.recent30Count)/size*100)

	return clampScore(dominance+optimization+recency, 0, 100)
}

func clampScore(v, lo, hi float64) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return int(math.Round(v))
}

// demandLabel also labels competition; the two share thresholds.
func demandLabel(score int) string {
	switch {
	case score >= 75:
		return "Very High"
	case score >= 55:
		return "High"
	case score >= 35:
		return "Moderate"
	default:
		return "Low"
	}
}

func opportunityLabel(score int) string {
	switch {
	case score >= 75:
		return "Excellent"
	case score >= 55:
		return "Good"
	case score >= 35:
		return "Fair"
	default:
		return "Low"
	}
}
