package keyword

import (
	"fmt"

	"creator-tools/internal/models"
)

// recommendations turns the computed signals into a fixed, ordered list of
// data-backed sentences. Rules are independent: each inspects its inputs and
// contributes exactly one sentence, and no rule suppresses another, so the
// list length and order never vary between runs.
func recommendations(kw string, opportunity, demand, competition int, trend string, best models.BestTimes, s corpusStats, top []*models.Video, zone string) []string {
	recs := make([]string, 0, 5)

	switch {
	case opportunity >= 70:
		recs = append(recs, fmt.Sprintf("Opportunity score %d/100: this keyword has strong potential for new uploads right now.", opportunity))
	case opportunity <= 30:
		recs = append(recs, fmt.Sprintf("Opportunity score %d/100: expect slow growth here unless you bring a distinctive angle.", opportunity))
	default:
		recs = append(recs, fmt.Sprintf("Opportunity score %d/100: a solid topic if it fits your channel's niche.", opportunity))
	}

	switch {
	case demand >= 55 && competition < 55:
		recs = append(recs, fmt.Sprintf("Search demand (%d) outpaces competition (%d), which favors new entrants.", demand, competition))
	case competition >= 75:
		recs = append(recs, fmt.Sprintf("Competition is very high (%d); target a narrower sub-topic to stand out.", competition))
	default:
		recs = append(recs, fmt.Sprintf("Demand (%d) and competition (%d) are balanced; quality and consistency will decide results.", demand, competition))
	}

	if best.OptimalDay != "" {
		recs = append(recs, fmt.Sprintf("The best-performing uploads go out on %s around %02d:00 %s.", best.OptimalDay, best.OptimalHour, zone))
	} else {
		recs = append(recs, "Not enough publication data to suggest an upload time yet.")
	}

	avgTitleLen := averageTitleLength(top)
	switch {
	case avgTitleLen == 0:
		recs = append(recs, "No title data available for length guidance.")
	case avgTitleLen < 40:
		recs = append(recs, fmt.Sprintf("Top titles average only %d characters; longer, more descriptive titles tend to rank better.", avgTitleLen))
	case avgTitleLen > 70:
		recs = append(recs, fmt.Sprintf("Top titles average %d characters; keep yours under 70 so it is not truncated in search.", avgTitleLen))
	default:
		recs = append(recs, fmt.Sprintf("Top titles average %d characters, inside the effective 40-70 character range.", avgTitleLen))
	}

	matchPercent := int(s.titleMatchRate() * 100)
	if s.titleMatchRate() < 0.5 {
		recs = append(recs, fmt.Sprintf("Only %d%% of top videos use %q in the title; including it is an easy ranking win.", matchPercent, kw))
	} else {
		recs = append(recs, fmt.Sprintf("%d%% of top videos already use %q in the title; differentiate with a specific angle instead.", matchPercent, kw))
	}

	return recs
}

func averageTitleLength(videos []*models.Video) int {
	if len(videos) == 0 {
		return 0
	}
	total := 0
	for _, video := range videos {
		total += len(video.Title)
	}
	return total / len(videos)
}

// summarize produces the one-sentence performance description shown above
// the score cards.
func summarize(kw string, demandLbl, competitionLbl, trend string, meanViews float64) string {
	return fmt.Sprintf("%q shows %s search demand against %s competition with a %s upload trend, averaging %.0f views per video.",
		kw, lowerLabel(demandLbl), lowerLabel(competitionLbl), lowerLabel(trend), meanViews)
}

func lowerLabel(label string) string {
	switch label {
	case "Very High":
		return "very high"
	case "High":
		return "high"
	case "Moderate":
		return "moderate"
	case "Low":
		return "low"
	case TrendRising:
		return "rising"
	case TrendStable:
		return "stable"
	case TrendDeclining:
		return "declining"
	default:
		return label
	}
}
