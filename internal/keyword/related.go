package keyword

import (
	"sort"
	"strings"

	"creator-tools/internal/models"
)

const (
	maxRelatedKeywords = 12
	minTokenLen        = 4
	maxTokenLen        = 19
)

var stopWords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "your": true,
	"have": true, "will": true, "what": true, "when": true, "where": true,
	"which": true, "their": true, "about": true, "should": true, "could": true,
	"would": true, "there": true, "these": true, "those": true, "them": true,
	"then": true, "than": true, "into": true, "over": true, "under": true,
	"after": true, "before": true, "every": true, "video": true, "videos": true,
	"youtube": true, "watch": true, "channel": true, "subscribe": true,
	"best": true, "2024": true, "2025": true, "2026": true,
}

// relatedKeywords mines tags and title tokens for candidate keywords. The
// seed keyword, short/long tokens and stop words are excluded; candidates
// keep first-seen order and the list caps at 12.
//
// When rankByFrequency is set, candidates are instead ordered by how often
// they occur across the corpus (ties keep first-seen order). The first-seen
// policy is the compatible default; frequency ranking is opt-in.
func relatedKeywords(corpus []*models.Video, kw string, rankByFrequency bool) []string {
	kwLower := strings.ToLower(kw)

	var ordered []string
	counts := make(map[string]int)

	add := func(candidate string) {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if candidate == "" || candidate == kwLower {
			return
		}
		if len(candidate) < minTokenLen || len(candidate) > maxTokenLen {
			return
		}
		if stopWords[candidate] {
			return
		}
		if counts[candidate] == 0 {
			ordered = append(ordered, candidate)
		}
		counts[candidate]++
	}

	for _, video := range corpus {
		for _, tag := range video.Tags {
			add(tag)
		}
		for _, token := range strings.Fields(video.Title) {
			add(token)
		}
	}

	if rankByFrequency {
		sort.SliceStable(ordered, func(a, b int) bool {
			return counts[ordered[a]] > counts[ordered[b]]
		})
	}

	if len(ordered) > maxRelatedKeywords {
		ordered = ordered[:maxRelatedKeywords]
	}
	if ordered == nil {
		ordered = []string{}
	}

	return ordered
}
