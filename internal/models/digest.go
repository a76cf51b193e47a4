package models

import "time"

// DigestEntry is one watched keyword's latest scores and the movement since
// the previous scheduled run.
type DigestEntry struct {
	Keyword          string `json:"keyword"`
	Opportunity      int    `json:"opportunity"`
	Demand           int    `json:"demand"`
	Competition      int    `json:"competition"`
	OpportunityDelta int    `json:"opportunity_delta"`
	Trend            string `json:"trend"`
	Summary          string `json:"summary"`
}

// WatchDigest is the payload for the scheduled watchlist email.
type WatchDigest struct {
	Date     time.Time     `json:"date"`
	Entries  []DigestEntry `json:"entries"`
	Failures []string      `json:"failures,omitempty"`
}
