package ai

import (
	"strings"
	"testing"

	"creator-tools/internal/models"
)

func TestParseScreeningResponse(t *testing.T) {
	s := &Screener{}
	video := &models.Video{ID: "abc", Title: "Test video"}

	t.Run("ValidJSON", func(t *testing.T) {
		response := `Here is my assessment:
{
  "is_safe": true,
  "risk_level": "low",
  "categories": [],
  "summary": "A harmless hobby video.",
  "reasoning": "Nothing in the metadata raises concerns."
}`

		report, err := s.parseScreeningResponse(response, video)
		if err != nil {
			t.Fatalf("parseScreeningResponse failed: %v", err)
		}
		if !report.IsSafe || report.RiskLevel != "low" {
			t.Errorf("report = safe:%v risk:%s, want safe low", report.IsSafe, report.RiskLevel)
		}
		if report.Video != video {
			t.Error("report does not carry the screened video")
		}
	})

	t.Run("UnknownRiskLevelDefaultsToMedium", func(t *testing.T) {
		response := `{"is_safe": false, "risk_level": "catastrophic", "summary": "Suspicious.", "reasoning": "Scam markers."}`

		report, err := s.parseScreeningResponse(response, video)
		if err != nil {
			t.Fatalf("parseScreeningResponse failed: %v", err)
		}
		if report.RiskLevel != "medium" {
			t.Errorf("risk level = %q, want medium fallback", report.RiskLevel)
		}
		if report.Categories == nil {
			t.Error("categories should never be nil")
		}
	})

	t.Run("MissingSummary", func(t *testing.T) {
		response := `{"is_safe": true, "risk_level": "low", "summary": "", "reasoning": "x"}`
		if _, err := s.parseScreeningResponse(response, video); err == nil {
			t.Error("expected an error when the summary is empty")
		}
	})

	t.Run("NoJSON", func(t *testing.T) {
		if _, err := s.parseScreeningResponse("I cannot help with that.", video); err == nil {
			t.Error("expected an error when the response has no JSON")
		}
	})
}

func TestSanitizeJSON(t *testing.T) {
	malformed := `{
"summary": "He said "do not click" in the title",
"reasoning": "quotes"
}`

	sanitized := sanitizeJSON(malformed)
	if !strings.Contains(sanitized, `\"do not click\"`) {
		t.Errorf("inner quotes not escaped: %s", sanitized)
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("abcdef", 4); got != "abcd..." {
		t.Errorf("truncateString = %q", got)
	}
	if got := truncateString("abc", 4); got != "abc" {
		t.Errorf("truncateString should leave short strings alone, got %q", got)
	}
}
