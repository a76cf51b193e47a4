package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"creator-tools/internal/models"
	"creator-tools/shared/config"

	"google.golang.org/genai"
)

// Screener runs metadata-only brand-safety checks against Gemini.
type Screener struct {
	client *genai.Client
	model  string
}

func NewScreener(cfg *config.Config) (*Screener, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.AI.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Screener{
		client: client,
		model:  cfg.AI.Model,
	}, nil
}

// ScreenVideo asks the model whether a video's metadata suggests content an
// advertiser-friendly channel would want to avoid referencing.
func (s *Screener) ScreenVideo(ctx context.Context, video *models.Video) (*models.SafetyReport, error) {
	if video == nil {
		return nil, fmt.Errorf("video cannot be nil")
	}

	prompt := s.buildScreeningPrompt(video)

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to screen video %s: %w", video.ID, err)
	}

	responseText := result.Text()
	if responseText == "" {
		return nil, fmt.Errorf("no screening response received for video %s", video.ID)
	}

	report, err := s.parseScreeningResponse(responseText, video)
	if err != nil {
		return nil, fmt.Errorf("failed to parse screening response for video %s: %w", video.ID, err)
	}

	return report, nil
}

func (s *Screener) buildScreeningPrompt(video *models.Video) string {
	return fmt.Sprintf(`You are an AI assistant that screens YouTube video metadata for brand-safety concerns before a creator references the video in their own content.

VIDEO METADATA:
Title: %s
Channel: %s
Description: %s
Tags: %s
View Count: %d
Published: %s

INSTRUCTIONS:
1. Analyze ONLY the metadata provided (title, channel, description, tags)
2. Flag content that is misleading, hateful, sexually explicit, violent, or promotes scams
3. Be conservative - metadata alone cannot prove a video is unsafe, so reserve "high" risk for clear signals
4. List the specific concern categories you identify, or an empty list if none

Please provide your analysis in the following JSON format:
{
  "is_safe": boolean,
  "risk_level": "low" | "medium" | "high",
  "categories": ["concern category", ...],
  "summary": "Brief 1-2 sentence summary of the video based on its metadata",
  "reasoning": "Specific explanation of why this video is or is not safe to reference"
}`,
		video.Title,
		video.ChannelTitle,
		truncateString(video.Description, 1000),
		strings.Join(video.Tags, ", "),
		video.ViewCount,
		video.PublishedAt.Format("2006-01-02 15:04"),
	)
}

func (s *Screener) parseScreeningResponse(response string, video *models.Video) (*models.SafetyReport, error) {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 {
		return nil, fmt.Errorf("no JSON found in response: %s", response)
	}

	jsonStr := response[startIdx : endIdx+1]

	var result struct {
		IsSafe     bool     `json:"is_safe"`
		RiskLevel  string   `json:"risk_level"`
		Categories []string `json:"categories"`
		Summary    string   `json:"summary"`
		Reasoning  string   `json:"reasoning"`
	}

	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		sanitizedJSON := sanitizeJSON(jsonStr)
		if sanitizedErr := json.Unmarshal([]byte(sanitizedJSON), &result); sanitizedErr != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON '%s': %w (sanitized version also failed: %v)", jsonStr, err, sanitizedErr)
		}
		log.Printf("Warning: Had to sanitize malformed JSON for video %s", video.Title)
	}

	switch result.RiskLevel {
	case "low", "medium", "high":
	default:
		result.RiskLevel = "medium"
	}
	if result.Categories == nil {
		result.Categories = []string{}
	}
	if result.Summary == "" {
		return nil, fmt.Errorf("screening summary is required but was empty")
	}

	return &models.SafetyReport{
		Video:      video,
		IsSafe:     result.IsSafe,
		RiskLevel:  result.RiskLevel,
		Categories: result.Categories,
		Summary:    result.Summary,
		Reasoning:  result.Reasoning,
	}, nil
}

func sanitizeJSON(jsonStr string) string {
	// Fix the unescaped quotes Gemini sometimes leaves inside string values,
	// line by line.
	lines := strings.Split(jsonStr, "\n")
	var sanitizedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.Contains(line, ":") && strings.Contains(line, "\"") {
			colonIdx := strings.Index(line, ":")
			if colonIdx != -1 {
				beforeColon := line[:colonIdx+1]
				afterColon := strings.TrimSpace(line[colonIdx+1:])

				if strings.HasPrefix(afterColon, "\"") {
					lastQuoteIdx := strings.LastIndex(afterColon, "\"")
					if lastQuoteIdx > 0 {
						stringContent := afterColon[1:lastQuoteIdx]
						stringContent = strings.ReplaceAll(stringContent, "\"", "\\\"")
						remainder := afterColon[lastQuoteIdx+1:]
						line = beforeColon + " \"" + stringContent + "\"" + remainder
					}
				}
			}
		}

		sanitizedLines = append(sanitizedLines, line)
	}

	return strings.Join(sanitizedLines, "\n")
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + "..."
}
