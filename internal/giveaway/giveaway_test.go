package giveaway

import (
	"fmt"
	"testing"

	"creator-tools/internal/models"
)

func comment(id, author, text string) models.Comment {
	return models.Comment{ID: id, Author: author, AuthorID: "uid-" + author, Text: text}
}

func TestDrawIsDeterministicForSeed(t *testing.T) {
	var comments []models.Comment
	for i := 0; i < 30; i++ {
		name := fmt.Sprintf("user%d", i)
		comments = append(comments, comment(fmt.Sprintf("c%d", i), name, "count me in"))
	}

	first, err := Draw("vid", comments, "", 10, 42)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	second, err := Draw("vid", comments, "", 10, 42)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	for i := range first.Winners {
		if first.Winners[i].ID != second.Winners[i].ID {
			t.Fatalf("same seed drew different winners: %v vs %v", first.Winners, second.Winners)
		}
	}

	different, err := Draw("vid", comments, "", 10, 7)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	same := true
	for i := range first.Winners {
		if first.Winners[i].ID != different.Winners[i].ID {
			same = false
		}
	}
	if same {
		t.Error("different seeds drew identical winners, shuffle looks broken")
	}
}

func TestDrawFiltersByPhrase(t *testing.T) {
	comments := []models.Comment{
		comment("c1", "alice", "GIVEAWAY please!"),
		comment("c2", "bob", "nice video"),
		comment("c3", "carol", "giveaway me too"),
	}

	result, err := Draw("vid", comments, "giveaway", 5, 1)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if result.TotalComments != 3 || result.Eligible != 2 {
		t.Errorf("total=%d eligible=%d, want 3 and 2", result.TotalComments, result.Eligible)
	}
	for _, winner := range result.Winners {
		if winner.Author == "bob" {
			t.Error("ineligible commenter won")
		}
	}
}

func TestDrawOneEntryPerAuthor(t *testing.T) {
	comments := []models.Comment{
		comment("c1", "spammer", "pick me"),
		comment("c2", "spammer", "pick me again"),
		comment("c3", "spammer", "and again"),
		comment("c4", "honest", "pick me"),
	}

	result, err := Draw("vid", comments, "", 10, 3)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if result.Eligible != 2 {
		t.Errorf("eligible = %d, want 2 (one entry per author)", result.Eligible)
	}
	if len(result.Winners) != 2 {
		t.Errorf("winners = %d, want 2 (capped at eligible count)", len(result.Winners))
	}
}

func TestDrawErrors(t *testing.T) {
	comments := []models.Comment{comment("c1", "a", "hello")}

	if _, err := Draw("vid", comments, "", 0, 1); err == nil {
		t.Error("expected an error for zero winners")
	}
	if _, err := Draw("vid", comments, "missing phrase", 1, 1); err == nil {
		t.Error("expected an error when nobody is eligible")
	}
	if _, err := Draw("vid", nil, "", 1, 1); err == nil {
		t.Error("expected an error for no comments")
	}
}
