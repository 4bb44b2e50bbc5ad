package planner

import (
	"strings"
	"testing"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

func TestBuildUserPromptContainsDestinationAndDays(t *testing.T) {
	req := models.TripRequest{
		Destination: "Paris, France",
		Days:        5,
		Interests:   []string{"Museums", "Food & Cuisine"},
		Constraints: []string{"no walking tours"},
	}

	prompt := BuildUserPrompt(req)

	if !strings.Contains(prompt, "Paris, France") {
		t.Fatalf("prompt missing destination: %q", prompt)
	}
	if !strings.Contains(prompt, "Number of days: 5") {
		t.Fatalf("prompt missing literal day count: %q", prompt)
	}
	if !strings.Contains(prompt, "Museums, Food & Cuisine") {
		t.Fatalf("prompt missing interests: %q", prompt)
	}
	if !strings.Contains(prompt, "no walking tours") {
		t.Fatalf("prompt missing guardrails: %q", prompt)
	}
}

func TestBuildUserPromptDefaults(t *testing.T) {
	prompt := BuildUserPrompt(models.TripRequest{Destination: "Kyoto", Days: 2})

	if !strings.Contains(prompt, "General sightseeing") {
		t.Fatalf("empty interests should default to General sightseeing")
	}
	if !strings.Contains(prompt, "GUARDRAILS / CONSTRAINTS\nNone") {
		t.Fatalf("empty guardrails should default to None, got %q", prompt)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     models.TripRequest
		wantErr bool
	}{
		{"ok", models.TripRequest{Destination: "Bali", Days: 3}, false},
		{"empty destination", models.TripRequest{Destination: "   ", Days: 3}, true},
		{"zero days", models.TripRequest{Destination: "Bali", Days: 0}, true},
		{"negative days", models.TripRequest{Destination: "Bali", Days: -2}, true},
		{"too many days", models.TripRequest{Destination: "Bali", Days: 31}, true},
		{"max days", models.TripRequest{Destination: "Bali", Days: 30}, false},
	}

	for _, tc := range cases {
		err := Validate(tc.req)
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if tc.wantErr && !domain.IsValidation(err) {
			t.Fatalf("%s: expected ValidationError, got %T", tc.name, err)
		}
	}
}
