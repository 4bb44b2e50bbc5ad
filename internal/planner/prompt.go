package planner

import (
	"fmt"
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

// Batas durasi trip yang diterima form.
const (
	MinDays = 1
	MaxDays = 30
)

// SystemPrompt pins the guide persona and the section layout of the
// generated plan so the PDF renderer can rely on H2 headings.
const SystemPrompt = `You are an expert AI TRAVEL GUIDE and itinerary planner.
Requirements:
- Create a realistic, day-by-day travel plan.
- Respect user interests and guardrails strictly.
- Avoid unsafe, inaccessible, or disallowed activities.
- Keep pacing realistic (avoid overloading days).
- Use clear, engaging, travel-friendly language.
Output format in Markdown with these top-level H2 sections (##):
  ## Trip Overview
  ## Day-by-Day Itinerary
  ## Recommended Dining & Local Eats
  ## Travel Tips & Safety Notes
  ## Packing Essentials`

// Validate rejects requests that must never reach the generation service.
func Validate(req models.TripRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return domain.ValidationError{Field: "destination", Msg: "destinasi wajib diisi"}
	}
	if req.Days < MinDays {
		return domain.ValidationError{Field: "days", Msg: "jumlah hari minimal 1"}
	}
	if req.Days > MaxDays {
		return domain.ValidationError{Field: "days", Msg: fmt.Sprintf("jumlah hari maksimal %d", MaxDays)}
	}
	return nil
}

// BuildUserPrompt turns a validated TripRequest into the single instruction
// string sent to the generation model.
func BuildUserPrompt(req models.TripRequest) string {
	interests := joinTags(req.Interests)
	if interests == "" {
		interests = "General sightseeing"
	}
	guardrails := joinTags(req.Constraints)
	if guardrails == "" {
		guardrails = "None"
	}

	var b strings.Builder
	b.WriteString("TRAVEL DETAILS\n")
	fmt.Fprintf(&b, "- Destination: %s\n", strings.TrimSpace(req.Destination))
	fmt.Fprintf(&b, "- Number of days: %d\n\n", req.Days)
	b.WriteString("INTERESTS\n")
	b.WriteString(interests)
	b.WriteString("\n\nGUARDRAILS / CONSTRAINTS\n")
	b.WriteString(guardrails)
	b.WriteString("\n\nINSTRUCTIONS\n")
	b.WriteString("- Divide the itinerary clearly by day (Day 1, Day 2, etc.).\n")
	b.WriteString("- Suggest kid-friendly and accessible options if requested.\n")
	b.WriteString("- Do not violate any stated guardrails.\n")
	b.WriteString("- Keep total length readable (800-1300 words).")
	return b.String()
}

func joinTags(tags []string) string {
	out := []string{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ", ")
}
