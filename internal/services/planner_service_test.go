package services

import (
	"context"
	"testing"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/sessions"
)

type stubGenerator struct {
	text  string
	model string
	err   error
	calls int
}

func (g *stubGenerator) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, string, error) {
	g.calls++
	if g.err != nil {
		return "", "", g.err
	}
	return g.text, g.model, nil
}

func newTestService(gen *stubGenerator) (PlannerService, *sessions.Session) {
	store := sessions.NewStore("test-secret")
	sess, _, _ := store.Create()
	return PlannerService{Store: store, Generator: gen}, sess
}

func TestSubmitStoresItinerary(t *testing.T) {
	gen := &stubGenerator{text: "## Trip Overview\nDay 1: arrive", model: "gpt-4o"}
	svc, sess := newTestService(gen)

	it, err := svc.Submit(context.Background(), sess, models.TripRequest{Destination: "Paris", Days: 3})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if it.Text != gen.text {
		t.Fatalf("itinerary text mismatch: %q", it.Text)
	}

	snap := svc.Store.Snapshot(sess)
	if snap.State != models.StateReady {
		t.Fatalf("expected Ready, got %s", snap.State)
	}
	if snap.Itinerary == nil || snap.Itinerary.Text != gen.text {
		t.Fatalf("session did not store the generated text")
	}
	if snap.Itinerary.Model != "gpt-4o" {
		t.Fatalf("model not recorded: %q", snap.Itinerary.Model)
	}
}

func TestSubmitInvalidInputSkipsGenerator(t *testing.T) {
	cases := []models.TripRequest{
		{Destination: "", Days: 3},
		{Destination: "Paris", Days: 0},
		{Destination: "Paris", Days: -1},
	}

	for _, req := range cases {
		gen := &stubGenerator{text: "x", model: "m"}
		svc, sess := newTestService(gen)

		_, err := svc.Submit(context.Background(), sess, req)
		if !domain.IsValidation(err) {
			t.Fatalf("expected ValidationError for %+v, got %v", req, err)
		}
		if gen.calls != 0 {
			t.Fatalf("generator must not be invoked for invalid input %+v", req)
		}
		if svc.Store.Snapshot(sess).State != models.StateIdle {
			t.Fatalf("invalid input must leave session idle")
		}
	}
}

func TestSubmitFailureMarksFailedAndBlocksExport(t *testing.T) {
	gen := &stubGenerator{err: domain.UpstreamError{Msg: "koneksi putus"}}
	svc, sess := newTestService(gen)

	_, err := svc.Submit(context.Background(), sess, models.TripRequest{Destination: "Paris", Days: 2})
	if !domain.IsUpstream(err) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}

	snap := svc.Store.Snapshot(sess)
	if snap.State != models.StateFailed {
		t.Fatalf("expected Failed, got %s", snap.State)
	}
	if snap.LastError == "" {
		t.Fatalf("failed session should remember the error")
	}

	if _, _, err := svc.Export(sess); !domain.IsConflict(err) {
		t.Fatalf("export from Failed must conflict, got %v", err)
	}
}

func TestExportFromReady(t *testing.T) {
	gen := &stubGenerator{text: "Day 1: arrive\nDay 2: explore\nDay 3: depart", model: "gpt-4o"}
	svc, sess := newTestService(gen)

	if _, err := svc.Submit(context.Background(), sess, models.TripRequest{Destination: "Paris", Days: 3}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	pdf, filename, err := svc.Export(sess)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("Export returned empty PDF")
	}
	if filename != "Travel_Plan_Paris.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestExportFromIdleConflicts(t *testing.T) {
	svc, sess := newTestService(&stubGenerator{})
	if _, _, err := svc.Export(sess); !domain.IsConflict(err) {
		t.Fatalf("export from Idle must conflict, got %v", err)
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	for _, fail := range []bool{false, true} {
		gen := &stubGenerator{text: "plan", model: "m"}
		if fail {
			gen.err = domain.RateLimitError{}
		}
		svc, sess := newTestService(gen)

		_, _ = svc.Submit(context.Background(), sess, models.TripRequest{Destination: "Paris", Days: 1})

		svc.Reset(sess)
		snap := svc.Store.Snapshot(sess)
		if snap.State != models.StateIdle {
			t.Fatalf("reset should return to Idle, got %s", snap.State)
		}
		if snap.Request != nil || snap.Itinerary != nil || snap.LastError != "" {
			t.Fatalf("reset should clear stored request and result")
		}
	}
}
