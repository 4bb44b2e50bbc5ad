package services

import (
	"context"
	"fmt"
	"time"

	"tripplanner/internal/clients"
	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/planner"
	"tripplanner/internal/repositories"
	"tripplanner/internal/sessions"
	"tripplanner/internal/utils"
)

// PlannerService drives one session through
// Idle -> AwaitingResult -> Ready | Failed, and back to Idle on reset.
type PlannerService struct {
	Store     *sessions.Store
	Generator clients.TextGenerator
	Archive   repositories.ArchiveRepository
	RequestID string
}

// Submit validates the request, builds the prompt and performs the single
// generation call. Validation failures never reach the generator.
func (s PlannerService) Submit(ctx context.Context, sess *sessions.Session, req models.TripRequest) (models.Itinerary, error) {
	if err := planner.Validate(req); err != nil {
		return models.Itinerary{}, err
	}

	s.Store.Mutate(sess, func(cur *sessions.Session) {
		cur.State = models.StateAwaiting
		cur.Request = &req
		cur.Itinerary = nil
		cur.LastError = ""
	})

	utils.LogEvent(s.RequestID, "planner", "submit",
		fmt.Sprintf("session=%s destination=%s days=%d", sess.ID, req.Destination, req.Days))

	text, model, err := s.Generator.Complete(ctx, planner.SystemPrompt, planner.BuildUserPrompt(req))
	if err != nil {
		s.Store.Mutate(sess, func(cur *sessions.Session) {
			cur.State = models.StateFailed
			cur.LastError = err.Error()
		})
		utils.LogEvent(s.RequestID, "planner", "generate_failed",
			fmt.Sprintf("session=%s err=%v", sess.ID, err))
		return models.Itinerary{}, err
	}

	itinerary := models.Itinerary{
		Text:        text,
		Model:       model,
		GeneratedAt: time.Now(),
	}
	s.Store.Mutate(sess, func(cur *sessions.Session) {
		cur.State = models.StateReady
		cur.Itinerary = &itinerary
	})

	if s.Archive.Enabled() {
		_, archErr := s.Archive.Insert(models.ArchivedItinerary{
			SessionID:   sess.ID,
			Destination: req.Destination,
			Days:        req.Days,
			Model:       model,
			Text:        text,
			CreatedAt:   itinerary.GeneratedAt,
		})
		if archErr != nil {
			// arsip hanya pelengkap; kegagalan tidak membatalkan hasil
			utils.LogEvent(s.RequestID, "planner", "archive_failed",
				fmt.Sprintf("session=%s err=%v", sess.ID, archErr))
		}
	}

	utils.LogEvent(s.RequestID, "planner", "generate_ok",
		fmt.Sprintf("session=%s model=%s chars=%d", sess.ID, model, len(text)))
	return itinerary, nil
}

// Export renders the stored itinerary as PDF. Only valid from Ready.
func (s PlannerService) Export(sess *sessions.Session) ([]byte, string, error) {
	snap := s.Store.Snapshot(sess)
	if snap.State != models.StateReady || snap.Itinerary == nil || snap.Request == nil {
		return nil, "", domain.ConflictError{
			Resource: "itinerary",
			Msg:      fmt.Sprintf("belum ada itinerary yang siap (state=%s)", snap.State),
		}
	}

	utils.LogEvent(s.RequestID, "planner", "export_pdf", "session="+sess.ID)
	return DocsService{RequestID: s.RequestID}.GenerateItineraryPDF(snap.Request.Destination, *snap.Itinerary)
}

// Reset clears the stored request and result, returning the session to Idle.
func (s PlannerService) Reset(sess *sessions.Session) {
	s.Store.Mutate(sess, func(cur *sessions.Session) {
		cur.State = models.StateIdle
		cur.Request = nil
		cur.Itinerary = nil
		cur.LastError = ""
	})
	utils.LogEvent(s.RequestID, "planner", "reset", "session="+sess.ID)
}
