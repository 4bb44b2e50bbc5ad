package handlers

import (
	"net/http"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/planner"
	"tripplanner/internal/utils"

	"github.com/gin-gonic/gin"
)

// tripRequestPayload accepts interests/constraints both as arrays and as
// free text (comma/newline separated), matching the form's multi-select.
type tripRequestPayload struct {
	Destination    string   `json:"destination"`
	Days           int      `json:"days"`
	Interests      []string `json:"interests"`
	InterestsRaw   string   `json:"interests_text"`
	Constraints    []string `json:"constraints"`
	ConstraintsRaw string   `json:"constraints_text"`
}

func (p tripRequestPayload) toModel() models.TripRequest {
	interests := p.Interests
	if len(interests) == 0 {
		interests = utils.SplitTagList(p.InterestsRaw)
	}
	constraints := p.Constraints
	if len(constraints) == 0 {
		constraints = utils.SplitTagList(p.ConstraintsRaw)
	}
	return models.TripRequest{
		Destination: utils.NormalizeSpace(utils.TrimOrEmpty(p.Destination)),
		Days:        p.Days,
		Interests:   interests,
		Constraints: constraints,
	}
}

type planResponse struct {
	State     models.SessionState `json:"state"`
	Request   *models.TripRequest `json:"request,omitempty"`
	Itinerary *models.Itinerary   `json:"itinerary,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// POST /api/plan
func SubmitPlan(c *gin.Context) {
	if !mustSession(c) {
		return
	}
	var payload tripRequestPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	sess := middleware.GetSession(c)
	svc := plannerService(c)

	itinerary, err := svc.Submit(c.Request.Context(), sess, payload.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	snap := svc.Store.Snapshot(sess)
	c.JSON(http.StatusOK, planResponse{
		State:     snap.State,
		Request:   snap.Request,
		Itinerary: &itinerary,
	})
}

// GET /api/plan
func GetPlan(c *gin.Context) {
	if !mustSession(c) {
		return
	}
	sess := middleware.GetSession(c)
	snap := plannerService(c).Store.Snapshot(sess)

	c.JSON(http.StatusOK, planResponse{
		State:     snap.State,
		Request:   snap.Request,
		Itinerary: snap.Itinerary,
		Error:     snap.LastError,
	})
}

// POST /api/plan/reset
func ResetPlan(c *gin.Context) {
	if !mustSession(c) {
		return
	}
	sess := middleware.GetSession(c)
	plannerService(c).Reset(sess)

	c.JSON(http.StatusOK, planResponse{State: models.StateIdle})
}

// PlanLimits exposes the form bounds so the frontend does not hardcode them.
func PlanLimits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"min_days": planner.MinDays,
		"max_days": planner.MaxDays,
	})
}
