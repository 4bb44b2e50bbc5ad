package handlers

import (
	"net/http"

	"tripplanner/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GetPlanPDF returns the stored itinerary as a downloadable PDF.
// Only valid when the session is Ready; the file is never stored server-side.
func GetPlanPDF(c *gin.Context) {
	if !mustSession(c) {
		return
	}
	sess := middleware.GetSession(c)

	pdfBytes, filename, err := plannerService(c).Export(sess)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
