package handlers

import (
	"net/http"
	"strconv"

	"tripplanner/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/archive?limit=20
// Daftar itinerary yang pernah digenerate. Hanya aktif bila DB dikonfigurasi.
func ListArchive(c *gin.Context) {
	repo := repositories.ArchiveRepository{}
	if !repo.Enabled() {
		respondError(c, http.StatusServiceUnavailable, "archive_disabled", "arsip itinerary tidak dikonfigurasi", nil)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := repo.ListRecent(limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}
