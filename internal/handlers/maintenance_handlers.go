package handlers

import (
	"net/http"

	"catering_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SeedSampleData replaces the sample data set.
func (h *Handler) SeedSampleData(c *gin.Context) {
	if err := h.store.SeedSampleData(c.Request.Context()); err != nil {
		utils.RespondWithStoreError(c, err, "Sample data")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sample data seeded"})
}

// ClearSampleData removes sample records and everything that depends on them.
func (h *Handler) ClearSampleData(c *gin.Context) {
	if err := h.store.ClearSampleData(c.Request.Context()); err != nil {
		utils.RespondWithStoreError(c, err, "Sample data")
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearAllData wipes the store. The request must carry ?confirm=true.
func (h *Handler) ClearAllData(c *gin.Context) {
	if c.Query("confirm") != "true" {
		utils.RespondValidationFailed(c, "pass confirm=true to delete all data")
		return
	}
	if err := h.store.ClearAllData(c.Request.Context()); err != nil {
		utils.RespondWithStoreError(c, err, "All data")
		return
	}
	c.Status(http.StatusNoContent)
}
