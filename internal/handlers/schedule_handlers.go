package handlers

import (
	"net/http"

	"catering_backend/internal/models"
	"catering_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetStaffAvailability(c *gin.Context) {
	listByParent(c, "Staff availability", "user", h.store.GetStaffAvailability)
}
func (h *Handler) CreateStaffAvailability(c *gin.Context) {
	create(c, "Staff availability", h.store.AddStaffAvailability)
}
func (h *Handler) UpdateStaffAvailability(c *gin.Context) {
	update(c, "Staff availability", h.store.UpdateStaffAvailability)
}
func (h *Handler) DeleteStaffAvailability(c *gin.Context) {
	remove(c, "Staff availability", h.store.DeleteStaffAvailability)
}

func (h *Handler) GetBlackoutDates(c *gin.Context) {
	listByParent(c, "Blackout dates", "user", h.store.GetBlackoutDates)
}
func (h *Handler) CreateBlackoutDate(c *gin.Context) { create(c, "Blackout date", h.store.AddBlackoutDate) }
func (h *Handler) DeleteBlackoutDate(c *gin.Context) { remove(c, "Blackout date", h.store.DeleteBlackoutDate) }

func (h *Handler) GetOpenShifts(c *gin.Context)   { list(c, "Open shifts", h.store.GetOpenShifts) }
func (h *Handler) GetOpenShift(c *gin.Context)    { getByID(c, "Open shift", h.store.GetOpenShift) }
func (h *Handler) CreateOpenShift(c *gin.Context) { create(c, "Open shift", h.store.AddOpenShift) }
func (h *Handler) UpdateOpenShift(c *gin.Context) { update(c, "Open shift", h.store.UpdateOpenShift) }
func (h *Handler) DeleteOpenShift(c *gin.Context) { remove(c, "Open shift", h.store.DeleteOpenShift) }

func (h *Handler) GetShiftBids(c *gin.Context)   { listByParent(c, "Shift bids", "shift", h.store.GetShiftBids) }
func (h *Handler) CreateShiftBid(c *gin.Context) { create(c, "Shift bid", h.store.AddShiftBid) }

// UpdateShiftBidStatusRequest is the body of a bid status change.
type UpdateShiftBidStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateShiftBidStatus accepts or rejects a bid.
func (h *Handler) UpdateShiftBidStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "shift bid")
	if !ok {
		return
	}
	var req UpdateShiftBidStatusRequest
	if !bindJSON(c, &req, "UpdateShiftBidStatus") {
		return
	}
	if !models.ValidBidStatus(req.Status) {
		utils.RespondValidationFailed(c, "status must be one of pending, accepted, rejected")
		return
	}
	bid, err := h.store.UpdateShiftBidStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		utils.RespondWithStoreError(c, err, "Shift bid")
		return
	}
	c.JSON(http.StatusOK, bid)
}
