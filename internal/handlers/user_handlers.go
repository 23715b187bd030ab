package handlers

import (
	"net/http"
	"strings"

	"catering_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetUsers lists users, or looks one up when an email query parameter is given.
func (h *Handler) GetUsers(c *gin.Context) {
	email := c.Query("email")
	if utils.IsEmpty(email) {
		list(c, "Users", h.store.GetUsers)
		return
	}
	email = strings.TrimSpace(email)
	if !utils.IsValidEmail(email) {
		utils.RespondValidationFailed(c, "email is not a valid address")
		return
	}
	user, err := h.store.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		utils.RespondWithStoreError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) GetUser(c *gin.Context)    { getByID(c, "User", h.store.GetUser) }
func (h *Handler) CreateUser(c *gin.Context) { create(c, "User", h.store.AddUser) }
func (h *Handler) UpdateUser(c *gin.Context) { update(c, "User", h.store.UpdateUser) }
func (h *Handler) DeleteUser(c *gin.Context) { remove(c, "User", h.store.DeleteUser) }
