package handlers

import (
	"context"
	"net/http"

	"catering_backend/internal/datastore"
	"catering_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Handler exposes a DataService over HTTP. It holds no state of its own.
type Handler struct {
	store datastore.DataService
}

// NewHandler creates a new Handler.
func NewHandler(store datastore.DataService) *Handler {
	return &Handler{store: store}
}

func parseID(c *gin.Context, param, what string) (int64, bool) {
	id, err := utils.ParseRecordID(c.Param(param))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+what+" ID format.", err.Error()))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst interface{}, what string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.LogError(err, what+": Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return false
	}
	return true
}

func list[T any](c *gin.Context, what string, fetch func(context.Context) ([]T, error)) {
	items, err := fetch(c.Request.Context())
	if err != nil {
		utils.RespondWithStoreError(c, err, what)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// listByParent lists the children of the record named by the ":id" path parameter.
func listByParent[T any](c *gin.Context, what, parent string, fetch func(context.Context, int64) ([]T, error)) {
	parentID, ok := parseID(c, "id", parent)
	if !ok {
		return
	}
	items, err := fetch(c.Request.Context(), parentID)
	if err != nil {
		utils.RespondWithStoreError(c, err, what)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

func getByID[T any](c *gin.Context, what string, fetch func(context.Context, int64) (*T, error)) {
	id, ok := parseID(c, "id", what)
	if !ok {
		return
	}
	item, err := fetch(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithStoreError(c, err, what)
		return
	}
	c.JSON(http.StatusOK, item)
}

func create[T any](c *gin.Context, what string, add func(context.Context, T) (*T, error)) {
	var payload T
	if !bindJSON(c, &payload, "Create "+what) {
		return
	}
	item, err := add(c.Request.Context(), payload)
	if err != nil {
		utils.RespondWithStoreError(c, err, what)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func update[T, P any](c *gin.Context, what string, apply func(context.Context, int64, P) (*T, error)) {
	id, ok := parseID(c, "id", what)
	if !ok {
		return
	}
	var patch P
	if !bindJSON(c, &patch, "Update "+what) {
		return
	}
	item, err := apply(c.Request.Context(), id, patch)
	if err != nil {
		utils.RespondWithStoreError(c, err, what)
		return
	}
	c.JSON(http.StatusOK, item)
}

func remove(c *gin.Context, what string, apply func(context.Context, int64) error) {
	id, ok := parseID(c, "id", what)
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), id); err != nil {
		utils.RespondWithStoreError(c, err, what)
		return
	}
	c.Status(http.StatusNoContent)
}
