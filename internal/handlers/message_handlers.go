package handlers

import (
	"net/http"

	"catering_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const maxAttachmentSize = 10 << 20

func (h *Handler) GetMessages(c *gin.Context) {
	listByParent(c, "Messages", "user", h.store.GetMessages)
}
func (h *Handler) CreateMessage(c *gin.Context) { create(c, "Message", h.store.AddMessage) }
func (h *Handler) DeleteMessage(c *gin.Context) { remove(c, "Message", h.store.DeleteMessage) }

// MarkMessageRead flags a message as read.
func (h *Handler) MarkMessageRead(c *gin.Context) {
	id, ok := parseID(c, "id", "message")
	if !ok {
		return
	}
	if err := h.store.MarkMessageRead(c.Request.Context(), id); err != nil {
		utils.RespondWithStoreError(c, err, "Message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

// UploadMessageAttachment takes a multipart "file" field and hands it to the store.
func (h *Handler) UploadMessageAttachment(c *gin.Context) {
	id, ok := parseID(c, "id", "message")
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		utils.RespondValidationFailed(c, "multipart field \"file\" is required")
		return
	}
	if fh.Size > maxAttachmentSize {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusRequestEntityTooLarge, utils.ErrCodeBadRequest, "Attachment too large.", "limit is 10 MiB"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		utils.LogError(err, "UploadMessageAttachment: Failed to open uploaded file")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Could not read uploaded file.", err.Error()))
		return
	}
	defer f.Close()

	att, err := h.store.UploadMessageAttachment(c.Request.Context(), id, fh.Filename, f)
	if err != nil {
		utils.RespondWithStoreError(c, err, "Message attachment")
		return
	}
	c.JSON(http.StatusCreated, att)
}
