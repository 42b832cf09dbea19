package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stockyard/internal/common"
	"stockyard/internal/services"
)

type AttachmentHandlers struct {
	attachments services.AttachmentService
}

func NewAttachmentHandlers(attachments services.AttachmentService) *AttachmentHandlers {
	return &AttachmentHandlers{attachments: attachments}
}

func (h *AttachmentHandlers) Register(g *echo.Group) {
	g.POST("/items/:id/attachments", h.Upload)
	g.GET("/items/:id/attachments/:filename", h.Download)
	g.DELETE("/items/:id/attachments/:filename", h.Delete)
}

// Upload accepts a multipart form with a single "file" field.
func (h *AttachmentHandlers) Upload(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	itemID, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return common.RespondError(c, http.StatusBadRequest, "file field is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return common.RespondError(c, http.StatusBadRequest, "could not read uploaded file")
	}
	defer file.Close()

	key, err := h.attachments.Upload(
		c.Request().Context(), tid, itemID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"),
		file, fileHeader.Size,
	)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusCreated, map[string]string{"key": key})
}

func (h *AttachmentHandlers) Download(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	itemID, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	url, err := h.attachments.DownloadURL(c.Request().Context(), tid, itemID, c.Param("filename"))
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, map[string]string{"url": url})
}

func (h *AttachmentHandlers) Delete(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	itemID, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	if err := h.attachments.Delete(c.Request().Context(), tid, itemID, c.Param("filename")); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondMessage(c, http.StatusOK, "attachment deleted")
}
