package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalconnect/platform-api/internal/api/metrics"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// maxDocumentBytes caps uploads at 25 MiB.
const maxDocumentBytes = 25 << 20

// DocumentHandler handles HTTP requests for case documents.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// List handles GET /v1/cases/:id/documents. Participants only.
//
// @Summary      List case documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Case id"
// @Success      200  {array}   domain.Document
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/cases/{id}/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	documents, err := h.service.List(c.Request().Context(), c.Param("id"), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, documents)
}

// Upload handles POST /v1/cases/:id/documents: multipart form with a "file"
// part and an optional "folder" field.
//
// @Summary      Upload a document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true   "Case id"
// @Param        file    formData  file    true   "Document file"
// @Param        folder  formData  string  false  "Target folder"
// @Success      201     {object}  domain.Document
// @Failure      400     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      413     {object}  map[string]string
// @Router       /v1/cases/{id}/documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	if fileHeader.Size > maxDocumentBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	body, err := io.ReadAll(io.LimitReader(src, maxDocumentBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}

	document, err := h.service.Upload(c.Request().Context(), ports.UploadDocumentInput{
		Actor:       identity,
		CaseID:      c.Param("id"),
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Folder:      c.FormValue("folder"),
		Body:        body,
	})
	if err != nil {
		return err
	}

	metrics.DocumentsUploadedTotal.Inc()
	return c.JSON(http.StatusCreated, document)
}
