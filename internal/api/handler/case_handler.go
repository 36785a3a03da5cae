package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalconnect/platform-api/internal/api/metrics"
	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// CaseHandler handles HTTP requests for legal cases.
type CaseHandler struct {
	service ports.CaseService
}

func NewCaseHandler(service ports.CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

type openCaseRequest struct {
	ClientID    string `json:"clientId"    validate:"required"`
	ClientName  string `json:"clientName"  validate:"required"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type"        validate:"required"`
	Status      string `json:"status,omitempty"   validate:"omitempty,oneof=active closed pending"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Progress    int    `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
}

type updateCaseRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	Status      *string `json:"status,omitempty"   validate:"omitempty,oneof=active closed pending"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Progress    *int    `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
}

// List handles GET /v1/cases: the caller's own cases.
//
// @Summary      List my cases
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Case
// @Failure      401  {object}  map[string]string
// @Router       /v1/cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	cases, err := h.service.List(c.Request().Context(), identity.UserID, identity.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// Get handles GET /v1/cases/:id. Participants only.
//
// @Summary      Get a case
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Case id"
// @Success      200  {object}  domain.Case
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/cases/{id} [get]
func (h *CaseHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	legalCase, err := h.service.Get(c.Request().Context(), c.Param("id"), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, legalCase)
}

// Open handles POST /v1/cases. Lawyers only.
//
// @Summary      Open a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      openCaseRequest  true  "Case details"
// @Success      201   {object}  domain.Case
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/cases [post]
func (h *CaseHandler) Open(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req openCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	legalCase, err := h.service.Open(c.Request().Context(), ports.OpenCaseInput{
		Lawyer:      identity,
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Status:      domain.CaseStatus(req.Status),
		Priority:    domain.CasePriority(req.Priority),
		Progress:    req.Progress,
	})
	if err != nil {
		return err
	}

	metrics.CasesOpenedTotal.WithLabelValues(legalCase.Type).Inc()
	return c.JSON(http.StatusCreated, legalCase)
}

// Update handles PATCH /v1/cases/:id: progress, status, priority edits.
//
// @Summary      Update a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Case id"
// @Param        body  body      updateCaseRequest  true  "Fields to change"
// @Success      200   {object}  domain.Case
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/cases/{id} [patch]
func (h *CaseHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.CasePatch{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Progress:    req.Progress,
	}
	if req.Status != nil {
		status := domain.CaseStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.CasePriority(*req.Priority)
		patch.Priority = &priority
	}

	legalCase, err := h.service.Update(c.Request().Context(), c.Param("id"), patch, identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, legalCase)
}
