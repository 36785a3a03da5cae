package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalconnect/platform-api/internal/api/metrics"
	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for consultation bookings.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type bookAppointmentRequest struct {
	LawyerID   string `json:"lawyerId"   validate:"required"`
	LawyerName string `json:"lawyerName" validate:"required"`
	Date       string `json:"date"       validate:"required,datetime=2006-01-02"`
	Time       string `json:"time"       validate:"required"`
	Duration   int    `json:"duration"   validate:"required,gt=0"`
	Notes      string `json:"notes,omitempty"`
	CaseType   string `json:"caseType"   validate:"required"`
}

type updateAppointmentRequest struct {
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Duration *int    `json:"duration,omitempty"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	MeetLink *string `json:"meetLink,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// List handles GET /v1/appointments: the caller's own bookings.
//
// @Summary      List my appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Appointment
// @Failure      401  {object}  map[string]string
// @Router       /v1/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	appointments, err := h.service.List(c.Request().Context(), identity.UserID, identity.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Book handles POST /v1/appointments. Clients only; the booking starts in
// pending until the lawyer confirms.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookAppointmentRequest  true  "Booking details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		Client:     identity,
		LawyerID:   req.LawyerID,
		LawyerName: req.LawyerName,
		Date:       req.Date,
		Time:       req.Time,
		Duration:   req.Duration,
		Notes:      req.Notes,
		CaseType:   req.CaseType,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsBookedTotal.WithLabelValues(appointment.CaseType).Inc()
	return c.JSON(http.StatusCreated, appointment)
}

// Update handles PATCH /v1/appointments/:id: confirm, cancel, reschedule.
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Appointment id"
// @Param        body  body      updateAppointmentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/appointments/{id} [patch]
func (h *AppointmentHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.AppointmentPatch{
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
		MeetLink: req.MeetLink,
		Notes:    req.Notes,
	}
	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		patch.Status = &status
	}

	appointment, err := h.service.Update(c.Request().Context(), c.Param("id"), patch, identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}
