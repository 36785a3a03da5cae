package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/legalconnect/platform-api/internal/core/ports"
)

// DirectoryHandler serves the public marketing catalog. No auth required.
type DirectoryHandler struct {
	directory ports.Directory
}

func NewDirectoryHandler(directory ports.Directory) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// Lawyers handles GET /v1/directory/lawyers with optional specialty and
// location query filters.
//
// @Summary      Browse the lawyer roster
// @Tags         directory
// @Produce      json
// @Param        specialty  query     string  false  "Filter by specialty"
// @Param        location   query     string  false  "Filter by city"
// @Success      200        {array}   ports.LawyerProfile
// @Router       /v1/directory/lawyers [get]
func (h *DirectoryHandler) Lawyers(c echo.Context) error {
	specialty := c.QueryParam("specialty")
	location := c.QueryParam("location")

	lawyers := h.directory.Lawyers()
	if specialty == "" && location == "" {
		return c.JSON(http.StatusOK, lawyers)
	}

	filtered := make([]ports.LawyerProfile, 0, len(lawyers))
	for _, l := range lawyers {
		if specialty != "" && !strings.EqualFold(l.Specialty, specialty) {
			continue
		}
		if location != "" && !strings.EqualFold(l.Location, location) {
			continue
		}
		filtered = append(filtered, l)
	}
	return c.JSON(http.StatusOK, filtered)
}

// Testimonials handles GET /v1/directory/testimonials.
//
// @Summary      List client testimonials
// @Tags         directory
// @Produce      json
// @Success      200  {array}  ports.Testimonial
// @Router       /v1/directory/testimonials [get]
func (h *DirectoryHandler) Testimonials(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.Testimonials())
}

// FAQs handles GET /v1/directory/faqs.
//
// @Summary      List frequently asked questions
// @Tags         directory
// @Produce      json
// @Success      200  {array}  ports.FAQ
// @Router       /v1/directory/faqs [get]
func (h *DirectoryHandler) FAQs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.FAQs())
}

// Services handles GET /v1/directory/services.
//
// @Summary      List platform service offerings
// @Tags         directory
// @Produce      json
// @Success      200  {array}  ports.ServiceOffering
// @Router       /v1/directory/services [get]
func (h *DirectoryHandler) Services(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.Services())
}

// Specialties handles GET /v1/directory/specialties.
//
// @Summary      List legal specialties
// @Tags         directory
// @Produce      json
// @Success      200  {array}  string
// @Router       /v1/directory/specialties [get]
func (h *DirectoryHandler) Specialties(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.Specialties())
}

// Cities handles GET /v1/directory/cities.
//
// @Summary      List covered cities
// @Tags         directory
// @Produce      json
// @Success      200  {array}  string
// @Router       /v1/directory/cities [get]
func (h *DirectoryHandler) Cities(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.Cities())
}
