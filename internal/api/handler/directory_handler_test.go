package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/legalconnect/platform-api/internal/core/ports"
	"github.com/legalconnect/platform-api/internal/core/service"
)

func directoryGet(t *testing.T, handlerFn echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handlerFn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	return rec
}

func TestDirectoryHandler_LawyersUnfiltered(t *testing.T) {
	handler := NewDirectoryHandler(service.NewDirectoryService())

	rec := directoryGet(t, handler.Lawyers, "/v1/directory/lawyers")

	var lawyers []ports.LawyerProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &lawyers); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(lawyers) == 0 {
		t.Fatalf("expected a non-empty roster")
	}
}

func TestDirectoryHandler_LawyersFiltered(t *testing.T) {
	handler := NewDirectoryHandler(service.NewDirectoryService())

	tests := []struct {
		name   string
		target string
		check  func(t *testing.T, lawyers []ports.LawyerProfile)
	}{
		{
			name:   "by specialty, case-insensitive",
			target: "/v1/directory/lawyers?specialty=criminal%20law",
			check: func(t *testing.T, lawyers []ports.LawyerProfile) {
				if len(lawyers) == 0 {
					t.Fatalf("expected at least one criminal lawyer")
				}
				for _, l := range lawyers {
					if l.Specialty != "Criminal Law" {
						t.Fatalf("filter leaked %q", l.Specialty)
					}
				}
			},
		},
		{
			name:   "by location",
			target: "/v1/directory/lawyers?location=New%20York,%20NY",
			check: func(t *testing.T, lawyers []ports.LawyerProfile) {
				if len(lawyers) == 0 {
					t.Fatalf("expected at least one New York lawyer")
				}
				for _, l := range lawyers {
					if l.Location != "New York, NY" {
						t.Fatalf("filter leaked %q", l.Location)
					}
				}
			},
		},
		{
			name:   "no match",
			target: "/v1/directory/lawyers?specialty=Maritime%20Law",
			check: func(t *testing.T, lawyers []ports.LawyerProfile) {
				if len(lawyers) != 0 {
					t.Fatalf("expected empty result, got %d", len(lawyers))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := directoryGet(t, handler.Lawyers, tt.target)

			var lawyers []ports.LawyerProfile
			if err := json.Unmarshal(rec.Body.Bytes(), &lawyers); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			tt.check(t, lawyers)
		})
	}
}

func TestDirectoryHandler_CatalogEndpoints(t *testing.T) {
	handler := NewDirectoryHandler(service.NewDirectoryService())

	endpoints := map[string]echo.HandlerFunc{
		"/v1/directory/testimonials": handler.Testimonials,
		"/v1/directory/faqs":         handler.FAQs,
		"/v1/directory/services":     handler.Services,
		"/v1/directory/specialties":  handler.Specialties,
		"/v1/directory/cities":       handler.Cities,
	}
	for target, fn := range endpoints {
		rec := directoryGet(t, fn, target)

		var payload []json.RawMessage
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("%s: invalid json: %v", target, err)
		}
		if len(payload) == 0 {
			t.Fatalf("%s: expected non-empty catalog", target)
		}
	}
}
