package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalconnect/platform-api/internal/api/metrics"
	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
	"github.com/legalconnect/platform-api/internal/infrastructure/queue"
)

// AutoReplier is the interface the handler uses to request simulated lawyer
// replies. Nil disables the feature.
type AutoReplier interface {
	Enqueue(job queue.ReplyJob)
}

// MessageHandler handles HTTP requests for case chat threads.
type MessageHandler struct {
	service ports.MessageService
	replies AutoReplier
}

func NewMessageHandler(service ports.MessageService, replies AutoReplier) *MessageHandler {
	return &MessageHandler{service: service, replies: replies}
}

type sendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type markReadResponse struct {
	Updated int `json:"updated"`
}

// List handles GET /v1/cases/:id/messages. Participants only.
//
// @Summary      List case messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Case id"
// @Success      200  {array}   domain.ChatMessage
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/cases/{id}/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	messages, err := h.service.List(c.Request().Context(), c.Param("id"), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Send handles POST /v1/cases/:id/messages. When simulated replies are on and
// a client writes, a canned lawyer acknowledgement follows shortly after.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Case id"
// @Param        body  body      sendMessageRequest  true  "Message text"
// @Success      201   {object}  domain.ChatMessage
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/cases/{id}/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caseID := c.Param("id")
	message, err := h.service.Send(c.Request().Context(), ports.SendMessageInput{
		Sender: identity,
		CaseID: caseID,
		Text:   req.Message,
	})
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.WithLabelValues(string(identity.Role)).Inc()
	if h.replies != nil && identity.Role == domain.RoleClient {
		h.replies.Enqueue(queue.ReplyJob{CaseID: caseID})
	}
	return c.JSON(http.StatusCreated, message)
}

// MarkRead handles POST /v1/cases/:id/messages/read: marks the counterpart's
// messages on the thread as read.
//
// @Summary      Mark case messages read
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Case id"
// @Success      200  {object}  markReadResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/cases/{id}/messages/read [post]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	updated, err := h.service.MarkRead(c.Request().Context(), c.Param("id"), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, markReadResponse{Updated: updated})
}
