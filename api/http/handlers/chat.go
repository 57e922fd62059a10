package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/lifeadvisor/api/http/presenter"
	"github.com/artem13815/lifeadvisor/pkg/advisor"
	"github.com/artem13815/lifeadvisor/pkg/metrics"
)

type ChatHandler struct {
	svc     advisor.Service
	metrics *metrics.Collector
}

func NewChatHandler(svc advisor.Service, m *metrics.Collector) *ChatHandler {
	return &ChatHandler{svc: svc, metrics: m}
}

type chatRequest struct {
	// Pointer so an absent field is told apart from an empty string.
	Message *string `json:"message"`
}

// Chat forwards one message to the advisor model and relays its reply.
// @Summary Ask the life advisor
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   input body chatRequest true "user message"
// @Success 200 {object} presenter.ChatResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		h.metrics.RecordChat(metrics.OutcomeMalformed)
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Message == nil {
		h.metrics.RecordChat(metrics.OutcomeMalformed)
		return presenter.Error(c, http.StatusBadRequest, advisor.ErrMalformedRequest.Error())
	}

	reply, err := h.svc.Reply(c.Context(), *req.Message)
	if err != nil {
		if errors.Is(err, advisor.ErrExternalService) {
			h.metrics.RecordChat(metrics.OutcomeUpstreamError)
			return presenter.Error(c, http.StatusBadGateway, err.Error())
		}
		h.metrics.RecordChat(metrics.OutcomeInternal)
		return err
	}

	h.metrics.RecordChat(metrics.OutcomeOK)
	return presenter.JSON(c, http.StatusOK, presenter.ChatResponse{Response: reply})
}
