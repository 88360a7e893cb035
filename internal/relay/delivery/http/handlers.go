package http

import (
	"github.com/gin-gonic/gin"

	"relay-srv/pkg/response"
)

// ListOutcomes - Handler for GET /relay/outcomes
func (h *handler) ListOutcomes(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListOutcomesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	outcomes, pag, err := h.uc.ListOutcomes(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "relay.delivery.http.ListOutcomes: ListOutcomes failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListOutcomesResp(outcomes, pag))
}

// DetailOutcome - Handler for GET /relay/outcomes/:id
func (h *handler) DetailOutcome(c *gin.Context) {
	ctx := c.Request.Context()

	outcome, err := h.uc.DetailOutcome(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "relay.delivery.http.DetailOutcome: DetailOutcome failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newOutcomeResp(outcome))
}

// GetStatistics - Handler for GET /relay/statistics
func (h *handler) GetStatistics(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.GetStatistics(ctx)
	if err != nil {
		h.l.Errorf(ctx, "relay.delivery.http.GetStatistics: GetStatistics failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatisticsResp(stats))
}

// Redrive - Handler for POST /relay/internal/redrive
func (h *handler) Redrive(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRedriveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	outcome, err := h.uc.Redrive(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "relay.delivery.http.Redrive: Redrive failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRedriveResp(outcome))
}
