package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processListOutcomesReq(c *gin.Context) (listOutcomesReq, error) {
	var req listOutcomesReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "relay.delivery.http.processListOutcomesReq: ShouldBindQuery failed: %v", err)
		return req, err
	}

	if err := req.validate(); err != nil {
		h.l.Errorf(ctx, "relay.delivery.http.processListOutcomesReq: validate failed: %v", err)
		return req, err
	}

	return req, nil
}

func (h *handler) processRedriveReq(c *gin.Context) (redriveReq, error) {
	var req redriveReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "relay.delivery.http.processRedriveReq: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}
