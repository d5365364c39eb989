package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
)

var errInvalidMethodIndex = errors.New("rateId or methodIndex is required")

func (c *DeliveryController) writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidTime), errors.Is(err, errInvalidMethodIndex):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrMethodNotFound), errors.Is(err, domain.ErrPickupDisabled):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		c.logger.Error("http.request.failed", out.LogFields{
			"path":      ctx.FullPath(),
			"requestId": ctx.GetString(requestIDKey),
			"error":     err.Error(),
		})
	}

	ctx.JSON(status, gin.H{"error": err.Error()})
}
