package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/suchimauz/checkout-delivery-slots/internal/config"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/json_types"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/in"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
)

const slotsPlaceholder = "Select delivery time"

// HTTPMetrics метрики запросов и отдача /metrics, может быть nil
type HTTPMetrics interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
	Handler() http.Handler
}

type DeliveryController struct {
	useCase in.DeliveryUseCase
	cfg     *config.Config
	metrics HTTPMetrics
	limiter *clientRateLimiter
	logger  out.LoggerPort
}

func NewDeliveryController(useCase in.DeliveryUseCase, cfg *config.Config, metrics HTTPMetrics, logger out.LoggerPort) *DeliveryController {
	return &DeliveryController{
		useCase: useCase,
		cfg:     cfg,
		metrics: metrics,
		limiter: newClientRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, cfg.RateLimit.Clients),
		logger:  logger,
	}
}

func (c *DeliveryController) RegisterRoutes(router *gin.Engine) {
	router.Use(c.requestID(), c.requestLogger())
	if c.metrics != nil {
		router.Use(c.requestMetrics())
		router.GET("/metrics", gin.WrapH(c.metrics.Handler()))
	}
	router.GET("/health", c.health)

	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/rates", c.getRates)
		api.GET("/pickup/slots", c.rateLimit(), c.getPickupSlots)
		api.GET("/slots", c.rateLimit(), c.getSlots)
		api.POST("/selections/validate", c.validateSelection)
		api.POST("/orders/finalize", c.finalizeDelivery)
		api.GET("/accounting/services", c.getAccountingServices)
		api.POST("/cache/invalidate", c.invalidateCache)
	}
}

type SlotsResponse struct {
	Placeholder string             `json:"placeholder"`
	Description string             `json:"description,omitempty"`
	Options     []domain.Slot      `json:"options"`
	Debug       []domain.DebugInfo `json:"debug,omitempty"`
}

type SelectionRequest struct {
	RateID      string          `json:"rateId"`
	MethodIndex *int            `json:"methodIndex"`
	Pickup      bool            `json:"pickup"`
	Date        json_types.Date `json:"date"`
	Time        string          `json:"time"`
}

type FinalizeRequest struct {
	SelectionRequest
	OrderID   uuid.UUID       `json:"orderId"`
	CartTotal decimal.Decimal `json:"cartTotal"`
}

func (c *DeliveryController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": c.cfg.App.Version,
	})
}

func (c *DeliveryController) getRates(ctx *gin.Context) {
	total := decimal.Zero
	if raw := ctx.Query("total"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart total"})
			return
		}
		total = parsed
	}

	quotes, err := c.useCase.QuoteRates(ctx.Request.Context(), domain.CartContext{Total: total})
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rates": quotes})
}

func (c *DeliveryController) getSlots(ctx *gin.Context) {
	methodIndex, pickup, err := resolveRate(ctx.Query("rateId"), ctx.Query("methodIndex"))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	if pickup {
		c.getPickupSlots(ctx)
		return
	}

	date, err := json_types.ParseDate(ctx.Query("date"))
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	req := in.SlotRequest{
		MethodIndex: methodIndex,
		Date:        date,
		Debug:       ctx.Query("debug") == "true",
	}

	if raw := ctx.Query("dayType"); raw != "" {
		dayType := domain.DayType(raw)
		if dayType != domain.DayTypeWeekday && dayType != domain.DayTypeWeekend {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day type"})
			return
		}
		req.DayTypeOverride = &dayType
	}

	slots, debug, err := c.useCase.GetSlots(ctx.Request.Context(), req)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SlotsResponse{
		Placeholder: slotsPlaceholder,
		Options:     slots,
		Debug:       debug,
	})
}

func (c *DeliveryController) getPickupSlots(ctx *gin.Context) {
	date, err := json_types.ParseDate(ctx.Query("date"))
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	pickup, err := c.useCase.GetPickupSlots(ctx.Request.Context(), date)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SlotsResponse{
		Placeholder: slotsPlaceholder,
		Description: pickup.Description,
		Options:     pickup.Slots,
	})
}

func (c *DeliveryController) validateSelection(ctx *gin.Context) {
	var req SelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Date.Date.IsZero() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Date is required"})
		return
	}

	selection, err := req.toSelection()
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	verdict, err := c.useCase.ValidateSelection(ctx.Request.Context(), selection)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	if !verdict.OK {
		ctx.JSON(http.StatusUnprocessableEntity, verdict)
		return
	}

	ctx.JSON(http.StatusOK, verdict)
}

func (c *DeliveryController) finalizeDelivery(ctx *gin.Context) {
	var req FinalizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	selection, err := req.toSelection()
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	orderID := req.OrderID
	if orderID == uuid.Nil {
		orderID = uuid.New()
	}

	result, err := c.useCase.FinalizeDelivery(ctx.Request.Context(), in.FinalizeRequest{
		OrderID:   orderID,
		Selection: selection,
		Cart:      domain.CartContext{Total: req.CartTotal},
	})
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *DeliveryController) getAccountingServices(ctx *gin.Context) {
	services, err := c.useCase.GetAccountingServices(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"services": services})
}

func (c *DeliveryController) invalidateCache(ctx *gin.Context) {
	if err := c.useCase.InvalidateSettingsCache(ctx.Request.Context()); err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (r SelectionRequest) toSelection() (domain.Selection, error) {
	index := ""
	if r.MethodIndex != nil {
		index = strconv.Itoa(*r.MethodIndex)
	}

	methodIndex, pickup, err := resolveRate(r.RateID, index)
	if err != nil && !r.Pickup {
		return domain.Selection{}, err
	}

	selection := domain.Selection{
		MethodIndex: methodIndex,
		Pickup:      pickup || r.Pickup,
		Date:        r.Date.Date,
	}

	if !selection.Date.IsZero() {
		selection.Time, err = domain.ParseTimeOfDay(r.Time)
		if err != nil {
			return domain.Selection{}, err
		}
	}

	return selection, nil
}

// resolveRate rateId имеет приоритет над methodIndex
func resolveRate(rateID, methodIndex string) (int, bool, error) {
	if rateID != "" {
		return domain.ParseRateID(rateID)
	}

	index, err := strconv.Atoi(methodIndex)
	if err != nil || index < 0 {
		return 0, false, errInvalidMethodIndex
	}
	return index, false, nil
}
