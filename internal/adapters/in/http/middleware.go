package http

import (
	"crypto/subtle"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"

	defaultRateLimitClients = 10000
)

func (c *DeliveryController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth || !c.isKnownClient(username, password) {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Next()
	}
}

func (c *DeliveryController) isKnownClient(username, password string) bool {
	for _, client := range c.cfg.Auth.BasicClients {
		if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
			subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
			return true
		}
	}
	return false
}

func (c *DeliveryController) requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		ctx.Set(requestIDKey, requestID)
		ctx.Header(requestIDHeader, requestID)
		ctx.Next()
	}
}

func (c *DeliveryController) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		fields := out.LogFields{
			"method":    ctx.Request.Method,
			"path":      ctx.Request.URL.Path,
			"status":    ctx.Writer.Status(),
			"latencyMs": time.Since(start).Milliseconds(),
			"requestId": ctx.GetString(requestIDKey),
			"clientIp":  ctx.ClientIP(),
		}
		if ctx.Writer.Status() >= http.StatusInternalServerError {
			c.logger.Warn("http.request.completed", fields)
			return
		}
		c.logger.Debug("http.request.completed", fields)
	}
}

func (c *DeliveryController) requestMetrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		c.metrics.ObserveHTTPRequest(ctx.Request.Method, path, ctx.Writer.Status(), time.Since(start))
	}
}

func (c *DeliveryController) rateLimit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !c.limiter.allow(ctx.ClientIP()) {
			c.logger.Warn("http.rate_limit.exceeded", out.LogFields{
				"clientIp":  ctx.ClientIP(),
				"path":      ctx.FullPath(),
				"requestId": ctx.GetString(requestIDKey),
			})
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}

		ctx.Next()
	}
}

// clientRateLimiter ограничение запросов слотов по IP клиента.
// Слоты запрашиваются при каждой смене даты в форме, поэтому лимит на минуту, а не на секунду.
// Давно не появлявшиеся клиенты вытесняются из LRU.
type clientRateLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func newClientRateLimiter(perMinute, burst, maxClients int) *clientRateLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	if maxClients <= 0 {
		maxClients = defaultRateLimitClients
	}

	limiters, err := lru.New[string, *rate.Limiter](maxClients)
	if err != nil {
		return nil
	}

	return &clientRateLimiter{
		limiters: limiters,
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
}

func (l *clientRateLimiter) allow(clientIP string) bool {
	if l == nil {
		return true
	}

	l.mu.Lock()
	limiter, exists := l.limiters.Get(clientIP)
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(clientIP, limiter)
	}
	l.mu.Unlock()

	return limiter.Allow()
}
