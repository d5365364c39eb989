package moysklad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/suchimauz/checkout-delivery-slots/internal/config"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
)

var ErrTokenNotConfigured = errors.New("moysklad token is not configured")

type MoySkladAdapter struct {
	client  *http.Client
	baseURL string
	token   string
	logger  out.LoggerPort
}

var _ out.AccountingPort = (*MoySkladAdapter)(nil)

type serviceListResponse struct {
	Rows []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"rows"`
}

func NewMoySkladAdapter(cfg *config.Config, logger out.LoggerPort) *MoySkladAdapter {
	return &MoySkladAdapter{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(cfg.MoySklad.URL, "/"),
		token:   cfg.MoySklad.Token,
		logger:  logger.WithModule("MoySkladAdapter"),
	}
}

func (a *MoySkladAdapter) GetServices(ctx context.Context) ([]domain.AccountingService, error) {
	a.logger.Info("moysklad.services.fetch", out.LogFields{})

	if a.token == "" {
		a.logger.Warn("moysklad.services.token_missing", out.LogFields{})
		return nil, ErrTokenNotConfigured
	}

	url := fmt.Sprintf("%s/entity/service", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("moysklad.services.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+a.token)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("moysklad.services.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("moysklad.services.fetch_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response serviceListResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		a.logger.Error("moysklad.services.decode_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	services := make([]domain.AccountingService, 0, len(response.Rows))
	for _, row := range response.Rows {
		services = append(services, domain.AccountingService{
			ID:   row.ID,
			Name: row.Name,
		})
	}

	a.logger.Debug("moysklad.services.fetch_success", out.LogFields{
		"servicesCount": len(services),
	})

	return services, nil
}

func (a *MoySkladAdapter) ServiceHref(serviceID string) string {
	return fmt.Sprintf("%s/entity/service/%s", a.baseURL, serviceID)
}
