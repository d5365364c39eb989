package delivery_service

import (
	"sync"

	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
)

type DeliveryServiceDebug struct {
	mu      sync.Mutex
	enabled bool
	data    []domain.DebugInfo
}

func newDebug(enabled bool) *DeliveryServiceDebug {
	return &DeliveryServiceDebug{
		enabled: enabled,
		data:    make([]domain.DebugInfo, 0),
	}
}

func (d *DeliveryServiceDebug) AddDebugInfo(info domain.DebugInfo) {
	if !d.enabled {
		return
	}
	d.mu.Lock()
	d.data = append(d.data, info)
	d.mu.Unlock()
}

func (d *DeliveryServiceDebug) Data() []domain.DebugInfo {
	if !d.enabled {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.DebugInfo(nil), d.data...)
}
