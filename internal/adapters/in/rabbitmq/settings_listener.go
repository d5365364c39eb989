package rabbitmq

import (
	"context"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/checkout-delivery-slots/internal/config"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/in"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
)

type SettingsListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.DeliveryUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type (
	CacheHitType         string
	CacheHitResourceType string
)

type CacheMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType CacheHitResourceType
	CacheHitType CacheHitType
}

const (
	CacheHitResourceTypeAll      CacheHitResourceType = "_all_"
	CacheHitResourceTypeSettings CacheHitResourceType = "settings"
	CacheHitResourceTypeSlots    CacheHitResourceType = "slots"
)

const (
	CacheHitTypeStore      CacheHitType = "store"
	CacheHitTypeInvalidate CacheHitType = "invalidate"
)

func NewSettingsListener(useCase in.DeliveryUseCase, cfg *config.Config, logger out.LoggerPort) (*SettingsListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &SettingsListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *SettingsListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMQ.Bind,
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					l.logger.Warn("settings.queue.closed", out.LogFields{
						"queue": queue.Name,
					})
					return
				}
				if err := l.processMessage(ctx, msg.RoutingKey); err != nil {
					l.logger.Warn("settings.message.rejected", out.LogFields{
						"routingKey": msg.RoutingKey,
						"error":      err.Error(),
					})
					// Битый ключ не исправится при повторной доставке
					msg.Nack(false, false)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	l.logger.Info("settings.queue.started", out.LogFields{
		"queue":    queue.Name,
		"bind":     l.cfg.RabbitMQ.Bind,
		"exchange": l.cfg.RabbitMQ.Exchange,
	})

	return nil
}

func (l *SettingsListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

func (l *SettingsListener) processMessage(ctx context.Context, routingKey string) error {
	key, err := ParseCacheMessageRoutingKey(routingKey)
	if err != nil {
		return err
	}

	// store для этого сервиса ничем не отличается от invalidate: новые данные читаются из файла настроек
	if key.CacheHitType != CacheHitTypeInvalidate && key.CacheHitType != CacheHitTypeStore {
		l.logger.Debug("settings.message.skipped", out.LogFields{
			"routingKey": routingKey,
		})
		return nil
	}

	switch key.ResourceType {
	case CacheHitResourceTypeSettings, CacheHitResourceTypeAll:
		if err := l.useCase.InvalidateSettingsCache(ctx); err != nil {
			return err
		}
		l.logger.Info("settings.message.invalidated", out.LogFields{
			"source":         key.Source,
			"settings_cache": true,
			"slots_cache":    true,
		})
	case CacheHitResourceTypeSlots:
		if err := l.useCase.InvalidateAllSlotsCache(ctx); err != nil {
			return err
		}
		l.logger.Info("slots.message.invalidated", out.LogFields{
			"source":      key.Source,
			"slots_cache": true,
		})
	default:
		l.logger.Debug("settings.message.skipped", out.LogFields{
			"routingKey": routingKey,
		})
	}

	return nil
}

// Пример routingKey:
// woocommerce.delivery-slots-svc.settings.invalidate
// woocommerce.delivery-slots-svc.slots.invalidate
// woocommerce.delivery-slots-svc._all_.invalidate
func ParseCacheMessageRoutingKey(routingKey string) (CacheMessageRoutingKey, error) {
	parts := strings.Split(routingKey, ".")

	if len(parts) != 4 {
		return CacheMessageRoutingKey{}, fmt.Errorf("invalid routing key: %s", routingKey)
	}

	return CacheMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: CacheHitResourceType(parts[2]),
		CacheHitType: CacheHitType(parts[3]),
	}, nil
}
