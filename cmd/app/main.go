package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/checkout-delivery-slots/internal/adapters/in/http"
	"github.com/suchimauz/checkout-delivery-slots/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/checkout-delivery-slots/internal/adapters/out/cache"
	"github.com/suchimauz/checkout-delivery-slots/internal/adapters/out/logger"
	"github.com/suchimauz/checkout-delivery-slots/internal/adapters/out/metrics"
	"github.com/suchimauz/checkout-delivery-slots/internal/adapters/out/moysklad"
	"github.com/suchimauz/checkout-delivery-slots/internal/adapters/out/settings"
	"github.com/suchimauz/checkout-delivery-slots/internal/config"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/json_types"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/services/delivery_service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Календарные даты из запросов трактуются в таймзоне магазина
	json_types.Location = cfg.App.Location

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewZapLogger(cfg.IsLocal(), cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer mainLogger.Sync()
	logger := mainLogger.WithModule("Main")

	logger.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"settingsPath":    cfg.Settings.Path,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	settingsAdapter := settings.NewYamlSettingsAdapter(cfg, mainLogger.WithModule("SettingsAdapter"))
	moyskladAdapter := moysklad.NewMoySkladAdapter(cfg, mainLogger)
	metricsAdapter := metrics.NewPrometheusAdapter()

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewCacheAdapter(cfg, mainLogger)
		if err != nil {
			logger.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	}

	// Инициализация сервиса
	deliveryService := delivery_service.NewDeliveryService(
		settingsAdapter,
		cacheAdapter,
		moyskladAdapter,
		metricsAdapter,
		mainLogger,
	)

	// Настройка HTTP сервера
	router := gin.New()
	router.Use(gin.Recovery())
	controller := http.NewDeliveryController(
		deliveryService,
		cfg,
		metricsAdapter,
		mainLogger.WithModule("HttpController"),
	)
	controller.RegisterRoutes(router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewSettingsListener(
			deliveryService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			logger.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			logger.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				logger.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			logger.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	logger.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})

	// Дополнительное логирование для разработки
	if cfg.IsLocal() {
		logger.Debug("app.config.debug", out.LogFields{
			"config": map[string]interface{}{
				"http": map[string]string{
					"host": cfg.HTTP.Host,
					"port": cfg.HTTP.Port,
				},
				"settings": map[string]interface{}{
					"path": cfg.Settings.Path,
					"ttl":  cfg.Settings.TTL.String(),
				},
				"moysklad": map[string]interface{}{
					"url":      cfg.MoySklad.URL,
					"hasToken": cfg.MoySklad.Token != "",
				},
				"rabbitmq": map[string]interface{}{
					"enabled":  cfg.RabbitMQ.Enabled,
					"queue":    cfg.RabbitMQ.Queue,
					"exchange": cfg.RabbitMQ.Exchange,
					"bind":     cfg.RabbitMQ.Bind,
				},
				"cache": map[string]interface{}{
					"enabled":    cfg.Cache.Enabled,
					"slots_size": cfg.Cache.SlotsSize,
				},
			},
		})
	}
}
