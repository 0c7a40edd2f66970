package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/smartcafe/kiosk-client/configs"
	"github.com/smartcafe/kiosk-client/internal/adapter/gateway"
	kioskhttp "github.com/smartcafe/kiosk-client/internal/adapter/http"
	"github.com/smartcafe/kiosk-client/internal/adapter/storage"
	"github.com/smartcafe/kiosk-client/internal/logging"
	"github.com/smartcafe/kiosk-client/internal/store"
	"github.com/smartcafe/kiosk-client/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile)
	log := logging.New("app")

	medium, cleanup, err := initMedium(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("storage ready", "backend", cfg.Storage.Backend)

	cart := store.NewCartStore(medium)
	ledger := store.NewOrderLedger(medium)
	gw := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.Timeout)

	place := usecase.NewPlaceOrder(cart, ledger, gw)
	track := usecase.NewTrackOrder(ledger, gw)
	update := usecase.NewUpdateOrderStatus(ledger, gw)

	mh := kioskhttp.NewMenuHandler(gw)
	ch := kioskhttp.NewCartHandler(cart)
	oh := kioskhttp.NewOrderHandler(place, track, update, cart, ledger)
	router := kioskhttp.NewRouter(mh, ch, oh)

	return &App{Router: router}, cleanup, nil
}

func initMedium(cfg configs.Config) (store.Medium, func(), error) {
	switch cfg.Storage.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil
	default:
		fs, err := storage.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}
