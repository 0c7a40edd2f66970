package usecase

import (
	"context"
	"log/slog"

	"github.com/smartcafe/kiosk-client/internal/entity"
	"github.com/smartcafe/kiosk-client/internal/logging"
)

// TrackOrder resolves an order by id: gateway first, local ledger as the
// fallback. ErrOrderNotFound only when neither side knows the id.
type TrackOrder struct {
	ledger  Ledger
	gateway OrderGateway
	log     *slog.Logger
}

func NewTrackOrder(ledger Ledger, gateway OrderGateway) *TrackOrder {
	return &TrackOrder{ledger: ledger, gateway: gateway, log: logging.New("track-order")}
}

func (uc *TrackOrder) Execute(ctx context.Context, orderID string) (*entity.StoredOrder, error) {
	order, err := uc.gateway.Order(ctx, orderID)
	if err == nil && order != nil {
		return order, nil
	}
	if err != nil {
		uc.log.Warn("gateway lookup failed, falling back to ledger",
			"order_id", orderID, "error", err)
	}

	for _, o := range uc.ledger.StoredOrders() {
		if o.OrderID == orderID {
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}
