package usecase

import (
	"context"
	"log/slog"

	"github.com/smartcafe/kiosk-client/internal/entity"
	"github.com/smartcafe/kiosk-client/internal/logging"
)

// UpdateOrderStatus writes a status change through to the gateway on a best
// effort basis; the ledger copy is what the UI trusts.
type UpdateOrderStatus struct {
	ledger  Ledger
	gateway OrderGateway
	log     *slog.Logger
}

func NewUpdateOrderStatus(ledger Ledger, gateway OrderGateway) *UpdateOrderStatus {
	return &UpdateOrderStatus{ledger: ledger, gateway: gateway, log: logging.New("update-status")}
}

// Execute returns whether any ledger entry was updated. An invalid status is
// the only error; gateway failures are logged and tolerated.
func (uc *UpdateOrderStatus) Execute(ctx context.Context, orderID string, status entity.OrderStatus) (bool, error) {
	if !status.Valid() {
		return false, entity.ErrInvalidStatus
	}

	if err := uc.gateway.UpdateOrderStatus(ctx, orderID, status); err != nil {
		uc.log.Warn("gateway status update failed, keeping local copy authoritative",
			"order_id", orderID, "status", status, "error", err)
	}
	return uc.ledger.UpdateStatus(orderID, status), nil
}
