package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smartcafe/kiosk-client/internal/entity"
	"github.com/smartcafe/kiosk-client/internal/logging"
)

// PlaceOrder runs the checkout workflow. It never fails outward: the caller
// always receives an order id (server-assigned or locally synthesized), the
// ledger always gains an entry, and the cart is cleared last.
type PlaceOrder struct {
	cart    Cart
	ledger  Ledger
	gateway OrderGateway
	synth   *OrderIDSynthesizer
	now     func() time.Time
	log     *slog.Logger
}

func NewPlaceOrder(cart Cart, ledger Ledger, gateway OrderGateway) *PlaceOrder {
	return &PlaceOrder{
		cart:    cart,
		ledger:  ledger,
		gateway: gateway,
		synth:   NewOrderIDSynthesizer(),
		now:     time.Now,
		log:     logging.New("place-order"),
	}
}

type PlaceOrderOutput struct {
	OrderID string
	// Local is true when the id was synthesized because the gateway gave none.
	Local bool
}

func (uc *PlaceOrder) Execute(ctx context.Context) PlaceOrderOutput {
	// Snapshot once, before the network call. The cart can mutate while the
	// request is in flight and must not be read again afterwards.
	lines := uc.cart.Items()
	totalPrice := uc.cart.TotalPrice()
	totalItems := uc.cart.TotalItems()

	req := CreateOrderRequest{
		Items:          make([]CreateOrderItem, 0, len(lines)),
		TotalPrice:     totalPrice,
		IdempotencyKey: uuid.NewString(),
	}
	for _, l := range lines {
		req.Items = append(req.Items, CreateOrderItem{MenuID: l.MenuID, Quantity: l.Quantity})
	}

	orderID, err := uc.gateway.CreateOrder(ctx, req)
	local := err != nil || orderID == ""
	if local {
		orderID = uc.synth.Synthesize()
		uc.log.Warn("order creation fell back to local id",
			"order_id", orderID, "error", err)
	}

	items := make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.OrderItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Note:      l.Note,
		})
	}
	uc.ledger.AddOrder(entity.StoredOrder{
		OrderID:     orderID,
		Items:       items,
		TotalAmount: totalPrice,
		TotalItems:  totalItems,
		Status:      entity.StatusPreparing,
		CreatedAt:   uc.now(),
	})

	uc.cart.Clear()

	uc.log.Info("order placed", "order_id", orderID, "local", local,
		"total_items", totalItems)
	return PlaceOrderOutput{OrderID: orderID, Local: local}
}
