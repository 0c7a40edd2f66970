package usecase

import (
	"context"
	"sync"

	"github.com/smartcafe/kiosk-client/internal/entity"
)

type mockGateway struct {
	mu sync.Mutex

	createID   string
	createErr  error
	lastCreate *CreateOrderRequest
	onCreate   func()

	order    *entity.StoredOrder
	orderErr error

	updateErr    error
	lastStatusID string
	lastStatus   entity.OrderStatus

	menus    []entity.MenuItem
	menusErr error
}

func (g *mockGateway) CreateOrder(_ context.Context, req CreateOrderRequest) (string, error) {
	g.mu.Lock()
	g.lastCreate = &req
	g.mu.Unlock()
	if g.onCreate != nil {
		g.onCreate()
	}
	return g.createID, g.createErr
}

func (g *mockGateway) Order(context.Context, string) (*entity.StoredOrder, error) {
	return g.order, g.orderErr
}

func (g *mockGateway) UpdateOrderStatus(_ context.Context, orderID string, status entity.OrderStatus) error {
	g.mu.Lock()
	g.lastStatusID = orderID
	g.lastStatus = status
	g.mu.Unlock()
	return g.updateErr
}

func (g *mockGateway) Menus(context.Context) ([]entity.MenuItem, error) {
	return g.menus, g.menusErr
}

func (g *mockGateway) MenuByID(context.Context, int) (*entity.MenuItem, error) {
	if len(g.menus) == 0 {
		return nil, ErrMenuNotFound
	}
	return &g.menus[0], nil
}

var _ OrderGateway = (*mockGateway)(nil)
