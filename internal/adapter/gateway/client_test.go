package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcafe/kiosk-client/internal/entity"
	"github.com/smartcafe/kiosk-client/internal/usecase"
)

func testClient(ts *httptest.Server) *Client {
	return NewClient(ts.URL, 2*time.Second)
}

func TestCreateOrder_SendsSnapshotAndIdempotencyKey(t *testing.T) {
	var gotBody map[string]any
	var gotIdemKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/order", r.URL.Path)
		gotIdemKey = r.Header.Get("X-Idempotency-Key")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"orderId":"ORD-22"}}`))
	}))
	defer ts.Close()

	id, err := testClient(ts).CreateOrder(context.Background(), usecase.CreateOrderRequest{
		Items:          []usecase.CreateOrderItem{{MenuID: 1, Quantity: 3}},
		TotalPrice:     180,
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-22", id)
	assert.Equal(t, "key-1", gotIdemKey)
	assert.Equal(t, 180.0, gotBody["totalPrice"])
	items := gotBody["items"].([]any)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	assert.Equal(t, 1.0, line["menuid"])
	assert.Equal(t, 3.0, line["qty"])
}

func TestCreateOrder_ResponseShapeVariants(t *testing.T) {
	for body, want := range map[string]string{
		`{"orderId":"A"}`:          "A",
		`{"id":"B"}`:               "B",
		`{"data":{"orderId":"C"}}`: "C",
	} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(body))
		}))
		id, err := testClient(ts).CreateOrder(context.Background(), usecase.CreateOrderRequest{})
		ts.Close()
		require.NoError(t, err, body)
		assert.Equal(t, want, id)
	}
}

func TestCreateOrder_NoRecognizableID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	_, err := testClient(ts).CreateOrder(context.Background(), usecase.CreateOrderRequest{})
	assert.ErrorIs(t, err, ErrNoOrderID)
}

func TestCreateOrder_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := testClient(ts).CreateOrder(context.Background(), usecase.CreateOrderRequest{})
	assert.Error(t, err)
}

func TestOrder_NormalizesPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/order/ORD-5", r.URL.Path)
		w.Write([]byte(`{"data":{"id":"ORD-5","totalPrice":60,"status":"ready","items":[{"name":"Latte","quantity":1,"price":60}]}}`))
	}))
	defer ts.Close()

	order, err := testClient(ts).Order(context.Background(), "ORD-5")
	require.NoError(t, err)
	assert.Equal(t, "ORD-5", order.OrderID)
	assert.Equal(t, entity.StatusReady, order.Status)
	assert.Equal(t, 60.0, order.TotalAmount)
}

func TestOrder_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := testClient(ts).Order(context.Background(), "missing")
	assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
}

func TestUpdateOrderStatus_SendsPatch(t *testing.T) {
	var gotMethod, gotPath, gotStatus string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		var body map[string]string
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		gotStatus = body["status"]
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	err := testClient(ts).UpdateOrderStatus(context.Background(), "ORD-5", entity.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/order/ORD-5", gotPath)
	assert.Equal(t, "completed", gotStatus)
}

func TestMenus_BareArrayShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/menu", r.URL.Path)
		w.Write([]byte(`[{"menuid":1,"name":"Latte","price":60}]`))
	}))
	defer ts.Close()

	menus, err := testClient(ts).Menus(context.Background())
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Latte", menus[0].Name)
}

func TestMenus_UnrecognizedShapeServesEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"unexpected":true}`))
	}))
	defer ts.Close()

	menus, err := testClient(ts).Menus(context.Background())
	require.NoError(t, err)
	assert.Empty(t, menus)
}

func TestMenuByID_DataEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/menu/7", r.URL.Path)
		w.Write([]byte(`{"data":{"id":7,"name":"Mocha","price":70,"image":"mocha.png"}}`))
	}))
	defer ts.Close()

	menu, err := testClient(ts).MenuByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, menu.MenuID)
	assert.Equal(t, "mocha.png", menu.ImageRef)
}

func TestMenuByID_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := testClient(ts).MenuByID(context.Background(), 99)
	assert.ErrorIs(t, err, usecase.ErrMenuNotFound)
}

func TestTimeout_IsTreatedAsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"orderId":"late"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 50*time.Millisecond)
	_, err := c.CreateOrder(context.Background(), usecase.CreateOrderRequest{})
	assert.Error(t, err)
}
