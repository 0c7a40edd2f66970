package gateway

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/smartcafe/kiosk-client/internal/entity"
)

// The backend does not keep a uniform response envelope: the same logical
// field shows up bare, under "data", or inside a named list under "data".
// Every read goes through an ordered chain of shape probes; the first match
// wins and an unrecognized shape reads as "absent", never as a failure.

type payload map[string]any

func decodePayload(raw []byte) (payload, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// valueAt walks nested objects along path.
func (p payload) valueAt(path ...string) (any, bool) {
	var cur any = map[string]any(p)
	for _, k := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[k]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// stringAt accepts strings and numbers; the backend has served order ids as
// both.
func (p payload) stringAt(path ...string) (string, bool) {
	v, ok := p.valueAt(path...)
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case string:
		if s != "" {
			return s, true
		}
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	}
	return "", false
}

func (p payload) numberAt(path ...string) (float64, bool) {
	v, ok := p.valueAt(path...)
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return n, ok
}

func (p payload) arrayAt(path ...string) ([]any, bool) {
	v, ok := p.valueAt(path...)
	if !ok {
		return nil, false
	}
	a, ok := v.([]any)
	return a, ok
}

func (p payload) objectAt(path ...string) (payload, bool) {
	v, ok := p.valueAt(path...)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return payload(m), ok
}

// orderID probes the known create-order response shapes in priority order.
func (p payload) orderID() (string, bool) {
	for _, path := range [][]string{{"data", "orderId"}, {"orderId"}, {"id"}} {
		if v, ok := p.stringAt(path...); ok {
			return v, true
		}
	}
	return "", false
}

// firstString probes sibling spellings of the same field within one object.
func (p payload) firstString(keys ...string) string {
	for _, k := range keys {
		if v, ok := p.stringAt(k); ok {
			return v
		}
	}
	return ""
}

func (p payload) firstNumber(keys ...string) float64 {
	for _, k := range keys {
		if v, ok := p.numberAt(k); ok {
			return v
		}
	}
	return 0
}

// menuFromObject normalizes one menu entry; the backend spells the id as
// menuid or id and the image as img or image.
func menuFromObject(m map[string]any) entity.MenuItem {
	p := payload(m)
	return entity.MenuItem{
		MenuID:   int(p.firstNumber("menuid", "id")),
		Name:     p.firstString("name"),
		Price:    p.firstNumber("price"),
		Category: p.firstString("category"),
		ImageRef: p.firstString("img", "image"),
	}
}

// menusFromBody handles the three list shapes the menu endpoint has served:
// {"data":{"menus":[…]}}, {"data":[…]} and a bare […].
func menusFromBody(raw []byte) ([]entity.MenuItem, bool) {
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, false
	}

	var list []any
	switch v := body.(type) {
	case map[string]any:
		p := payload(v)
		if a, ok := p.arrayAt("data", "menus"); ok {
			list = a
		} else if a, ok := p.arrayAt("data"); ok {
			list = a
		} else {
			return nil, false
		}
	case []any:
		list = v
	default:
		return nil, false
	}

	menus := make([]entity.MenuItem, 0, len(list))
	for _, it := range list {
		if m, ok := it.(map[string]any); ok {
			menus = append(menus, menuFromObject(m))
		}
	}
	return menus, true
}

// orderFromPayload maps a get-order response onto a StoredOrder shape with
// per-field fallbacks; fallbackID fills in when the payload omits the id.
func orderFromPayload(p payload, fallbackID string, now time.Time) (*entity.StoredOrder, bool) {
	data, ok := p.objectAt("data")
	if !ok {
		return nil, false
	}

	id := data.firstString("id", "orderId")
	if id == "" {
		id = fallbackID
	}

	var items []entity.OrderItem
	if raw, ok := data.arrayAt("items"); ok {
		for _, it := range raw {
			m, ok := it.(map[string]any)
			if !ok {
				continue
			}
			ip := payload(m)
			items = append(items, entity.OrderItem{
				Name:      ip.firstString("name"),
				Quantity:  int(ip.firstNumber("quantity", "qty")),
				UnitPrice: ip.firstNumber("price"),
				Note:      ip.firstString("note"),
			})
		}
	}

	status := entity.OrderStatus(data.firstString("status"))
	if !status.Valid() {
		status = entity.StatusPreparing
	}

	createdAt := now
	if ts, ok := data.stringAt("createdAt"); ok {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			createdAt = t
		}
	}

	return &entity.StoredOrder{
		OrderID:     id,
		Items:       items,
		TotalAmount: data.firstNumber("totalPrice", "totalAmount"),
		TotalItems:  len(items),
		Status:      status,
		CreatedAt:   createdAt,
	}, true
}
