package entity

// MenuItem is a menu entry as served by the backend, normalized from the
// several field spellings the API uses (menuid/id, img/image).
type MenuItem struct {
	MenuID   int     `json:"menuid"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
	ImageRef string  `json:"img,omitempty"`
}
