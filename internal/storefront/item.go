package storefront

import "github.com/your-org/storefront/internal/domain/cart"

// Item is the device-local cart entry. It is keyed by id, where the server
// cart line is keyed by productId.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Line converts the item to the server line shape
func (i Item) Line() cart.Line {
	return cart.Line{
		ProductID: i.ID,
		Name:      i.Name,
		Price:     i.Price,
		Image:     i.Image,
		Quantity:  i.Quantity,
	}
}

// ToLines converts local items to server lines
func ToLines(items []Item) []cart.Line {
	lines := make([]cart.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.Line())
	}
	return lines
}

// FromLines converts server lines to local items
func FromLines(lines []cart.Line) []Item {
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, Item{
			ID:       line.ProductID,
			Name:     line.Name,
			Price:    line.Price,
			Image:    line.Image,
			Quantity: line.Quantity,
		})
	}
	return items
}
