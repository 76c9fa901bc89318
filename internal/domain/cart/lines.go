package cart

import (
	"math"
	"strconv"

	"github.com/your-org/storefront/internal/pkg/validation"
)

// Upsert sets line in lines. An existing line with the same product has its
// snapshot and quantity replaced in place; otherwise the line is appended.
// A line with quantity < 1 removes the product instead.
func Upsert(lines []Line, line Line) []Line {
	if line.Quantity < 1 {
		return Remove(lines, line.ProductID)
	}

	out := make([]Line, 0, len(lines)+1)
	replaced := false
	for _, existing := range lines {
		if existing.ProductID == line.ProductID {
			out = append(out, line)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, line)
	}
	return out
}

// Remove drops the product from lines. Removing an absent product is a no-op.
func Remove(lines []Line, productID string) []Line {
	out := make([]Line, 0, len(lines))
	for _, existing := range lines {
		if existing.ProductID != productID {
			out = append(out, existing)
		}
	}
	return out
}

// SetQuantity sets the quantity of an existing line. quantity <= 0 removes
// it. Unknown products are ignored.
func SetQuantity(lines []Line, productID string, quantity int) []Line {
	if quantity <= 0 {
		return Remove(lines, productID)
	}

	out := make([]Line, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
		}
	}
	return out
}

// Normalize enforces the collection invariants on an arbitrary list: lines
// with quantity < 1 are dropped and repeated products collapse into one line
// holding the last occurrence, kept at the first occurrence's position.
func Normalize(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		out = Upsert(out, line)
	}
	return out
}

// Merge folds a guest cart into a user's cart.
//
// An empty guest cart leaves userLines untouched and an empty user cart
// adopts the guest lines. Otherwise a product present in both keeps the
// larger of the two quantities (never the sum) and guest-only products are
// appended in guest order after the user's lines.
func Merge(guestLines, userLines []Line) []Line {
	guestLines = Normalize(guestLines)
	if len(guestLines) == 0 {
		return userLines
	}
	if len(userLines) == 0 {
		return guestLines
	}

	merged := make([]Line, len(userLines))
	copy(merged, userLines)

	index := make(map[string]int, len(merged))
	for i, line := range merged {
		index[line.ProductID] = i
	}

	for _, guest := range guestLines {
		if i, ok := index[guest.ProductID]; ok {
			if guest.Quantity > merged[i].Quantity {
				merged[i].Quantity = guest.Quantity
			}
			continue
		}
		index[guest.ProductID] = len(merged)
		merged = append(merged, guest)
	}

	return merged
}

// ValidateLines checks the fields a client may send. Quantities are not
// checked here; Normalize drops non-positive ones.
func ValidateLines(lines []Line) error {
	var errs validation.Errors
	for i, line := range lines {
		if line.ProductID == "" {
			errs.Add(itemField(i, "productId"), "Cart item must have a product ID")
		}
		if math.IsNaN(line.Price) || math.IsInf(line.Price, 0) || line.Price < 0 {
			errs.Add(itemField(i, "price"), "Cart item price must be a non-negative number")
		}
	}
	return errs.Err()
}

func itemField(i int, name string) string {
	return "items[" + strconv.Itoa(i) + "]." + name
}
