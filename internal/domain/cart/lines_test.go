package cart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront/internal/pkg/validation"
)

func line(id string, qty int) Line {
	return Line{ProductID: id, Name: "Product " + id, Price: 10, Image: "/img/" + id + ".jpg", Quantity: qty}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		guest []Line
		user  []Line
		want  []Line
	}{
		{
			name:  "empty guest leaves user cart untouched",
			guest: nil,
			user:  []Line{line("a", 2)},
			want:  []Line{line("a", 2)},
		},
		{
			name:  "empty user adopts guest lines",
			guest: []Line{line("a", 1), line("b", 3)},
			user:  nil,
			want:  []Line{line("a", 1), line("b", 3)},
		},
		{
			name:  "shared product takes the larger guest quantity",
			guest: []Line{line("a", 5)},
			user:  []Line{line("a", 2)},
			want:  []Line{line("a", 5)},
		},
		{
			name:  "shared product keeps the larger user quantity",
			guest: []Line{line("a", 1)},
			user:  []Line{line("a", 4)},
			want:  []Line{line("a", 4)},
		},
		{
			name:  "guest only products are appended in guest order",
			guest: []Line{line("c", 1), line("a", 1), line("b", 2)},
			user:  []Line{line("a", 3)},
			want:  []Line{line("a", 3), line("c", 1), line("b", 2)},
		},
		{
			name:  "repeated guest products collapse before merging",
			guest: []Line{line("b", 1), line("b", 6)},
			user:  []Line{line("a", 1)},
			want:  []Line{line("a", 1), line("b", 6)},
		},
		{
			name:  "guest lines with zero quantity are ignored",
			guest: []Line{line("b", 0)},
			user:  []Line{line("a", 1)},
			want:  []Line{line("a", 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.guest, tt.user)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_SnapshotComesFromUserLine(t *testing.T) {
	user := Line{ProductID: "a", Name: "Old name", Price: 5, Quantity: 1}
	guest := Line{ProductID: "a", Name: "New name", Price: 7, Quantity: 3}

	got := Merge([]Line{guest}, []Line{user})

	require.Len(t, got, 1)
	assert.Equal(t, "Old name", got[0].Name)
	assert.Equal(t, 5.0, got[0].Price)
	assert.Equal(t, 3, got[0].Quantity)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	user := []Line{line("a", 1)}
	guest := []Line{line("a", 9), line("b", 1)}

	Merge(guest, user)

	assert.Equal(t, 1, user[0].Quantity)
	assert.Len(t, user, 1)
}

func TestMerge_IsIdempotent(t *testing.T) {
	guest := []Line{line("a", 2), line("b", 1)}
	user := []Line{line("a", 1), line("c", 4)}

	once := Merge(guest, user)
	twice := Merge(guest, once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second merge changed the cart (-once +twice):\n%s", diff)
	}
}

func TestMerge_ProductsStayUnique(t *testing.T) {
	guest := []Line{line("a", 1), line("b", 1), line("a", 2), line("c", 1)}
	user := []Line{line("b", 5), line("d", 1)}

	seen := map[string]bool{}
	for _, l := range Merge(guest, user) {
		assert.False(t, seen[l.ProductID], "duplicate product %s", l.ProductID)
		assert.GreaterOrEqual(t, l.Quantity, 1)
		seen[l.ProductID] = true
	}
	assert.Len(t, seen, 4)
}

func TestUpsert(t *testing.T) {
	lines := []Line{line("a", 1), line("b", 1)}

	t.Run("replaces quantity of existing product", func(t *testing.T) {
		got := Upsert(lines, line("a", 4))
		assert.Equal(t, []Line{line("a", 4), line("b", 1)}, got)
	})

	t.Run("appends new product", func(t *testing.T) {
		got := Upsert(lines, line("c", 2))
		assert.Equal(t, []Line{line("a", 1), line("b", 1), line("c", 2)}, got)
	})

	t.Run("quantity below one removes", func(t *testing.T) {
		got := Upsert(lines, line("a", 0))
		assert.Equal(t, []Line{line("b", 1)}, got)
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		Upsert(lines, line("a", 9))
		assert.Equal(t, 1, lines[0].Quantity)
	})
}

func TestRemove_IsIdempotent(t *testing.T) {
	lines := []Line{line("a", 1), line("b", 2)}

	once := Remove(lines, "a")
	twice := Remove(once, "a")

	assert.Equal(t, []Line{line("b", 2)}, once)
	assert.Equal(t, once, twice)
	assert.Equal(t, lines, Remove(lines, "missing"))
}

func TestSetQuantity(t *testing.T) {
	lines := []Line{line("a", 1), line("b", 2)}

	assert.Equal(t, []Line{line("a", 7), line("b", 2)}, SetQuantity(lines, "a", 7))
	assert.Equal(t, []Line{line("b", 2)}, SetQuantity(lines, "a", 0))
	assert.Equal(t, []Line{line("a", 1)}, SetQuantity(lines, "b", -3))
	assert.Equal(t, lines, SetQuantity(lines, "missing", 3))
}

func TestNormalize(t *testing.T) {
	got := Normalize([]Line{line("a", 1), line("b", 0), line("c", 2), line("a", 3), line("d", -1)})
	assert.Equal(t, []Line{line("a", 3), line("c", 2)}, got)
	assert.Empty(t, Normalize(nil))
}

func TestValidateLines(t *testing.T) {
	assert.NoError(t, ValidateLines([]Line{line("a", 1)}))
	assert.NoError(t, ValidateLines(nil))

	err := ValidateLines([]Line{
		{ProductID: "", Price: 1, Quantity: 1},
		{ProductID: "b", Price: -1, Quantity: 1},
		{ProductID: "c", Price: math.NaN(), Quantity: 1},
	})
	require.Error(t, err)

	fields, ok := validation.As(err)
	require.True(t, ok)
	require.Len(t, fields, 3)
	assert.Equal(t, "items[0].productId", fields[0].Field)
	assert.Equal(t, "items[1].price", fields[1].Field)
	assert.Equal(t, "items[2].price", fields[2].Field)
}

func TestCalculateTotals(t *testing.T) {
	totals := CalculateTotals([]Line{
		{ProductID: "a", Price: 2.5, Quantity: 2},
		{ProductID: "b", Price: 10, Quantity: 1},
	})

	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.InDelta(t, 15.0, totals.Subtotal, 1e-9)
}
