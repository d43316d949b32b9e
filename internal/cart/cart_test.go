package cart

import (
	"context"
	"testing"

	"storefront/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (*Manager, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	m, err := Load(context.Background(), st)
	require.NoError(t, err)
	return m, st
}

func TestAddItem_SameNameIncrementsQuantity(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	require.NoError(t, m.AddItem(ctx, "Shirt", 19.99, "shirt.png"))
	require.NoError(t, m.AddItem(ctx, "Shirt", 19.99, "shirt.png"))

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Shirt", items[0].Name)
	assert.Equal(t, 19.99, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 39.98, m.Render().GrandTotal, 1e-9)
}

func TestAddItem_OnePerNameInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	adds := []string{"Hat", "Shirt", "Hat", "Socks", "Shirt", "Hat"}
	for _, name := range adds {
		require.NoError(t, m.AddItem(ctx, name, 5, name+".png"))
	}

	items := m.Items()
	require.Len(t, items, 3)
	want := map[string]int{"Hat": 3, "Shirt": 2, "Socks": 1}
	for i, name := range []string{"Hat", "Shirt", "Socks"} {
		assert.Equal(t, name, items[i].Name)
		assert.Equal(t, want[name], items[i].Quantity)
	}
}

func TestAddItem_KeepsFirstPrice(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	require.NoError(t, m.AddItem(ctx, "Mug", 8, "mug.png"))
	require.NoError(t, m.AddItem(ctx, "Mug", 12, "other.png"))

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 8.0, items[0].Price)
	assert.Equal(t, "mug.png", items[0].ImageSrc)
}

func TestMutationsPersist(t *testing.T) {
	ctx := context.Background()
	m, st := newManager(t)
	require.NoError(t, m.AddItem(ctx, "Shirt", 19.99, "shirt.png"))

	raw, ok, err := st.Get(ctx, store.KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"name":"Shirt","price":19.99,"imageSrc":"shirt.png","quantity":1}]`, raw)

	reloaded, err := Load(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, m.Items(), reloaded.Items())
}

func TestRemoveItem_ShiftsIndices(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, m.AddItem(ctx, name, 1, ""))
	}
	before := m.Render().ItemCount

	require.NoError(t, m.RemoveItem(ctx, 1))

	v := m.Render()
	assert.Equal(t, before-1, v.ItemCount)
	require.Len(t, v.Rows, 2)
	assert.Equal(t, "A", v.Rows[0].Name)
	assert.Equal(t, "C", v.Rows[1].Name)
	assert.Equal(t, 1, v.Rows[1].Index)
}

func TestRemoveItem_OutOfRangeIsNoop(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	require.NoError(t, m.AddItem(ctx, "A", 1, ""))

	require.NoError(t, m.RemoveItem(ctx, 5))
	require.NoError(t, m.RemoveItem(ctx, -1))

	assert.Len(t, m.Items(), 1)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{"abc", 1},
		{"", 1},
		{"0", 1},
		{"-4", 1},
		{"7abc", 7},
		{"2.9", 2},
		{"  12", 12},
		{"+5", 5},
		{"1000000", 1000000},
		{"99999999999999999999999", 1},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			ctx := context.Background()
			m, _ := newManager(t)
			require.NoError(t, m.AddItem(ctx, "A", 2, ""))

			require.NoError(t, m.UpdateQuantity(ctx, 0, tt.raw))

			assert.Equal(t, tt.want, m.Items()[0].Quantity)
		})
	}
}

func TestUpdateQuantity_OutOfRangeIsNoop(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	require.NoError(t, m.AddItem(ctx, "A", 2, ""))

	require.NoError(t, m.UpdateQuantity(ctx, 3, "9"))

	assert.Equal(t, 1, m.Items()[0].Quantity)
}

func TestRender_TotalsRecomputedFresh(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	require.NoError(t, m.AddItem(ctx, "A", 2.5, ""))
	require.NoError(t, m.AddItem(ctx, "B", 10, ""))
	require.NoError(t, m.UpdateQuantity(ctx, 0, "4"))

	v := m.Render()
	var sum float64
	for _, it := range m.Items() {
		sum += it.LineTotal()
	}
	assert.InDelta(t, sum, v.GrandTotal, 1e-9)
	assert.InDelta(t, 20.0, v.GrandTotal, 1e-9)
	assert.Equal(t, 10.0, v.Rows[0].LineTotal)
	assert.Equal(t, "2 Items", v.CountLabel())

	require.NoError(t, m.RemoveItem(ctx, 0))
	assert.InDelta(t, 10.0, m.Render().GrandTotal, 1e-9)
}

func TestRender_Empty(t *testing.T) {
	m, _ := newManager(t)

	v := m.Render()
	assert.Zero(t, v.ItemCount)
	assert.Zero(t, v.GrandTotal)
	assert.Empty(t, v.Rows)
	assert.Equal(t, "$0.00", FormatPrice(v.GrandTotal))
}

func TestLoad_CorruptCart(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, store.KeyCart, `{"not":"a list"}`))

	_, err := Load(ctx, st)
	assert.ErrorIs(t, err, ErrCorruptCart)

	m, err := Reset(ctx, st)
	require.NoError(t, err)
	assert.Empty(t, m.Items())
	raw, _, err := st.Get(ctx, store.KeyCart)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}
