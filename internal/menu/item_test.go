package menu

import (
	"bistro/pkg/config"
	"bistro/pkg/logger"
	"bistro/pkg/model"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_StartsAtDefaults(t *testing.T) {
	it := NewItem(pizza(), config.DefaultEngine(), logger.Discard())

	assert.True(t, it.UnitPrice().Equal(d("20")))
	assert.Equal(t, 1, it.Quantity().Value())
	assert.True(t, it.Active("sauce", "tomato"))
}

func TestItem_ToggleAndQuantityReprice(t *testing.T) {
	it := NewItem(pizza(), config.DefaultEngine(), logger.Discard())
	var totals []decimal.Decimal
	it.Changed.Subscribe(func(v decimal.Decimal) { totals = append(totals, v) })

	it.Toggle("toppings", "salami", true)
	it.Quantity().SetValue("2")

	require.Len(t, totals, 2)
	assert.True(t, totals[0].Equal(d("23")))
	assert.True(t, totals[1].Equal(d("46")))
}

func TestItem_Choose(t *testing.T) {
	it := NewItem(pizza(), config.DefaultEngine(), logger.Discard())

	it.Choose("sauce", "cream")

	assert.False(t, it.Active("sauce", "tomato"))
	assert.True(t, it.Active("sauce", "cream"))
	assert.True(t, it.UnitPrice().Equal(d("20")))
}

func TestItem_AddSnapshotsAndResets(t *testing.T) {
	it := NewItem(pizza(), config.DefaultEngine(), logger.Discard())
	var added []model.CartProduct
	it.AddToCart.Subscribe(func(p model.CartProduct) { added = append(added, p) })

	it.Toggle("toppings", "salami", true)
	it.Toggle("toppings", "olives", false)
	it.Quantity().SetValue("3")
	snapshot := it.Add()

	require.Len(t, added, 1)
	assert.Equal(t, snapshot, added[0])
	assert.Equal(t, "pizza", snapshot.ID)
	assert.Equal(t, 3, snapshot.Amount)
	assert.True(t, snapshot.PriceSingle.Equal(d("21")))
	assert.True(t, snapshot.Price.Equal(d("63")))
	assert.Equal(t, map[string]string{"salami": "Salami"}, snapshot.Params["toppings"].Options)

	assert.Equal(t, 1, it.Quantity().Value())
	assert.True(t, it.UnitPrice().Equal(d("20")))
	assert.Equal(t, DefaultSelection(pizza()), it.Selection())
}

func TestItem_SnapshotIsFrozen(t *testing.T) {
	it := NewItem(pizza(), config.DefaultEngine(), logger.Discard())
	it.Toggle("toppings", "salami", true)
	snapshot := it.Add()

	it.Toggle("toppings", "peppers", true)

	assert.True(t, snapshot.PriceSingle.Equal(d("23")))
	assert.NotContains(t, snapshot.Params["toppings"].Options, "peppers")
}

type catalogFunc func(ctx context.Context) ([]model.Product, error)

func (f catalogFunc) Products(ctx context.Context) ([]model.Product, error) { return f(ctx) }

func TestLoad(t *testing.T) {
	var added []string
	items, err := Load(context.Background(), catalogFunc(func(context.Context) ([]model.Product, error) {
		cake := model.Product{ID: "cake", Name: "Cake", Price: d("9")}
		return []model.Product{pizza(), cake}, nil
	}), config.DefaultEngine(), logger.Discard(), func(p model.CartProduct) { added = append(added, p.ID) })
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "cake", items[1].Product().ID)

	items[1].Add()
	assert.Equal(t, []string{"cake"}, added)
}

func TestLoad_CatalogFailure(t *testing.T) {
	boom := errors.New("boom")
	items, err := Load(context.Background(), catalogFunc(func(context.Context) ([]model.Product, error) {
		return nil, boom
	}), config.DefaultEngine(), logger.Discard(), nil)

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, items)
}
