package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func dineInRates() RateConfig {
	rates := DefaultRates()
	rates.ServiceChargeEnabled = true
	return rates
}

func TestCalculateTotals_Takeaway(t *testing.T) {
	items := []LineItem{
		{ID: uuid.New(), UnitPrice: 1000, Quantity: 2},
		{ID: uuid.New(), UnitPrice: 500, Quantity: 1},
	}

	got := CalculateTotals(items, DefaultRates(), 0)

	assert.Equal(t, int64(2500), got.Subtotal)
	assert.Equal(t, int64(250), got.Tax)
	assert.Equal(t, int64(0), got.ServiceCharge)
	assert.Equal(t, int64(2750), got.Total)
}

func TestCalculateTotals_DineInWithTip(t *testing.T) {
	items := []LineItem{
		{ID: uuid.New(), UnitPrice: 1000, Quantity: 2},
		{ID: uuid.New(), UnitPrice: 500, Quantity: 1},
	}

	got := CalculateTotals(items, dineInRates(), 300)

	assert.Equal(t, int64(2500), got.Subtotal)
	assert.Equal(t, int64(250), got.Tax)
	assert.Equal(t, int64(250), got.ServiceCharge)
	assert.Equal(t, int64(300), got.Tip)
	assert.Equal(t, int64(3300), got.Total)
}

func TestCalculateTotals_ExtrasRaiseUnitPrice(t *testing.T) {
	item := LineItem{
		ID:        uuid.New(),
		UnitPrice: 1000,
		Quantity:  2,
		Extras: []LineItemExtra{
			{Name: "extra cheese", Price: 200, Quantity: 1},
			{Name: "bacon", Price: 150, Quantity: 2},
		},
	}

	assert.Equal(t, int64(1500), EffectiveUnitPrice(item))

	got := CalculateTotals([]LineItem{item}, DefaultRates(), 0)
	assert.Equal(t, int64(3000), got.Subtotal)
}

func TestCalculateTotals_EmptyOrder(t *testing.T) {
	got := CalculateTotals(nil, dineInRates(), 0)
	assert.Equal(t, TotalBreakdown{}, got)
}

func TestCalculateTotals_EmptyOrderKeepsTip(t *testing.T) {
	got := CalculateTotals(nil, dineInRates(), 500)
	assert.Equal(t, int64(500), got.Tip)
	assert.Equal(t, int64(500), got.Total)
}

func TestSetItemQuantity(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	items := []LineItem{
		{ID: first, UnitPrice: 1000, Quantity: 2},
		{ID: second, UnitPrice: 500, Quantity: 1},
	}

	t.Run("updates quantity", func(t *testing.T) {
		out, found := SetItemQuantity(items, first.String(), 5)
		assert.True(t, found)
		assert.Equal(t, 5, out[0].Quantity)
		assert.Equal(t, 2, items[0].Quantity, "input must not be mutated")
	})

	t.Run("zero removes the item", func(t *testing.T) {
		out, found := SetItemQuantity(items, second.String(), 0)
		assert.True(t, found)
		assert.Len(t, out, 1)
		assert.Equal(t, first, out[0].ID)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		out, found := SetItemQuantity(items, first.String(), -1)
		assert.False(t, found)
		assert.Equal(t, items, out)
	})

	t.Run("unknown line item", func(t *testing.T) {
		_, found := SetItemQuantity(items, uuid.New().String(), 3)
		assert.False(t, found)
	})

	t.Run("removal recomputes to the remaining items", func(t *testing.T) {
		out, _ := SetItemQuantity(items, first.String(), 0)
		got := CalculateTotals(out, DefaultRates(), 0)
		assert.Equal(t, int64(500), got.Subtotal)
		assert.Equal(t, int64(550), got.Total)
	})
}

func TestToggleTip(t *testing.T) {
	assert.Equal(t, int64(500), ToggleTip(0, 500))
	assert.Equal(t, int64(0), ToggleTip(500, 500), "selecting the active preset clears it")
	assert.Equal(t, int64(300), ToggleTip(500, 300))
}

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusInProgress))
	assert.True(t, StatusInProgress.CanTransition(StatusReady))
	assert.True(t, StatusReady.CanTransition(StatusDelivered))
	assert.True(t, StatusPending.CanTransition(StatusCancelled))
	assert.True(t, StatusReady.CanTransition(StatusCancelled))

	assert.False(t, StatusDelivered.CanTransition(StatusCancelled))
	assert.False(t, StatusCancelled.CanTransition(StatusPending))
	assert.False(t, StatusPending.CanTransition(StatusReady), "no skipping stages")
	assert.False(t, StatusReady.CanTransition(StatusInProgress), "no going backwards")
}
