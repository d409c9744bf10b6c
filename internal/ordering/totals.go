package ordering

import (
	"go-rms/internal/shared/money"
)

// Default rates; overridable per deployment through env config.
const (
	DefaultTaxRate           = 0.10
	DefaultServiceChargeRate = 0.10
)

type RateConfig struct {
	TaxRate              float64
	ServiceChargeRate    float64
	ServiceChargeEnabled bool
}

func DefaultRates() RateConfig {
	return RateConfig{
		TaxRate:           DefaultTaxRate,
		ServiceChargeRate: DefaultServiceChargeRate,
	}
}

type TotalBreakdown struct {
	Subtotal      int64 `json:"subtotal"`
	Tax           int64 `json:"tax"`
	ServiceCharge int64 `json:"service_charge"`
	Tip           int64 `json:"tip"`
	Total         int64 `json:"total"`
}

// EffectiveUnitPrice is the item's base price plus every added extra.
func EffectiveUnitPrice(item LineItem) int64 {
	price := item.UnitPrice
	for _, extra := range item.Extras {
		price += extra.Price * int64(extra.Quantity)
	}
	return price
}

// CalculateTotals derives the full breakdown from the line items. It is a
// pure function: callers persist the result themselves. An empty item list
// yields an all-zero breakdown with only the tip carried over.
func CalculateTotals(items []LineItem, rates RateConfig, tip int64) TotalBreakdown {
	var subtotal int64
	for _, item := range items {
		subtotal += EffectiveUnitPrice(item) * int64(item.Quantity)
	}

	if subtotal == 0 && tip == 0 {
		return TotalBreakdown{}
	}

	tax := money.ApplyRate(subtotal, rates.TaxRate)

	var serviceCharge int64
	if rates.ServiceChargeEnabled {
		serviceCharge = money.ApplyRate(subtotal, rates.ServiceChargeRate)
	}

	return TotalBreakdown{
		Subtotal:      subtotal,
		Tax:           tax,
		ServiceCharge: serviceCharge,
		Tip:           tip,
		Total:         subtotal + tax + serviceCharge + tip,
	}
}

// SetItemQuantity returns a new slice with the given line item's quantity
// changed. Quantity zero removes the item entirely; a negative quantity is
// rejected and the input is returned untouched.
func SetItemQuantity(items []LineItem, lineItemID string, quantity int) ([]LineItem, bool) {
	if quantity < 0 {
		return items, false
	}

	out := make([]LineItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID.String() != lineItemID {
			out = append(out, item)
			continue
		}
		found = true
		if quantity == 0 {
			continue
		}
		item.Quantity = quantity
		out = append(out, item)
	}

	return out, found
}

// ToggleTip implements tip preset selection: picking the amount that is
// already selected clears it, anything else replaces it.
func ToggleTip(current, selected int64) int64 {
	if selected == current {
		return 0
	}
	return selected
}
