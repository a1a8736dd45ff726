package services

import (
	"github.com/freshfold/freshfold-api/models"
	"github.com/shopspring/decimal"
)

// itemPrices is the static item type to unit price table. Prices are resolved
// from it at order creation and frozen onto the order items.
var itemPrices = map[string]decimal.Decimal{
	"Shirt":         decimal.NewFromInt(15),
	"T-Shirt":       decimal.NewFromInt(12),
	"Pants":         decimal.NewFromInt(20),
	"Jeans":         decimal.NewFromInt(25),
	"Undergarments": decimal.NewFromInt(8),
	"Socks":         decimal.NewFromInt(5),
	"Bed Sheets":    decimal.NewFromInt(30),
	"Towels":        decimal.NewFromInt(15),
}

// defaultItemPrice applies to item types not in the table
var defaultItemPrice = decimal.NewFromInt(10)

// PriceForItem returns the unit price for an item type
func PriceForItem(itemType string) decimal.Decimal {
	if price, ok := itemPrices[itemType]; ok {
		return price
	}
	return defaultItemPrice
}

// UrgencySurcharge returns the multiplier applied to the base price for the
// requested turnaround: 1 day is x1.5, 2 days x1.25, anything slower x1.
func UrgencySurcharge(urgencyDays int) decimal.Decimal {
	switch urgencyDays {
	case 1:
		return decimal.NewFromFloat(1.5)
	case 2:
		return decimal.NewFromFloat(1.25)
	default:
		return decimal.NewFromInt(1)
	}
}

// OrderItemRequest is a single requested line item before pricing
type OrderItemRequest struct {
	ItemType string `json:"item_type" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// PriceItems resolves the frozen line items and the order total for a set of
// requested items and an urgency class
func PriceItems(items []OrderItemRequest, urgencyDays int) ([]models.OrderItem, float64) {
	base := decimal.Zero
	priced := make([]models.OrderItem, 0, len(items))

	for _, req := range items {
		unit := PriceForItem(req.ItemType)
		base = base.Add(unit.Mul(decimal.NewFromInt(int64(req.Quantity))))
		priced = append(priced, models.OrderItem{
			ItemType:     req.ItemType,
			Quantity:     req.Quantity,
			PricePerItem: unit.InexactFloat64(),
		})
	}

	total := base.Mul(UrgencySurcharge(urgencyDays))
	return priced, total.InexactFloat64()
}
