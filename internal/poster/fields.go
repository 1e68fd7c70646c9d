package poster

import (
	"encoding/json"
	"math"
	"strconv"
)

// The vendor exposes the same logical attribute under different field names
// depending on the method, the account, and the response variant. Each
// attribute gets one ordered candidate list; the first candidate that parses
// to a finite value wins. The lists are package constants so tests can pin
// the resolution order.

// FieldChain is an ordered list of candidate field names for one attribute.
type FieldChain []string

var (
	// PositionProductID resolves the product id of a line item.
	PositionProductID = FieldChain{"product_id", "menu_id", "id", "good_id", "dish_id", "product", "item_id"}

	// PositionCategoryID resolves the category id carried directly on a line
	// item. Absence here falls back to the product cache.
	PositionCategoryID = FieldChain{"category_id", "menu_category_id", "group_id", "category"}

	// PositionQuantity resolves the sold quantity of a line item.
	PositionQuantity = FieldChain{"count", "quantity", "qty"}

	// PositionLineTotal resolves an explicit line total in minor units.
	PositionLineTotal = FieldChain{"payed_sum", "product_sum", "sum", "total_sum"}

	// PositionUnitPrice resolves a per-unit price in minor units, used when
	// no explicit line total is present.
	PositionUnitPrice = FieldChain{"price", "product_price"}

	// TransactionEmployeeID resolves the employee a transaction belongs to.
	TransactionEmployeeID = FieldChain{"user_id", "waiter_id", "employee_id"}

	// TransactionEmployeeName resolves the employee display name.
	TransactionEmployeeName = FieldChain{"name", "user_name", "waiter_name"}

	// TransactionPositions resolves the nested line item collection of a
	// transaction record.
	TransactionPositions = FieldChain{"receipt_positions", "positions", "products", "items", "menu", "goods", "receipt_goods"}

	// PositionChildren lists the nested collections a line item may carry.
	// All of them are flattened into the position stream.
	PositionChildren = FieldChain{"modifiers", "modifications", "ingredients", "additives", "additionals", "children", "extras"}

	// ProductID resolves the product id in a bulk product listing.
	ProductID = FieldChain{"product_id", "id", "menu_id", "good_id"}

	// ProductCategoryID resolves the category id in a bulk product listing.
	// Note the order differs from PositionCategoryID: menu.getProducts uses
	// menu_category_id as its primary name.
	ProductCategoryID = FieldChain{"menu_category_id", "category_id", "group_id", "category"}

	// ProductName resolves the product display name in a bulk listing.
	ProductName = FieldChain{"product_name", "name"}
)

// Number returns the first finite numeric value along the chain.
func (fc FieldChain) Number(m map[string]any) (float64, bool) {
	for _, key := range fc {
		if v, ok := m[key]; ok {
			if n, ok := Number(v); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// Int returns the first finite numeric value along the chain, truncated to
// an integer.
func (fc FieldChain) Int(m map[string]any) (int64, bool) {
	n, ok := fc.Number(m)
	if !ok {
		return 0, false
	}
	return int64(n), true
}

// String returns the first non-empty string value along the chain.
func (fc FieldChain) String(m map[string]any) (string, bool) {
	for _, key := range fc {
		if v, ok := m[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// Array returns the first non-empty array value along the chain.
func (fc FieldChain) Array(m map[string]any) ([]any, bool) {
	for _, key := range fc {
		if v, ok := m[key]; ok {
			if arr, ok := v.([]any); ok && len(arr) > 0 {
				return arr, true
			}
		}
	}
	return nil, false
}

// Number coerces a decoded JSON value to a finite float64. The vendor is
// inconsistent about numeric encoding: the same field can arrive as a JSON
// number or as a quoted decimal string.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
