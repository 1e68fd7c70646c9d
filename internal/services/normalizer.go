package services

import (
	"github.com/Greco-cyber/poster-dashboard/internal/models"
	"github.com/Greco-cyber/poster-dashboard/internal/poster"
)

// FlattenPositions returns every line item of a raw transaction as a single
// flat list: the top-level positions plus all nested child collections
// (modifiers, ingredients, extras and so on). Traversal is breadth-first
// with a FIFO queue so the output order is deterministic.
func FlattenPositions(tx map[string]any) []map[string]any {
	base, ok := poster.TransactionPositions.Array(tx)
	if !ok {
		return nil
	}

	queue := make([]any, len(base))
	copy(queue, base)

	var out []map[string]any
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]

		pos, ok := head.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, pos)

		for _, key := range poster.PositionChildren {
			if children, ok := pos[key].([]any); ok && len(children) > 0 {
				queue = append(queue, children...)
			}
		}
	}
	return out
}

// NormalizePosition resolves one raw position's attributes through the
// ordered field chains. Quantity is clamped to a finite, non-negative
// number. The category id prefers the position's direct field and falls
// back to the reference cache by product id; when both miss it stays nil
// and the position is excluded from category-scoped aggregation.
func NormalizePosition(pos map[string]any, cache ProductLookup) models.NormalizedPosition {
	var np models.NormalizedPosition

	if pid, ok := poster.PositionProductID.Int(pos); ok {
		np.ProductID = &pid
	}

	if qty, ok := poster.PositionQuantity.Number(pos); ok && qty > 0 {
		np.Quantity = qty
	}

	np.AmountMinor = resolveAmountMinor(pos, np.Quantity)

	if cid, ok := poster.PositionCategoryID.Int(pos); ok {
		np.CategoryID = &cid
	} else if np.ProductID != nil && cache != nil {
		if ref, ok := cache.Get(*np.ProductID); ok && ref.CategoryID != nil {
			cid := *ref.CategoryID
			np.CategoryID = &cid
		}
	}

	return np
}

// resolveAmountMinor prefers an explicit line total and falls back to
// unit price times quantity. Non-finite results degrade to 0.
func resolveAmountMinor(pos map[string]any, qty float64) int64 {
	if total, ok := poster.PositionLineTotal.Number(pos); ok {
		return int64(total)
	}
	if price, ok := poster.PositionUnitPrice.Number(pos); ok {
		return int64(price * qty)
	}
	return 0
}
