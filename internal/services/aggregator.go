package services

import (
	"sort"

	"github.com/Greco-cyber/poster-dashboard/internal/config"
	"github.com/Greco-cyber/poster-dashboard/internal/models"
	"github.com/Greco-cyber/poster-dashboard/internal/poster"
)

// CategoryFilter scopes the per-employee aggregation. Categories is the set
// of requested category ids; Members is the set of product ids known to
// belong to those categories (empty under the direct-only strategy).
type CategoryFilter struct {
	Categories map[int64]struct{}
	Members    map[int64]struct{}
}

// Match reports whether a normalized position falls inside the filter.
func (f CategoryFilter) Match(np models.NormalizedPosition) bool {
	if np.CategoryID != nil {
		if _, ok := f.Categories[*np.CategoryID]; ok {
			return true
		}
	}
	if np.ProductID != nil {
		if _, ok := f.Members[*np.ProductID]; ok {
			return true
		}
	}
	return false
}

// AggregateEmployees folds the flattened, normalized positions of every
// transaction into per-employee totals and per-category buckets. It is a
// pure function of its inputs: calling it twice on the same data yields
// identical output. Transactions with no resolvable employee id are
// skipped. Results are ordered by total amount descending; the sort is
// stable, so ties keep first-seen order.
func AggregateEmployees(txs []map[string]any, filter CategoryFilter, cache ProductLookup) []models.EmployeeAggregate {
	byEmployee := make(map[int64]*models.EmployeeAggregate)
	var order []int64

	for _, tx := range txs {
		empID, ok := poster.TransactionEmployeeID.Int(tx)
		if !ok {
			continue
		}

		for _, pos := range FlattenPositions(tx) {
			np := NormalizePosition(pos, cache)
			if !filter.Match(np) {
				continue
			}

			// Employees appear in the output only once a position of
			// theirs matched: an unmatched category yields an empty
			// result, not a list of zero rows.
			agg, seen := byEmployee[empID]
			if !seen {
				agg = &models.EmployeeAggregate{
					EmployeeID: empID,
					Categories: make(map[int64]*models.CategoryBucket),
				}
				if name, ok := poster.TransactionEmployeeName.String(tx); ok {
					agg.Name = name
				}
				byEmployee[empID] = agg
				order = append(order, empID)
			}

			agg.TotalQuantity += np.Quantity
			agg.TotalMinor += np.AmountMinor

			cid, ok := attributeCategory(np, cache)
			if !ok {
				continue
			}
			bucket, ok := agg.Categories[cid]
			if !ok {
				bucket = &models.CategoryBucket{}
				agg.Categories[cid] = bucket
			}
			bucket.Quantity += np.Quantity
			bucket.AmountMinor += np.AmountMinor
		}
	}

	out := make([]models.EmployeeAggregate, 0, len(order))
	for _, id := range order {
		out = append(out, *byEmployee[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalMinor > out[j].TotalMinor
	})
	return out
}

// attributeCategory picks the category bucket a matched position belongs
// to: the direct category id when present, the cached product category
// otherwise. A position with neither counts toward the employee grand
// total only.
func attributeCategory(np models.NormalizedPosition, cache ProductLookup) (int64, bool) {
	if np.CategoryID != nil {
		return *np.CategoryID, true
	}
	if np.ProductID != nil && cache != nil {
		if ref, ok := cache.Get(*np.ProductID); ok && ref.CategoryID != nil {
			return *ref.CategoryID, true
		}
	}
	return 0, false
}

// NewCategoryFilter builds the filter for the requested categories using
// the configured membership strategy.
func NewCategoryFilter(cats []int64, keywords []string, strategy config.MatchStrategy, cache *ProductCache) CategoryFilter {
	filter := CategoryFilter{Categories: make(map[int64]struct{}, len(cats))}
	for _, id := range cats {
		filter.Categories[id] = struct{}{}
	}

	if strategy == config.MatchUnion && cache != nil {
		filter.Members = cache.ProductsInCategories(filter.Categories, keywords)
	}
	return filter
}

// AggregateShots folds transactions into the coffee shot (zakladka) report.
// Only products present in the shot table contribute; each contributes
// quantity times its configured multiplier. Rows group by product (not
// employee) and are sorted by quantity descending, stable on ties.
func AggregateShots(txs []map[string]any, shots config.ShotTable, cache ProductLookup) models.ShotSummary {
	byProduct := make(map[int64]*models.ShotRow)
	var order []int64

	summary := models.ShotSummary{ByProduct: []models.ShotRow{}}

	for _, tx := range txs {
		for _, pos := range FlattenPositions(tx) {
			np := NormalizePosition(pos, cache)
			if np.ProductID == nil || np.Quantity == 0 {
				continue
			}

			per, ok := shots[*np.ProductID]
			if !ok {
				continue
			}

			zak := np.Quantity * float64(per)
			summary.TotalQuantity += np.Quantity
			summary.TotalZakladki += zak

			row, seen := byProduct[*np.ProductID]
			if !seen {
				row = &models.ShotRow{
					ProductID: *np.ProductID,
					PerUnit:   per,
				}
				if cache != nil {
					if ref, ok := cache.Get(*np.ProductID); ok {
						row.Name = ref.Name
						row.CategoryID = ref.CategoryID
					}
				}
				byProduct[*np.ProductID] = row
				order = append(order, *np.ProductID)
			}
			row.Quantity += np.Quantity
			row.Total += zak
		}
	}

	for _, pid := range order {
		summary.ByProduct = append(summary.ByProduct, *byProduct[pid])
	}
	sort.SliceStable(summary.ByProduct, func(i, j int) bool {
		return summary.ByProduct[i].Quantity > summary.ByProduct[j].Quantity
	})
	return summary
}
