package services

import (
	"context"
	"log/slog"
	"net/url"
	"sort"

	"github.com/Greco-cyber/poster-dashboard/internal/models"
	"github.com/Greco-cyber/poster-dashboard/internal/poster"
)

// CategoryReportService serves the vendor's own category-level sales report
// (dash.getCategoriesSales). This path needs neither the reference cache
// nor transaction parsing, which makes it the most reliable signal and the
// natural fallback when transaction detail is unavailable.
type CategoryReportService struct {
	api    poster.Caller
	logger *slog.Logger
}

func NewCategoryReportService(api poster.Caller, logger *slog.Logger) *CategoryReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryReportService{api: api, logger: logger}
}

// FetchOverall returns the vendor's quantity and revenue per category for
// the requested category ids, sorted by category id ascending. A vendor
// error degrades to an empty slice: "overall unavailable" is not fatal.
func (s *CategoryReportService) FetchOverall(ctx context.Context, dateFrom, dateTo string, cats map[int64]struct{}) []models.CategoryAggregate {
	params := url.Values{}
	params.Set("dateFrom", dateFrom)
	params.Set("dateTo", dateTo)

	raw, err := s.api.Call(ctx, "dash.getCategoriesSales", params)
	if err != nil {
		s.logger.Warn("category report unavailable",
			"date_from", dateFrom,
			"date_to", dateTo,
			"error", err)
		return []models.CategoryAggregate{}
	}

	rows, _ := poster.FirstArray(raw)

	out := make([]models.CategoryAggregate, 0, len(cats))
	for _, row := range rows {
		cid, ok := poster.Number(row["category_id"])
		if !ok {
			continue
		}
		id := int64(cid)
		if len(cats) > 0 {
			if _, want := cats[id]; !want {
				continue
			}
		}

		name, _ := row["category_name"].(string)
		count, _ := poster.Number(row["count"])
		revenue, _ := poster.Number(row["revenue"])

		out = append(out, models.CategoryAggregate{
			CategoryID: id,
			Name:       name,
			Count:      count,
			SumUAH:     models.RoundedMinorToUAH(revenue),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CategoryID < out[j].CategoryID
	})
	return out
}
