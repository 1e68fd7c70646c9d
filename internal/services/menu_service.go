package services

import (
	"context"
	"log/slog"
	"net/url"
	"sort"

	"github.com/Greco-cyber/poster-dashboard/internal/models"
	"github.com/Greco-cyber/poster-dashboard/internal/poster"
)

// MenuService serves the vendor's menu category listing.
type MenuService struct {
	api    poster.Caller
	logger *slog.Logger
}

func NewMenuService(api poster.Caller, logger *slog.Logger) *MenuService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MenuService{api: api, logger: logger}
}

// Categories returns all menu categories sorted by id.
func (s *MenuService) Categories(ctx context.Context) ([]models.MenuCategory, error) {
	raw, err := s.api.Call(ctx, "menu.getCategories", url.Values{})
	if err != nil {
		return nil, err
	}

	rows, _ := poster.FirstArray(raw)

	out := make([]models.MenuCategory, 0, len(rows))
	for _, row := range rows {
		cid, ok := poster.Number(row["category_id"])
		if !ok {
			continue
		}
		name, _ := row["category_name"].(string)

		out = append(out, models.MenuCategory{
			CategoryID:   int64(cid),
			CategoryName: name,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CategoryID < out[j].CategoryID
	})
	return out, nil
}
