package services

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/Greco-cyber/poster-dashboard/internal/models"
	"github.com/Greco-cyber/poster-dashboard/internal/poster"

	"github.com/shopspring/decimal"
)

// SalesService serves the vendor's per-employee sales report
// (dash.getWaitersSales), normalized into typed rows. Unlike the
// multi-candidate lookups, a vendor failure here surfaces to the caller so
// the handler can propagate the vendor's own status code.
type SalesService struct {
	api    poster.Caller
	logger *slog.Logger
}

func NewSalesService(api poster.Caller, logger *slog.Logger) *SalesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SalesService{api: api, logger: logger}
}

// WaitersSales returns one row per employee for the date range. Revenue
// stays in minor units; middle_invoice is the vendor's own average receipt,
// already in hryvnias.
func (s *SalesService) WaitersSales(ctx context.Context, dateFrom, dateTo string) ([]models.WaiterSalesRow, error) {
	params := url.Values{}
	params.Set("dateFrom", dateFrom)
	params.Set("dateTo", dateTo)

	raw, err := s.api.Call(ctx, "dash.getWaitersSales", params)
	if err != nil {
		return nil, err
	}

	rows, _ := poster.FirstArray(raw)

	out := make([]models.WaiterSalesRow, 0, len(rows))
	for _, row := range rows {
		uid, ok := poster.Number(row["user_id"])
		if !ok {
			continue
		}

		name, _ := row["name"].(string)
		revenue, _ := poster.Number(row["revenue"])
		clients, _ := poster.Number(row["clients"])

		middle := decimal.Zero
		if avg, ok := poster.Number(row["middle_invoice"]); ok {
			middle = models.VendorRound(decimal.NewFromFloat(avg))
		}

		out = append(out, models.WaiterSalesRow{
			UserID:        int64(uid),
			Name:          name,
			RevenueMinor:  int64(revenue),
			Clients:       int64(clients),
			MiddleInvoice: middle,
		})
	}

	s.logger.Info("waiters sales fetched",
		"date_from", dateFrom,
		"date_to", dateTo,
		"employees", len(out))
	return out, nil
}
