package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Greco-cyber/poster-dashboard/internal/config"
	"github.com/Greco-cyber/poster-dashboard/internal/models"
	"github.com/Greco-cyber/poster-dashboard/internal/poster"
)

// ReportService orchestrates the assembled reports: it refreshes the
// reference cache, probes for transaction detail, and folds the result
// through the aggregators, merging in the vendor's own category report
// where one applies.
type ReportService struct {
	cache   *ProductCache
	fetcher *TransactionFetcher
	overall *CategoryReportService
	cfg     config.ReportsConfig
	logger  *slog.Logger
}

func NewReportService(
	cache *ProductCache,
	fetcher *TransactionFetcher,
	overall *CategoryReportService,
	cfg config.ReportsConfig,
	logger *slog.Logger,
) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		cache:   cache,
		fetcher: fetcher,
		overall: overall,
		cfg:     cfg,
		logger:  logger,
	}
}

// refreshCache refreshes the product reference cache. A missing vendor token
// is a configuration error and aborts the report; any other refresh failure
// degrades to whatever the cache already holds.
func (s *ReportService) refreshCache(ctx context.Context, report string) error {
	err := s.cache.EnsureFresh(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, poster.ErrMissingToken) {
		return err
	}
	s.logger.Warn("proceeding with stale product cache", "report", report, "error", err)
	return nil
}

// BarSales builds the bar report: the vendor's own totals for the
// configured bar categories, plus the coffee shot summary derived from
// transaction detail. Either half can be missing without failing the
// request; a degraded report is still a report.
func (s *ReportService) BarSales(ctx context.Context, dateFrom, dateTo string) (*models.BarReport, error) {
	barCats := make(map[int64]struct{}, len(s.cfg.BarCategories))
	for _, id := range s.cfg.BarCategories {
		barCats[id] = struct{}{}
	}

	categories := s.overall.FetchOverall(ctx, dateFrom, dateTo, barCats)

	if err := s.refreshCache(ctx, "bar report"); err != nil {
		return nil, err
	}

	txs, used := s.fetcher.Fetch(ctx, dateFrom, dateTo)
	coffee := AggregateShots(txs, s.cfg.ShotTable, s.cache)

	return &models.BarReport{
		Categories: categories,
		Coffee:     coffee,
		Used:       used,
	}, nil
}

// WaitersCategories builds the per-employee per-category report for the
// requested category ids, paired with the independent overall totals.
// Overall failure yields an empty overall slice, never an error.
func (s *ReportService) WaitersCategories(ctx context.Context, dateFrom, dateTo string, cats []int64, keywords []string) (*models.WaitersCategoriesReport, error) {
	if err := s.refreshCache(ctx, "waiters categories"); err != nil {
		return nil, err
	}

	filter := NewCategoryFilter(cats, keywords, s.cfg.MatchStrategy, s.cache)

	txs, used := s.fetcher.Fetch(ctx, dateFrom, dateTo)
	employees := AggregateEmployees(txs, filter, s.cache)

	overall := s.overall.FetchOverall(ctx, dateFrom, dateTo, filter.Categories)

	return &models.WaitersCategoriesReport{
		Employees: employees,
		Overall:   overall,
		Used:      used,
	}, nil
}

// DebugTransactions returns a bounded sample of flattened, normalized
// positions for operator troubleshooting of field resolution.
func (s *ReportService) DebugTransactions(ctx context.Context, dateFrom, dateTo string, limit int) (*models.DebugSample, error) {
	if err := s.refreshCache(ctx, "debug sample"); err != nil {
		return nil, err
	}

	txs, used := s.fetcher.Fetch(ctx, dateFrom, dateTo)

	sample := &models.DebugSample{
		Used:         used,
		Transactions: len(txs),
		Positions:    []models.NormalizedPosition{},
	}

	for _, tx := range txs {
		for _, pos := range FlattenPositions(tx) {
			if len(sample.Positions) >= limit {
				return sample, nil
			}
			sample.Positions = append(sample.Positions, NormalizePosition(pos, s.cache))
		}
	}
	return sample, nil
}
