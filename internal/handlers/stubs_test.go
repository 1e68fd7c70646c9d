package handlers

import (
	"context"

	"github.com/Greco-cyber/poster-dashboard/internal/models"
)

// Hand-written stubs for the service interfaces. Each records the arguments
// of its last call and delegates to an optional function field.

type stubWaitersSales struct {
	fn       func(dateFrom, dateTo string) ([]models.WaiterSalesRow, error)
	dateFrom string
	dateTo   string
}

func (s *stubWaitersSales) WaitersSales(_ context.Context, dateFrom, dateTo string) ([]models.WaiterSalesRow, error) {
	s.dateFrom, s.dateTo = dateFrom, dateTo
	if s.fn == nil {
		return nil, nil
	}
	return s.fn(dateFrom, dateTo)
}

type stubWaitersCategories struct {
	fn       func(dateFrom, dateTo string, cats []int64, keywords []string) (*models.WaitersCategoriesReport, error)
	cats     []int64
	keywords []string
}

func (s *stubWaitersCategories) WaitersCategories(_ context.Context, dateFrom, dateTo string, cats []int64, keywords []string) (*models.WaitersCategoriesReport, error) {
	s.cats, s.keywords = cats, keywords
	if s.fn == nil {
		return &models.WaitersCategoriesReport{}, nil
	}
	return s.fn(dateFrom, dateTo, cats, keywords)
}

type stubBarReporter struct {
	fn       func(dateFrom, dateTo string) (*models.BarReport, error)
	dateFrom string
	dateTo   string
}

func (s *stubBarReporter) BarSales(_ context.Context, dateFrom, dateTo string) (*models.BarReport, error) {
	s.dateFrom, s.dateTo = dateFrom, dateTo
	if s.fn == nil {
		return &models.BarReport{}, nil
	}
	return s.fn(dateFrom, dateTo)
}

type stubMenuProvider struct {
	fn func() ([]models.MenuCategory, error)
}

func (s *stubMenuProvider) Categories(_ context.Context) ([]models.MenuCategory, error) {
	if s.fn == nil {
		return nil, nil
	}
	return s.fn()
}

type stubDebugSampler struct {
	fn    func(dateFrom, dateTo string, limit int) (*models.DebugSample, error)
	limit int
}

func (s *stubDebugSampler) DebugTransactions(_ context.Context, dateFrom, dateTo string, limit int) (*models.DebugSample, error) {
	s.limit = limit
	if s.fn == nil {
		return &models.DebugSample{}, nil
	}
	return s.fn(dateFrom, dateTo, limit)
}
