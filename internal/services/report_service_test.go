package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/Greco-cyber/poster-dashboard/internal/config"
	"github.com/Greco-cyber/poster-dashboard/internal/poster"

	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) newService(api *stubCaller, cfg config.ReportsConfig) *ReportService {
	if cfg.ProductCacheTTL == 0 {
		cfg.ProductCacheTTL = 15 * time.Minute
	}
	cache := NewProductCache(api, cfg.ProductCacheTTL, nil)
	fetcher := NewTransactionFetcher(api, nil)
	overall := NewCategoryReportService(api, nil)
	return NewReportService(cache, fetcher, overall, cfg, nil)
}

// scriptedVendor answers the three vendor surfaces a report touches.
type scriptedVendor struct {
	products   string
	categories string
	catsErr    error
	txs        string
	txsErr     error
}

func (v *scriptedVendor) handler() func(string, url.Values) (json.RawMessage, error) {
	return func(method string, _ url.Values) (json.RawMessage, error) {
		switch method {
		case "menu.getProducts":
			return json.RawMessage(v.products), nil
		case "dash.getCategoriesSales":
			if v.catsErr != nil {
				return nil, v.catsErr
			}
			return json.RawMessage(v.categories), nil
		default: // transaction candidates
			if v.txsErr != nil {
				return nil, v.txsErr
			}
			return json.RawMessage(v.txs), nil
		}
	}
}

func (s *ReportServiceTestSuite) TestBarSales_AssemblesBothHalves() {
	vendor := &scriptedVendor{
		products: `{"response": [
			{"product_id": 530, "menu_category_id": 47, "product_name": "Капучино"}
		]}`,
		categories: `{"response": [
			{"category_id": 9, "category_name": "Бар", "count": 3, "revenue": 90000},
			{"category_id": 50, "category_name": "інше", "count": 1, "revenue": 100}
		]}`,
		txs: `{"response": [
			{"user_id": 7, "name": "Ivan", "receipt_positions": [
				{"product_id": 530, "count": 3}
			]},
			{"user_id": 7, "name": "Ivan", "receipt_positions": [
				{"product_id": 530, "count": 2}
			]}
		]}`,
	}
	api := &stubCaller{handler: vendor.handler()}

	svc := s.newService(api, config.ReportsConfig{
		BarCategories: []int64{9, 14, 34},
		ShotTable:     config.ShotTable{530: 2},
	})

	report, err := svc.BarSales(context.Background(), "20250601", "20250601")

	s.Require().NoError(err)
	s.Require().Len(report.Categories, 1)
	s.Equal(int64(9), report.Categories[0].CategoryID)

	s.Equal(5.0, report.Coffee.TotalQuantity)
	s.Equal(10.0, report.Coffee.TotalZakladki)
	s.Require().Len(report.Coffee.ByProduct, 1)
	s.Equal("Капучино", report.Coffee.ByProduct[0].Name)

	s.Require().NotNil(report.Used)
	s.Equal("transactions.getTransactions", report.Used.Method)
}

func (s *ReportServiceTestSuite) TestBarSales_NoTransactionDetail() {
	vendor := &scriptedVendor{
		products:   `{"response": []}`,
		categories: `{"response": [{"category_id": 9, "category_name": "Бар", "count": 3, "revenue": 90000}]}`,
		txsErr:     errors.New("HTTP 403"),
	}
	api := &stubCaller{handler: vendor.handler()}

	svc := s.newService(api, config.ReportsConfig{
		BarCategories: []int64{9},
		ShotTable:     config.ShotTable{530: 2},
	})

	report, err := svc.BarSales(context.Background(), "20250601", "20250601")

	s.Require().NoError(err)
	s.Nil(report.Used, "no candidate produced data")
	s.Zero(report.Coffee.TotalQuantity)
	s.Empty(report.Coffee.ByProduct)
	// The category half still came through.
	s.Len(report.Categories, 1)
}

func (s *ReportServiceTestSuite) TestWaitersCategories_OverallFailureDegrades() {
	// The vendor category report 500s; the per-employee half still
	// computes and overall comes back empty.
	vendor := &scriptedVendor{
		products: `{"response": [
			{"product_id": 100, "menu_category_id": 34, "product_name": "Лате"}
		]}`,
		catsErr: errors.New("HTTP 500"),
		txs: `{"response": [
			{"user_id": 7, "name": "Ivan", "receipt_positions": [
				{"product_id": 100, "count": 2, "payed_sum": "12000"}
			]}
		]}`,
	}
	api := &stubCaller{handler: vendor.handler()}

	svc := s.newService(api, config.ReportsConfig{MatchStrategy: config.MatchUnion})

	report, err := svc.WaitersCategories(context.Background(), "20250601", "20250601", []int64{34}, nil)

	s.Require().NoError(err)
	s.Require().Len(report.Employees, 1)
	s.Equal(int64(7), report.Employees[0].EmployeeID)
	s.Equal(int64(12000), report.Employees[0].TotalMinor)
	s.NotNil(report.Overall)
	s.Empty(report.Overall)
}

func (s *ReportServiceTestSuite) TestWaitersCategories_NoMatchesIsEmptyNotError() {
	vendor := &scriptedVendor{
		products:   `{"response": []}`,
		categories: `{"response": []}`,
		txs: `{"response": [
			{"user_id": 7, "name": "Ivan", "receipt_positions": [
				{"product_id": 100, "count": 2, "category_id": 34}
			]}
		]}`,
	}
	api := &stubCaller{handler: vendor.handler()}

	svc := s.newService(api, config.ReportsConfig{MatchStrategy: config.MatchUnion})

	report, err := svc.WaitersCategories(context.Background(), "20250601", "20250601", []int64{99}, nil)

	s.Require().NoError(err)
	// Nothing matched category 99, so the employee list is empty.
	s.Empty(report.Employees)
	s.NotNil(report.Overall)
}

func (s *ReportServiceTestSuite) TestDebugTransactions_BoundedSample() {
	vendor := &scriptedVendor{
		products: `{"response": []}`,
		txs: `{"response": [
			{"user_id": 1, "receipt_positions": [
				{"product_id": 1, "count": 1},
				{"product_id": 2, "count": 1},
				{"product_id": 3, "count": 1}
			]}
		]}`,
		categories: `{"response": []}`,
	}
	api := &stubCaller{handler: vendor.handler()}

	svc := s.newService(api, config.ReportsConfig{})

	sample, err := svc.DebugTransactions(context.Background(), "20250601", "20250601", 2)

	s.Require().NoError(err)
	s.Equal(1, sample.Transactions)
	s.Len(sample.Positions, 2)
	s.NotNil(sample.Used)
}

func (s *ReportServiceTestSuite) TestBarSales_MissingTokenAborts() {
	api := &stubCaller{handler: func(string, url.Values) (json.RawMessage, error) {
		return nil, poster.ErrMissingToken
	}}

	svc := s.newService(api, config.ReportsConfig{BarCategories: []int64{9}})

	report, err := svc.BarSales(context.Background(), "20250601", "20250601")

	s.Nil(report)
	s.ErrorIs(err, poster.ErrMissingToken)
}
