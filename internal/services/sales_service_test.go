package services

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/Greco-cyber/poster-dashboard/internal/poster"

	"github.com/stretchr/testify/suite"
)

type SalesServiceTestSuite struct {
	suite.Suite
}

func TestSalesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesServiceTestSuite))
}

func (s *SalesServiceTestSuite) TestWaitersSales_NormalizesRows() {
	api := &stubCaller{handler: func(method string, params url.Values) (json.RawMessage, error) {
		s.Equal("dash.getWaitersSales", method)
		return json.RawMessage(`{"response": [
			{"user_id": "7", "name": "Іван", "revenue": "1234500", "clients": "25", "middle_invoice": "493.8"},
			{"user_id": 8, "name": "Ольга", "revenue": 500000, "clients": 10, "middle_invoice": 500}
		]}`), nil
	}}

	svc := NewSalesService(api, nil)

	rows, err := svc.WaitersSales(context.Background(), "20250601", "20250601")

	s.NoError(err)
	s.Require().Len(rows, 2)

	s.Equal(int64(7), rows[0].UserID)
	s.Equal("Іван", rows[0].Name)
	s.Equal(int64(1234500), rows[0].RevenueMinor)
	s.Equal(int64(25), rows[0].Clients)
	s.Equal("493.8", rows[0].MiddleInvoice.String())

	s.Equal(int64(8), rows[1].UserID)
	s.Equal("500", rows[1].MiddleInvoice.String())
}

func (s *SalesServiceTestSuite) TestWaitersSales_VendorErrorSurfaces() {
	apiErr := &poster.APIError{Method: "dash.getWaitersSales", StatusCode: 403, Body: "forbidden"}
	api := &stubCaller{handler: func(string, url.Values) (json.RawMessage, error) {
		return nil, apiErr
	}}

	svc := NewSalesService(api, nil)

	_, err := svc.WaitersSales(context.Background(), "20250601", "20250601")

	var got *poster.APIError
	s.ErrorAs(err, &got)
	s.Equal(403, got.StatusCode)
}

func (s *SalesServiceTestSuite) TestWaitersSales_EmptyResponse() {
	api := &stubCaller{handler: func(string, url.Values) (json.RawMessage, error) {
		return json.RawMessage(`{"response": []}`), nil
	}}

	svc := NewSalesService(api, nil)

	rows, err := svc.WaitersSales(context.Background(), "20250601", "20250601")

	s.NoError(err)
	s.Empty(rows)
}

type MenuServiceTestSuite struct {
	suite.Suite
}

func TestMenuServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MenuServiceTestSuite))
}

func (s *MenuServiceTestSuite) TestCategories_SortedByID() {
	api := &stubCaller{handler: func(method string, _ url.Values) (json.RawMessage, error) {
		s.Equal("menu.getCategories", method)
		return json.RawMessage(`{"response": [
			{"category_id": "47", "category_name": "Кава (штат)"},
			{"category_id": "9", "category_name": "Бар"},
			{"category_name": "no id, skipped"}
		]}`), nil
	}}

	svc := NewMenuService(api, nil)

	cats, err := svc.Categories(context.Background())

	s.NoError(err)
	s.Require().Len(cats, 2)
	s.Equal(int64(9), cats[0].CategoryID)
	s.Equal("Бар", cats[0].CategoryName)
	s.Equal(int64(47), cats[1].CategoryID)
}
