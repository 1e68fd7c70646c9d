package poster

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(server *httptest.Server, timeout time.Duration) *Client {
	return New(Config{
		BaseURL: server.URL,
		Token:   "test-token",
		Timeout: timeout,
	}, slog.Default())
}

func (s *ClientTestSuite) TestCall_AppendsTokenAndParams() {
	var gotPath string
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"response": []}`))
	}))
	defer server.Close()

	client := s.newClient(server, 0)

	params := url.Values{}
	params.Set("dateFrom", "20250101")
	params.Set("dateTo", "20250131")

	raw, err := client.Call(context.Background(), "dash.getWaitersSales", params)

	s.NoError(err)
	s.JSONEq(`{"response": []}`, string(raw))
	s.Equal("/dash.getWaitersSales", gotPath)
	s.Equal("test-token", gotQuery.Get("token"))
	s.Equal("20250101", gotQuery.Get("dateFrom"))
	s.Equal("20250131", gotQuery.Get("dateTo"))
}

func (s *ClientTestSuite) TestCall_MissingToken() {
	client := New(Config{BaseURL: "http://localhost:1", Token: ""}, slog.Default())

	_, err := client.Call(context.Background(), "menu.getProducts", nil)

	s.ErrorIs(err, ErrMissingToken)
}

func (s *ClientTestSuite) TestCall_NonOKStatusBecomesAPIError() {
	body := strings.Repeat("x", 1000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := s.newClient(server, 0)

	_, err := client.Call(context.Background(), "dash.getTransactions", nil)

	var apiErr *APIError
	s.ErrorAs(err, &apiErr)
	s.Equal(http.StatusForbidden, apiErr.StatusCode)
	s.Equal("dash.getTransactions", apiErr.Method)
	// Error bodies are truncated before they travel any further.
	s.Len(apiErr.Body, maxErrorBody)
}

func (s *ClientTestSuite) TestCall_MalformedBodyBecomesDecodeError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := s.newClient(server, 0)

	_, err := client.Call(context.Background(), "menu.getProducts", nil)

	var decodeErr *DecodeError
	s.ErrorAs(err, &decodeErr)
	s.Equal("menu.getProducts", decodeErr.Method)
}

func (s *ClientTestSuite) TestCall_TimeoutIsTransportError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := s.newClient(server, 20*time.Millisecond)

	_, err := client.Call(context.Background(), "dash.getWaitersSales", nil)

	s.Error(err)
	var apiErr *APIError
	s.False(errors.As(err, &apiErr), "timeout must not be an APIError")
}
