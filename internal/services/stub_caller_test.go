package services

import (
	"context"
	"encoding/json"
	"net/url"
)

// stubCaller scripts vendor responses for service tests. Each Call is
// recorded so tests can assert which methods were attempted and how often.
type stubCaller struct {
	handler func(method string, params url.Values) (json.RawMessage, error)
	calls   []stubCall
}

type stubCall struct {
	method string
	params url.Values
}

func (c *stubCaller) Call(_ context.Context, method string, params url.Values) (json.RawMessage, error) {
	c.calls = append(c.calls, stubCall{method: method, params: params})
	return c.handler(method, params)
}

func (c *stubCaller) callCount(method string) int {
	n := 0
	for _, call := range c.calls {
		if call.method == method {
			n++
		}
	}
	return n
}
