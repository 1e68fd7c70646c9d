package services

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/Greco-cyber/poster-dashboard/internal/models"
	"github.com/Greco-cyber/poster-dashboard/internal/poster"
)

// DefaultCandidates returns the ordered (method, parameter variant) pairs
// known to sometimes expose line-item detail. The vendor's public behavior
// is inconsistent across accounts, so each is tried in turn and the first
// non-empty result wins.
func DefaultCandidates() []models.Candidate {
	return []models.Candidate{
		{Method: "transactions.getTransactions", Params: url.Values{"include": {"products,receipt_positions"}}},
		{Method: "transactions.getTransactions", Params: url.Values{"expand": {"positions"}}},
		{Method: "dash.getTransactions", Params: url.Values{"include": {"products,receipt_positions"}}},
		{Method: "dash.getTransactions", Params: url.Values{"expand": {"positions"}}},
	}
}

// TransactionFetcher retrieves raw transaction records with line-item detail
// by probing the candidate list in priority order.
type TransactionFetcher struct {
	api        poster.Caller
	candidates []models.Candidate
	logger     *slog.Logger
}

// NewTransactionFetcher creates a fetcher over the default candidate list.
func NewTransactionFetcher(api poster.Caller, logger *slog.Logger) *TransactionFetcher {
	return NewTransactionFetcherWithCandidates(api, DefaultCandidates(), logger)
}

// NewTransactionFetcherWithCandidates creates a fetcher with an explicit
// candidate list, mainly for tests.
func NewTransactionFetcherWithCandidates(api poster.Caller, candidates []models.Candidate, logger *slog.Logger) *TransactionFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionFetcher{
		api:        api,
		candidates: candidates,
		logger:     logger,
	}
}

// Fetch tries each candidate in order and returns the first non-empty
// transaction array together with the candidate that produced it. A single
// candidate's transport or parse error is swallowed and the next candidate
// is tried. Exhausting all candidates returns (nil, nil): a valid empty
// result signalling that no detailed transaction data was available, so the
// caller may fall back to the category-level report.
func (f *TransactionFetcher) Fetch(ctx context.Context, dateFrom, dateTo string) ([]map[string]any, *models.Candidate) {
	for i := range f.candidates {
		cand := f.candidates[i]

		params := url.Values{}
		params.Set("dateFrom", dateFrom)
		params.Set("dateTo", dateTo)
		for key, values := range cand.Params {
			for _, v := range values {
				params.Add(key, v)
			}
		}

		raw, err := f.api.Call(ctx, cand.Method, params)
		if err != nil {
			f.logger.Debug("transaction candidate failed, trying next",
				"method", cand.Method,
				"params", cand.Params.Encode(),
				"error", err)
			continue
		}

		txs, ok := poster.FirstArray(raw)
		if !ok || len(txs) == 0 {
			continue
		}

		f.logger.Info("transaction candidate succeeded",
			"method", cand.Method,
			"params", cand.Params.Encode(),
			"transactions", len(txs))
		return txs, &cand
	}

	f.logger.Info("no transaction candidate yielded data",
		"date_from", dateFrom,
		"date_to", dateTo)
	return nil, nil
}
