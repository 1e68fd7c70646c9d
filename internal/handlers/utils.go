package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Greco-cyber/poster-dashboard/internal/dto"
	apierrors "github.com/Greco-cyber/poster-dashboard/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationCode maps a struct validation failure to the most specific
// error code its first failing field supports.
func validationCode(err error) apierrors.ErrorCode {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apierrors.ValidationGeneral
	}
	switch fieldErrs[0].Field() {
	case "DateFrom", "DateTo":
		return apierrors.ValidationInvalidDate
	case "Cats":
		return apierrors.ValidationInvalidCats
	case "Limit":
		return apierrors.ValidationInvalidLimit
	default:
		return apierrors.ValidationGeneral
	}
}

// todayYMD formats the current date as YYYYMMDD in the reporting timezone.
func todayYMD(loc *time.Location) string {
	return time.Now().In(loc).Format("20060102")
}

// resolveDateRange applies the default rules for an empty range: a missing
// dateFrom becomes today, a missing dateTo becomes dateFrom. A single-day
// query therefore needs only dateFrom.
func resolveDateRange(q dto.DateRangeQuery, loc *time.Location) (string, string) {
	dateFrom := q.DateFrom
	if dateFrom == "" {
		dateFrom = todayYMD(loc)
	}
	dateTo := q.DateTo
	if dateTo == "" {
		dateTo = dateFrom
	}
	return dateFrom, dateTo
}

// parseCats parses a comma-separated list of category ids. Blank entries
// are skipped; a malformed entry fails the whole list.
func parseCats(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	cats := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %q", part)
		}
		cats = append(cats, id)
	}
	return cats, nil
}

// parseKeywords splits a comma-separated keyword list, dropping blanks.
func parseKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keywords = append(keywords, part)
	}
	return keywords
}
