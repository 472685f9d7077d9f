package nimblepay

import (
	"net/url"
	"strconv"

	ierr "github.com/nimblepay/nimblepay-go/errors"
	"github.com/nimblepay/nimblepay-go/types"
	"github.com/samber/lo"
)

const (
	defaultListCount = 10
	defaultListSkip  = 0
)

// toQuery normalizes the list filter into wire query parameters: from/to are
// coerced to epoch seconds, count and skip are defaulted, everything else
// passes through untouched. Absent dates stay absent rather than defaulting.
func (r *ListInvoicesRequest) toQuery() (url.Values, error) {
	query := url.Values{}

	if r.From != nil {
		from, err := types.UnixSeconds(r.From)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Invalid from date").
				Mark(ierr.ErrValidation)
		}
		query.Set("from", strconv.FormatInt(from, 10))
	}

	if r.To != nil {
		to, err := types.UnixSeconds(r.To)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Invalid to date").
				Mark(ierr.ErrValidation)
		}
		query.Set("to", strconv.FormatInt(to, 10))
	}

	count := lo.FromPtrOr(r.Count, defaultListCount)
	skip := lo.FromPtrOr(r.Skip, defaultListSkip)

	// The remote behavior for negative pagination values is undefined, so
	// they are rejected here instead of being passed through.
	if count < 0 || skip < 0 {
		return nil, ierr.NewError("pagination values must not be negative").
			WithHint("Provide non-negative count and skip values").
			WithReportableDetails(map[string]any{
				"count": count,
				"skip":  skip,
			}).
			Mark(ierr.ErrValidation)
	}

	query.Set("count", strconv.Itoa(count))
	query.Set("skip", strconv.Itoa(skip))

	if r.CustomerID != "" {
		query.Set("customer_id", r.CustomerID)
	}
	if r.Status != "" {
		query.Set("status", r.Status.String())
	}

	return query, nil
}
