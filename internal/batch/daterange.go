package batch

import (
	"fmt"
	"sort"
	"time"
)

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format("2006-01-02"),
		dr.End.Format("2006-01-02"))
}

// Merge combines this date range with another, returning the overall range
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// AccountSummary aggregates the converted files of one account.
type AccountSummary struct {
	AccountID      string
	Files          []string
	Period         DateRange
	Messages       int
	StatementLines int
}

// Accounts merges the per-file account summaries of the converted files, sorted by account ID.
func (r *Result) Accounts() []AccountSummary {
	byAccount := make(map[string]*AccountSummary)
	var order []string
	for _, f := range r.Converted {
		for _, a := range f.Accounts {
			summary, ok := byAccount[a.AccountID]
			if !ok {
				summary = &AccountSummary{AccountID: a.AccountID}
				byAccount[a.AccountID] = summary
				order = append(order, a.AccountID)
			}
			summary.Files = append(summary.Files, a.Files...)
			summary.Period = summary.Period.Merge(a.Period)
			summary.Messages += a.Messages
			summary.StatementLines += a.StatementLines
		}
	}

	sort.Strings(order)
	out := make([]AccountSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byAccount[id])
	}
	return out
}
