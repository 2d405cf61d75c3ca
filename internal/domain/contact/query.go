package contact

import (
	"sort"
	"strings"
)

type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
	SortByName Sort = "name"
)

// ParseSort maps a query value to a Sort. Unknown or empty values fall back
// to SortNewest. "byName" is accepted as an alias of "name".
func ParseSort(s string) Sort {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oldest":
		return SortOldest
	case "name", "byname":
		return SortByName
	default:
		return SortNewest
	}
}

// ListOptions carries the admin filter and ordering for listing contacts.
// Filters are conjunctive.
type ListOptions struct {
	// Status restricts results to one status. Empty means all.
	Status Status
	// Search is a case-insensitive substring matched against name, email
	// and message.
	Search string
	Sort   Sort
}

// ParseStatusFilter maps a query value to a status filter. "" and "all"
// mean no filter.
func ParseStatusFilter(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return "", nil
	}
	return ParseStatus(s)
}

// Matches reports whether c satisfies the filter part of the options.
func (o ListOptions) Matches(c *Contact) bool {
	if o.Status != "" && c.Status != o.Status {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(o.Search))
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Email), term) ||
		strings.Contains(strings.ToLower(c.Message), term)
}

// Apply filters and orders contacts in memory. The input slice is not
// modified.
func (o ListOptions) Apply(in []*Contact) []*Contact {
	out := make([]*Contact, 0, len(in))
	for _, c := range in {
		if o.Matches(c) {
			out = append(out, c)
		}
	}

	switch o.Sort {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
			if a != b {
				return a < b
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}

// Stats holds aggregate counts per status.
type Stats struct {
	Total   int64 `json:"total"`
	New     int64 `json:"new"`
	Read    int64 `json:"read"`
	Replied int64 `json:"replied"`
}

// Add counts n contacts in status s.
func (st *Stats) Add(s Status, n int64) {
	switch s {
	case StatusNew:
		st.New += n
	case StatusRead:
		st.Read += n
	case StatusReplied:
		st.Replied += n
	}
	st.Total += n
}

// StatsOf computes Stats over a slice of contacts.
func StatsOf(in []*Contact) Stats {
	var st Stats
	for _, c := range in {
		st.Add(c.Status, 1)
	}
	return st
}
