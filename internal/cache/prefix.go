package cache

import "fmt"

type Prefix string

const (
	ContactStats Prefix = "contact_stats"
	RateLimit    Prefix = "rate_limit"
)

// AllContactStats holds the cached inbox counters. Anything that changes
// stored contacts deletes it.
var AllContactStats = ContactStats.Key("all")

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
