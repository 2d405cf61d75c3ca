package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixKey(t *testing.T) {
	assert.Equal(t, "contact_stats:all", ContactStats.Key("all"))
	assert.Equal(t, "rate_limit:submit", RateLimit.Key("submit"))
}
