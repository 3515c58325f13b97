package bloom_test

import (
	"fmt"
	"testing"

	"github.com/stockwire/stockwire/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSeenSet(t *testing.T) {
	t.Parallel()

	s := bloom.NewSeenSet(1000, 0.01)

	assert.False(t, s.Seen("https://outlet.example/story-one"), "first sighting")
	assert.True(t, s.Seen("https://outlet.example/story-one"), "second sighting")
	assert.False(t, s.Seen("https://outlet.example/story-two"), "different URL")
}

func TestSeenSet_EstimatedCount(t *testing.T) {
	t.Parallel()

	s := bloom.NewSeenSet(10000, 0.01)
	for i := 0; i < 100; i++ {
		s.Seen(fmt.Sprintf("https://outlet.example/story-%d", i))
	}

	count := s.EstimatedCount()
	assert.InDelta(t, 100, float64(count), 10)
}
