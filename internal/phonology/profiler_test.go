package phonology

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiler_Memoizes(t *testing.T) {
	p, err := NewProfiler(Greek, 16)
	require.NoError(t, err)

	first := p.Profile("θεός")
	second := p.Profile("θεός")
	assert.Equal(t, first, second)
	assert.Equal(t, Greek.Profile("θεός"), first)

	hits, misses := p.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestProfiler_NoCache(t *testing.T) {
	p, err := NewProfiler(nil, 0)
	require.NoError(t, err)
	assert.Same(t, Greek, p.Table())

	p.Profile("ἅμα")
	p.Profile("ἅμα")

	hits, misses := p.Stats()
	assert.Zero(t, hits)
	assert.Equal(t, int64(2), misses)
}

func TestProfiler_Concurrent(t *testing.T) {
	p, err := NewProfiler(Greek, 4)
	require.NoError(t, err)

	words := Words("μῆνιν ἄειδε θεὰ Πηληϊάδεω Ἀχιλῆος οὐλομένην")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, w := range words {
				assert.Equal(t, Greek.Profile(w), p.Profile(w))
			}
		}()
	}
	wg.Wait()

	hits, misses := p.Stats()
	assert.Equal(t, int64(8*len(words)), hits+misses)
}
