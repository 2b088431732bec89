package embedding

import (
	"context"
	"math"

	"go.uber.org/zap"
)

// Source fronts a Provider with the in-process cache. One Source is shared by
// all ranking calls in a process; the cache is its only mutable state.
type Source struct {
	provider Provider
	cache    *Cache
	log      *zap.Logger
}

func NewSource(provider Provider, cache *Cache, log *zap.Logger) *Source {
	if cache == nil {
		cache = NewCache(DefaultCacheSize, DefaultCacheTTL)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Source{provider: provider, cache: cache, log: log}
}

// Vector returns the embedding for text, computing through the provider only
// on a cache miss.
func (s *Source) Vector(ctx context.Context, text string) ([]float64, error) {
	return s.cache.GetOrCompute(text, func() ([]float64, error) {
		vec, err := s.provider.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		s.log.Debug("cached new embedding", zap.String("key", Key(text)[:8]))
		return vec, nil
	})
}

// Similarity embeds both texts and returns their cosine similarity clamped to
// [0,1].
func (s *Source) Similarity(ctx context.Context, jobText, candidateText string) (float64, error) {
	a, err := s.Vector(ctx, jobText)
	if err != nil {
		return 0, err
	}
	b, err := s.Vector(ctx, candidateText)
	if err != nil {
		return 0, err
	}

	sim := Cosine(a, b)
	if sim < 0 {
		return 0, nil
	}
	if sim > 1 {
		return 1, nil
	}
	return sim, nil
}

func (s *Source) ClearCache() {
	s.cache.Clear()
	s.log.Info("cleared embedding cache")
}

func (s *Source) CacheStats() Stats {
	return s.cache.Stats()
}

// Cosine returns the cosine similarity of two vectors, 0 for mismatched or
// zero-magnitude input.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
