package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/nutriscore/backend/internal/domain"
	"github.com/nutriscore/backend/internal/metrics"
)

// Package-level compiled regex patterns for cache keying.
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// ResolverConfig holds tunables for the source resolver.
type ResolverConfig struct {
	CacheTTL      time.Duration
	SourceTimeout time.Duration
}

// Resolver turns a free-form food name into a single SourceRecord by
// querying sources strictly in registration order and returning the first
// source that yields at least one candidate. No merging across sources.
// Each source call is independently fault-isolated: an error or timeout is
// treated as "no candidates" and advances the chain.
type Resolver struct {
	sources       []domain.FoodSource
	barcodeSource domain.BarcodeSource
	cache         domain.CacheRepository
	cacheTTL      time.Duration
	sourceTimeout time.Duration
}

// NewResolver creates a resolver over the given priority-ordered sources.
// The cache is optional; pass nil to resolve uncached.
func NewResolver(
	sources []domain.FoodSource,
	barcodeSource domain.BarcodeSource,
	cache domain.CacheRepository,
	config ResolverConfig,
) *Resolver {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 168 * time.Hour // Default 7 days
	}
	sourceTimeout := config.SourceTimeout
	if sourceTimeout == 0 {
		sourceTimeout = 10 * time.Second
	}

	return &Resolver{
		sources:       sources,
		barcodeSource: barcodeSource,
		cache:         cache,
		cacheTTL:      cacheTTL,
		sourceTimeout: sourceTimeout,
	}
}

// Resolve finds the best record for a food name.
// Flow: check cache -> walk the source chain -> match best candidate ->
// cache -> return. Exhausting every source yields ErrFoodNotFound.
func (r *Resolver) Resolve(ctx context.Context, name string) (*domain.SourceRecord, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := resolveCacheKey(name)

	if r.cache != nil {
		if cached, err := r.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			metrics.RecordCacheHit()
			return cached, nil
		}
	}

	for _, source := range r.sources {
		record, ok := r.searchSource(ctx, source, name)
		if !ok {
			continue
		}

		if r.cache != nil {
			if err := r.cache.Set(ctx, cacheKey, record, r.cacheTTL); err != nil {
				log.Printf("[RESOLVE] cache set failed for %q: %v", name, err)
			}
		}
		return record, nil
	}

	metrics.RecordUnresolvedFood()
	return nil, domain.ErrFoodNotFound
}

// searchSource queries one source under its own timeout and picks the best
// candidate. A failed or empty source reports ok=false so the caller can
// advance the chain; failures never propagate.
func (r *Resolver) searchSource(ctx context.Context, source domain.FoodSource, name string) (*domain.SourceRecord, bool) {
	tier := string(source.Tier())

	searchCtx, cancel := context.WithTimeout(ctx, r.sourceTimeout)
	defer cancel()

	candidates, err := source.Search(searchCtx, name)
	if err != nil {
		log.Printf("[RESOLVE] %s source unavailable for %q: %v", tier, name, err)
		metrics.RecordSourceLookup(tier, metrics.OutcomeUnavailable)
		return nil, false
	}
	if len(candidates) == 0 {
		metrics.RecordSourceLookup(tier, metrics.OutcomeEmpty)
		return nil, false
	}

	metrics.RecordSourceLookup(tier, metrics.OutcomeHit)
	return BestMatch(name, candidates), true
}

// ResolveByBarcode bypasses name matching entirely: barcodes are assumed
// unique, so this is a direct lookup against the community source. Source
// unavailability is reported as not-found, consistent with Resolve.
func (r *Resolver) ResolveByBarcode(ctx context.Context, code string) (*domain.SourceRecord, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.ErrInvalidRequest
	}
	if r.barcodeSource == nil {
		return nil, domain.ErrFoodNotFound
	}

	lookupCtx, cancel := context.WithTimeout(ctx, r.sourceTimeout)
	defer cancel()

	record, err := r.barcodeSource.ByBarcode(lookupCtx, code)
	if err != nil {
		log.Printf("[RESOLVE] barcode lookup failed for %q: %v", code, err)
		return nil, domain.ErrFoodNotFound
	}
	return record, nil
}

// resolveCacheKey builds a normalized cache key from a food name.
// Format: "resolve:{normalized_name}"
func resolveCacheKey(name string) string {
	normalized := strings.ToLower(name)
	normalized = nonAlphanumericRegex.ReplaceAllString(normalized, "")
	normalized = multipleSpacesRegex.ReplaceAllString(normalized, " ")
	return fmt.Sprintf("resolve:%s", strings.TrimSpace(normalized))
}
