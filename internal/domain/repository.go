package domain

import (
	"context"
	"time"
)

// FoodSource is a single nutrition database queried by name. Sources are
// tried in the order they are registered with the resolver; priority lives
// in that ordering, not in the source itself.
type FoodSource interface {
	// Tier identifies the source class for logging and confidence.
	Tier() SourceTier

	// Search returns candidate records for a free-form food name. An
	// empty slice means "no candidates"; an error means the source is
	// unavailable (both advance the fallback chain).
	Search(ctx context.Context, name string) ([]SourceRecord, error)
}

// BarcodeSource is a source that supports direct barcode lookup.
// Barcodes are assumed unique, so no name matching applies.
type BarcodeSource interface {
	ByBarcode(ctx context.Context, code string) (*SourceRecord, error)
}

// CacheRepository caches resolved records keyed by normalized food name.
// Values are deterministic per key, so concurrent writes may race safely.
type CacheRepository interface {
	Get(ctx context.Context, key string) (*SourceRecord, error)
	Set(ctx context.Context, key string, record *SourceRecord, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ResultStore persists engine outputs. Persistence is entirely the
// caller's responsibility; the engine returns values and never writes
// them itself.
type ResultStore interface {
	SaveScore(ctx context.Context, ownerID string, result *ScoreResult) error
	SaveTargets(ctx context.Context, ownerID string, targets *CalculatedTargets) error
}
