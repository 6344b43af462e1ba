package usecase

import (
	"context"
	"sync"

	"github.com/nutriscore/backend/internal/domain"
	"github.com/nutriscore/backend/internal/metrics"
)

// Engine is the top-level entry point for meal resolution and scoring.
// Items within a meal resolve concurrently; the source-priority fallback
// still applies per item. Scoring and diet checks run on the aggregate and
// are pure, so the engine holds no shared mutable state.
type Engine struct {
	resolver *Resolver
}

// NewEngine creates an engine around the given resolver.
func NewEngine(resolver *Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// ResolveAndScore resolves every food query, aggregates the scaled
// nutrition, and computes the quality score plus diet verdicts. Names no
// source can resolve are returned in Unmatched rather than failing the
// meal; a meal where nothing resolved returns ErrFoodNotFound.
func (e *Engine) ResolveAndScore(ctx context.Context, queries []domain.FoodQuery) (*domain.MealResult, error) {
	if len(queries) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	resolved := make([]*domain.ResolvedFoodItem, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(i int, q domain.FoodQuery) {
			defer wg.Done()
			record, err := e.resolver.Resolve(ctx, q.Name)
			if err != nil {
				return // left nil, reported as unmatched
			}
			grams := NormalizeToGrams(q.Quantity, q.Unit)
			resolved[i] = &domain.ResolvedFoodItem{
				Query:           q,
				Record:          *record,
				GramsEquivalent: grams,
				ScaledNutrition: Scale(record.Facts, grams),
			}
		}(i, query)
	}
	wg.Wait()

	var items []domain.ResolvedFoodItem
	var unmatched []string
	var names []string
	for i, item := range resolved {
		if item == nil {
			unmatched = append(unmatched, queries[i].Name)
			continue
		}
		items = append(items, *item)
		names = append(names, queries[i].Name)
	}

	if len(items) == 0 {
		return nil, domain.ErrFoodNotFound
	}

	aggregate := Aggregate(items)
	metrics.RecordMealScored()

	return &domain.MealResult{
		Items:         items,
		Unmatched:     unmatched,
		Aggregate:     aggregate,
		Score:         Score(aggregate, names),
		Compatibility: CheckDiets(names, aggregate),
	}, nil
}

// ResolveByBarcode looks a single food up by barcode via the community
// source, bypassing name matching.
func (e *Engine) ResolveByBarcode(ctx context.Context, code string) (*domain.SourceRecord, error) {
	return e.resolver.ResolveByBarcode(ctx, code)
}

// Targets computes personalized daily macro targets. Thin wrapper so the
// delivery layer has a single engine dependency.
func (e *Engine) Targets(profile domain.PersonalProfile, goal domain.Goal) (*domain.CalculatedTargets, error) {
	targets, err := CalculateTargets(profile, goal)
	if err != nil {
		return nil, err
	}
	metrics.RecordTargetsCalculated()
	return targets, nil
}
