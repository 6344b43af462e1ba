// Package metrics exposes Prometheus counters for the nutrition engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes recorded per source tier.
const (
	OutcomeHit         = "hit"
	OutcomeEmpty       = "empty"
	OutcomeUnavailable = "unavailable"
)

var (
	sourceLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nutriscore",
		Subsystem: "resolver",
		Name:      "source_lookups_total",
		Help:      "Nutrition source lookups by tier and outcome.",
	}, []string{"source", "outcome"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nutriscore",
		Subsystem: "resolver",
		Name:      "cache_hits_total",
		Help:      "Resolutions served from the record cache.",
	})

	unresolvedFoods = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nutriscore",
		Subsystem: "resolver",
		Name:      "unresolved_foods_total",
		Help:      "Food names that exhausted every source.",
	})

	mealsScored = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nutriscore",
		Subsystem: "engine",
		Name:      "meals_scored_total",
		Help:      "Meals run through resolve-and-score.",
	})

	targetsCalculated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nutriscore",
		Subsystem: "engine",
		Name:      "targets_calculated_total",
		Help:      "Personalized target calculations performed.",
	})
)

// RecordSourceLookup counts one lookup against a source tier.
func RecordSourceLookup(source, outcome string) {
	sourceLookups.WithLabelValues(source, outcome).Inc()
}

// RecordCacheHit counts a resolution served from cache.
func RecordCacheHit() { cacheHits.Inc() }

// RecordUnresolvedFood counts a name no source could resolve.
func RecordUnresolvedFood() { unresolvedFoods.Inc() }

// RecordMealScored counts a completed resolve-and-score call.
func RecordMealScored() { mealsScored.Inc() }

// RecordTargetsCalculated counts a completed target calculation.
func RecordTargetsCalculated() { targetsCalculated.Inc() }
