package sim

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_ticks_total",
		Help: "Total number of fixed simulation ticks executed",
	})

	metricSpawns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arena_spawns_total",
		Help: "Total fighters spawned, by team",
	}, []string{"team"})

	metricDeaths = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arena_deaths_total",
		Help: "Total fighter deaths, by team",
	}, []string{"team"})

	metricProjectiles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_projectiles_launched_total",
		Help: "Total projectiles launched",
	})

	metricEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arena_events_total",
		Help: "External events applied, by type",
	}, []string{"type"})

	metricEventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_events_dropped_total",
		Help: "External events dropped because the intake queue was full",
	})
)
