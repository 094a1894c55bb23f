// Package analytics aggregates query events consumed by the worker.
package analytics

import (
	"sort"
	"sync"

	"github.com/Domenick1991/flightsearch/internal/kafka"
	"github.com/rs/zerolog"
)

type RouteCount struct {
	Route string `json:"route"`
	Count int    `json:"count"`
}

type Snapshot struct {
	Total     int            `json:"total"`
	ByType    map[string]int `json:"by_type"`
	TopRoutes []RouteCount   `json:"top_routes"`
	Unmatched int            `json:"unmatched_searches"`
	SoldOut   int            `json:"sold_out_checks"`
}

// Stats is safe for concurrent use.
type Stats struct {
	mu        sync.Mutex
	total     int
	byType    map[string]int
	routes    map[string]int
	unmatched int
	soldOut   int
}

func NewStats() *Stats {
	return &Stats{
		byType: make(map[string]int),
		routes: make(map[string]int),
	}
}

func (s *Stats) Record(event kafka.QueryEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.byType[event.Type]++

	switch event.Type {
	case kafka.EventFlightsSearched:
		s.routes[route(event.Origin, event.Destination)]++
		if event.ResultCount == 0 {
			s.unmatched++
		}
	case kafka.EventAvailabilityChecked:
		if event.Available != nil && !*event.Available {
			s.soldOut++
		}
	}
}

// Snapshot returns the counters with at most topN routes, busiest first.
func (s *Stats) Snapshot(topN int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	byType := make(map[string]int, len(s.byType))
	for k, v := range s.byType {
		byType[k] = v
	}

	routes := make([]RouteCount, 0, len(s.routes))
	for r, c := range s.routes {
		routes = append(routes, RouteCount{Route: r, Count: c})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Count != routes[j].Count {
			return routes[i].Count > routes[j].Count
		}
		return routes[i].Route < routes[j].Route
	})
	if topN >= 0 && len(routes) > topN {
		routes = routes[:topN]
	}

	return Snapshot{
		Total:     s.total,
		ByType:    byType,
		TopRoutes: routes,
		Unmatched: s.unmatched,
		SoldOut:   s.soldOut,
	}
}

func (s *Stats) Report(logger zerolog.Logger) {
	snap := s.Snapshot(5)
	if snap.Total == 0 {
		return
	}
	event := logger.Info().Int("total", snap.Total).Int("unmatched_searches", snap.Unmatched).Int("sold_out_checks", snap.SoldOut)
	for t, c := range snap.ByType {
		event = event.Int(t, c)
	}
	for _, r := range snap.TopRoutes {
		event = event.Int("route:"+r.Route, r.Count)
	}
	event.Msg("query statistics")
}

func route(origin, destination string) string {
	if origin == "" {
		origin = "*"
	}
	if destination == "" {
		destination = "*"
	}
	return origin + "-" + destination
}
