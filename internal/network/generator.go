// Package network derives the directed demand multigraph between charging
// stations. Candidate selection is windowed by haversine distance, shuffled
// with the injected PRNG and then truncated; that order is what keeps edge
// selection reproducible under a fixed seed. Duplicate edges between the
// same ordered pair are legal and simply add weight.
package network

import (
	"strings"

	"github.com/dutchev/chargemap/internal/geo"
	"github.com/dutchev/chargemap/internal/models"
	"github.com/dutchev/chargemap/internal/rng"
)

// Distance windows and caps for the four edge rules.
const (
	highwayMinKm = 20.0
	highwayMaxKm = 80.0
	highwayCap   = 3

	feederChance = 0.3
	feederMaxKm  = 40.0
	feederWeight = 2

	commuterMinKm = 3.0
	commuterMaxKm = 25.0
	commuterCap   = 2

	deliveryMinKm = 2.0
	deliveryMaxKm = 15.0
	deliveryCap   = 4
)

// Generator builds demand edges from a station set and an injected PRNG.
type Generator struct {
	rng *rng.Source
}

// NewGenerator returns a Generator that draws from src.
func NewGenerator(src *rng.Source) *Generator {
	return &Generator{rng: src}
}

// Build derives the demand edges for the given station set. Rules run in a
// fixed precedence: highway corridor, city-to-highway feeders, local
// commuter pairs, then delivery spokes from superfast hubs.
func (g *Generator) Build(stations []models.ChargingStation) []models.DemandEdge {
	var highway, city []*models.ChargingStation
	for i := range stations {
		if isHighway(&stations[i]) {
			highway = append(highway, &stations[i])
		} else {
			city = append(city, &stations[i])
		}
	}

	var edges []models.DemandEdge
	edges = append(edges, g.highwayCorridor(highway)...)
	edges = append(edges, g.cityFeeders(city, highway)...)
	edges = append(edges, g.localCommuters(city)...)
	edges = append(edges, g.deliverySpokes(city, stations)...)
	return edges
}

// highwayCorridor links each highway station to up to three peers in the
// 20-80 km window as roadtrip edges with weight 3-6.
func (g *Generator) highwayCorridor(highway []*models.ChargingStation) []models.DemandEdge {
	var edges []models.DemandEdge
	for _, from := range highway {
		peers := g.window(from, highway, highwayMinKm, highwayMaxKm)
		for _, to := range truncate(peers, highwayCap) {
			edges = append(edges, models.DemandEdge{
				From:     from,
				To:       to,
				TripType: models.TripRoadtrip,
				Weight:   3 + g.rng.IntN(4),
			})
		}
	}
	return edges
}

// cityFeeders gives each city station a 30% chance to connect to its
// nearest highway station within 40 km.
func (g *Generator) cityFeeders(city, highway []*models.ChargingStation) []models.DemandEdge {
	var edges []models.DemandEdge
	for _, from := range city {
		if g.rng.Next() > feederChance {
			continue
		}
		if to := nearest(from, highway, feederMaxKm); to != nil {
			edges = append(edges, models.DemandEdge{
				From:     from,
				To:       to,
				TripType: models.TripRoadtrip,
				Weight:   feederWeight,
			})
		}
	}
	return edges
}

// localCommuters links each city station to up to two other city stations
// in the 3-25 km window with weight 4-7.
func (g *Generator) localCommuters(city []*models.ChargingStation) []models.DemandEdge {
	var edges []models.DemandEdge
	for _, from := range city {
		peers := g.window(from, city, commuterMinKm, commuterMaxKm)
		for _, to := range truncate(peers, commuterCap) {
			edges = append(edges, models.DemandEdge{
				From:     from,
				To:       to,
				TripType: models.TripCommuter,
				Weight:   4 + g.rng.IntN(4),
			})
		}
	}
	return edges
}

// deliverySpokes links every superfast city hub to up to four stations in
// the 2-15 km window with weight 5-9.
func (g *Generator) deliverySpokes(city []*models.ChargingStation, all []models.ChargingStation) []models.DemandEdge {
	var edges []models.DemandEdge
	for _, from := range city {
		if from.Type != models.StationSuperfast {
			continue
		}
		candidates := make([]*models.ChargingStation, 0, len(all))
		for i := range all {
			candidates = append(candidates, &all[i])
		}
		peers := g.window(from, candidates, deliveryMinKm, deliveryMaxKm)
		for _, to := range truncate(peers, deliveryCap) {
			edges = append(edges, models.DemandEdge{
				From:     from,
				To:       to,
				TripType: models.TripDelivery,
				Weight:   5 + g.rng.IntN(5),
			})
		}
	}
	return edges
}

// window filters candidates to the [minKm, maxKm] distance band and
// shuffles the survivors with the PRNG. Shuffling instead of sorting avoids
// a systematic bias toward catalog-order neighbors; callers truncate.
func (g *Generator) window(from *models.ChargingStation, candidates []*models.ChargingStation, minKm, maxKm float64) []*models.ChargingStation {
	var matched []*models.ChargingStation
	for _, c := range candidates {
		if c.ID == from.ID {
			continue
		}
		d := geo.DistanceKm(from.Coordinates, c.Coordinates)
		if d >= minKm && d <= maxKm {
			matched = append(matched, c)
		}
	}
	g.rng.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	return matched
}

func nearest(from *models.ChargingStation, candidates []*models.ChargingStation, maxKm float64) *models.ChargingStation {
	var best *models.ChargingStation
	bestDist := maxKm
	for _, c := range candidates {
		if c.ID == from.ID {
			continue
		}
		if d := geo.DistanceKm(from.Coordinates, c.Coordinates); d <= bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func truncate(s []*models.ChargingStation, limit int) []*models.ChargingStation {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

func isHighway(s *models.ChargingStation) bool {
	return strings.HasPrefix(s.ID, "highway-")
}
