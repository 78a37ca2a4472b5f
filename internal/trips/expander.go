// Package trips expands demand edges into concrete, time-parameterized
// vehicle trips with a simple battery-depletion simulation. Expansion is
// deterministic for a fixed PRNG seed and an edge with no resolvable
// geometry in a direction simply contributes no trips in that direction.
package trips

import (
	"fmt"
	"math"

	"github.com/dutchev/chargemap/internal/models"
	"github.com/dutchev/chargemap/internal/rng"
)

const (
	// returnThreshold: a draw above it schedules a return trip (p=0.7).
	returnThreshold = 0.3
	batteryFloor    = 5.0
)

// Expander turns demand edges plus resolved geometry into trips. The trip
// id counter is owned here so ids stay unique across edges.
type Expander struct {
	rng        *rng.Source
	profiles   []models.VehicleProfile
	loopLength float64
	counter    int
}

// NewExpander returns an Expander drawing from src with the given vehicle
// catalog and animation loop length.
func NewExpander(src *rng.Source, profiles []models.VehicleProfile, loopLength float64) *Expander {
	return &Expander{
		rng:        src,
		profiles:   profiles,
		loopLength: loopLength,
	}
}

// Expand builds the trips for one edge against the route table. The table
// is keyed by route key; the forward and reverse directions are looked up
// independently and an absent direction is skipped, never an error.
func (e *Expander) Expand(edge models.DemandEdge, routes map[string]*models.RouteGeometry) []models.Trip {
	forward := routes[models.RouteKey(edge.From.ID, edge.To.ID)]
	reverse := routes[models.RouteKey(edge.To.ID, edge.From.ID)]
	if forward == nil && reverse == nil {
		return nil
	}

	eligible := e.eligibleProfiles(edge.TripType)
	if len(eligible) == 0 {
		return nil
	}

	var out []models.Trip
	spacing := e.loopLength / float64(edge.Weight)
	for i := 0; i < edge.Weight; i++ {
		start := math.Mod(float64(i)*spacing+e.rng.Next()*spacing*0.5, e.loopLength)
		profile := eligible[e.rng.IntN(len(eligible))]

		if forward != nil {
			out = append(out, e.buildTrip(edge, forward, profile, start, false))
		}

		if e.rng.Next() > returnThreshold {
			returnStart := math.Mod(start+e.loopLength/2+e.rng.Next()*spacing*0.5, e.loopLength)
			if reverse != nil {
				out = append(out, e.buildTrip(edge, reverse, profile, returnStart, true))
			}
		}
	}
	return out
}

// ExpandAll expands every edge in order.
func (e *Expander) ExpandAll(edges []models.DemandEdge, routes map[string]*models.RouteGeometry) []models.Trip {
	var out []models.Trip
	for _, edge := range edges {
		out = append(out, e.Expand(edge, routes)...)
	}
	return out
}

// eligibleProfiles restricts delivery edges to van profiles and everything
// else to non-van profiles.
func (e *Expander) eligibleProfiles(tripType models.TripType) []models.VehicleProfile {
	wantVan := tripType == models.TripDelivery
	var out []models.VehicleProfile
	for _, p := range e.profiles {
		if (p.Category == models.VehicleVan) == wantVan {
			out = append(out, p)
		}
	}
	return out
}

func (e *Expander) buildTrip(edge models.DemandEdge, geom *models.RouteGeometry, profile models.VehicleProfile, start float64, isReturn bool) models.Trip {
	// Compress real travel time into the animation loop: one real minute
	// becomes 20 time units, scaled by the vehicle's speed multiplier.
	duration := (geom.Duration / 60.0) * 20.0 / profile.SpeedMultiplier
	distanceKm := geom.Distance / 1000.0

	batteryStart := 30 + e.rng.Next()*60
	consumption := distanceKm / profile.RangeKm * 100
	batteryEnd := math.Max(batteryFloor, batteryStart-consumption)

	n := len(geom.Coordinates)
	waypoints := make([]models.Waypoint, n)
	for i, coord := range geom.Coordinates {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		waypoints[i] = models.Waypoint{
			Coordinates: coord,
			Timestamp:   start + frac*duration,
		}
	}

	fromName, toName := edge.From.Name, edge.To.Name
	if isReturn {
		fromName, toName = toName, fromName
	}

	e.counter++
	return models.Trip{
		ID:              fmt.Sprintf("trip-%d", e.counter),
		Waypoints:       waypoints,
		VehicleType:     string(profile.Category),
		Color:           tripColor(edge.TripType, (batteryStart+batteryEnd)/2),
		VehicleBrand:    profile.Brand,
		FromStationName: fromName,
		ToStationName:   toName,
		TripType:        edge.TripType,
		BatteryStart:    batteryStart,
		BatteryEnd:      batteryEnd,
		DistanceKm:      distanceKm,
	}
}
