// Package stations generates the static set of charging stations from the
// city and highway catalogs. Generation is driven entirely by an injected
// rng.Source, so a fixed seed always yields the same station set.
package stations

import (
	"fmt"
	"math"

	"github.com/dutchev/chargemap/internal/models"
	"github.com/dutchev/chargemap/internal/rng"
)

// Bounding box for placement. Offsets that land outside it are resampled a
// few times and then clamped rather than retried forever.
const (
	minLon = 3.36
	maxLon = 7.23
	minLat = 50.75
	maxLat = 53.55

	maxPlacementAttempts = 3
)

// Generator produces charging stations from an injected PRNG.
type Generator struct {
	rng *rng.Source
}

// NewGenerator returns a Generator that draws from src.
func NewGenerator(src *rng.Source) *Generator {
	return &Generator{rng: src}
}

// Generate builds the full station set: one cluster per city hub followed by
// one station per highway point. IDs are sequential within each pass and
// never collide across passes ("station-N" vs "highway-N").
func (g *Generator) Generate() []models.ChargingStation {
	var out []models.ChargingStation

	cityCount := 0
	for _, hub := range CityHubs {
		for i := 0; i < hub.Density; i++ {
			station := g.cityStation(hub, i)
			station.ID = fmt.Sprintf("station-%d", cityCount)
			cityCount++
			out = append(out, station)
		}
	}

	for i, point := range HighwayPoints {
		station := g.highwayStation(point)
		station.ID = fmt.Sprintf("highway-%d", i)
		out = append(out, station)
	}

	return out
}

func (g *Generator) cityStation(hub CityHub, n int) models.ChargingStation {
	coord := g.placeNear(hub.Coordinates)
	stationType := g.cityStationType()
	chargers, price := g.capacityAndPrice(stationType)

	return models.ChargingStation{
		Name:        fmt.Sprintf("%s Laadplein %d", hub.Name, n+1),
		Coordinates: coord,
		Chargers:    chargers,
		Type:        stationType,
		Operator:    Operators[g.rng.IntN(len(Operators))],
		Available:   g.availability(chargers),
		PricePerKwh: price,
		Utilization: g.commuterCurve(),
	}
}

func (g *Generator) highwayStation(point HighwayPoint) models.ChargingStation {
	coord := models.Coordinate{
		Lon: point.Coordinates.Lon + (g.rng.Next()*2-1)*0.005,
		Lat: point.Coordinates.Lat + (g.rng.Next()*2-1)*0.005,
	}

	stationType := models.StationFast
	if g.rng.Next() < 0.4 {
		stationType = models.StationSuperfast
	}
	chargers := 8 + g.rng.IntN(9)

	return models.ChargingStation{
		Name:        point.Name,
		Coordinates: coord,
		Chargers:    chargers,
		Type:        stationType,
		Operator:    Operators[g.rng.IntN(len(Operators))],
		Available:   g.availability(chargers),
		PricePerKwh: 0.59 + g.rng.Next()*0.20,
		Utilization: g.daytimeCurve(),
	}
}

// placeNear draws a polar offset from the hub center: radius 0.02-0.08
// degrees, uniform angle, latitude compressed by 0.7. Off-map draws are
// resampled a bounded number of times, then clamped.
func (g *Generator) placeNear(center models.Coordinate) models.Coordinate {
	var coord models.Coordinate
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		radius := 0.02 + g.rng.Next()*0.06
		angle := g.rng.Next() * 2 * math.Pi
		coord = models.Coordinate{
			Lon: center.Lon + math.Cos(angle)*radius,
			Lat: center.Lat + math.Sin(angle)*radius*0.7,
		}
		if inBounds(coord) {
			return coord
		}
	}
	return clamp(coord)
}

// cityStationType draws 20% superfast, 30% fast, 50% standard as two
// sequential threshold draws.
func (g *Generator) cityStationType() models.StationType {
	if g.rng.Next() < 0.2 {
		return models.StationSuperfast
	}
	if g.rng.Next() < 0.375 {
		return models.StationFast
	}
	return models.StationStandard
}

func (g *Generator) capacityAndPrice(t models.StationType) (int, float64) {
	switch t {
	case models.StationSuperfast:
		return 6 + g.rng.IntN(7), 0.69 + g.rng.Next()*0.20
	case models.StationFast:
		return 4 + g.rng.IntN(5), 0.49 + g.rng.Next()*0.15
	default:
		return 2 + g.rng.IntN(5), 0.29 + g.rng.Next()*0.15
	}
}

func (g *Generator) availability(chargers int) int {
	available := g.rng.IntN(chargers + 1)
	if available > chargers {
		available = chargers
	}
	return available
}

// commuterCurve is the diurnal utilization profile for city stations, with
// elevated values in the 07-09 and 17-19 rush windows.
func (g *Generator) commuterCurve() [24]float64 {
	var curve [24]float64
	for h := 0; h < 24; h++ {
		v := 15 + g.rng.Next()*25
		if (h >= 7 && h <= 9) || (h >= 17 && h <= 19) {
			v += 30 + g.rng.Next()*20
		}
		curve[h] = math.Min(v, 100)
	}
	return curve
}

// daytimeCurve is the flatter, daytime-biased profile for highway stations.
func (g *Generator) daytimeCurve() [24]float64 {
	var curve [24]float64
	for h := 0; h < 24; h++ {
		v := 25 + g.rng.Next()*20
		if h >= 8 && h <= 20 {
			v += 15 + g.rng.Next()*15
		}
		curve[h] = math.Min(v, 100)
	}
	return curve
}

func inBounds(c models.Coordinate) bool {
	return c.Lon >= minLon && c.Lon <= maxLon && c.Lat >= minLat && c.Lat <= maxLat
}

func clamp(c models.Coordinate) models.Coordinate {
	return models.Coordinate{
		Lon: math.Min(math.Max(c.Lon, minLon), maxLon),
		Lat: math.Min(math.Max(c.Lat, minLat), maxLat),
	}
}
