package stations

import "github.com/dutchev/chargemap/internal/models"

// CityHub is a city center around which a cluster of charging stations is
// placed. Density is the number of stations the cluster gets.
type CityHub struct {
	Name        string
	Coordinates models.Coordinate
	Density     int
}

// HighwayPoint is a motorway service area that gets exactly one station.
type HighwayPoint struct {
	Name        string
	Coordinates models.Coordinate
}

// CityHubs lists the Dutch city centers used for clustered placement.
var CityHubs = []CityHub{
	{"Amsterdam", models.Coordinate{Lon: 4.8952, Lat: 52.3702}, 8},
	{"Rotterdam", models.Coordinate{Lon: 4.4777, Lat: 51.9244}, 6},
	{"Den Haag", models.Coordinate{Lon: 4.3007, Lat: 52.0705}, 5},
	{"Utrecht", models.Coordinate{Lon: 5.1214, Lat: 52.0907}, 5},
	{"Eindhoven", models.Coordinate{Lon: 5.4697, Lat: 51.4416}, 4},
	{"Groningen", models.Coordinate{Lon: 6.5665, Lat: 53.2194}, 3},
	{"Tilburg", models.Coordinate{Lon: 5.0913, Lat: 51.5555}, 3},
	{"Almere", models.Coordinate{Lon: 5.2647, Lat: 52.3508}, 3},
	{"Breda", models.Coordinate{Lon: 4.7683, Lat: 51.5719}, 3},
	{"Nijmegen", models.Coordinate{Lon: 5.8520, Lat: 51.8426}, 3},
	{"Arnhem", models.Coordinate{Lon: 5.8987, Lat: 51.9851}, 3},
	{"Haarlem", models.Coordinate{Lon: 4.6462, Lat: 52.3874}, 2},
	{"Enschede", models.Coordinate{Lon: 6.8937, Lat: 52.2215}, 2},
	{"Amersfoort", models.Coordinate{Lon: 5.3878, Lat: 52.1561}, 2},
	{"Apeldoorn", models.Coordinate{Lon: 5.9699, Lat: 52.2112}, 2},
	{"'s-Hertogenbosch", models.Coordinate{Lon: 5.3037, Lat: 51.6978}, 2},
	{"Zwolle", models.Coordinate{Lon: 6.0830, Lat: 52.5168}, 2},
	{"Maastricht", models.Coordinate{Lon: 5.6910, Lat: 50.8514}, 2},
	{"Leiden", models.Coordinate{Lon: 4.4970, Lat: 52.1601}, 2},
	{"Delft", models.Coordinate{Lon: 4.3571, Lat: 52.0116}, 2},
}

// HighwayPoints lists motorway service areas along the main corridors.
var HighwayPoints = []HighwayPoint{
	{"A1 Bathmen", models.Coordinate{Lon: 6.2900, Lat: 52.2400}},
	{"A2 Breukelen", models.Coordinate{Lon: 4.9890, Lat: 52.1740}},
	{"A4 Hoofddorp", models.Coordinate{Lon: 4.6907, Lat: 52.3061}},
	{"A12 Veenendaal", models.Coordinate{Lon: 5.5540, Lat: 52.0280}},
	{"A27 Vianen", models.Coordinate{Lon: 5.0940, Lat: 51.9890}},
	{"A28 Harderwijk", models.Coordinate{Lon: 5.6200, Lat: 52.3500}},
	{"A58 Oirschot", models.Coordinate{Lon: 5.3160, Lat: 51.5030}},
	{"A7 Purmerend", models.Coordinate{Lon: 4.9600, Lat: 52.5050}},
	{"A50 Apeldoorn-Zuid", models.Coordinate{Lon: 5.9200, Lat: 52.1600}},
	{"A15 Gorinchem", models.Coordinate{Lon: 4.9710, Lat: 51.8300}},
	{"A67 Venlo", models.Coordinate{Lon: 6.1500, Lat: 51.3700}},
	{"A6 Lelystad", models.Coordinate{Lon: 5.4750, Lat: 52.4580}},
	{"A9 Alkmaar", models.Coordinate{Lon: 4.7400, Lat: 52.6000}},
	{"A2 Weert", models.Coordinate{Lon: 5.7060, Lat: 51.2510}},
	{"A28 Assen", models.Coordinate{Lon: 6.5640, Lat: 52.9960}},
	{"A7 Drachten", models.Coordinate{Lon: 6.0990, Lat: 53.1120}},
}

// Operators are the charge-point operator labels assigned to stations.
var Operators = []string{"Fastned", "Allego", "Shell Recharge", "Vattenfall InCharge", "EVBox"}
