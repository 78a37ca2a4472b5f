package models

// Coordinate is a longitude/latitude pair in float degrees.
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// StationType classifies a charging station by charge speed.
type StationType string

const (
	StationStandard  StationType = "standard"
	StationFast      StationType = "fast"
	StationSuperfast StationType = "superfast"
)

// ChargingStation is a generated charging site. Stations are created once
// per session and treated as immutable static data afterwards; all
// downstream joins go through ID.
type ChargingStation struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Coordinates Coordinate  `json:"coordinates"`
	Chargers    int         `json:"chargers"`
	Type        StationType `json:"type"`
	Operator    string      `json:"operator"`
	Available   int         `json:"available"`
	PricePerKwh float64     `json:"price_per_kwh"`
	Utilization [24]float64 `json:"utilization_history"`
}

// TripType classifies the travel intent behind a demand edge.
type TripType string

const (
	TripCommuter TripType = "commuter"
	TripRoadtrip TripType = "roadtrip"
	TripDelivery TripType = "delivery"
)

// DemandEdge is a directed, weighted intent to generate travel between two
// stations. Weight is the number of concrete trips the edge expands into.
// A reverse edge is never implied.
type DemandEdge struct {
	From     *ChargingStation
	To       *ChargingStation
	TripType TripType
	Weight   int
}

// RouteKey builds the cache/persistence key for an ordered station pair.
// Keys are non-commutative: RouteKey(a, b) != RouteKey(b, a).
func RouteKey(fromID, toID string) string {
	return fromID + "-" + toID
}

// RouteGeometry is a resolved road path between two coordinates, with the
// real-world duration in seconds and distance in meters.
type RouteGeometry struct {
	Coordinates []Coordinate `json:"coordinates"`
	Duration    float64      `json:"duration"`
	Distance    float64      `json:"distance"`
}

// Waypoint is one point of a trip trajectory with its animation timestamp.
type Waypoint struct {
	Coordinates Coordinate `json:"coordinates"`
	Timestamp   float64    `json:"timestamp"`
}

// Trip is a concrete, time-parameterized vehicle traversal derived from a
// demand edge and its resolved geometry. Trips are immutable; when the
// network or route table changes they are regenerated wholesale.
type Trip struct {
	ID              string     `json:"id"`
	Waypoints       []Waypoint `json:"waypoints"`
	VehicleType     string     `json:"vehicle_type"`
	Color           [3]uint8   `json:"color"`
	VehicleBrand    string     `json:"vehicle_brand,omitempty"`
	FromStationName string     `json:"from_station_name,omitempty"`
	ToStationName   string     `json:"to_station_name,omitempty"`
	TripType        TripType   `json:"trip_type,omitempty"`
	BatteryStart    float64    `json:"battery_start,omitempty"`
	BatteryEnd      float64    `json:"battery_end,omitempty"`
	DistanceKm      float64    `json:"distance_km,omitempty"`
}

// VehicleCategory groups vehicle profiles for trip-type eligibility.
type VehicleCategory string

const (
	VehicleSedan     VehicleCategory = "sedan"
	VehicleSUV       VehicleCategory = "suv"
	VehicleHatchback VehicleCategory = "hatchback"
	VehicleVan       VehicleCategory = "van"
)

// VehicleProfile is a read-only catalog entry describing an EV model.
type VehicleProfile struct {
	Category        VehicleCategory `json:"category"`
	Brand           string          `json:"brand"`
	BaseColor       [3]uint8        `json:"base_color"`
	SpeedMultiplier float64         `json:"speed_multiplier"`
	RangeKm         float64         `json:"range_km"`
}
