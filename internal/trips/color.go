package trips

import "github.com/dutchev/chargemap/internal/models"

// Color encodings for the rendering boundary. Trip category always comes
// from the TripType field; color is derived display data only.
var (
	colorAmber  = [3]uint8{255, 170, 0}
	colorGreen  = [3]uint8{80, 220, 100}
	colorYellow = [3]uint8{250, 200, 60}
	colorRed    = [3]uint8{230, 80, 70}
)

// tripColor maps a trip category and its average battery level to a display
// color: delivery is always amber, roadtrips use the raw battery band, and
// commuter trips use the same band lightened toward white.
func tripColor(tripType models.TripType, avgBattery float64) [3]uint8 {
	if tripType == models.TripDelivery {
		return colorAmber
	}
	band := batteryBand(avgBattery)
	if tripType == models.TripCommuter {
		return lighten(band, 0.4)
	}
	return band
}

func batteryBand(avgBattery float64) [3]uint8 {
	switch {
	case avgBattery > 60:
		return colorGreen
	case avgBattery > 30:
		return colorYellow
	default:
		return colorRed
	}
}

func lighten(c [3]uint8, amount float64) [3]uint8 {
	var out [3]uint8
	for i, v := range c {
		out[i] = uint8(float64(v) + (255-float64(v))*amount)
	}
	return out
}
