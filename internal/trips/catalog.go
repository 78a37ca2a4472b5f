package trips

import "github.com/dutchev/chargemap/internal/models"

// DefaultProfiles is the vehicle catalog trips are drawn from. Van-category
// profiles are reserved for delivery edges; everything else uses the
// passenger profiles.
var DefaultProfiles = []models.VehicleProfile{
	{Category: models.VehicleSedan, Brand: "Tesla Model 3", BaseColor: [3]uint8{200, 30, 40}, SpeedMultiplier: 1.10, RangeKm: 480},
	{Category: models.VehicleSedan, Brand: "Polestar 2", BaseColor: [3]uint8{210, 210, 215}, SpeedMultiplier: 1.05, RangeKm: 440},
	{Category: models.VehicleSedan, Brand: "Hyundai Ioniq 6", BaseColor: [3]uint8{70, 90, 120}, SpeedMultiplier: 1.05, RangeKm: 500},
	{Category: models.VehicleSUV, Brand: "Audi Q4 e-tron", BaseColor: [3]uint8{40, 40, 45}, SpeedMultiplier: 0.95, RangeKm: 410},
	{Category: models.VehicleSUV, Brand: "Volkswagen ID.4", BaseColor: [3]uint8{90, 130, 180}, SpeedMultiplier: 0.90, RangeKm: 420},
	{Category: models.VehicleSUV, Brand: "Kia EV6", BaseColor: [3]uint8{110, 180, 90}, SpeedMultiplier: 1.00, RangeKm: 450},
	{Category: models.VehicleHatchback, Brand: "Volkswagen ID.3", BaseColor: [3]uint8{240, 240, 235}, SpeedMultiplier: 1.00, RangeKm: 340},
	{Category: models.VehicleHatchback, Brand: "Renault Zoe", BaseColor: [3]uint8{60, 110, 200}, SpeedMultiplier: 0.85, RangeKm: 300},
	{Category: models.VehicleHatchback, Brand: "Nissan Leaf", BaseColor: [3]uint8{160, 165, 170}, SpeedMultiplier: 0.90, RangeKm: 270},
	{Category: models.VehicleVan, Brand: "Mercedes eSprinter", BaseColor: [3]uint8{250, 250, 245}, SpeedMultiplier: 0.80, RangeKm: 250},
	{Category: models.VehicleVan, Brand: "Ford E-Transit", BaseColor: [3]uint8{30, 60, 140}, SpeedMultiplier: 0.85, RangeKm: 260},
	{Category: models.VehicleVan, Brand: "Renault Kangoo E-Tech", BaseColor: [3]uint8{200, 200, 60}, SpeedMultiplier: 0.85, RangeKm: 280},
}
