package algorithms

import (
	"fmt"
	"time"

	"autozar_backend/internal/models"
)

var baseTime = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func ptr(v float64) *float64 { return &v }

func car(id string, tier models.Tier, make, model string, year int, mileage, price int64) models.Listing {
	return models.Listing{
		ID:        id,
		Category:  models.CategoryVehicle,
		Status:    models.ListingStatusPublished,
		Tier:      tier,
		CreatedAt: baseTime,
		Region:    "Улаанбаатар, Хан-Уул",
		PriceMnt:  price,
		Vehicle: &models.VehicleAttrs{
			Manufacturer: make,
			Model:        model,
			Year:         year,
			MileageKm:    mileage,
			Fuel:         "petrol",
			Transmission: "automatic",
			Color:        "white",
			BodyType:     "sedan",
			Steering:     "right",
		},
	}
}

// fleet is a small mixed-tier vehicle catalog used across tests.
func fleet() []models.Listing {
	ls := []models.Listing{
		car("v1", models.TierGeneral, "Toyota", "Prius", 2015, 120000, 28000000),
		car("v2", models.TierGold, "Toyota", "Land Cruiser", 2019, 60000, 180000000),
		car("v3", models.TierSilver, "Hyundai", "Sonata", 2018, 90000, 35000000),
		car("v4", models.TierGeneral, "Lexus", "RX450h", 2016, 110000, 65000000),
		car("v5", models.TierGold, "Toyota", "Prius", 2012, 210000, 18000000),
		car("v6", models.TierGeneral, "Hyundai", "Elantra", 2020, 40000, 42000000),
	}
	ls[2].Region = "Дархан-Уул, Дархан"
	ls[2].Vehicle.Fuel = "diesel"
	ls[3].Region = "Орхон, Эрдэнэт"
	ls[3].Vehicle.Color = "Black"
	ls[3].Vehicle.Fuel = "hybrid"
	ls[5].Region = "Ховд"
	ls[5].Vehicle.Transmission = "manual"
	for i := range ls {
		ls[i].CreatedAt = baseTime.Add(time.Duration(i) * time.Hour)
	}
	return ls
}

func ids(ls []models.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}

func numbered(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func describe(l models.Listing) string {
	return fmt.Sprintf("%s(%s)", l.ID, l.Tier)
}
