package algorithms

import (
	"slices"
	"strconv"

	"autozar_backend/internal/models"
)

// Dimension names one filterable attribute of a listing.
type Dimension string

const (
	DimManufacturer Dimension = "manufacturer"
	DimModel        Dimension = "model"
	DimFuel         Dimension = "fuel"
	DimTransmission Dimension = "transmission"
	DimColor        Dimension = "color"
	DimBodyType     Dimension = "body_type"
	DimSteering     Dimension = "steering"
	DimRegionGroup  Dimension = "region_group"
	DimSeason       Dimension = "season"
	DimWidth        Dimension = "width"
	DimRim          Dimension = "rim"
	DimCondition    Dimension = "condition"
	DimPartType     Dimension = "part_type"
	DimServiceType  Dimension = "service_type"
	DimWithDriver   Dimension = "with_driver"

	DimYear     Dimension = "year"
	DimMileage  Dimension = "mileage"
	DimPrice    Dimension = "price"
	DimEngineCc Dimension = "engine_cc"
	DimSeats    Dimension = "seats"
	DimRating   Dimension = "rating"
)

type dimensionKind int

const (
	enumDimension dimensionKind = iota
	rangeDimension
)

// dimensionSpec extracts a dimension's value from a listing. Enum dimensions
// yield a string (empty means "no value"); range dimensions yield a number.
type dimensionSpec struct {
	kind   dimensionKind
	enum   func(l *models.Listing) string
	number func(l *models.Listing) float64
}

var (
	regionGroupSpec = dimensionSpec{kind: enumDimension, enum: func(l *models.Listing) string {
		return RegionGroup(l.Region)
	}}
	priceSpec = dimensionSpec{kind: rangeDimension, number: func(l *models.Listing) float64 {
		return float64(l.PriceMnt)
	}}
)

func enumSpec(fn func(l *models.Listing) string) dimensionSpec {
	return dimensionSpec{kind: enumDimension, enum: fn}
}

func rangeSpec(fn func(l *models.Listing) float64) dimensionSpec {
	return dimensionSpec{kind: rangeDimension, number: fn}
}

// Each category exposes only the dimensions valid for its attribute set.
// Extractors tolerate a missing attribute set by returning zero values.
var categoryDimensions = map[models.Category]map[Dimension]dimensionSpec{
	models.CategoryVehicle: {
		DimManufacturer: enumSpec(func(l *models.Listing) string { return vehicle(l).Manufacturer }),
		DimModel:        enumSpec(func(l *models.Listing) string { return vehicle(l).Model }),
		DimFuel:         enumSpec(func(l *models.Listing) string { return vehicle(l).Fuel }),
		DimTransmission: enumSpec(func(l *models.Listing) string { return vehicle(l).Transmission }),
		DimColor:        enumSpec(func(l *models.Listing) string { return ColorBucket(vehicle(l).Color) }),
		DimBodyType:     enumSpec(func(l *models.Listing) string { return vehicle(l).BodyType }),
		DimSteering:     enumSpec(func(l *models.Listing) string { return vehicle(l).Steering }),
		DimRegionGroup:  regionGroupSpec,
		DimYear:         rangeSpec(func(l *models.Listing) float64 { return float64(vehicle(l).Year) }),
		DimMileage:      rangeSpec(func(l *models.Listing) float64 { return float64(vehicle(l).MileageKm) }),
		DimPrice:        priceSpec,
	},
	models.CategoryMotorcycle: {
		DimManufacturer: enumSpec(func(l *models.Listing) string { return motorcycle(l).Manufacturer }),
		DimModel:        enumSpec(func(l *models.Listing) string { return motorcycle(l).Model }),
		DimColor:        enumSpec(func(l *models.Listing) string { return ColorBucket(motorcycle(l).Color) }),
		DimRegionGroup:  regionGroupSpec,
		DimYear:         rangeSpec(func(l *models.Listing) float64 { return float64(motorcycle(l).Year) }),
		DimMileage:      rangeSpec(func(l *models.Listing) float64 { return float64(motorcycle(l).MileageKm) }),
		DimEngineCc:     rangeSpec(func(l *models.Listing) float64 { return float64(motorcycle(l).EngineCc) }),
		DimPrice:        priceSpec,
	},
	models.CategoryTire: {
		DimManufacturer: enumSpec(func(l *models.Listing) string { return tire(l).Brand }),
		DimSeason:       enumSpec(func(l *models.Listing) string { return tire(l).Season }),
		DimCondition:    enumSpec(func(l *models.Listing) string { return tire(l).Condition }),
		DimWidth:        enumSpec(func(l *models.Listing) string { return positiveInt(tire(l).Width) }),
		DimRim:          enumSpec(func(l *models.Listing) string { return positiveInt(tire(l).RimDiameter) }),
		DimRegionGroup:  regionGroupSpec,
		DimPrice:        priceSpec,
	},
	models.CategoryPart: {
		DimManufacturer: enumSpec(func(l *models.Listing) string { return part(l).Manufacturer }),
		DimPartType:     enumSpec(func(l *models.Listing) string { return part(l).PartType }),
		DimCondition:    enumSpec(func(l *models.Listing) string { return part(l).Condition }),
		DimRegionGroup:  regionGroupSpec,
		DimPrice:        priceSpec,
	},
	models.CategoryRental: {
		DimManufacturer: enumSpec(func(l *models.Listing) string { return rental(l).Manufacturer }),
		DimModel:        enumSpec(func(l *models.Listing) string { return rental(l).Model }),
		DimTransmission: enumSpec(func(l *models.Listing) string { return rental(l).Transmission }),
		DimFuel:         enumSpec(func(l *models.Listing) string { return rental(l).Fuel }),
		DimWithDriver:   enumSpec(func(l *models.Listing) string { return strconv.FormatBool(rental(l).WithDriver) }),
		DimRegionGroup:  regionGroupSpec,
		DimYear:         rangeSpec(func(l *models.Listing) float64 { return float64(rental(l).Year) }),
		DimSeats:        rangeSpec(func(l *models.Listing) float64 { return float64(rental(l).Seats) }),
		DimPrice:        priceSpec,
	},
	models.CategoryServiceCenter: {
		DimServiceType: enumSpec(func(l *models.Listing) string { return serviceCenter(l).ServiceType }),
		DimRegionGroup: regionGroupSpec,
		DimRating:      rangeSpec(func(l *models.Listing) float64 { return serviceCenter(l).Rating }),
		DimPrice:       priceSpec,
	},
}

// Dimensions returns the dimensions valid for a category.
func Dimensions(c models.Category) []Dimension {
	specs := categoryDimensions[c]
	out := make([]Dimension, 0, len(specs))
	for d := range specs {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// HasDimension reports whether d is filterable for category c.
func HasDimension(c models.Category, d Dimension) bool {
	_, ok := categoryDimensions[c][d]
	return ok
}

func lookupDimension(c models.Category, d Dimension) (dimensionSpec, bool) {
	spec, ok := categoryDimensions[c][d]
	return spec, ok
}

// facetValue renders a dimension's value as the facet key.
func (s dimensionSpec) facetValue(l *models.Listing) string {
	if s.kind == enumDimension {
		return s.enum(l)
	}
	return strconv.FormatFloat(s.number(l), 'f', -1, 64)
}

func positiveInt(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func vehicle(l *models.Listing) models.VehicleAttrs {
	if l.Vehicle == nil {
		return models.VehicleAttrs{}
	}
	return *l.Vehicle
}

func motorcycle(l *models.Listing) models.MotorcycleAttrs {
	if l.Motorcycle == nil {
		return models.MotorcycleAttrs{}
	}
	return *l.Motorcycle
}

func tire(l *models.Listing) models.TireAttrs {
	if l.Tire == nil {
		return models.TireAttrs{}
	}
	return *l.Tire
}

func part(l *models.Listing) models.PartAttrs {
	if l.Part == nil {
		return models.PartAttrs{}
	}
	return *l.Part
}

func rental(l *models.Listing) models.RentalAttrs {
	if l.Rental == nil {
		return models.RentalAttrs{}
	}
	return *l.Rental
}

func serviceCenter(l *models.Listing) models.ServiceCenterAttrs {
	if l.ServiceCenter == nil {
		return models.ServiceCenterAttrs{}
	}
	return *l.ServiceCenter
}
