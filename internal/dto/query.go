package dto

import (
	"fmt"

	"autozar_backend/internal/algorithms"
	"autozar_backend/internal/models"
)

// QueryParams are shared by every category's search and facet requests.
type QueryParams struct {
	Text        string   `form:"q" validate:"max=100"`
	Sort        string   `form:"sort" validate:"omitempty,is-sort-mode"`
	Page        int      `form:"page"`
	PageSize    *int     `form:"page_size" validate:"omitempty,min=1"`
	RegionGroup string   `form:"region_group" validate:"omitempty,oneof=capital darkhan erdenet other"`
	MinPrice    *float64 `form:"min_price" validate:"omitempty,min=0"`
	MaxPrice    *float64 `form:"max_price" validate:"omitempty,min=0"`

	// Seq is echoed back so clients can drop out-of-order responses.
	Seq string `form:"seq" validate:"max=64"`
}

// ListingQuery is one per-category variant of the search request. Each
// variant only exposes the filters valid for its category.
type ListingQuery interface {
	Category() models.Category
	Params() *QueryParams
	ToQuery() algorithms.Query
}

// NewListingQuery returns an empty variant for c, ready for binding.
func NewListingQuery(c models.Category) (ListingQuery, error) {
	switch c {
	case models.CategoryVehicle:
		return &VehicleQuery{}, nil
	case models.CategoryMotorcycle:
		return &MotorcycleQuery{}, nil
	case models.CategoryTire:
		return &TireQuery{}, nil
	case models.CategoryPart:
		return &PartQuery{}, nil
	case models.CategoryRental:
		return &RentalQuery{}, nil
	case models.CategoryServiceCenter:
		return &ServiceCenterQuery{}, nil
	}
	return nil, fmt.Errorf("%w: %q", algorithms.ErrUnknownCategory, c)
}

func (p *QueryParams) Params() *QueryParams { return p }

// base builds the category-independent part of the engine query.
func (p *QueryParams) base(c models.Category) algorithms.Query {
	q := algorithms.NewQuery(c).
		WithEnum(algorithms.DimRegionGroup, p.RegionGroup).
		WithRange(algorithms.DimPrice, algorithms.Range{Min: p.MinPrice, Max: p.MaxPrice})
	q.Text = p.Text
	q.Sort = algorithms.SortMode(p.Sort)
	if q.Sort == "" {
		q.Sort = algorithms.SortNewest
	}
	return q
}

func between(min, max *float64) algorithms.Range {
	return algorithms.Range{Min: min, Max: max}
}

type VehicleQuery struct {
	QueryParams
	Manufacturer string   `form:"manufacturer" validate:"max=50"`
	Model        string   `form:"model" validate:"max=50"`
	Fuel         string   `form:"fuel" validate:"omitempty,oneof=petrol diesel hybrid electric gas"`
	Transmission string   `form:"transmission" validate:"omitempty,oneof=automatic manual"`
	Color        string   `form:"color" validate:"omitempty,oneof=white black silver red blue other"`
	BodyType     string   `form:"body_type" validate:"omitempty,oneof=sedan suv hatchback pickup van other"`
	Steering     string   `form:"steering" validate:"omitempty,oneof=left right"`
	MinYear      *float64 `form:"min_year"`
	MaxYear      *float64 `form:"max_year"`
	MinMileage   *float64 `form:"min_mileage" validate:"omitempty,min=0"`
	MaxMileage   *float64 `form:"max_mileage" validate:"omitempty,min=0"`
}

func (v *VehicleQuery) Category() models.Category { return models.CategoryVehicle }

func (v *VehicleQuery) ToQuery() algorithms.Query {
	return v.base(models.CategoryVehicle).
		WithEnum(algorithms.DimManufacturer, v.Manufacturer).
		WithEnum(algorithms.DimModel, v.Model).
		WithEnum(algorithms.DimFuel, v.Fuel).
		WithEnum(algorithms.DimTransmission, v.Transmission).
		WithEnum(algorithms.DimColor, v.Color).
		WithEnum(algorithms.DimBodyType, v.BodyType).
		WithEnum(algorithms.DimSteering, v.Steering).
		WithRange(algorithms.DimYear, between(v.MinYear, v.MaxYear)).
		WithRange(algorithms.DimMileage, between(v.MinMileage, v.MaxMileage))
}

type MotorcycleQuery struct {
	QueryParams
	Manufacturer string   `form:"manufacturer" validate:"max=50"`
	Model        string   `form:"model" validate:"max=50"`
	Color        string   `form:"color" validate:"omitempty,oneof=white black silver red blue other"`
	MinYear      *float64 `form:"min_year"`
	MaxYear      *float64 `form:"max_year"`
	MinMileage   *float64 `form:"min_mileage" validate:"omitempty,min=0"`
	MaxMileage   *float64 `form:"max_mileage" validate:"omitempty,min=0"`
	MinEngineCc  *float64 `form:"min_engine_cc" validate:"omitempty,min=0"`
	MaxEngineCc  *float64 `form:"max_engine_cc" validate:"omitempty,min=0"`
}

func (m *MotorcycleQuery) Category() models.Category { return models.CategoryMotorcycle }

func (m *MotorcycleQuery) ToQuery() algorithms.Query {
	return m.base(models.CategoryMotorcycle).
		WithEnum(algorithms.DimManufacturer, m.Manufacturer).
		WithEnum(algorithms.DimModel, m.Model).
		WithEnum(algorithms.DimColor, m.Color).
		WithRange(algorithms.DimYear, between(m.MinYear, m.MaxYear)).
		WithRange(algorithms.DimMileage, between(m.MinMileage, m.MaxMileage)).
		WithRange(algorithms.DimEngineCc, between(m.MinEngineCc, m.MaxEngineCc))
}

type TireQuery struct {
	QueryParams
	Manufacturer string `form:"manufacturer" validate:"max=50"`
	Season       string `form:"season" validate:"omitempty,oneof=summer winter all_season"`
	Condition    string `form:"condition" validate:"omitempty,oneof=new used"`
	Width        string `form:"width" validate:"omitempty,numeric"`
	Rim          string `form:"rim" validate:"omitempty,numeric"`
}

func (t *TireQuery) Category() models.Category { return models.CategoryTire }

func (t *TireQuery) ToQuery() algorithms.Query {
	return t.base(models.CategoryTire).
		WithEnum(algorithms.DimManufacturer, t.Manufacturer).
		WithEnum(algorithms.DimSeason, t.Season).
		WithEnum(algorithms.DimCondition, t.Condition).
		WithEnum(algorithms.DimWidth, t.Width).
		WithEnum(algorithms.DimRim, t.Rim)
}

type PartQuery struct {
	QueryParams
	Manufacturer string `form:"manufacturer" validate:"max=50"`
	PartType     string `form:"part_type" validate:"omitempty,oneof=engine body electrical suspension interior other"`
	Condition    string `form:"condition" validate:"omitempty,oneof=new used"`
}

func (p *PartQuery) Category() models.Category { return models.CategoryPart }

func (p *PartQuery) ToQuery() algorithms.Query {
	return p.base(models.CategoryPart).
		WithEnum(algorithms.DimManufacturer, p.Manufacturer).
		WithEnum(algorithms.DimPartType, p.PartType).
		WithEnum(algorithms.DimCondition, p.Condition)
}

type RentalQuery struct {
	QueryParams
	Manufacturer string   `form:"manufacturer" validate:"max=50"`
	Model        string   `form:"model" validate:"max=50"`
	Transmission string   `form:"transmission" validate:"omitempty,oneof=automatic manual"`
	Fuel         string   `form:"fuel" validate:"omitempty,oneof=petrol diesel hybrid electric gas"`
	WithDriver   string   `form:"with_driver" validate:"omitempty,oneof=true false"`
	MinYear      *float64 `form:"min_year"`
	MaxYear      *float64 `form:"max_year"`
	MinSeats     *float64 `form:"min_seats" validate:"omitempty,min=0"`
	MaxSeats     *float64 `form:"max_seats" validate:"omitempty,min=0"`
}

func (r *RentalQuery) Category() models.Category { return models.CategoryRental }

func (r *RentalQuery) ToQuery() algorithms.Query {
	return r.base(models.CategoryRental).
		WithEnum(algorithms.DimManufacturer, r.Manufacturer).
		WithEnum(algorithms.DimModel, r.Model).
		WithEnum(algorithms.DimTransmission, r.Transmission).
		WithEnum(algorithms.DimFuel, r.Fuel).
		WithEnum(algorithms.DimWithDriver, r.WithDriver).
		WithRange(algorithms.DimYear, between(r.MinYear, r.MaxYear)).
		WithRange(algorithms.DimSeats, between(r.MinSeats, r.MaxSeats))
}

type ServiceCenterQuery struct {
	QueryParams
	ServiceType string   `form:"service_type" validate:"omitempty,oneof=repair tire wash diagnostics body other"`
	MinRating   *float64 `form:"min_rating" validate:"omitempty,min=0,max=5"`
	MaxRating   *float64 `form:"max_rating" validate:"omitempty,min=0,max=5"`
}

func (s *ServiceCenterQuery) Category() models.Category { return models.CategoryServiceCenter }

func (s *ServiceCenterQuery) ToQuery() algorithms.Query {
	return s.base(models.CategoryServiceCenter).
		WithEnum(algorithms.DimServiceType, s.ServiceType).
		WithRange(algorithms.DimRating, between(s.MinRating, s.MaxRating))
}
