package dto

import (
	"testing"
	"time"

	"autozar_backend/internal/algorithms"
	"autozar_backend/internal/models"
	"autozar_backend/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestNewListingQuery_EveryCategoryHasAVariant(t *testing.T) {
	for _, c := range models.Categories {
		q, err := NewListingQuery(c)
		require.NoError(t, err, c)
		assert.Equal(t, c, q.Category())
		assert.NoError(t, q.ToQuery().Validate(), c)
	}

	_, err := NewListingQuery("boat")
	assert.ErrorIs(t, err, algorithms.ErrUnknownCategory)
}

func TestVehicleQuery_ToQuery(t *testing.T) {
	v := &VehicleQuery{
		QueryParams:  QueryParams{Text: "prius", Sort: "priceAsc", MinPrice: f(1000)},
		Manufacturer: "Toyota",
		Fuel:         "hybrid",
		MinYear:      f(2010),
		MaxYear:      f(2018),
	}
	q := v.ToQuery()

	require.NoError(t, q.Validate())
	assert.Equal(t, models.CategoryVehicle, q.Category)
	assert.Equal(t, algorithms.SortPriceAsc, q.Sort)
	assert.Equal(t, "prius", q.Text)
	assert.Equal(t, "Toyota", q.Enums[algorithms.DimManufacturer])
	assert.Equal(t, "hybrid", q.Enums[algorithms.DimFuel])
	assert.NotContains(t, q.Enums, algorithms.DimModel)
	assert.Equal(t, 2010.0, *q.Ranges[algorithms.DimYear].Min)
	assert.Equal(t, 1000.0, *q.Ranges[algorithms.DimPrice].Min)
	assert.NotContains(t, q.Ranges, algorithms.DimMileage)
}

func TestQueryParams_DefaultSortIsNewest(t *testing.T) {
	q := (&TireQuery{Season: "winter"}).ToQuery()
	assert.Equal(t, algorithms.SortNewest, q.Sort)
	assert.Equal(t, "winter", q.Enums[algorithms.DimSeason])
}

func TestListingQuery_Validation(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Validate(&TireQuery{Season: "winter", Width: "205"}))

	err := v.Validate(&TireQuery{Season: "monsoon"})
	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors, "season")

	err = v.Validate(&VehicleQuery{QueryParams: QueryParams{Sort: "cheapest"}})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors, "sort")

	zero := 0
	err = v.Validate(&PartQuery{QueryParams: QueryParams{PageSize: &zero}})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors, "page_size")
}

func TestNewListItemView(t *testing.T) {
	l := &models.Listing{
		ID:       "t1",
		Category: models.CategoryTire,
		Tier:     models.TierSilver,
		Region:   "Дархан-Уул",
		PriceMnt: 450000,
		Tire:     &models.TireAttrs{Brand: "Michelin", Width: 205, AspectRatio: 55, RimDiameter: 16, Season: "winter", Condition: "new"},
	}

	view := NewListItemView(l, "/static/placeholder.png")
	assert.Equal(t, "Michelin 205/55R16", view.Title)
	assert.Equal(t, "/static/placeholder.png", view.Cover)
	assert.Equal(t, algorithms.RegionDarkhan, view.RegionGroup)
	assert.Equal(t, "205/55R16", view.Summary["size"])

	l.Media = []string{"media/abc.jpg"}
	assert.Equal(t, "media/abc.jpg", NewListItemView(l, "/static/placeholder.png").Cover)
}

func TestNewListingDetail_Expired(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	l := &models.Listing{ID: "x", Status: models.ListingStatusPublished, ExpiresAt: &past}

	d := NewListingDetail(l, now)
	assert.True(t, d.Expired)
	assert.Equal(t, models.ListingStatusPublished, d.Status)
	assert.Nil(t, NewListingDetail(nil, now))
}

func TestNewPaginatedResponse_EmptyPageHasEmptyData(t *testing.T) {
	p, err := algorithms.Paginate([]ListItemView{}, 1, 12)
	require.NoError(t, err)

	resp := NewPaginatedResponse(p, "7")
	assert.Equal(t, []ListItemView{}, resp.Data)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, "7", resp.Seq)
}
