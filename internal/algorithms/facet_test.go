package algorithms

import (
	"testing"

	"autozar_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacet_OwnSelectionDoesNotShrinkOwnCounts(t *testing.T) {
	all, err := Facet(fleet(), NewQuery(models.CategoryVehicle), DimManufacturer)
	require.NoError(t, err)

	q := NewQuery(models.CategoryVehicle).WithEnum(DimManufacturer, "Toyota")
	selected, err := Facet(fleet(), q, DimManufacturer)
	require.NoError(t, err)

	assert.Equal(t, all, selected)
	assert.Equal(t, []FacetCount{
		{Value: "Toyota", Count: 3},
		{Value: "Hyundai", Count: 2},
		{Value: "Lexus", Count: 1},
	}, selected)
}

func TestFacet_OtherSelectionsApply(t *testing.T) {
	q := NewQuery(models.CategoryVehicle).WithEnum(DimManufacturer, "Toyota")

	byModel, err := Facet(fleet(), q, DimModel)
	require.NoError(t, err)
	assert.Equal(t, []FacetCount{
		{Value: "Prius", Count: 2},
		{Value: "Land Cruiser", Count: 1},
	}, byModel)

	regions, err := Facet(fleet(), q.WithRange(DimYear, Range{Min: ptr(2013)}), DimRegionGroup)
	require.NoError(t, err)
	assert.Equal(t, []FacetCount{{Value: RegionCapital, Count: 2}}, regions)
}

func TestFacet_SkipsEmptyValuesAndOrdersTies(t *testing.T) {
	ls := fleet()
	ls[0].Vehicle.Color = ""
	ls[1].Vehicle.Color = "Blue"

	got, err := Facet(ls, NewQuery(models.CategoryVehicle), DimColor)
	require.NoError(t, err)
	assert.Equal(t, []FacetCount{
		{Value: "white", Count: 3},
		{Value: "black", Count: 1},
		{Value: "blue", Count: 1},
	}, got)
}

func TestFacet_RangeDimensionCountsNumbers(t *testing.T) {
	got, err := Facet(fleet(), NewQuery(models.CategoryVehicle).WithEnum(DimModel, "prius"), DimYear)
	require.NoError(t, err)
	assert.Equal(t, []FacetCount{{Value: "2012", Count: 1}, {Value: "2015", Count: 1}}, got)
}

func TestFacet_UnknownDimension(t *testing.T) {
	_, err := Facet(fleet(), NewQuery(models.CategoryVehicle), DimSeason)
	assert.ErrorIs(t, err, ErrUnknownDimension)
}

func TestFacet_BucketsMatchFilterComparison(t *testing.T) {
	ls := fleet()
	ls[4].Vehicle.Manufacturer = "toyota "

	counts, err := Facet(ls, NewQuery(models.CategoryVehicle), DimManufacturer)
	require.NoError(t, err)
	assert.Equal(t, []FacetCount{
		{Value: "Toyota", Count: 3},
		{Value: "Hyundai", Count: 2},
		{Value: "Lexus", Count: 1},
	}, counts)

	q := NewQuery(models.CategoryVehicle).WithEnum(DimManufacturer, "Toyota")
	assert.Len(t, Filter(ls, q), counts[0].Count)
}
