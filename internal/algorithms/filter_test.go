package algorithms

import (
	"testing"

	"autozar_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_EmptyQueryMatchesWholeCategory(t *testing.T) {
	ls := fleet()
	ls = append(ls, models.Listing{ID: "t1", Category: models.CategoryTire, Tire: &models.TireAttrs{Brand: "Michelin"}})

	got := Filter(ls, NewQuery(models.CategoryVehicle))
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5", "v6"}, ids(got))
}

func TestFilter_EnumsAreCaseInsensitive(t *testing.T) {
	q := NewQuery(models.CategoryVehicle).WithEnum(DimManufacturer, "toyota")
	assert.Equal(t, []string{"v1", "v2", "v5"}, ids(Filter(fleet(), q)))

	q = q.WithEnum(DimModel, "PRIUS")
	assert.Equal(t, []string{"v1", "v5"}, ids(Filter(fleet(), q)))
}

func TestFilter_RangesAreInclusiveAndIndependent(t *testing.T) {
	q := NewQuery(models.CategoryVehicle).WithRange(DimYear, Range{Min: ptr(2016)})
	assert.Equal(t, []string{"v2", "v3", "v4", "v6"}, ids(Filter(fleet(), q)))

	q = NewQuery(models.CategoryVehicle).WithRange(DimYear, Range{Max: ptr(2015)})
	assert.Equal(t, []string{"v1", "v5"}, ids(Filter(fleet(), q)))

	q = NewQuery(models.CategoryVehicle).WithRange(DimPrice, Range{Min: ptr(28000000), Max: ptr(42000000)})
	assert.Equal(t, []string{"v1", "v3", "v6"}, ids(Filter(fleet(), q)))
}

func TestFilter_ColorAndRegionBuckets(t *testing.T) {
	q := NewQuery(models.CategoryVehicle).WithEnum(DimColor, "black")
	assert.Equal(t, []string{"v4"}, ids(Filter(fleet(), q)))

	q = NewQuery(models.CategoryVehicle).WithEnum(DimRegionGroup, RegionCapital)
	assert.Equal(t, []string{"v1", "v2", "v5"}, ids(Filter(fleet(), q)))

	q = NewQuery(models.CategoryVehicle).WithEnum(DimRegionGroup, RegionOther)
	assert.Equal(t, []string{"v6"}, ids(Filter(fleet(), q)))
}

func TestFilter_TextSearchesCompositeTitleAndVIN(t *testing.T) {
	ls := fleet()
	ls[3].Vehicle.VIN = "JTJBC11A902001234"
	ls[5].Description = "Шинэ дугуйтай, гаалиа төлсөн"

	q := NewQuery(models.CategoryVehicle)
	q.Text = "land cru"
	assert.Equal(t, []string{"v2"}, ids(Filter(ls, q)))

	q.Text = "2001234"
	assert.Equal(t, []string{"v4"}, ids(Filter(ls, q)))

	q.Text = "ДУГУЙ"
	assert.Equal(t, []string{"v6"}, ids(Filter(ls, q)))

	q.Text = "prius 2012"
	assert.Equal(t, []string{"v5"}, ids(Filter(ls, q)))
}

func TestFilter_TireCompositeTitle(t *testing.T) {
	ls := []models.Listing{{
		ID:       "t1",
		Category: models.CategoryTire,
		Tire:     &models.TireAttrs{Brand: "Michelin", Width: 205, AspectRatio: 55, RimDiameter: 16, Season: "winter", Condition: "new"},
	}}
	q := NewQuery(models.CategoryTire)
	q.Text = "205/55r16"
	assert.Len(t, Filter(ls, q), 1)

	q = NewQuery(models.CategoryTire).WithEnum(DimRim, "16").WithEnum(DimSeason, "winter")
	assert.Len(t, Filter(ls, q), 1)
}

func TestQuery_Validate(t *testing.T) {
	require.NoError(t, NewQuery(models.CategoryVehicle).WithEnum(DimFuel, "diesel").Validate())

	err := NewQuery(models.CategoryTire).WithEnum(DimFuel, "diesel").Validate()
	assert.ErrorIs(t, err, ErrUnknownDimension)

	err = NewQuery(models.CategoryVehicle).WithRange(DimYear, Range{Min: ptr(2020), Max: ptr(2010)}).Validate()
	assert.ErrorIs(t, err, ErrInvalidRange)

	err = NewQuery(models.CategoryVehicle).WithRange(DimFuel, Range{Min: ptr(1)}).Validate()
	assert.ErrorIs(t, err, ErrUnknownDimension)

	q := NewQuery(models.CategoryVehicle)
	q.Sort = "cheapest"
	assert.ErrorIs(t, q.Validate(), ErrInvalidSortMode)

	assert.ErrorIs(t, NewQuery("boat").Validate(), ErrUnknownCategory)
}

func TestQuery_WithoutDoesNotMutateOriginal(t *testing.T) {
	q := NewQuery(models.CategoryVehicle).WithEnum(DimModel, "Prius").WithRange(DimYear, Range{Min: ptr(2010)})
	stripped := q.Without(DimModel)

	assert.Contains(t, q.Enums, DimModel)
	assert.NotContains(t, stripped.Enums, DimModel)
	assert.Contains(t, stripped.Ranges, DimYear)
}

func TestRegionGroup(t *testing.T) {
	cases := map[string]string{
		"Улаанбаатар, Сүхбаатар": RegionCapital,
		"ulaanbaatar":            RegionCapital,
		"UB":                     RegionCapital,
		"Дархан-Уул":             RegionDarkhan,
		"Darkhan":                RegionDarkhan,
		"Орхон, Эрдэнэт":         RegionErdenet,
		"Ховд":                   RegionOther,
		"":                       RegionOther,
	}
	for in, want := range cases {
		assert.Equal(t, want, RegionGroup(in), in)
	}
}

func TestColorBucket(t *testing.T) {
	assert.Equal(t, "white", ColorBucket("Pearl White"))
	assert.Equal(t, "silver", ColorBucket("саарал"))
	assert.Equal(t, "other", ColorBucket("green"))
	assert.Equal(t, "", ColorBucket("  "))
}
