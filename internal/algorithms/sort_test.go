package algorithms

import (
	"testing"

	"autozar_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTierPriority(t *testing.T, ls []models.Listing) {
	t.Helper()
	for i := 1; i < len(ls); i++ {
		assert.LessOrEqual(t, ls[i-1].Tier.Rank(), ls[i].Tier.Rank(),
			"%s sorted before %s", describe(ls[i-1]), describe(ls[i]))
	}
}

func TestSort_TierAlwaysWins(t *testing.T) {
	modes := []SortMode{SortNewest, SortPriceAsc, SortPriceDesc, SortMileageAsc, SortMileageDesc}
	for _, mode := range modes {
		t.Run(string(mode), func(t *testing.T) {
			got := Sort(fleet(), mode)
			require.Len(t, got, 6)
			assertTierPriority(t, got)
		})
	}
}

func TestSort_SecondaryKeys(t *testing.T) {
	assert.Equal(t, []string{"v5", "v2", "v3", "v1", "v6", "v4"}, ids(Sort(fleet(), SortPriceAsc)))
	assert.Equal(t, []string{"v2", "v5", "v3", "v4", "v6", "v1"}, ids(Sort(fleet(), SortPriceDesc)))
	assert.Equal(t, []string{"v2", "v5", "v3", "v6", "v4", "v1"}, ids(Sort(fleet(), SortMileageAsc)))
	assert.Equal(t, []string{"v5", "v2", "v3", "v1", "v4", "v6"}, ids(Sort(fleet(), SortMileageDesc)))
	assert.Equal(t, []string{"v5", "v2", "v3", "v6", "v4", "v1"}, ids(Sort(fleet(), SortNewest)))
}

func TestSort_StableForEqualKeys(t *testing.T) {
	ls := []models.Listing{
		car("a", models.TierGeneral, "Toyota", "Prius", 2015, 100, 1000),
		car("b", models.TierGeneral, "Toyota", "Prius", 2015, 100, 1000),
		car("c", models.TierGeneral, "Toyota", "Prius", 2015, 100, 1000),
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids(Sort(ls, SortPriceAsc)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(Sort(ls, SortNewest)))
}

func TestSort_UnknownTierSortsLast(t *testing.T) {
	ls := fleet()
	ls[0].Tier = ""
	got := Sort(ls, SortNewest)
	assert.Equal(t, "v1", got[len(got)-1].ID)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	ls := fleet()
	_ = Sort(ls, SortPriceDesc)
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5", "v6"}, ids(ls))
}

func TestParseSortMode(t *testing.T) {
	m, err := ParseSortMode("")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, m)

	m, err = ParseSortMode("mileageDesc")
	require.NoError(t, err)
	assert.Equal(t, SortMileageDesc, m)

	_, err = ParseSortMode("random")
	assert.ErrorIs(t, err, ErrInvalidSortMode)
}
