package services

import (
	"fmt"
	"testing"

	"autozar_backend/internal/catalog"
	"autozar_backend/internal/dto"
	"autozar_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewIDs(views []dto.ListItemView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func TestFavorites_AddListRemove(t *testing.T) {
	e := newTestEnv(t, catalog.MustLoad())

	require.NoError(t, e.favorites.AddFavorite(e.ctx, "u1", "seed-tire-001"))
	require.NoError(t, e.favorites.AddFavorite(e.ctx, "u1", "seed-part-001"))
	require.NoError(t, e.favorites.AddFavorite(e.ctx, "u1", "seed-tire-001"))

	views, err := e.favorites.ListFavorites(e.ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"seed-tire-001", "seed-part-001"}, viewIDs(views))

	require.NoError(t, e.favorites.RemoveFavorite(e.ctx, "u1", "seed-tire-001"))
	views, err = e.favorites.ListFavorites(e.ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"seed-part-001"}, viewIDs(views))

	err = e.favorites.AddFavorite(e.ctx, "u1", "missing")
	assert.ErrorIs(t, err, apperrors.ErrListingNotFound)
}

func TestFavorites_StaleIDsDropFromView(t *testing.T) {
	e := newTestEnv(t, catalog.Empty{})
	l := e.publish(t, "seller", tireRequest(), goldPlan(7))

	require.NoError(t, e.favorites.AddFavorite(e.ctx, "u1", l.ID))
	require.NoError(t, e.lifecycle.Withdraw(e.ctx, "seller", l.ID))

	views, err := e.favorites.ListFavorites(e.ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestRecent_CappedNewestFirst(t *testing.T) {
	e := newTestEnv(t, catalog.Empty{})

	var published []string
	for i := 0; i < RecentLimit+3; i++ {
		req := tireRequest()
		req.Title = fmt.Sprintf("set %d", i)
		l := e.publish(t, "seller", req, goldPlan(30))
		published = append(published, l.ID)
		require.NoError(t, e.favorites.PushRecent(e.ctx, "u1", l.ID))
	}
	require.NoError(t, e.favorites.PushRecent(e.ctx, "u1", published[5]))

	views, err := e.favorites.ListRecent(e.ctx, "u1")
	require.NoError(t, err)
	require.Len(t, views, RecentLimit)
	assert.Equal(t, published[5], views[0].ID)
	assert.Equal(t, published[len(published)-1], views[1].ID)
}
