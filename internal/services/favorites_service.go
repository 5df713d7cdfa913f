package services

import (
	"context"
	"time"

	"autozar_backend/internal/dto"
	"autozar_backend/internal/repositories"
	"autozar_backend/pkg/apperrors"
)

// RecentLimit caps the recently viewed list per user.
const RecentLimit = 20

// FavoritesService manages per-user favorites and recently viewed listings.
// Views resolve ids through the publication gate; ids that are no longer
// visible are dropped from the view but stay stored.
type FavoritesService interface {
	ListFavorites(ctx context.Context, userID string) ([]dto.ListItemView, error)
	AddFavorite(ctx context.Context, userID, listingID string) error
	RemoveFavorite(ctx context.Context, userID, listingID string) error

	ListRecent(ctx context.Context, userID string) ([]dto.ListItemView, error)
	PushRecent(ctx context.Context, userID, listingID string) error
}

type favoritesService struct {
	gate        PublicationGate
	favorites   repositories.FavoritesRepository
	recent      repositories.RecentRepository
	placeholder string
	now         func() time.Time
}

func NewFavoritesService(
	gate PublicationGate,
	favorites repositories.FavoritesRepository,
	recent repositories.RecentRepository,
	placeholder string,
	now func() time.Time,
) FavoritesService {
	if now == nil {
		now = time.Now
	}
	return &favoritesService{
		gate:        gate,
		favorites:   favorites,
		recent:      recent,
		placeholder: placeholder,
		now:         now,
	}
}

func (s *favoritesService) ListFavorites(ctx context.Context, userID string) ([]dto.ListItemView, error) {
	ids, err := s.favorites.List(ctx, userID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return s.resolve(ctx, ids)
}

func (s *favoritesService) AddFavorite(ctx context.Context, userID, listingID string) error {
	if err := s.mustBeVisible(ctx, listingID); err != nil {
		return err
	}
	if err := s.favorites.Add(ctx, userID, listingID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *favoritesService) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	if err := s.favorites.Remove(ctx, userID, listingID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *favoritesService) ListRecent(ctx context.Context, userID string) ([]dto.ListItemView, error) {
	ids, err := s.recent.List(ctx, userID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return s.resolve(ctx, ids)
}

func (s *favoritesService) PushRecent(ctx context.Context, userID, listingID string) error {
	if err := s.mustBeVisible(ctx, listingID); err != nil {
		return err
	}
	if err := s.recent.Push(ctx, userID, listingID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *favoritesService) mustBeVisible(ctx context.Context, listingID string) error {
	l, err := s.gate.Lookup(ctx, listingID, s.now())
	if err != nil {
		return apperrors.StorageError(err)
	}
	if l == nil {
		return apperrors.ErrListingNotFound
	}
	return nil
}

func (s *favoritesService) resolve(ctx context.Context, ids []string) ([]dto.ListItemView, error) {
	now := s.now()
	out := make([]dto.ListItemView, 0, len(ids))
	for _, id := range ids {
		l, err := s.gate.Lookup(ctx, id, now)
		if err != nil {
			return nil, apperrors.StorageError(err)
		}
		if l == nil {
			continue
		}
		out = append(out, dto.NewListItemView(l, s.placeholder))
	}
	return out, nil
}
