package repositories

import "autozar_backend/internal/models"

// Key layout of the persistence port.
const (
	listingsPrefix  = "listings:"
	paymentsKey     = "payments"
	draftsPrefix    = "drafts:"
	favoritesPrefix = "favorites:"
	recentPrefix    = "recent:"
)

func ListingsKey(c models.Category) string { return listingsPrefix + string(c) }

func DraftKey(userID string, c models.Category) string {
	return draftsPrefix + userID + ":" + string(c)
}

func FavoritesKey(userID string) string { return favoritesPrefix + userID }

func RecentKey(userID string) string { return recentPrefix + userID }
