package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	ListingHandler   *ListingHandler
	MyListingHandler *MyListingHandler
	FavoritesHandler *FavoritesHandler
	AdminHandler     *AdminHandler
}
