package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	LifecycleService LifecycleService
	QueryService     QueryService
	FavoritesService FavoritesService
	PublicationGate  PublicationGate
}
