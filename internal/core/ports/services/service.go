package services

// ServiceContainer holds instances of all the application services.
// It is what the handlers are built from.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	LostFound   LostFoundSvcFacade
	Marketplace MarketplaceSvcFacade
}
