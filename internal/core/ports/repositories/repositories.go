package repositories

// RepositoryProvider holds every repository the services are built from.
type RepositoryProvider struct {
	UserRepo            UserRepositoryFacade
	LostItemRepo        LostItemRepositoryFacade
	MarketplaceItemRepo MarketplaceItemRepositoryFacade
}
