package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Catalog() CatalogRepository
	Store() StoreRepository
	Wishlists() WishlistRepository
	Users() UserRepository
	Reviews() ReviewRepository
}
