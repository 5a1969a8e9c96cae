package store

// Storages aggregates every repository used by the application.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages constructs the storage layer backed by the in-memory
// user repository.
func NewStorages() *Storages {
	return &Storages{
		UserRepository: NewUsersMemoryStorage(),
	}
}
