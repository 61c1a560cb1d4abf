package repository

import (
	"github.com/deppfellow/directory/internal/server"
)

// Repositories is a container for all repository instances.
//
// Services receive the container instead of individual repositories so that
// new ones can be added without touching every constructor.
type Repositories struct {
	Directory *DirectoryRepository
}

// NewRepositories constructs the repository container on top of the shared
// connection pool owned by the server.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Directory: NewDirectoryRepository(s.DB.Pool),
	}
}
