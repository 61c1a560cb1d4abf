package handler

import (
	"github.com/deppfellow/directory/internal/server"
	"github.com/deppfellow/directory/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health    *HealthHandler
	Directory *DirectoryHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		Directory: NewDirectoryHandler(s, services.Directory),
	}
}
