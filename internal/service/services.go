// Package service contains the application layer between handlers and
// repositories.
package service

import (
	"github.com/deppfellow/directory/internal/repository"
)

// Services is the container handed to the HTTP handlers.
type Services struct {
	Directory *DirectoryService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Directory: NewDirectoryService(repos.Directory),
	}
}
