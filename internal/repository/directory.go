package repository

// DirectoryRepository runs the employee, role and department queries against
// a single shared connection handle.
//
// The handle is owned by the caller and may be used concurrently; pgxpool
// hands each statement its own connection. The repository adds no locking,
// no retries and no validation of its own.
type DirectoryRepository struct {
	db DBTX
}

// NewDirectoryRepository binds a repository to db, usually the shared pool.
func NewDirectoryRepository(db DBTX) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}
