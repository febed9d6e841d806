package ports

// FileSystem provides the host filesystem operations the orchestrator needs.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path exists. Symlinks are not followed, so a dangling
	// link still counts.
	Exists(path string) bool

	// Size returns the size in bytes of the file at path.
	Size(path string) (int64, error)

	// Digest returns a content digest of the file at path, as lowercase hex.
	Digest(path string) (string, error)

	// RemoveAll removes path and any children. Removing a missing path is not an error.
	RemoveAll(path string) error
}
