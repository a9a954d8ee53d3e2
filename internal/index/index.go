package index

// DocumentIndex defines the interface for document indexing operations.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with mocks.
type DocumentIndex interface {
	UpsertDocument(d DocumentRow, body string) error
	DeleteDocument(path string) error
	GetDocument(path string) (*DocumentRow, error)
	ListDocuments(limit, offset int, tag string) ([]DocumentRow, int, error)
	GetChecksum(path string) (string, error)
	Search(query string, limit int) ([]SearchResult, error)
	AllPaths() (map[string]struct{}, error)
	AllChecksums() (map[string]string, error)
	PutRender(path, checksum, html string) error
	GetRender(path string) (checksum, html string, ok bool, err error)
	DeleteRender(path string) error
	Close() error
}

// Verify *DB satisfies DocumentIndex at compile time.
var _ DocumentIndex = (*DB)(nil)
