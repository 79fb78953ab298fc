//go:build sqlite

package history

func newSQLiteStore(path string, limit int) (Store, error) {
	return NewSQLiteStore(path, limit), nil
}
