//go:build !sqlite

package history

func newSQLiteStore(_ string, _ int) (Store, error) {
	return nil, ErrSQLiteUnavailable
}
