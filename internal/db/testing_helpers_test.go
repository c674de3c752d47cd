package db

import (
	"path/filepath"
	"testing"
)

func openTestRepositories(t *testing.T) *Repositories {
	t.Helper()

	database, err := Open(filepath.Join(t.TempDir(), "yodiet-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return NewRepositories(database)
}
