package db

import (
	"path/filepath"
	"testing"
)

func TestOpenAppliesEmbeddedMigrationsOnCleanDatabase(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "yodiet-clean.db")
	database, err := Open(databasePath)
	if err != nil {
		t.Fatalf("open clean database: %v", err)
	}

	for _, table := range []string{"users", "health_goals", "health_progress", "goals", "meals", "schema_migrations"} {
		var matched int64
		err := database.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&matched).Error
		if err != nil {
			t.Fatalf("inspect sqlite_master for %s: %v", table, err)
		}
		if matched != 1 {
			t.Fatalf("expected table %s to exist after migration", table)
		}
	}
}

func TestOpenIsIdempotentAcrossRestarts(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "yodiet-reopen.db")
	if _, err := Open(databasePath); err != nil {
		t.Fatalf("first open: %v", err)
	}

	database, err := Open(databasePath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}

	type appliedRow struct {
		Version string `gorm:"column:version"`
	}
	rows := make([]appliedRow, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&rows).Error; err != nil {
		t.Fatalf("load applied migrations: %v", err)
	}

	seen := make(map[string]int, len(rows))
	for _, row := range rows {
		seen[row.Version]++
		if seen[row.Version] > 1 {
			t.Fatalf("migration version %s recorded more than once", row.Version)
		}
	}
	if len(rows) == 0 {
		t.Fatal("expected at least one applied migration")
	}
}

func TestOpenEnforcesUserUniqueIndexes(t *testing.T) {
	repos := openTestRepositories(t)

	first := testUser("ann23", "ann@x.com")
	if err := repos.Users.CreateUnique(&first); err != nil {
		t.Fatalf("create first user: %v", err)
	}

	// Bypass the application-level checks; the index must still reject.
	duplicate := testUser("ann23", "other@x.com")
	if err := repos.Users.database.Create(&duplicate).Error; err == nil {
		t.Fatal("expected unique index violation for duplicate username")
	}
}
