package database

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"product-catalog/migrations"
)

const migrationsDir = "../../migrations"

func readMigration(t *testing.T, name string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(migrationsDir, name))
	if err != nil {
		t.Fatalf("Failed to read migration %s: %v", name, err)
	}
	return string(content)
}

func TestMigrationFilesExist(t *testing.T) {
	expectedMigrations := []string{
		"00001_create_products_table.sql",
		"00002_create_users_table.sql",
		"00003_create_reviews_table.sql",
	}

	for _, migration := range expectedMigrations {
		path := filepath.Join(migrationsDir, migration)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Migration file %s does not exist", migration)
		}
	}
}

func TestEmbeddedMigrationsMatchDisk(t *testing.T) {
	embedded, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		t.Fatalf("Failed to list embedded migrations: %v", err)
	}

	onDisk, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		t.Fatalf("Failed to list migrations on disk: %v", err)
	}

	if len(embedded) != len(onDisk) {
		t.Fatalf("Embedded %d migrations, found %d on disk", len(embedded), len(onDisk))
	}
}

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		t.Fatalf("Failed to read migrations directory: %v", err)
	}

	sqlFileCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		sqlFileCount++
		contentStr := readMigration(t, file.Name())

		for _, directive := range []string{
			"-- +goose Up",
			"-- +goose Down",
			"-- +goose StatementBegin",
			"-- +goose StatementEnd",
		} {
			if !strings.Contains(contentStr, directive) {
				t.Errorf("Migration file %s missing '%s' directive", file.Name(), directive)
			}
		}
	}

	if sqlFileCount == 0 {
		t.Error("No SQL migration files found")
	}
}

func TestMigrationFilesCreateExpectedTables(t *testing.T) {
	expectedTables := map[string]string{
		"products": "00001_create_products_table.sql",
		"users":    "00002_create_users_table.sql",
		"reviews":  "00003_create_reviews_table.sql",
	}

	for tableName, migrationFile := range expectedTables {
		contentStr := readMigration(t, migrationFile)

		if !strings.Contains(contentStr, "CREATE TABLE IF NOT EXISTS "+tableName) {
			t.Errorf("Migration file %s does not create table %s", migrationFile, tableName)
		}

		if !strings.Contains(contentStr, "DROP TABLE IF EXISTS "+tableName) {
			t.Errorf("Migration file %s does not drop table %s in down section", migrationFile, tableName)
		}
	}
}

func TestProductsTableHasRequiredColumns(t *testing.T) {
	contentStr := readMigration(t, "00001_create_products_table.sql")

	requiredColumns := []string{
		"id SERIAL PRIMARY KEY",
		"name VARCHAR(100) UNIQUE",
		"description VARCHAR(200)",
		"price DOUBLE PRECISION",
		"qty INTEGER",
	}

	for _, column := range requiredColumns {
		if !strings.Contains(contentStr, column) {
			t.Errorf("Products table missing required column definition: %s", column)
		}
	}
}

func TestUsersTableHasUniqueName(t *testing.T) {
	contentStr := readMigration(t, "00002_create_users_table.sql")

	if !strings.Contains(contentStr, "name VARCHAR(100) UNIQUE") {
		t.Error("Users table missing unique name column")
	}
}

func TestReviewsTableHasForeignKeys(t *testing.T) {
	contentStr := readMigration(t, "00003_create_reviews_table.sql")

	requiredFragments := []string{
		"date_created TIMESTAMP NOT NULL DEFAULT",
		"FOREIGN KEY (user_id) REFERENCES users(id)",
		"FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE",
	}

	for _, fragment := range requiredFragments {
		if !strings.Contains(contentStr, fragment) {
			t.Errorf("Reviews table missing definition: %s", fragment)
		}
	}
}
