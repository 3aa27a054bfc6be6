package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"versehub/models"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	return db
}

func TestRunMigrations(t *testing.T) {
	db := setupTestDB()

	assert.NoError(t, RunMigrations(db))

	for _, table := range []string{"users", "bible_versions", "categories", "bible_verses", "verse_classifications"} {
		assert.True(t, db.Migrator().HasTable(table), "tabela %s deveria existir", table)
	}
}

func TestSeedReferenceData(t *testing.T) {
	db := setupTestDB()
	assert.NoError(t, RunMigrations(db))

	assert.NoError(t, SeedReferenceData(db))

	var categories, versions int64
	db.Model(&models.Category{}).Count(&categories)
	db.Model(&models.BibleVersion{}).Count(&versions)
	assert.Equal(t, int64(len(seedCategories)), categories)
	assert.Equal(t, int64(7), versions)
}

func TestSeedReferenceData_Idempotent(t *testing.T) {
	db := setupTestDB()
	assert.NoError(t, RunMigrations(db))

	assert.NoError(t, SeedReferenceData(db))
	assert.NoError(t, SeedReferenceData(db))

	var categories int64
	db.Model(&models.Category{}).Count(&categories)
	assert.Equal(t, int64(len(seedCategories)), categories)
}

func TestSeedReferenceData_UpdatesChangedRows(t *testing.T) {
	db := setupTestDB()
	assert.NoError(t, RunMigrations(db))
	assert.NoError(t, SeedReferenceData(db))

	slug := seedCategories[0].Slug
	assert.NoError(t, db.Model(&models.Category{}).Where("slug = ?", slug).Update("name", "Nome Antigo").Error)

	assert.NoError(t, SeedReferenceData(db))

	var category models.Category
	assert.NoError(t, db.Where("slug = ?", slug).First(&category).Error)
	assert.Equal(t, seedCategories[0].Name, category.Name)
}

func TestSeedCategories_UniqueSlugs(t *testing.T) {
	seen := make(map[string]bool, len(seedCategories))
	for _, category := range seedCategories {
		assert.NotEmpty(t, category.Slug)
		assert.False(t, seen[category.Slug], "slug duplicado: %s", category.Slug)
		seen[category.Slug] = true
	}
}
