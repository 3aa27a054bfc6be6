package database

import (
	"log"

	"versehub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.BibleVersion{},
		&models.Category{},
		&models.BibleVerse{},
		&models.VerseClassification{},
	)

	if err != nil {
		log.Printf("Error running migrations: %v", err)
		return err
	}

	log.Println("Migrations completed successfully")
	return nil
}

// SeedReferenceData upserts the curated category taxonomy and the supported
// Bible versions. Safe to run on every boot.
func SeedReferenceData(db *gorm.DB) error {
	log.Println("Seeding reference data...")

	for _, category := range seedCategories {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "icon", "color", "group_label"}),
		}).Create(&models.Category{
			Name:       category.Name,
			Slug:       category.Slug,
			Icon:       category.Icon,
			Color:      category.Color,
			GroupLabel: category.GroupLabel,
		}).Error
		if err != nil {
			log.Printf("Error seeding category %s: %v", category.Slug, err)
			return err
		}
	}

	for _, version := range seedBibleVersions {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "language"}),
		}).Create(&models.BibleVersion{
			Slug:     version.Slug,
			Name:     version.Name,
			Language: version.Language,
		}).Error
		if err != nil {
			log.Printf("Error seeding bible version %s: %v", version.Slug, err)
			return err
		}
	}

	log.Printf("Seeded %d categories and %d bible versions", len(seedCategories), len(seedBibleVersions))
	return nil
}

var seedBibleVersions = []models.BibleVersion{
	{Slug: "acf", Name: "Almeida Corrigida Fiel", Language: "pt"},
	{Slug: "apee", Name: "A Palavra de Deus para Todos", Language: "pt"},
	{Slug: "bbe", Name: "Bible in Basic English", Language: "en"},
	{Slug: "kjv", Name: "King James Version", Language: "en"},
	{Slug: "nvi", Name: "Nova Versão Internacional", Language: "pt"},
	{Slug: "ra", Name: "Almeida Revista e Atualizada", Language: "pt"},
	{Slug: "rvr", Name: "Reina Valera Revisada", Language: "es"},
}
