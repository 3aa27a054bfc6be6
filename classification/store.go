package classification

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"versehub/models"
)

// ValidationError rejects a write before any row is touched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// resolveOrCreateVerse looks a verse up by (reference, version) and inserts
// it with the submitted text when absent. Two concurrent first-time
// classifications of the same verse may both try the insert; the unique index
// rejects the loser, which then re-fetches the winner's row. The stored text
// never changes after creation.
func (m *ClassificationModule) resolveOrCreateVerse(reference, version, text string) (*models.BibleVerse, error) {
	var verse models.BibleVerse
	err := m.db.Where("reference = ? AND version = ?", reference, version).First(&verse).Error
	if err == nil {
		return &verse, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	verse = models.BibleVerse{
		Reference: reference,
		Version:   version,
		Text:      text,
	}
	if createErr := m.db.Create(&verse).Error; createErr != nil {
		// Perdemos a corrida: outra requisição criou o versículo primeiro.
		if fetchErr := m.db.Where("reference = ? AND version = ?", reference, version).First(&verse).Error; fetchErr != nil {
			return nil, createErr
		}
	}
	return &verse, nil
}

// replaceClassifications swaps the principal's whole category set for a verse
// in one transaction: delete everything, insert the new rows. Returns whether
// a previous set existed.
func (m *ClassificationModule) replaceClassifications(principal Principal, verseID int, categoryIDs []int) (bool, error) {
	if len(categoryIDs) == 0 {
		return false, &ValidationError{Message: "category_ids não pode ser vazio"}
	}
	if err := m.validateCategoryIDs(categoryIDs); err != nil {
		return false, err
	}

	var existing int64
	if err := principal.scope(m.db.Model(&models.VerseClassification{})).
		Where("bible_verse_id = ?", verseID).
		Count(&existing).Error; err != nil {
		return false, err
	}
	existedBefore := existing > 0

	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := principal.scope(tx.Where("bible_verse_id = ?", verseID)).
			Delete(&models.VerseClassification{}).Error; err != nil {
			return err
		}
		now := time.Now()
		for _, categoryID := range uniqueInts(categoryIDs) {
			row := principal.row(verseID, categoryID)
			row.CreatedAt = now
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return existedBefore, nil
}

// validateCategoryIDs fails the whole write when any id is unknown, naming
// the offending ids.
func (m *ClassificationModule) validateCategoryIDs(categoryIDs []int) error {
	unique := uniqueInts(categoryIDs)

	var found []int
	if err := m.db.Model(&models.Category{}).
		Where("id IN ?", unique).
		Pluck("id", &found).Error; err != nil {
		return err
	}
	if len(found) == len(unique) {
		return nil
	}

	known := make(map[int]bool, len(found))
	for _, id := range found {
		known[id] = true
	}
	var missing []string
	for _, id := range unique {
		if !known[id] {
			missing = append(missing, fmt.Sprintf("%d", id))
		}
	}
	return &ValidationError{
		Message: "categorias inexistentes: " + strings.Join(missing, ", "),
	}
}

// getForPrincipalAndVerse returns the principal's category ids for a verse.
func (m *ClassificationModule) getForPrincipalAndVerse(principal Principal, verseID int) ([]int, error) {
	var categoryIDs []int
	err := principal.scope(m.db.Model(&models.VerseClassification{})).
		Where("bible_verse_id = ?", verseID).
		Order("category_id ASC").
		Pluck("category_id", &categoryIDs).Error
	return categoryIDs, err
}

// classifiedVerse is one entry of a principal's classification history: the
// verse plus the full category set classified on it.
type classifiedVerse struct {
	Verse      models.BibleVerse
	Categories []models.Category
}

// getForPrincipal returns the principal's classified verses, most recently
// classified first, one entry per verse. Everything is loaded in bulk: one
// query for the pivot rows, one for the verses and one for the categories.
// The per-verse ordering timestamp comes from the rows already in hand.
func (m *ClassificationModule) getForPrincipal(principal Principal) ([]classifiedVerse, error) {
	var rows []models.VerseClassification
	if err := principal.scope(m.db.Model(&models.VerseClassification{})).
		Order("category_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []classifiedVerse{}, nil
	}

	categoryIDSet := make(map[int]bool)
	rowsByVerse := make(map[int][]models.VerseClassification)
	latestByVerse := make(map[int]time.Time)
	var verseIDs []int
	for _, row := range rows {
		if _, seen := rowsByVerse[row.BibleVerseID]; !seen {
			verseIDs = append(verseIDs, row.BibleVerseID)
		}
		rowsByVerse[row.BibleVerseID] = append(rowsByVerse[row.BibleVerseID], row)
		if row.CreatedAt.After(latestByVerse[row.BibleVerseID]) {
			latestByVerse[row.BibleVerseID] = row.CreatedAt
		}
		categoryIDSet[row.CategoryID] = true
	}
	sort.SliceStable(verseIDs, func(i, j int) bool {
		return latestByVerse[verseIDs[i]].After(latestByVerse[verseIDs[j]])
	})

	versesByID, err := m.loadVerses(verseIDs)
	if err != nil {
		return nil, err
	}
	categoriesByID, err := m.loadCategories(categoryIDSet)
	if err != nil {
		return nil, err
	}

	result := make([]classifiedVerse, 0, len(verseIDs))
	for _, verseID := range verseIDs {
		verse, ok := versesByID[verseID]
		if !ok {
			continue
		}
		var categories []models.Category
		for _, row := range rowsByVerse[verseID] {
			if category, ok := categoriesByID[row.CategoryID]; ok {
				categories = append(categories, category)
			}
		}
		result = append(result, classifiedVerse{Verse: verse, Categories: categories})
	}
	return result, nil
}

// remove deletes a single (principal, verse, category) row. Returns false
// when there was nothing to delete.
func (m *ClassificationModule) remove(principal Principal, verseID, categoryID int) (bool, error) {
	result := principal.scope(m.db.Where("bible_verse_id = ? AND category_id = ?", verseID, categoryID)).
		Delete(&models.VerseClassification{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (m *ClassificationModule) exists(principal Principal, verseID, categoryID int) (bool, error) {
	var count int64
	err := principal.scope(m.db.Model(&models.VerseClassification{})).
		Where("bible_verse_id = ? AND category_id = ?", verseID, categoryID).
		Count(&count).Error
	return count > 0, err
}

func (m *ClassificationModule) loadVerses(verseIDs []int) (map[int]models.BibleVerse, error) {
	var verses []models.BibleVerse
	if err := m.db.Where("id IN ?", verseIDs).Find(&verses).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]models.BibleVerse, len(verses))
	for _, verse := range verses {
		byID[verse.ID] = verse
	}
	return byID, nil
}

func (m *ClassificationModule) loadCategories(idSet map[int]bool) (map[int]models.Category, error) {
	if len(idSet) == 0 {
		return map[int]models.Category{}, nil
	}
	ids := make([]int, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	var categories []models.Category
	if err := m.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}
	return byID, nil
}

func uniqueInts(values []int) []int {
	seen := make(map[int]bool, len(values))
	var unique []int
	for _, value := range values {
		if !seen[value] {
			seen[value] = true
			unique = append(unique, value)
		}
	}
	sort.Ints(unique)
	return unique
}
