package classification

import (
	"errors"
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	"versehub/models"
)

// CategoryStat is one category's share of a verse's classifications.
type CategoryStat struct {
	CategoryID    int     `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	CategoryIcon  string  `json:"category_icon"`
	CategoryColor string  `json:"category_color"`
	Count         int     `json:"count"`
	Percentage    float64 `json:"percentage"`
}

// VerseStatsResult aggregates how the community classified one reference.
type VerseStatsResult struct {
	Reference            string         `json:"reference"`
	TotalClassifications int            `json:"total_classifications"`
	TotalPeople          int            `json:"total_people"`
	Stats                []CategoryStat `json:"stats"`
}

// TopCategory annotates a feed entry with one of its strongest categories.
type TopCategory struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// FeedEntry is one classified verse in the community feed.
type FeedEntry struct {
	Reference        string        `json:"reference"`
	Text             string        `json:"text"`
	Version          string        `json:"version"`
	TotalPeople      int           `json:"total_people"`
	TopCategories    []TopCategory `json:"top_categories"`
	LastClassifiedAt time.Time     `json:"last_classified_at"`
}

// verseStats computes the community stats for a reference. An unknown
// reference yields a zero-valued result, never an error. All rows for the
// verse are fetched in a single query and grouped in memory.
func (m *ClassificationModule) verseStats(reference string) (*VerseStatsResult, error) {
	result := &VerseStatsResult{
		Reference: reference,
		Stats:     []CategoryStat{},
	}

	var verse models.BibleVerse
	err := m.db.Where("reference = ?", reference).First(&verse).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []models.VerseClassification
	if err := m.db.Where("bible_verse_id = ?", verse.ID).Find(&rows).Error; err != nil {
		return nil, err
	}

	people := make(map[string]bool)
	countsByCategory := make(map[int]int)
	for _, row := range rows {
		if key := principalKeyFromRow(row); key != "" {
			people[key] = true
		}
		countsByCategory[row.CategoryID]++
	}

	categoryIDSet := make(map[int]bool, len(countsByCategory))
	for id := range countsByCategory {
		categoryIDSet[id] = true
	}
	categoriesByID, err := m.loadCategories(categoryIDSet)
	if err != nil {
		return nil, err
	}

	totalPeople := len(people)
	for id, count := range countsByCategory {
		category, ok := categoriesByID[id]
		if !ok {
			continue
		}
		result.Stats = append(result.Stats, CategoryStat{
			CategoryID:    category.ID,
			CategoryName:  category.Name,
			CategoryIcon:  category.Icon,
			CategoryColor: category.Color,
			Count:         count,
			Percentage:    percentage(count, totalPeople),
		})
		result.TotalClassifications += count
	}

	// Maior contagem primeiro; empates resolvidos por id para manter a
	// ordem estável.
	sort.Slice(result.Stats, func(i, j int) bool {
		if result.Stats[i].Count != result.Stats[j].Count {
			return result.Stats[i].Count > result.Stats[j].Count
		}
		return result.Stats[i].CategoryID < result.Stats[j].CategoryID
	})

	result.TotalPeople = totalPeople
	return result, nil
}

// communityFeed lists every classified verse with its top 3 categories,
// optionally restricted to verses that have at least one classification with
// the given category. The filter selects verses, not rows: a matching verse
// still shows its other categories. Rows for the whole candidate set are
// fetched in one query and grouped in memory, never one query per verse.
func (m *ClassificationModule) communityFeed(categoryFilter *int) ([]FeedEntry, error) {
	query := m.db.Model(&models.VerseClassification{}).Distinct("bible_verse_id")
	if categoryFilter != nil {
		query = query.Where("category_id = ?", *categoryFilter)
	}

	var verseIDs []int
	if err := query.Pluck("bible_verse_id", &verseIDs).Error; err != nil {
		return nil, err
	}
	if len(verseIDs) == 0 {
		return []FeedEntry{}, nil
	}

	versesByID, err := m.loadVerses(verseIDs)
	if err != nil {
		return nil, err
	}

	var rows []models.VerseClassification
	if err := m.db.Where("bible_verse_id IN ?", verseIDs).Find(&rows).Error; err != nil {
		return nil, err
	}

	rowsByVerse := make(map[int][]models.VerseClassification)
	categoryIDSet := make(map[int]bool)
	for _, row := range rows {
		rowsByVerse[row.BibleVerseID] = append(rowsByVerse[row.BibleVerseID], row)
		categoryIDSet[row.CategoryID] = true
	}

	categoriesByID, err := m.loadCategories(categoryIDSet)
	if err != nil {
		return nil, err
	}

	feed := make([]FeedEntry, 0, len(verseIDs))
	for verseID, verseRows := range rowsByVerse {
		verse, ok := versesByID[verseID]
		if !ok {
			continue
		}

		people := make(map[string]bool)
		counts := make(map[int]int)
		var lastAt time.Time
		for _, row := range verseRows {
			if key := principalKeyFromRow(row); key != "" {
				people[key] = true
			}
			counts[row.CategoryID]++
			if row.CreatedAt.After(lastAt) {
				lastAt = row.CreatedAt
			}
		}
		totalPeople := len(people)

		feed = append(feed, FeedEntry{
			Reference:        verse.Reference,
			Text:             verse.Text,
			Version:          verse.Version,
			TotalPeople:      totalPeople,
			TopCategories:    topCategories(counts, categoriesByID, totalPeople),
			LastClassifiedAt: lastAt,
		})
	}

	// Mais popular primeiro; referência como desempate estável.
	sort.Slice(feed, func(i, j int) bool {
		if feed[i].TotalPeople != feed[j].TotalPeople {
			return feed[i].TotalPeople > feed[j].TotalPeople
		}
		return feed[i].Reference < feed[j].Reference
	})

	return feed, nil
}

// topCategories picks the 3 strongest categories for one verse.
func topCategories(counts map[int]int, categoriesByID map[int]models.Category, totalPeople int) []TopCategory {
	type categoryCount struct {
		id    int
		count int
	}
	ranked := make([]categoryCount, 0, len(counts))
	for id, count := range counts {
		ranked = append(ranked, categoryCount{id: id, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].id < ranked[j].id
	})

	top := []TopCategory{}
	for _, entry := range ranked {
		if len(top) == 3 {
			break
		}
		category, ok := categoriesByID[entry.id]
		if !ok {
			continue
		}
		top = append(top, TopCategory{
			ID:         category.ID,
			Name:       category.Name,
			Icon:       category.Icon,
			Color:      category.Color,
			Count:      entry.count,
			Percentage: percentage(entry.count, totalPeople),
		})
	}
	return top
}

// percentage returns count/total as a percentage rounded to one decimal,
// and 0 when nobody classified yet.
func percentage(count, totalPeople int) float64 {
	if totalPeople == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(totalPeople)*1000) / 10
}
