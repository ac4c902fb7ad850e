package database

import (
	"fmt"

	"media-catalog/internal/domain/media"

	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// Seed inserts a starter catalog, skipping any (title, year, type) triple
// that already exists so it is safe to run repeatedly.
func Seed(db *gorm.DB) error {
	entries := []media.Media{
		{
			Title:       "The Shawshank Redemption",
			Type:        media.TypeMovie,
			Director:    ptr("Frank Darabont"),
			Year:        ptr(1994),
			Genre:       ptr(media.Genre("DRAMA")),
			Rating:      ptr(9.3),
			Duration:    ptr(142),
			Language:    ptr("English"),
			Description: ptr("Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency."),
		},
		{
			Title:    "The Godfather",
			Type:     media.TypeMovie,
			Director: ptr("Francis Ford Coppola"),
			Year:     ptr(1972),
			Genre:    ptr(media.Genre("CRIME")),
			Rating:   ptr(9.2),
			Duration: ptr(175),
			Language: ptr("English"),
			Budget:   ptr(6000000.0),
		},
		{
			Title:    "Breaking Bad",
			Type:     media.TypeTVShow,
			Director: ptr("Vince Gilligan"),
			Year:     ptr(2008),
			Genre:    ptr(media.Genre("CRIME")),
			Rating:   ptr(9.5),
			Language: ptr("English"),
		},
		{
			Title:    "Spirited Away",
			Type:     media.TypeMovie,
			Director: ptr("Hayao Miyazaki"),
			Year:     ptr(2001),
			Genre:    ptr(media.Genre("ANIMATION")),
			Rating:   ptr(8.6),
			Duration: ptr(125),
			Language: ptr("Japanese"),
		},
		{
			Title:    "Planet Earth",
			Type:     media.TypeTVShow,
			Year:     ptr(2006),
			Genre:    ptr(media.Genre("DOCUMENTARY")),
			Rating:   ptr(9.4),
			Language: ptr("English"),
		},
		{
			Title:    "Parasite",
			Type:     media.TypeMovie,
			Director: ptr("Bong Joon-ho"),
			Year:     ptr(2019),
			Genre:    ptr(media.Genre("THRILLER")),
			Rating:   ptr(8.5),
			Duration: ptr(132),
			Language: ptr("Korean"),
			Location: ptr("Seoul, South Korea"),
		},
		{
			Title:    "The Office",
			Type:     media.TypeTVShow,
			Year:     ptr(2005),
			Genre:    ptr(media.Genre("COMEDY")),
			Rating:   ptr(9.0),
			Language: ptr("English"),
		},
		{
			Title:    "Interstellar",
			Type:     media.TypeMovie,
			Director: ptr("Christopher Nolan"),
			Year:     ptr(2014),
			Genre:    ptr(media.Genre("SCIENCE_FICTION")),
			Rating:   ptr(8.7),
			Duration: ptr(169),
			Budget:   ptr(165000000.0),
			Language: ptr("English"),
		},
	}

	seeded := 0
	for _, entry := range entries {
		cond := map[string]interface{}{
			"title": entry.Title,
			"type":  entry.Type,
			"year":  nil,
		}
		if entry.Year != nil {
			cond["year"] = *entry.Year
		}

		var count int64
		if err := db.Model(&media.Media{}).Where(cond).Count(&count).Error; err != nil {
			return fmt.Errorf("seed lookup %q: %w", entry.Title, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&entry).Error; err != nil {
			return fmt.Errorf("seed create %q: %w", entry.Title, err)
		}
		seeded++
	}

	fmt.Printf("✅ Seeded %d media records\n", seeded)
	return nil
}
