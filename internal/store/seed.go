package store

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedCard struct {
	Label           string `yaml:"label"`
	LabelPortuguese string `yaml:"labelPortuguese"`
	ImageURL        string `yaml:"imageUrl"`
	DisplayOrder    int    `yaml:"displayOrder"`
}

type seedCategory struct {
	Name           string     `yaml:"name"`
	NamePortuguese string     `yaml:"namePortuguese"`
	Icon           string     `yaml:"icon"`
	DisplayOrder   int        `yaml:"displayOrder"`
	Cards          []seedCard `yaml:"cards"`
}

type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
}

// loadSeed populates the store from the embedded board content. Seed records
// go through the same validating create paths as API input, so a malformed
// seed fails loudly at startup instead of silently serving bad cards.
func (s *MemStore) loadSeed() error {
	var doc seedFile
	if err := yaml.Unmarshal(seedYAML, &doc); err != nil {
		return fmt.Errorf("seed: parse: %w", err)
	}

	ctx := context.Background()
	for _, sc := range doc.Categories {
		cat, err := s.CreateCategory(ctx, NewCategory{
			Name:           sc.Name,
			NamePortuguese: sc.NamePortuguese,
			Icon:           sc.Icon,
			DisplayOrder:   sc.DisplayOrder,
		})
		if err != nil {
			return fmt.Errorf("seed: category %q: %w", sc.Name, err)
		}
		for _, cd := range sc.Cards {
			if _, err := s.CreateCard(ctx, NewCard{
				CategoryID:      cat.ID,
				Label:           cd.Label,
				LabelPortuguese: cd.LabelPortuguese,
				ImageURL:        cd.ImageURL,
				DisplayOrder:    cd.DisplayOrder,
			}); err != nil {
				return fmt.Errorf("seed: card %q: %w", cd.Label, err)
			}
		}
	}
	return nil
}
