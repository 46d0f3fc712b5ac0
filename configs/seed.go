package configs

import (
	"github.com/kasiam87/eCommerceApp/entity"
)

// SeedItems fills the catalog with the starter items. Items are managed
// outside the API surface, so boot-time seeding is how the catalog gets
// its content.
func SeedItems() error {
	db := DB()

	items := []entity.Item{
		{Name: "Round Widget", Price: 299, Description: "A widget that is round"},
		{Name: "Square Widget", Price: 199, Description: "A widget that is square"},
		{Name: "Triangle Widget", Price: 450, Description: "A widget that is triangular"},
	}
	for _, it := range items {
		if err := db.FirstOrCreate(&entity.Item{}, entity.Item{Name: it.Name, Price: it.Price, Description: it.Description}).Error; err != nil {
			return err
		}
	}
	return nil
}
