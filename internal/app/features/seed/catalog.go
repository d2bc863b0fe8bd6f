// internal/app/features/seed/catalog.go
package seed

import (
	_ "embed"
	"fmt"

	"github.com/dalemusser/gliweb/internal/domain/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the fixed set of programmes, coaches and FAQs that seeding
// appends.
type Catalog struct {
	Programs []models.Program `yaml:"programs"`
	Coaches  []models.Coach   `yaml:"coaches"`
	FAQs     []models.FAQ     `yaml:"faqs"`
}

// LoadCatalog parses the embedded catalog.
func LoadCatalog() (Catalog, error) {
	return parseCatalog(catalogYAML)
}

func parseCatalog(b []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse seed catalog: %w", err)
	}
	for i, f := range c.FAQs {
		for j, raw := range f.TargetRole {
			role, ok := models.ParseRole(string(raw))
			if !ok {
				return Catalog{}, fmt.Errorf("seed catalog: faq %d: unknown role %q", i, raw)
			}
			f.TargetRole[j] = role
		}
	}
	return c, nil
}
