// Package static serves content from files loaded once at startup.
package static

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"cursedwarden/internal/domain/content"
)

// Provider hands out one immutable catalog.
type Provider struct {
	catalog content.Catalog
}

func NewProvider(catalog content.Catalog) Provider {
	return Provider{catalog: catalog}
}

func (p Provider) Catalog(_ context.Context) (content.Catalog, error) {
	return p.catalog, nil
}

type itemsFile struct {
	Items []content.ItemDefinition `yaml:"items"`
}

type enemiesFile struct {
	Enemies []content.EnemyDefinition `yaml:"enemies"`
}

// LoadDir reads items.yaml and enemies.yaml from dir and validates them
// into a catalog. A missing file means that content kind is empty.
func LoadDir(dir string) (content.Catalog, error) {
	var items itemsFile
	if err := readYAML(filepath.Join(dir, "items.yaml"), &items); err != nil {
		return content.Catalog{}, fmt.Errorf("load items: %w", err)
	}
	var enemies enemiesFile
	if err := readYAML(filepath.Join(dir, "enemies.yaml"), &enemies); err != nil {
		return content.Catalog{}, fmt.Errorf("load enemies: %w", err)
	}
	return content.NewCatalog(items.Items, enemies.Enemies)
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, out)
}
