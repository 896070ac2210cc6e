package catalog

import (
	_ "embed"
	"encoding/json"

	"github.com/go-faster/errors"

	"github.com/harborlane/storefront-api/models"
)

//go:embed products.json
var seedJSON []byte

// LoadSeed builds the catalog from the embedded seed file. Called once at
// startup; any validation failure is fatal.
func LoadSeed() (*Catalog, error) {
	var seed []models.Product
	if err := json.Unmarshal(seedJSON, &seed); err != nil {
		return nil, errors.Wrap(err, "decode seed products")
	}
	return Load(seed)
}
