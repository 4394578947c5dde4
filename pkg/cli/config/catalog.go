package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
)

// LoadMessageCatalogFromFile loads the error message catalog from a YAML file
func LoadMessageCatalogFromFile(path string) (*model.MessageCatalog, error) {
	if path == "" {
		return nil, goerr.New("message catalog path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "message catalog not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read message catalog",
			goerr.V("path", path))
	}

	catalog, err := model.ParseMessageCatalog(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load message catalog",
			goerr.V("path", path))
	}

	return catalog, nil
}
