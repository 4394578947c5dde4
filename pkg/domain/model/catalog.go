package model

import (
	_ "embed"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

//go:embed catalog_default.yaml
var defaultCatalogYAML []byte

// MessageCatalog maps upstream error codes to operator-facing messages
type MessageCatalog struct {
	DefaultMessage string            `yaml:"default_message"`
	Messages       map[string]string `yaml:"messages"`
}

// Validate validates the message catalog
func (c *MessageCatalog) Validate() error {
	if c.DefaultMessage == "" {
		return goerr.New("default message is required")
	}
	for code, msg := range c.Messages {
		if code == "" {
			return goerr.New("empty error code in catalog")
		}
		if msg == "" {
			return goerr.New("empty message for error code", goerr.V("code", code))
		}
	}
	return nil
}

// Lookup returns the message registered for code
func (c *MessageCatalog) Lookup(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	msg, ok := c.Messages[code]
	return msg, ok
}

// ParseMessageCatalog parses and validates a YAML catalog
func ParseMessageCatalog(data []byte) (*MessageCatalog, error) {
	var catalog MessageCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse message catalog")
	}
	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid message catalog")
	}
	return &catalog, nil
}

// GetDefaultMessageCatalog returns the built-in catalog
func GetDefaultMessageCatalog() *MessageCatalog {
	catalog, err := ParseMessageCatalog(defaultCatalogYAML)
	if err != nil {
		panic("built-in message catalog is invalid: " + err.Error())
	}
	return catalog
}
