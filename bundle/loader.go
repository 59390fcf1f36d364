package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a bundle from a JSON or YAML file, validating the envelope
// first. Decoding goes through reg; pass nil to load everything as Generic.
func LoadFile(filename string, reg *Registry, logger *zap.SugaredLogger) (*Bundle, error) {
	logger.Infof("Loading bundle from %s", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle file: %w", err)
	}

	if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, err
		}
	}

	if err := ValidateEnvelope(data); err != nil {
		return nil, err
	}

	b, err := Decode(data, reg)
	if err != nil {
		return nil, err
	}

	logger.Infof("Loaded %d objects from bundle %s", b.Len(), b.ID())
	for typ, count := range b.CountByType() {
		logger.Debugf("  %s: %d", typ, count)
	}
	return b, nil
}

// WriteFile serializes the bundle to a JSON file.
func WriteFile(filename string, b *Bundle, logger *zap.SugaredLogger) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write bundle file: %w", err)
	}
	logger.Infof("Wrote %d objects to %s", b.Len(), filename)
	return nil
}

// yamlToJSON re-encodes a YAML bundle document as JSON so the schema check
// and the per-object decoders see one canonical form.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML bundle: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML bundle to JSON: %w", err)
	}
	return out, nil
}
