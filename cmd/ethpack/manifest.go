package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/ethpack/abi"
)

// manifest is the YAML document read by the manifest command:
//
//	values:
//	  - type: uint24
//	    value: "3838"
//	  - type: address
//	    value: "0xd8b934580fcE35a11B58C6D73aDeE468a2833fa8"
type manifest struct {
	Values []manifestEntry `yaml:"values"`
}

type manifestEntry struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// parseFunc builds a Value from a manifest entry.
type parseFunc func(typ, literal string) (abi.Value, error)

func loadManifest(path string, parse parseFunc) ([]abi.Value, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer file.Close()

	values, err := decodeManifest(file, parse)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return values, nil
}

func decodeManifest(r io.Reader, parse parseFunc) ([]abi.Value, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var m manifest
	if err := decoder.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest is empty")
		}

		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if len(m.Values) == 0 {
		return nil, errors.New("manifest has no values")
	}

	values := make([]abi.Value, 0, len(m.Values))
	for i, entry := range m.Values {
		if entry.Type == "" {
			return nil, fmt.Errorf("entry %d: missing type", i)
		}
		v, err := parse(entry.Type, entry.Value)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		values = append(values, v)
	}

	return values, nil
}
