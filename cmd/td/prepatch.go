package main

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// applyJSONPatch applies the RFC 6902 patch in patchFile to doc before
// tree conversion. Both may be yaml or json; each passes through
// YAMLToJSON first.
func applyJSONPatch(doc []byte, patchFile string) ([]byte, error) {
	pd, err := os.ReadFile(patchFile)
	if err != nil {
		return nil, err
	}
	pj, err := yaml.YAMLToJSON(pd)
	if err != nil {
		return nil, fmt.Errorf("error converting patch to json: %w", err)
	}
	ops, err := jsonpatch.DecodePatch(pj)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	dj, err := yaml.YAMLToJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("error converting document to json: %w", err)
	}
	return ops.Apply(dj)
}
