package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// maxConcurrentLoads bounds the number of listing files read at once.
const maxConcurrentLoads = 4

// ErrUnsupportedFormat is returned for listing files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported listing format")

// document is the wrapped listing shape: {"items": [...]}.
type document struct {
	Items []Item `json:"items" yaml:"items"`
}

// LoadFile reads a YAML (.yaml, .yml) or JSON (.json) listing. The file holds either
// an object with an "items" array or a bare array of items.
func LoadFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading listing %s: %w", path, err)
	}

	var items []Item
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		items, err = decodeYAML(data)
	case ".json":
		items, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding listing %s: %w", path, err)
	}

	for i := range items {
		if items[i].Status == "" {
			continue
		}
		status, statusErr := ParseStatus(string(items[i].Status))
		if statusErr != nil {
			return nil, fmt.Errorf("listing %s item %d: %w", path, i, statusErr)
		}
		items[i].Status = status
	}

	return items, nil
}

// LoadFiles loads every path concurrently and concatenates the results in argument order.
func LoadFiles(ctx context.Context, paths ...string) ([]Item, error) {
	results := make([][]Item, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items, err := LoadFile(path)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Item
	for _, items := range results {
		all = append(all, items...)
	}
	return all, nil
}

func decodeYAML(data []byte) ([]Item, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var items []Item
		err := root.Decode(&items)
		return items, err
	}

	var doc document
	err := root.Decode(&doc)
	return doc.Items, err
}

func decodeJSON(data []byte) ([]Item, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var items []Item
		err := json.Unmarshal(trimmed, &items)
		return items, err
	}

	var doc document
	err := json.Unmarshal(trimmed, &doc)
	return doc.Items, err
}
