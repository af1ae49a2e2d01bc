// Package seed fills an empty food catalogue from a seed file kept on disk or in S3.
//
// A seed file holds either a JSON array of foods or an object with a "foods" array
// (the layout of a json-server database file). Files ending in ".gz" are gunzipped.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"food-dashboard/internal/model"
)

// Loader defines the interface for loading seed files.
type Loader interface {
	// Load reads a seed file and returns the foods it contains in file order.
	Load(ctx context.Context, path string) ([]model.Food, error)
}

type catalogueFile struct {
	Foods []model.Food `json:"foods"`
}

// decodeCatalogue reads foods from r, gunzipping first when name ends in ".gz".
func decodeCatalogue(r io.Reader, name string) ([]model.Food, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err != nil {
		if err == io.EOF {
			return []model.Food{}, nil
		}
		return nil, fmt.Errorf("failed to read seed file %s: %w", name, err)
	}

	dec := json.NewDecoder(br)
	switch first {
	case '[':
		foods := []model.Food{}
		if err := dec.Decode(&foods); err != nil {
			return nil, fmt.Errorf("failed to decode seed file %s: %w", name, err)
		}
		return foods, nil
	case '{':
		var file catalogueFile
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("failed to decode seed file %s: %w", name, err)
		}
		if file.Foods == nil {
			file.Foods = []model.Food{}
		}
		return file.Foods, nil
	default:
		return nil, fmt.Errorf("failed to decode seed file %s: unexpected character %q", name, first)
	}
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b, br.UnreadByte()
	}
}
