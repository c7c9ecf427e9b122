package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// document is the wire shape of a catalog file: a flat stop list plus
// routes with nested route-stop entries.
type document struct {
	Stops  []Stop  `json:"stops"`
	Routes []Route `json:"routes"`
}

// Load reads a JSON catalog from a local file path or an HTTP URL and
// returns a normalized snapshot.
func Load(pathOrURL string) (*Snapshot, error) {
	data, err := fetch(pathOrURL)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", pathOrURL, err)
	}
	return Parse(data)
}

// Parse decodes raw JSON catalog bytes into a snapshot.
func Parse(data []byte) (*Snapshot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return NewSnapshot(doc.Routes, doc.Stops), nil
}

func fetch(pathOrURL string) ([]byte, error) {
	if !strings.HasPrefix(pathOrURL, "http://") && !strings.HasPrefix(pathOrURL, "https://") {
		return os.ReadFile(pathOrURL)
	}
	resp, err := http.Get(pathOrURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
