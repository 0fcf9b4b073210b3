package catalog

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// Item is a single catalog entry. Identity is Code, case-sensitive as
// provided by the source.
type Item struct {
	Name string `json:"name"`
	Code string `json:"code"`
	UOM  string `json:"uom"`
}

// CleanName strips a redundant trailing " (<uom>)" from a raw item name and
// collapses runs of whitespace. Catalog exports often repeat the unit inside
// the name; the suffix is removed only on an exact match at the end.
func CleanName(rawName, uom string) string {
	if rawName == "" || uom == "" {
		return rawName
	}
	name := rawName
	suffix := " (" + strings.TrimSpace(uom) + ")"
	if strings.HasSuffix(name, suffix) {
		name = name[:len(name)-len(suffix)]
	}
	return strings.Join(strings.Fields(name), " ")
}

// Load reads the catalog from a local file or an http(s) URL. Any failure
// yields an empty catalog: the form still works, it just has nothing to list.
func Load(source string) []Item {
	if source == "" {
		return nil
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return LoadURL(source)
	}
	return LoadFile(source)
}

func LoadFile(path string) []Item {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("catalog: read %s: %v", path, err)
		return nil
	}
	return parse(data)
}

func LoadURL(url string) []Item {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		log.Printf("catalog: fetch %s: %v", url, err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("catalog: fetch %s: status %d", url, resp.StatusCode)
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("catalog: fetch %s: %v", url, err)
		return nil
	}
	return parse(data)
}

func parse(data []byte) []Item {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("catalog: parse: %v", err)
		return nil
	}
	return items
}
