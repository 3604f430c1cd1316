package format

import (
	"path/filepath"
	"strings"
	"sync"
)

// Global registry of available formats.
var (
	registry   = make(map[string]Format)
	registryMu sync.RWMutex
)

// Register adds a format to the global registry. This is typically called
// from format package init() functions. If a format with the same name
// already exists, it is replaced.
func Register(f Format) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(f.Name())] = f
}

// Get retrieves a format by name (case-insensitive). Returns
// *ConfigError{UnknownFormat} if the format is not registered.
func Get(name string) (Format, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	f, exists := registry[strings.ToLower(name)]
	if !exists {
		return nil, &ConfigError{Tag: name}
	}
	return f, nil
}

// List returns the names of all registered formats.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// extensionFormats maps a lowercase file extension (including the leading
// dot) to the format tag it selects outright, per §4.1 step 1.
var extensionFormats = map[string]string{
	".json":    "json",
	".yaml":    "yaml",
	".yml":     "yaml",
	".xml":     "xml",
	".csv":     "csv",
	".tsv":     "tsv",
	".toon":    "toon",
	".avro":    "avro",
	".parquet": "parquet",
}

// DetectFormat implements the two-step auto-detection algorithm from
// §4.1: a filename extension, when supplied and recognized, wins outright;
// otherwise every registered detector scores a peek window of the
// payload and the highest-scoring format is returned. Detectors are
// calibrated (see each format's Detector) so that JSON/XML's unambiguous
// leading-byte checks outscore TSV/CSV's consistent-delimiter-count
// checks, which in turn outscore YAML's constant fallback score - this
// reproduces the spec's priority list without hand-coding it twice.
func DetectFormat(data []byte, filename string) (Format, error) {
	if filename != "" {
		ext := strings.ToLower(filepath.Ext(filename))
		if tag, ok := extensionFormats[ext]; ok {
			return Get(tag)
		}
	}

	peek := data
	const peekWindow = 4096
	if len(peek) > peekWindow {
		peek = peek[:peekWindow]
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	var best Format
	bestScore := 0
	for _, f := range registry {
		d := f.Detector()
		if d == nil {
			continue
		}
		if score := d.Detect(peek); score > bestScore {
			bestScore = score
			best = f
		}
	}

	if best == nil {
		return nil, &ParseError{Format: "auto", Message: "unable to detect format from input"}
	}
	return best, nil
}
