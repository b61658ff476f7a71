// Package res resolves string resources from JSONC bundles with
// total-function semantics: lookups never fail, missing keys fall back to the
// caller-supplied default.
//
// Bundle files are JSON with comments allowed. Nested objects flatten to
// dotted keys, so {"dialog": {"cancel": "Cancel"}} resolves under
// "dialog.cancel". Numbers and booleans stringify; arrays and nulls carry no
// string value and are skipped.
package res

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/muhammadmuzzammil1998/jsonc"

	"github.com/TheEvilRoot/fynekit/debuglog"
)

// Bundle is an immutable set of resolved strings. The zero value and nil both
// behave as an empty bundle.
type Bundle struct {
	strings map[string]string
}

// FromBytes parses a JSONC document into a bundle.
func FromBytes(data []byte) (*Bundle, error) {
	jsonBytes := jsonc.ToJSON(data)
	if !json.Valid(jsonBytes) {
		return nil, errors.New("invalid JSON after comment removal")
	}

	var root map[string]any
	if err := json.Unmarshal(jsonBytes, &root); err != nil {
		return nil, fmt.Errorf("failed to parse bundle: %w", err)
	}

	b := &Bundle{strings: make(map[string]string)}
	flatten("", root, b.strings)
	debuglog.DebugLog("FromBytes: loaded bundle with %d strings", len(b.strings))
	return b, nil
}

// Load reads and parses a JSONC bundle file.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	b, err := FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// FromResource parses a bundled fyne.Resource, e.g. an embedded file wrapped
// in fyne.NewStaticResource.
func FromResource(r fyne.Resource) (*Bundle, error) {
	b, err := FromBytes(r.Content())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name(), err)
	}
	return b, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case bool:
			out[full] = strconv.FormatBool(v)
		case float64:
			out[full] = strconv.FormatFloat(v, 'f', -1, 64)
		case map[string]any:
			flatten(full, v, out)
		}
	}
}

// StringOr returns the string for key, or fallback when the key is absent.
func (b *Bundle) StringOr(key, fallback string) string {
	if b == nil {
		return fallback
	}
	if s, ok := b.strings[key]; ok {
		return s
	}
	return fallback
}

// FormatOr resolves key like StringOr and formats the result with args.
func (b *Bundle) FormatOr(key, fallback string, args ...any) string {
	return fmt.Sprintf(b.StringOr(key, fallback), args...)
}

// Has reports whether key resolves in the bundle.
func (b *Bundle) Has(key string) bool {
	if b == nil {
		return false
	}
	_, ok := b.strings[key]
	return ok
}

// Keys returns the resolved keys in sorted order.
func (b *Bundle) Keys() []string {
	if b == nil {
		return nil
	}
	keys := make([]string, 0, len(b.strings))
	for k := range b.strings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of resolved strings.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.strings)
}

var (
	defaultMu     sync.RWMutex
	defaultBundle *Bundle
)

// SetDefault installs the bundle used by the package-level lookups. A nil
// bundle resets to the empty state.
func SetDefault(b *Bundle) {
	defaultMu.Lock()
	defaultBundle = b
	defaultMu.Unlock()
}

// Default returns the bundle installed with SetDefault, possibly nil.
func Default() *Bundle {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultBundle
}

// StringOr resolves key against the default bundle.
func StringOr(key, fallback string) string {
	return Default().StringOr(key, fallback)
}

// FormatOr resolves and formats key against the default bundle.
func FormatOr(key, fallback string, args ...any) string {
	return Default().FormatOr(key, fallback, args...)
}

// Has reports whether key resolves in the default bundle.
func Has(key string) bool {
	return Default().Has(key)
}
