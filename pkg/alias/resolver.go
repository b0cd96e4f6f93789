package alias

import (
	"strings"

	"github.com/eishro/merchantaccess/pkg/merchant"
)

// candidateFields is the fixed priority order in which identifying
// fields are read from a raw merchant record.
var candidateFields = []string{
	"id",
	"merchantId",
	"storeId",
	"slug",
	"storeSlug",
	"subdomain",
	"email",
	"ownerEmail",
	"username",
	"nameEn",
	"nameAr",
}

// Pair is one curated alias entry.
type Pair struct {
	Alias      string
	MerchantID string
}

// Record is an arbitrary key/value structure supplied by an external
// auth or session layer. The resolver reads only the documented field
// names and tolerates any additional keys; non-string values are
// ignored rather than coerced.
type Record map[string]any

// Field returns the named field as a non-empty string, if present.
func (r Record) Field(name string) (string, bool) {
	v, ok := r[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// Map resolves normalized identifying strings to canonical merchant
// IDs. It is built once at startup from a curated alias list plus every
// registry profile ID, and is immutable afterwards.
type Map struct {
	entries     map[string]string
	registryIDs map[string]string
}

// NewMap builds the alias map. Each source key — curated aliases and
// every merchant ID — is inserted under all three normalized forms.
// On collision the first insertion wins; curated aliases are inserted
// before registry IDs.
func NewMap(pairs []Pair, registry *merchant.Registry) *Map {
	m := &Map{
		entries:     make(map[string]string),
		registryIDs: make(map[string]string),
	}

	for _, p := range pairs {
		if p.Alias == "" || p.MerchantID == "" {
			continue
		}
		m.insert(p.Alias, p.MerchantID)
	}
	if registry != nil {
		for _, id := range registry.IDs() {
			m.insert(id, id)
			m.registryIDs[strings.ToLower(id)] = id
		}
	}
	return m
}

func (m *Map) insert(key, merchantID string) {
	for _, form := range NormalizeForms(key) {
		if form == "" {
			continue
		}
		if _, taken := m.entries[form]; !taken {
			m.entries[form] = merchantID
		}
	}
}

// ResolveMerchantID resolves a raw merchant record to a canonical
// merchant ID.
//
// It builds an ordered candidate list from the known identifying
// fields, de-duplicates preserving first-seen order, and returns the
// merchant ID of the first normalized form that hits either an alias
// entry or a registry ID (case-insensitive). Matching is exact equality
// over normalized keys; there is no fuzzy matching or scoring.
//
// An empty or nil record, or one with no matching candidate, resolves
// to ("", false). Callers must treat an unresolved identity as "limited
// to required sections", never as a hard failure.
func (m *Map) ResolveMerchantID(record Record) (string, bool) {
	if len(record) == 0 {
		return "", false
	}

	seen := make(map[string]struct{}, len(candidateFields))
	for _, field := range candidateFields {
		candidate, ok := record.Field(field)
		if !ok {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}

		for _, form := range NormalizeForms(candidate) {
			if form == "" {
				continue
			}
			if id, ok := m.entries[form]; ok {
				return id, true
			}
			if id, ok := m.registryIDs[form]; ok {
				return id, true
			}
		}
	}
	return "", false
}

// Lookup resolves a single identifying string, applying the same
// normalization as ResolveMerchantID.
func (m *Map) Lookup(key string) (string, bool) {
	for _, form := range NormalizeForms(key) {
		if form == "" {
			continue
		}
		if id, ok := m.entries[form]; ok {
			return id, true
		}
		if id, ok := m.registryIDs[form]; ok {
			return id, true
		}
	}
	return "", false
}
