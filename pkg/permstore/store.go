package permstore

import (
	"context"
	"log/slog"
	"sync"

	"github.com/eishro/merchantaccess/pkg/merchant"
	"github.com/eishro/merchantaccess/pkg/section"
)

// Store manages the persisted permission matrix: computed cold-start
// defaults, merge-with-defaults on read, and write-back provisioning
// for merchants seen for the first time.
//
// Access resolution must never hard-fail because of storage trouble, so
// read and write failures degrade to computed defaults and are logged,
// never returned from the load path.
type Store struct {
	sections  *section.Registry
	merchants *merchant.Registry
	storage   Storage
	log       *slog.Logger
	onChange  func(context.Context)

	mu       sync.RWMutex
	defaults Matrix
	cache    Matrix
}

// Option configures the store.
type Option func(*Store)

// WithLogger sets the logger used for degraded-path warnings.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithOnChange registers a hook invoked after every successful write to
// the persisted slot. The engine wires this to the sync channel so
// other consumers observe the update.
func WithOnChange(fn func(context.Context)) Option {
	return func(s *Store) {
		if fn != nil {
			s.onChange = fn
		}
	}
}

// NewStore builds a store and computes the cold-start defaults once:
// for every registered merchant and every flattened section, required
// sections are forced on, persisted overrides already present in the
// slot are honored, and everything else falls back to the profile's
// disabled-by-default list.
func NewStore(ctx context.Context, sections *section.Registry, merchants *merchant.Registry, storage Storage, opts ...Option) *Store {
	s := &Store{
		sections:  sections,
		merchants: merchants,
		storage:   storage,
		log:       slog.Default(),
		onChange:  func(context.Context) {},
		cache:     Matrix{},
	}
	for _, opt := range opts {
		opt(s)
	}

	stored := s.readBlob(ctx)
	s.defaults = s.computeDefaults(stored)
	if stored != nil {
		s.cache = stored.Clone()
	}
	return s
}

// readBlob reads and parses the persisted slot, returning nil on any
// failure. Failures are logged and swallowed: a missing or corrupt blob
// degrades to defaults.
func (s *Store) readBlob(ctx context.Context) Matrix {
	data, ok, err := s.storage.Get(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "permission slot read failed, using defaults", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	m, err := UnmarshalMatrix(data)
	if err != nil {
		s.log.WarnContext(ctx, "permission slot corrupt, using defaults", "error", err)
		return nil
	}
	return m
}

func (s *Store) computeDefaults(stored Matrix) Matrix {
	defaults := make(Matrix, s.merchants.Len())
	for _, profile := range s.merchants.All() {
		entry := make(map[string]bool, s.sections.Len())
		for _, sec := range s.sections.Sections() {
			switch {
			case sec.Required:
				entry[sec.ID] = true
			case stored != nil && hasOverride(stored, profile.ID, sec.ID):
				entry[sec.ID] = stored[profile.ID][sec.ID]
			default:
				entry[sec.ID] = !profile.Disabled(sec.ID)
			}
		}
		defaults[profile.ID] = entry
	}
	return defaults
}

func hasOverride(m Matrix, merchantID, sectionID string) bool {
	entry, ok := m[merchantID]
	if !ok {
		return false
	}
	_, ok = entry[sectionID]
	return ok
}

// Defaults returns a copy of the cold-start default matrix.
func (s *Store) Defaults() Matrix {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaults.Clone()
}

// DefaultFor returns the computed default entry for a merchant.
func (s *Store) DefaultFor(merchantID string) (map[string]bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.defaults[merchantID]
	if !ok {
		return nil, false
	}
	return cloneEntry(entry), true
}

// Cached returns the last known entry for a merchant without touching
// storage. Resolution predicates read this.
func (s *Store) Cached(merchantID string) (map[string]bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[merchantID]
	if !ok {
		return nil, false
	}
	return cloneEntry(entry), true
}

// MergeStored reconciles a stored matrix against the registry: required
// sections are forced on, stored booleans win over defaults, and gaps
// fall back to the computed default, then to enabled. Merchant IDs
// present in stored but absent from the registry are carried through
// unchanged so unknown merchants are never erased.
func (s *Store) MergeStored(stored Matrix) Matrix {
	s.mu.RLock()
	defaults := s.defaults
	s.mu.RUnlock()

	merged := make(Matrix, len(stored)+s.merchants.Len())
	for _, id := range s.merchants.IDs() {
		entry := make(map[string]bool, s.sections.Len())
		for _, sec := range s.sections.Sections() {
			switch {
			case sec.Required:
				entry[sec.ID] = true
			case hasOverride(stored, id, sec.ID):
				entry[sec.ID] = stored[id][sec.ID]
			case hasOverride(defaults, id, sec.ID):
				entry[sec.ID] = defaults[id][sec.ID]
			default:
				entry[sec.ID] = true
			}
		}
		merged[id] = entry
	}
	for id, entry := range stored {
		if _, known := merged[id]; !known {
			merged[id] = cloneEntry(entry)
		}
	}
	return merged
}

// LoadForMerchant returns the persisted entry for a merchant.
//
// A merchant with no entry in the slot is auto-provisioned with full
// access to every flattened section, and the provisioned entry is
// written back immediately (read-modify-write, last writer wins). On
// read or parse failure the statically computed default for the
// merchant is returned instead; an unknown merchant with no data of any
// kind yields (nil, false), which resolvers treat as full fail-open.
//
// The method never returns an error: storage failures are logged and
// degrade, by design, because a permission check that crashes the
// dashboard is worse than one that over-grants a non-critical section.
func (s *Store) LoadForMerchant(ctx context.Context, merchantID string) (map[string]bool, bool) {
	if merchantID == "" {
		return nil, false
	}

	data, ok, err := s.storage.Get(ctx)
	var stored Matrix
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "permission slot read failed, falling back to defaults",
			"merchant_id", merchantID, "error", err)
		return s.DefaultFor(merchantID)
	case ok:
		stored, err = UnmarshalMatrix(data)
		if err != nil {
			s.log.WarnContext(ctx, "permission slot corrupt, falling back to defaults",
				"merchant_id", merchantID, "error", err)
			return s.DefaultFor(merchantID)
		}
	default:
		stored = Matrix{}
	}

	entry, ok := stored[merchantID]
	if !ok {
		// First sighting: provision full access and persist it. This is
		// deliberately more permissive than the cold-start defaults,
		// which respect each profile's disabled list; see DESIGN.md.
		entry = make(map[string]bool, s.sections.Len())
		for _, id := range s.sections.IDs() {
			entry[id] = true
		}
		stored[merchantID] = entry
		if err := s.writeBlob(ctx, stored); err != nil {
			s.log.WarnContext(ctx, "auto-provision write failed, returning in-memory entry",
				"merchant_id", merchantID, "error", err)
		}
	}

	s.mu.Lock()
	s.cache[merchantID] = cloneEntry(entry)
	s.mu.Unlock()

	return cloneEntry(entry), true
}

// Save overwrites the persisted matrix. Required sections of known
// merchants are forced on before the write so a stored false can never
// shadow a mandatory section. A successful write updates the cache and
// fires the on-change hook.
func (s *Store) Save(ctx context.Context, m Matrix) error {
	normalized := m.Clone()
	if normalized == nil {
		normalized = Matrix{}
	}
	for _, id := range s.merchants.IDs() {
		entry, ok := normalized[id]
		if !ok {
			continue
		}
		for required := range s.sections.RequiredIDs() {
			if _, present := entry[required]; present {
				entry[required] = true
			}
		}
	}

	if err := s.writeBlob(ctx, normalized); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache = normalized.Clone()
	s.mu.Unlock()
	return nil
}

// Grant enables the given sections for a merchant, creating the entry
// from its defaults when missing.
func (s *Store) Grant(ctx context.Context, merchantID string, sectionIDs ...string) error {
	return s.update(ctx, merchantID, sectionIDs, true)
}

// Revoke disables the given sections for a merchant. Required sections
// are skipped: they can never be disabled.
func (s *Store) Revoke(ctx context.Context, merchantID string, sectionIDs ...string) error {
	return s.update(ctx, merchantID, sectionIDs, false)
}

func (s *Store) update(ctx context.Context, merchantID string, sectionIDs []string, enabled bool) error {
	if merchantID == "" || len(sectionIDs) == 0 {
		return nil
	}

	stored := s.readBlob(ctx)
	if stored == nil {
		stored = Matrix{}
	}
	entry, ok := stored[merchantID]
	if !ok {
		if def, hasDef := s.DefaultFor(merchantID); hasDef {
			entry = def
		} else {
			entry = make(map[string]bool, len(sectionIDs))
		}
		stored[merchantID] = entry
	}

	for _, id := range sectionIDs {
		if !enabled && s.sections.IsRequired(id) {
			continue
		}
		entry[id] = enabled
	}

	if err := s.writeBlob(ctx, stored); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[merchantID] = cloneEntry(entry)
	s.mu.Unlock()
	return nil
}

func (s *Store) writeBlob(ctx context.Context, m Matrix) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, data); err != nil {
		return err
	}
	s.onChange(ctx)
	return nil
}
