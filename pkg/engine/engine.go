package engine

import (
	"context"
	"log/slog"
	"sync"

	"github.com/eishro/merchantaccess/pkg/access"
	"github.com/eishro/merchantaccess/pkg/alias"
	"github.com/eishro/merchantaccess/pkg/merchant"
	"github.com/eishro/merchantaccess/pkg/permstore"
	"github.com/eishro/merchantaccess/pkg/permsync"
	"github.com/eishro/merchantaccess/pkg/section"
)

// Dependencies is the explicitly constructed, immutable context object
// the engine runs over. Everything is injected: there are no
// package-level mutable registries, so tests run against synthetic
// ones.
type Dependencies struct {
	Sections     *section.Registry
	Merchants    *merchant.Registry
	Aliases      *alias.Map
	Store        *permstore.Store
	Notifier     permsync.Notifier
	SectionRules access.SectionRule
	GroupRules   access.GroupRule
}

// Engine is the merchant access-control engine: it resolves raw
// merchant records to canonical IDs, keeps the permission state for the
// active merchant loaded and in sync with other consumers, and answers
// the section/group predicates the view layer gates navigation on.
type Engine struct {
	deps     Dependencies
	resolver *access.Resolver
	log      *slog.Logger

	mu         sync.RWMutex
	merchantID string
	active     string
	expanded   map[string]struct{}
	listeners  []func(context.Context)

	sub    permsync.Subscription
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an engine from its dependencies.
func New(deps Dependencies, opts ...Option) (*Engine, error) {
	if deps.Sections == nil || deps.Merchants == nil || deps.Aliases == nil ||
		deps.Store == nil || deps.Notifier == nil {
		return nil, ErrMissingDependency
	}

	e := &Engine{
		deps:     deps,
		log:      slog.Default(),
		expanded: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.resolver = access.NewResolver(deps.Sections, deps.Store,
		access.WithSectionRules(deps.SectionRules),
		access.WithGroupRules(deps.GroupRules),
	)
	return e, nil
}

// Resolve maps a raw merchant record to a canonical merchant ID without
// changing the engine's active context.
func (e *Engine) Resolve(record alias.Record) (string, bool) {
	return e.deps.Aliases.ResolveMerchantID(record)
}

// Activate resolves the record and makes that merchant the engine's
// active context: its permissions are loaded (provisioning on first
// sight), a sync-channel subscription is opened, and the active section
// is chosen. Any previous context's subscription is torn down first, so
// each merchant context holds exactly one.
//
// An unresolvable record still activates, with an empty merchant ID:
// that context is limited to required sections and holds no
// subscription, since there is no per-merchant state to reload.
func (e *Engine) Activate(ctx context.Context, record alias.Record) (string, error) {
	merchantID, resolved := e.deps.Aliases.ResolveMerchantID(record)

	e.teardown()

	e.mu.Lock()
	e.merchantID = merchantID
	e.expanded = make(map[string]struct{})
	e.mu.Unlock()

	if resolved {
		e.deps.Store.LoadForMerchant(ctx, merchantID)

		sub, err := e.deps.Notifier.Subscribe(ctx)
		if err != nil {
			// Degraded but functional: permissions were loaded, the
			// context just won't observe external updates.
			e.log.WarnContext(ctx, "sync channel subscription failed",
				"merchant_id", merchantID, "error", err)
		} else {
			watchCtx, cancel := context.WithCancel(context.Background())
			e.mu.Lock()
			e.sub = sub
			e.cancel = cancel
			e.mu.Unlock()

			e.wg.Add(1)
			go e.watch(watchCtx, sub)
		}
	}

	e.mu.Lock()
	e.active = e.resolver.Recover(merchantID, "")
	e.mu.Unlock()

	return merchantID, nil
}

// watch funnels sync-channel signals into the reload path.
func (e *Engine) watch(ctx context.Context, sub permsync.Subscription) {
	defer e.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-sub.C():
			if !ok {
				return
			}
			e.reload(ctx)
		}
	}
}

// reload is the single code path behind both triggers: cross-process
// change signals and in-process update notifications. It re-reads the
// active merchant's permissions, re-evaluates the active section, and
// collapses navigation groups that are no longer visible.
func (e *Engine) reload(ctx context.Context) {
	e.mu.RLock()
	merchantID := e.merchantID
	current := e.active
	e.mu.RUnlock()

	if merchantID == "" {
		return
	}

	e.deps.Store.LoadForMerchant(ctx, merchantID)

	next := e.resolver.Recover(merchantID, current)

	e.mu.Lock()
	e.active = next
	for group := range e.expanded {
		if !e.resolver.GroupVisible(merchantID, group) {
			delete(e.expanded, group)
		}
	}
	listeners := make([]func(context.Context), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(ctx)
	}
}

// NotifyUpdated is the explicit in-process "permissions updated" signal
// a caller raises after performing a write. The local context reloads
// immediately; the signal is then broadcast so other consumers reload
// too. A failed broadcast is logged, not returned: the local state is
// already consistent.
func (e *Engine) NotifyUpdated(ctx context.Context) {
	e.reload(ctx)
	if err := e.deps.Notifier.Notify(ctx); err != nil {
		e.log.WarnContext(ctx, "permission change broadcast failed", "error", err)
	}
}

// OnPermissionsChanged registers a callback invoked after every reload.
// The callback receives no diff: the engine's predicates are the single
// source of truth for what changed.
func (e *Engine) OnPermissionsChanged(fn func(context.Context)) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	e.listeners = append(e.listeners, fn)
	e.mu.Unlock()
}

// MerchantID returns the active merchant ID, empty when unresolved.
func (e *Engine) MerchantID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.merchantID
}

// Profile returns the registry profile of the active merchant, if it
// is a registered one. Dynamically provisioned merchants have
// permissions but no profile.
func (e *Engine) Profile() (merchant.Profile, bool) {
	return e.deps.Merchants.Get(e.MerchantID())
}

// HasAccess applies the module predicate for the active merchant.
func (e *Engine) HasAccess(required ...string) bool {
	return e.resolver.HasAccess(e.MerchantID(), required...)
}

// IsSectionAvailable applies the section predicate for the active
// merchant.
func (e *Engine) IsSectionAvailable(sectionID string) bool {
	return e.resolver.IsSectionAvailable(e.MerchantID(), sectionID)
}

// GroupVisible applies the navigation group predicate for the active
// merchant.
func (e *Engine) GroupVisible(group string) bool {
	return e.resolver.GroupVisible(e.MerchantID(), group)
}

// ActiveSection returns the currently selected section.
func (e *Engine) ActiveSection() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active
}

// SetActiveSection selects a section, falling back through the recovery
// order when the requested one is unavailable.
func (e *Engine) SetActiveSection(sectionID string) string {
	merchantID := e.MerchantID()
	next := e.resolver.Recover(merchantID, sectionID)

	e.mu.Lock()
	e.active = next
	e.mu.Unlock()
	return next
}

// ExpandGroup records a navigation group's submenu as expanded. Groups
// that are not visible cannot be expanded.
func (e *Engine) ExpandGroup(group string) bool {
	if !e.GroupVisible(group) {
		return false
	}
	e.mu.Lock()
	e.expanded[group] = struct{}{}
	e.mu.Unlock()
	return true
}

// CollapseGroup clears a group's expanded state.
func (e *Engine) CollapseGroup(group string) {
	e.mu.Lock()
	delete(e.expanded, group)
	e.mu.Unlock()
}

// IsGroupExpanded reports whether a group's submenu is expanded.
func (e *Engine) IsGroupExpanded(group string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.expanded[group]
	return ok
}

// teardown releases the current subscription, if any, and waits for the
// watch goroutine to stop.
func (e *Engine) teardown() {
	e.mu.Lock()
	sub, cancel := e.sub, e.cancel
	e.sub, e.cancel = nil, nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if sub != nil {
		_ = sub.Close()
	}
	e.wg.Wait()
}

// Close releases the engine's subscription. The injected notifier,
// store and registries stay open; their lifecycle belongs to the
// caller.
func (e *Engine) Close() error {
	e.teardown()
	return nil
}
