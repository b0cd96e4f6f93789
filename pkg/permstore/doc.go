// Package permstore persists the per-merchant, per-section permission
// matrix in a single shared key-value slot.
//
// The slot is the authoritative override store: a whole-matrix JSON
// blob read and written without locking, shared by every dashboard
// consumer. Concurrent writers race and the last writer wins; this is
// an accepted trade-off of the storage contract, documented on the
// Storage interface.
//
// The store layers three behaviors on top of the slot:
//
//   - Cold-start defaults computed once per process from the merchant
//     registry's disabled-by-default lists, blended with whatever the
//     slot already holds.
//   - Merge-with-defaults on read, so required sections are always on
//     and sections the stored data predates fall back sensibly.
//   - Auto-provisioning: a merchant with no entry receives full access
//     to every section, written back immediately.
//
// Storage failures never surface to access checks. Reads degrade to
// defaults, writes are logged and dropped, and the in-memory result is
// still returned to the caller.
package permstore
