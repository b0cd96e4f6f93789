// Package permsync is the change-notification channel around the
// shared permission slot.
//
// The slot is not owned by any single consumer: any process may mutate
// it directly. Writers raise a signal after every mutation and every
// consumer funnels those signals — cross-process pub/sub and in-process
// hooks alike — into one reload path, so there is a single source of
// truth for "what changed" and the signal itself needs no payload.
//
// Two implementations are provided: MemoryNotifier for single-process
// use and tests, and RedisNotifier for cross-process deployments.
package permsync
