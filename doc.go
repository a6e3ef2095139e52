// Package cofre implements the derived-state engine of a gamified personal
// finance tracker.
//
// The single source of truth is a Ledger: an ordered, append-friendly list of
// transaction records plus the accounts, categories, goals and experience
// points they relate to. Every other value the engine exposes (account
// balances, goal progress, savings plans, day and category aggregates, the
// user's level) is a pure projection recomputed from the current ledger state
// on demand; the engine holds no derived caches.
//
// Mutations go through Ledger methods that validate before touching state and
// preserve two structural invariants: a transfer always exists as a pair of
// legs sharing one link id, created and deleted together; and a goal always
// owns exactly one reserve account whose derived balance is the goal's true
// progress.
package cofre
