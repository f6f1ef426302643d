// Package saltid assigns compact numeric identifiers to entities created
// by multiple independent producers, such as separate simulation
// instances in a networked application. Producers never coordinate with
// each other. Instead, the identifier space is partitioned by a salt:
// every identifier minted with salt s satisfies id % MaxSalts == s, so
// generators holding different salts can never collide.
//
// Identifiers are predictable and sequential. They are suitable for
// entity bookkeeping, routing, and debugging, and must never be used as
// secrets or capability tokens.
package saltid

import "math"

// MaxSalts is the number of distinct partitions (salts) the identifier
// space supports. It is a hard ceiling, not a runtime option.
const MaxSalts = 10000

// MaxEntityPerGenerator is the number of identifiers a single Generator
// can mint before its counter wraps around. Identifiers are uint64, so
// the capacity is derived from the 64-bit integer range rather than a
// floating-point safety limit.
const MaxEntityPerGenerator = math.MaxUint64/MaxSalts - 1

// ID is an entity identifier. The residue of an ID modulo MaxSalts is
// the salt of the generator that minted it.
type ID uint64

// Salt tags one partition of the identifier space. Salts handed out by
// a Registry are in [0, MaxSalts-1].
type Salt uint64

// IsSaltedBy reports whether id belongs to the partition tagged by
// salt, i.e., whether a generator constructed with that salt could have
// minted it.
func IsSaltedBy(id ID, salt Salt) bool {
	return uint64(id)%MaxSalts == uint64(salt)
}
