package saltid

import "sync"

// A Registry hands out salts to generators such that no two live
// generators within one process share a salt, up to the capacity limit
// below. Uniqueness across processes is not the registry's job; whoever
// launches the processes must assign them disjoint salt ranges.
//
// Once more than MaxSalts salts have been drawn over the process
// lifetime, the registry cycles and salts are reused. Two generators
// holding a reused salt can collide if both are still minting. This is
// a deliberate capacity limit and stays silent unless a hook observes
// HookPosSaltIssued.
type Registry struct {
	HookableBase

	mu          sync.Mutex
	currentSalt uint64
	issued      uint64

	// maxSalts defaults to the package constant. Tests shrink it to
	// exercise cycling without drawing 10000 salts.
	maxSalts uint64
}

// NewRegistry creates a registry whose first issued salt is 0.
func NewRegistry() *Registry {
	return &Registry{maxSalts: MaxSalts}
}

// NextSalt returns the salt at the cursor and advances the cursor. The
// cursor wraps from maxSalts-1 back to 1, never to 0: salt 0 is issued
// exactly once per cycle and is reserved for the default partition on
// the first call. NextSalt is safe for concurrent use.
func (r *Registry) NextSalt() Salt {
	r.mu.Lock()

	salt := Salt(r.currentSalt)

	r.currentSalt++
	if r.currentSalt > r.maxSalts-1 {
		r.currentSalt = 1
	}

	r.issued++
	reused := r.issued > r.maxSalts

	r.mu.Unlock()

	r.InvokeHook(HookCtx{
		Domain: r,
		Pos:    HookPosSaltIssued,
		Item:   salt,
		Detail: reused,
	})

	return salt
}

// NextGenerator draws a salt and constructs a generator bound to it.
func (r *Registry) NextGenerator() *Generator {
	return NewGenerator(r.NextSalt())
}
