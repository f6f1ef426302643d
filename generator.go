package saltid

// A Generator mints identifiers for one partition of the identifier
// space. All identifiers it produces share its salt as their residue
// modulo MaxSalts, so generators holding different salts never collide.
//
// A Generator is single-writer: concurrent calls to Next on the same
// instance require external synchronization. Distinct instances need no
// synchronization between each other.
type Generator struct {
	HookableBase

	salt    Salt
	counter uint64

	// maxSalts and capacity default to the package constants. Tests
	// shrink them to reach wraparound without minting ~1.8e15 IDs.
	maxSalts uint64
	capacity uint64
}

// NewGenerator creates a generator bound to salt. The salt is not range
// checked: a value outside [0, MaxSalts-1] is accepted but breaks the
// partition property, so callers that make up their own salts instead
// of drawing them from a Registry are on their own.
func NewGenerator(salt Salt) *Generator {
	return &Generator{
		salt:     salt,
		maxSalts: MaxSalts,
		capacity: MaxEntityPerGenerator,
	}
}

// Salt returns the salt the generator was constructed with.
func (g *Generator) Salt() Salt {
	return g.salt
}

// Next mints the next identifier. Identifiers increase by MaxSalts on
// each call until the counter reaches MaxEntityPerGenerator, at which
// point the counter silently resets and previously issued identifiers
// become producible again. Next never fails and never blocks.
func (g *Generator) Next() ID {
	id := ID(uint64(g.salt) + g.counter*g.maxSalts)

	g.InvokeHook(HookCtx{
		Domain: g,
		Pos:    HookPosAllocate,
		Item:   id,
	})

	g.counter++
	if g.counter >= g.capacity {
		g.counter = 0
		g.InvokeHook(HookCtx{
			Domain: g,
			Pos:    HookPosWraparound,
			Item:   g.salt,
			Detail: g.capacity,
		})
	}

	return id
}
