package saltid

// HookPos defines the enum of possible hooking positions
type HookPos struct {
	Name string
}

// HookPosWraparound is a hook position that triggers when a generator's
// counter reaches its capacity and resets to 0. Item is the generator's
// salt, Detail is the capacity that was exhausted.
var HookPosWraparound = &HookPos{Name: "Wraparound"}

// HookPosSaltIssued is a hook position that triggers when a registry
// hands out a salt. Item is the issued salt, Detail is a bool that is
// true when the registry has cycled and the salt is a reuse.
var HookPosSaltIssued = &HookPos{Name: "SaltIssued"}

// HookPosAllocate is a hook position that triggers on every minted
// identifier. Item is the ID.
var HookPosAllocate = &HookPos{Name: "Allocate"}

// HookCtx is the context that holds all the information about the site
// that a hook is triggered
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable defines an object that accept Hooks
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// Hook is a short piece of program that can be invoked by a hookable
// object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility function for other type that
// implement the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// AcceptHook register a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook triggers the registered Hooks
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
