package saltid

import "log"

// A LogHook is a hook that is responsible for recording wraparound and
// salt-reuse events with a standard logger.
type LogHook struct {
	*log.Logger
}

// NewLogHook creates a LogHook that writes to the given logger.
func NewLogHook(logger *log.Logger) *LogHook {
	return &LogHook{Logger: logger}
}

// Func writes a log line for counter wraparounds and reused salts.
// Fresh salt grants and regular allocations are not logged.
func (h *LogHook) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosWraparound:
		h.Printf("generator with salt %d wrapped around after %d identifiers",
			ctx.Item.(Salt), ctx.Detail.(uint64))
	case HookPosSaltIssued:
		if ctx.Detail.(bool) {
			h.Printf("salt %d is reused, generators may collide",
				ctx.Item.(Salt))
		}
	}
}
