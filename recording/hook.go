package recording

import "github.com/sarchlab/saltid"

// A Hook feeds registry and generator events into a Writer. Attach it
// to a Registry to record salt grants, or to a Generator to record
// allocations and wraparounds.
type Hook struct {
	writer *Writer
	seq    uint64
}

// NewHook creates a Hook that records into w.
func NewHook(w *Writer) *Hook {
	return &Hook{writer: w}
}

// Func records the event carried by ctx.
func (h *Hook) Func(ctx saltid.HookCtx) {
	switch ctx.Pos {
	case saltid.HookPosSaltIssued:
		h.seq++
		h.writer.RecordSaltGrant(SaltGrant{
			Seq:    h.seq,
			Salt:   uint64(ctx.Item.(saltid.Salt)),
			Reused: ctx.Detail.(bool),
		})
	case saltid.HookPosWraparound:
		h.writer.RecordWraparound(Wraparound{
			Salt:     uint64(ctx.Item.(saltid.Salt)),
			Capacity: ctx.Detail.(uint64),
		})
	case saltid.HookPosAllocate:
		id := ctx.Item.(saltid.ID)
		h.writer.RecordAllocation(Allocation{
			ID:   uint64(id),
			Salt: uint64(id) % saltid.MaxSalts,
		})
	}
}
