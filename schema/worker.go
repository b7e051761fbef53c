package schema

import (
	"math"

	"github.com/arloliu/solvemon/endian"
)

// Worker block sizes for the two layout variants. Every field is 8 bytes.
const (
	// BaseWorkerBlockSize is 12 fields of 8 bytes each.
	BaseWorkerBlockSize = 96
	// ExtendedWorkerBlockSize appends the conflicts and allocated_paths
	// counters to the base block.
	ExtendedWorkerBlockSize = 112
)

// Byte offsets of each field inside a worker block. The gauge avg_queue_len
// sits between max_queue_len and early_backtracks, matching the producer's
// struct order.
const (
	workerPushOffset            = 0
	workerPopOffset             = 8
	workerStealOffset           = 16
	workerIdleMicrosOffset      = 24
	workerMaxQueueLenOffset     = 32
	workerAvgQueueLenOffset     = 40
	workerEarlyBacktracksOffset = 48
	workerSelfConsumedOffset    = 56
	workerFailedStealsOffset    = 64
	workerRejectedDepthOffset   = 72
	workerRejectedFullOffset    = 80
	workerStolenFromOffset      = 88
	workerConflictsOffset       = 96  // extended variant only
	workerAllocatedPathsOffset  = 104 // extended variant only
)

// WorkerBlock is the per-worker slice of one log record. All counter fields
// are cumulative and non-decreasing across valid rows; AvgQueueLen is an
// instantaneous gauge decoded from the producer's f64 bits.
//
// Conflicts and AllocatedPaths are only written by the extended layout
// variant and stay zero when a base-variant record is parsed.
type WorkerBlock struct {
	Push            uint64  // byte offset 0-7
	Pop             uint64  // byte offset 8-15
	Steal           uint64  // byte offset 16-23
	IdleMicros      uint64  // byte offset 24-31
	MaxQueueLen     uint64  // byte offset 32-39
	AvgQueueLen     float64 // byte offset 40-47
	EarlyBacktracks uint64  // byte offset 48-55
	SelfConsumed    uint64  // byte offset 56-63
	FailedSteals    uint64  // byte offset 64-71
	RejectedDepth   uint64  // byte offset 72-79
	RejectedFull    uint64  // byte offset 80-87
	StolenFrom      uint64  // byte offset 88-95
	Conflicts       uint64  // byte offset 96-103, extended variant only
	AllocatedPaths  uint64  // byte offset 104-111, extended variant only
}

// parseWorkerBlock reads one worker block from data, which must hold at least
// the variant's block size.
func parseWorkerBlock(data []byte, extended bool, engine endian.EndianEngine) WorkerBlock {
	w := WorkerBlock{
		Push:            engine.Uint64(data[workerPushOffset:]),
		Pop:             engine.Uint64(data[workerPopOffset:]),
		Steal:           engine.Uint64(data[workerStealOffset:]),
		IdleMicros:      engine.Uint64(data[workerIdleMicrosOffset:]),
		MaxQueueLen:     engine.Uint64(data[workerMaxQueueLenOffset:]),
		AvgQueueLen:     math.Float64frombits(engine.Uint64(data[workerAvgQueueLenOffset:])),
		EarlyBacktracks: engine.Uint64(data[workerEarlyBacktracksOffset:]),
		SelfConsumed:    engine.Uint64(data[workerSelfConsumedOffset:]),
		FailedSteals:    engine.Uint64(data[workerFailedStealsOffset:]),
		RejectedDepth:   engine.Uint64(data[workerRejectedDepthOffset:]),
		RejectedFull:    engine.Uint64(data[workerRejectedFullOffset:]),
		StolenFrom:      engine.Uint64(data[workerStolenFromOffset:]),
	}

	if extended {
		w.Conflicts = engine.Uint64(data[workerConflictsOffset:])
		w.AllocatedPaths = engine.Uint64(data[workerAllocatedPathsOffset:])
	}

	return w
}

// appendWorkerBlock serializes one worker block in the variant's layout.
func appendWorkerBlock(dst []byte, w WorkerBlock, extended bool, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint64(dst, w.Push)
	dst = engine.AppendUint64(dst, w.Pop)
	dst = engine.AppendUint64(dst, w.Steal)
	dst = engine.AppendUint64(dst, w.IdleMicros)
	dst = engine.AppendUint64(dst, w.MaxQueueLen)
	dst = engine.AppendUint64(dst, math.Float64bits(w.AvgQueueLen))
	dst = engine.AppendUint64(dst, w.EarlyBacktracks)
	dst = engine.AppendUint64(dst, w.SelfConsumed)
	dst = engine.AppendUint64(dst, w.FailedSteals)
	dst = engine.AppendUint64(dst, w.RejectedDepth)
	dst = engine.AppendUint64(dst, w.RejectedFull)
	dst = engine.AppendUint64(dst, w.StolenFrom)

	if extended {
		dst = engine.AppendUint64(dst, w.Conflicts)
		dst = engine.AppendUint64(dst, w.AllocatedPaths)
	}

	return dst
}
