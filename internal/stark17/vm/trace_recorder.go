package vm

import "fmt"

// TraceRecorder executes Program against a fresh State and records the
// execution trace the STARK engine commits to: the stack's top value
// after every instruction that establishes a new trace row (PUSH and
// MUL), skipping DUP since it never changes the top value.
type TraceRecorder struct {
	state *State
}

// NewTraceRecorder returns a recorder over a fresh machine state.
func NewTraceRecorder() *TraceRecorder {
	return &TraceRecorder{state: NewState()}
}

// Record runs Program to completion and returns the recorded trace,
// expected to be exactly [3, 9, 13, 16] for the fixed program this
// package defines.
func (r *TraceRecorder) Record() ([]int64, error) {
	var trace []int64
	for _, instr := range Program {
		if instr.Op == OpHalt {
			break
		}
		if err := r.state.Step(instr); err != nil {
			return nil, fmt.Errorf("executing %s: %w", instr.Op, err)
		}
		if instr.Op == OpPush || instr.Op == OpMul {
			top, err := r.state.top()
			if err != nil {
				return nil, fmt.Errorf("reading trace row after %s: %w", instr.Op, err)
			}
			trace = append(trace, top)
		}
	}
	return trace, nil
}

// GenerateTrace is a convenience wrapper running a fresh recorder to
// completion.
func GenerateTrace() ([]int64, error) {
	return NewTraceRecorder().Record()
}
