// Package planner drives the external optimal classical planner. The
// planner is a process boundary, not a library call: problems go out as
// files, traces come back as files, and everything in between is opaque.
package planner

import (
	"context"
	"errors"
)

// Planner outcome taxonomy.
var (
	// ErrNoPlanFound means the planner proved the problem infeasible. A
	// recoverable business outcome, not an integration fault.
	ErrNoPlanFound = errors.New("no plan found")

	// ErrPlannerUnavailable means the planner could not run at all: missing
	// binary, timeout, or an unexpected exit unrelated to infeasibility.
	ErrPlannerUnavailable = errors.New("planner unavailable")

	// ErrUnparseableLine means the planner produced a trace line outside the
	// expected convention. An integration fault; the offending line is
	// attached for diagnosis.
	ErrUnparseableLine = errors.New("unparseable plan line")
)

// Solver is the capability interface over the external planner. domainPath
// points at the read-only domain artifact; problem is the generated problem
// text. The returned trace is the raw line-oriented action sequence.
// Test doubles substitute canned traces without invoking a real binary.
type Solver interface {
	Solve(ctx context.Context, domainPath, problem string) (trace string, err error)
}
