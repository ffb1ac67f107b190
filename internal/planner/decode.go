package planner

import (
	"fmt"
	"strings"
)

// Action is one step of a decoded plan
type Action struct {
	Name string   `json:"action"`
	Args []string `json:"args"`
}

// String returns the action in trace form, e.g. "unstack D C"
func (a Action) String() string {
	if len(a.Args) == 0 {
		return a.Name
	}
	return a.Name + " " + strings.Join(a.Args, " ")
}

// Plan is an ordered action sequence. The trace order IS the execution
// order; decoding never reorders or deduplicates.
type Plan []Action

// DecodePlan parses the planner's raw line-oriented trace. Each line follows
// the convention "actionname arg1 arg2 ...", optionally wrapped in parens
// (Fast Downward writes "(unstack d c)"). Comment lines starting with ';'
// (the cost footer) and blank lines are skipped.
//
// An empty trace decodes to an empty plan: a satisfied goal may legitimately
// need zero actions. Infeasibility is ErrNoPlanFound and is reported by the
// Solver, never by the decoder.
func DecodePlan(trace string) (Plan, error) {
	plan := Plan{}
	for _, raw := range strings.Split(trace, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		stripped := line
		if strings.HasPrefix(stripped, "(") {
			if !strings.HasSuffix(stripped, ")") {
				return nil, fmt.Errorf("%w: %q", ErrUnparseableLine, line)
			}
			stripped = strings.TrimSpace(stripped[1 : len(stripped)-1])
		} else if strings.ContainsAny(stripped, "()") {
			return nil, fmt.Errorf("%w: %q", ErrUnparseableLine, line)
		}

		fields := strings.Fields(stripped)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnparseableLine, line)
		}
		plan = append(plan, Action{Name: fields[0], Args: fields[1:]})
	}
	return plan, nil
}
