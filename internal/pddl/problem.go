// Package pddl generates the recovery-stage planning problem. The Target
// Trick injects needs-precise-placement facts (TargetOn) into the initial
// state and precisely-placed goals (AtTarget) for every entity the search
// engine corrected, forcing the optimal planner to re-place those blocks
// even when their On relations already hold symbolically.
package pddl

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/stacklab/realign/internal/world"
)

// ErrAmbiguousSupport indicates a corrected entity whose supporting relation
// in the base state is missing or not unique; such an entity cannot be
// target-tricked.
var ErrAmbiguousSupport = errors.New("ambiguous support")

// DomainName must match the external domain artifact consumed read-only
const DomainName = "recovery-blocks"

// ProblemName names the emitted problem instance
const ProblemName = "recovery-problem"

// Builder generates problem instances for the recovery-blocks domain
type Builder struct{}

// NewBuilder creates a problem builder
func NewBuilder() *Builder {
	return &Builder{}
}

// stacking is the normalized block structure of one symbolic state
type stacking struct {
	on      [][2]string     // (upper, lower) block-on-block pairs
	onTable map[string]bool // blocks resting on the table
	clear   map[string]bool // blocks with nothing on top
}

func parseStacking(relations []world.Relation) stacking {
	st := stacking{
		onTable: make(map[string]bool),
		clear:   make(map[string]bool),
	}
	for _, rel := range relations {
		switch {
		case rel.Is("On") && len(rel.Args) == 2:
			upper := NormalizeName(rel.Args[0])
			lower := NormalizeName(rel.Args[1])
			if lower == Table {
				st.onTable[upper] = true
			} else {
				st.on = append(st.on, [2]string{upper, lower})
			}
		case rel.Is("OnTable") && len(rel.Args) == 1:
			st.onTable[NormalizeName(rel.Args[0])] = true
		case rel.Is("Clear") && len(rel.Args) == 1:
			st.clear[NormalizeName(rel.Args[0])] = true
		}
	}
	delete(st.onTable, Table)
	delete(st.clear, Table)

	// Clear predicates are optional in scenario files; derive them from the
	// stack structure when absent.
	if len(st.clear) == 0 {
		supporting := make(map[string]bool)
		for _, pair := range st.on {
			supporting[pair[1]] = true
		}
		for _, b := range st.blocks() {
			if !supporting[b] {
				st.clear[b] = true
			}
		}
	}
	return st
}

// blocks returns every block mentioned by the stacking, sorted
func (st stacking) blocks() []string {
	set := make(map[string]bool)
	for _, pair := range st.on {
		set[pair[0]] = true
		set[pair[1]] = true
	}
	for b := range st.onTable {
		set[b] = true
	}
	delete(set, Table)

	out := make([]string, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

// supports returns the set of things each block sits on (a block name or
// Table). A block may appear with multiple supports in inconsistent data.
func (st stacking) supports(block string) []string {
	var out []string
	for _, pair := range st.on {
		if pair[0] == block {
			out = append(out, pair[1])
		}
	}
	if st.onTable[block] {
		out = append(out, Table)
	}
	return out
}

// BuildProblem emits a complete PDDL problem for the recovery-blocks domain.
// base and goal are the symbolic relations of the observed and desired
// states; corrected lists the entity ids (raw, pre-normalization) that the
// identification stage found out of alignment.
//
// Every corrected entity must have exactly one supporting relation in the
// base state or BuildProblem fails with ErrAmbiguousSupport. Entities whose
// sole support is the table get no target predicates: the domain's precise
// re-placement action is block-on-block only.
func (b *Builder) BuildProblem(base, goal []world.Relation, corrected []string) (string, error) {
	baseSt := parseStacking(base)
	goalSt := parseStacking(goal)

	// Unique normalized targets, first-seen order preserved.
	seen := make(map[string]bool)
	var targets []string
	for _, raw := range corrected {
		name := NormalizeName(raw)
		if !seen[name] {
			seen[name] = true
			targets = append(targets, name)
		}
	}

	type targetPair struct{ block, support string }
	var tricked []targetPair
	for i, block := range targets {
		supports := baseSt.supports(block)
		switch len(supports) {
		case 0:
			return "", fmt.Errorf("entity %q (from %q): no supporting relation in base state: %w",
				block, corrected[i], ErrAmbiguousSupport)
		case 1:
			if supports[0] != Table {
				tricked = append(tricked, targetPair{block: block, support: supports[0]})
			}
		default:
			return "", fmt.Errorf("entity %q (from %q): %d supporting relations in base state: %w",
				block, corrected[i], len(supports), ErrAmbiguousSupport)
		}
	}

	blockSet := make(map[string]bool)
	for _, blk := range baseSt.blocks() {
		blockSet[blk] = true
	}
	for _, blk := range goalSt.blocks() {
		blockSet[blk] = true
	}
	blocks := make([]string, 0, len(blockSet))
	for blk := range blockSet {
		blocks = append(blocks, blk)
	}
	sort.Strings(blocks)

	var init []string
	init = append(init, "(HandEmpty)")
	for _, pair := range baseSt.on {
		init = append(init, fmt.Sprintf("(On %s %s)", pair[0], pair[1]))
	}
	for _, blk := range sortedKeys(baseSt.onTable) {
		init = append(init, fmt.Sprintf("(OnTable %s)", blk))
	}
	for _, blk := range sortedKeys(baseSt.clear) {
		init = append(init, fmt.Sprintf("(Clear %s)", blk))
	}
	// The Target Trick: mark every corrected block as needing precise
	// placement onto its support.
	for _, t := range tricked {
		init = append(init, fmt.Sprintf("(TargetOn %s %s)", t.block, t.support))
	}

	var goals []string
	// The Target Trick: require every corrected block to end up precisely
	// placed. AtTarget never holds initially, so the planner must use the
	// domain's dedicated re-placement action for each one.
	for _, t := range tricked {
		goals = append(goals, fmt.Sprintf("(AtTarget %s)", t.block))
	}
	for _, pair := range goalSt.on {
		goals = append(goals, fmt.Sprintf("(On %s %s)", pair[0], pair[1]))
	}
	for _, blk := range sortedKeys(goalSt.onTable) {
		goals = append(goals, fmt.Sprintf("(OnTable %s)", blk))
	}
	goals = append(goals, "(HandEmpty)")

	var sb strings.Builder
	fmt.Fprintf(&sb, "(define (problem %s)\n", ProblemName)
	fmt.Fprintf(&sb, "  (:domain %s)\n", DomainName)
	sb.WriteString("  (:objects\n")
	fmt.Fprintf(&sb, "    %s - block\n", strings.Join(blocks, " "))
	sb.WriteString("  )\n")
	sb.WriteString("  (:init\n")
	for _, line := range init {
		fmt.Fprintf(&sb, "    %s\n", line)
	}
	sb.WriteString("  )\n")
	sb.WriteString("  (:goal (and\n")
	for _, line := range goals {
		fmt.Fprintf(&sb, "    %s\n", line)
	}
	sb.WriteString("  ))\n")
	sb.WriteString(")\n")

	return sb.String(), nil
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
