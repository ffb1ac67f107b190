package world

import (
	"fmt"
	"strings"
)

// Relation is one symbolic predicate over entities, e.g. On(2,1) or Clear(2).
// The wire form in scenario files is the string convention "On(2,1)".
type Relation struct {
	Predicate string
	Args      []string
}

// ParseRelation parses the wire form "Pred(a,b,...)" into a Relation
func ParseRelation(s string) (Relation, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return Relation{}, fmt.Errorf("malformed relation %q", s)
	}
	pred := strings.TrimSpace(s[:open])
	inner := s[open+1 : len(s)-1]
	if strings.TrimSpace(inner) == "" {
		return Relation{}, fmt.Errorf("relation %q has no arguments", s)
	}
	parts := strings.Split(inner, ",")
	args := make([]string, 0, len(parts))
	for _, p := range parts {
		arg := strings.TrimSpace(p)
		if arg == "" {
			return Relation{}, fmt.Errorf("relation %q has an empty argument", s)
		}
		args = append(args, arg)
	}
	return Relation{Predicate: pred, Args: args}, nil
}

// ParseRelations parses a list of wire-form relation strings
func ParseRelations(raw []string) ([]Relation, error) {
	rels := make([]Relation, 0, len(raw))
	for i, s := range raw {
		r, err := ParseRelation(s)
		if err != nil {
			return nil, fmt.Errorf("relationships[%d]: %w", i, err)
		}
		rels = append(rels, r)
	}
	return rels, nil
}

// Is reports whether the relation has the given predicate (case-insensitive)
func (r Relation) Is(predicate string) bool {
	return strings.EqualFold(r.Predicate, predicate)
}

// String returns the wire form, e.g. "On(2,1)"
func (r Relation) String() string {
	return r.Predicate + "(" + strings.Join(r.Args, ",") + ")"
}
