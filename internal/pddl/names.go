package pddl

import "strings"

// Table is the normalized name of the supporting surface. It is never
// declared as a PDDL object; blocks sitting on it get OnTable predicates.
const Table = "TABLE"

var blockNames = map[string]string{
	"0": Table,
	"1": "A",
	"2": "B",
	"3": "C",
	"4": "D",
	"5": "E",
	"6": "F",
}

// NormalizeName maps the naming conventions found in scenario files onto the
// single-letter block names the recovery domain uses:
//
//	"1".."6"            -> "A".."F" ("0" is the table)
//	"Box A", "Block B"  -> "A", "B"
//	"Goal_*", "Table_*" -> TABLE
func NormalizeName(name string) string {
	s := strings.TrimSpace(name)

	if mapped, ok := blockNames[s]; ok {
		return mapped
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "goal") || strings.HasPrefix(lower, "table") {
		return Table
	}
	for _, prefix := range []string{"Box ", "Block "} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			s = rest
			break
		}
	}

	s = strings.ToUpper(strings.TrimSpace(s))
	if mapped, ok := blockNames[s]; ok {
		return mapped
	}
	return s
}
