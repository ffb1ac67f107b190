package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestSeedFlagHonorsExplicitZero(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int64
	}{
		{"unset falls back to config", nil, 42},
		{"explicit zero wins", []string{"--seed", "0"}, 0},
		{"explicit value wins", []string{"--seed", "7"}, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flags := pflag.NewFlagSet("identify", pflag.ContinueOnError)
			var seed int64
			flags.Int64Var(&seed, "seed", 0, "")
			if err := flags.Parse(tc.args); err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if got := seedFlag(flags, seed, 42); got != tc.want {
				t.Errorf("seedFlag = %d, want %d", got, tc.want)
			}
		})
	}
}
