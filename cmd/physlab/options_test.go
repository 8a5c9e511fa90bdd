package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestParseSets(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    map[string]float64
		wantErr bool
	}{
		{"empty", nil, map[string]float64{}, false},
		{"single", []string{"vx=12.5"}, map[string]float64{"vx": 12.5}, false},
		{"spaces", []string{" k = 20 "}, map[string]float64{"k": 20}, false},
		{"last wins", []string{"k=1", "k=2"}, map[string]float64{"k": 2}, false},
		{"no equals", []string{"k"}, nil, true},
		{"no name", []string{"=3"}, nil, true},
		{"not a number", []string{"k=abc"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSets(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %g, want %g", k, got[k], v)
				}
			}
		})
	}
}

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "run"}
	addRunFlags(cmd)
	return cmd
}

func resetFlags() {
	configFile, preset = "", ""
	sets = nil
	dt, maxTime, rate = 0, 0, 0
}

func TestResolveConfig_FlagsOverridePreset(t *testing.T) {
	resetFlags()
	cmd := newTestCmd()
	if err := cmd.ParseFlags([]string{"--preset", "lob", "--dt", "0.005", "--set", "vx=3"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd, []string{"projectile"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scenario != "projectile" {
		t.Errorf("scenario = %q", cfg.Scenario)
	}
	if cfg.Dt != 0.005 {
		t.Errorf("dt = %g, want 0.005", cfg.Dt)
	}
	if cfg.Params["vx"] != 3 {
		t.Errorf("vx = %g, want 3", cfg.Params["vx"])
	}
}

func TestResolveConfig_UnknownPreset(t *testing.T) {
	resetFlags()
	cmd := newTestCmd()
	if err := cmd.ParseFlags([]string{"--preset", "nope"}); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd, []string{"projectile"}); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestResolveConfig_BadSet(t *testing.T) {
	resetFlags()
	cmd := newTestCmd()
	if err := cmd.ParseFlags([]string{"--set", "vx"}); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd, []string{"projectile"}); err == nil {
		t.Error("expected error for malformed --set")
	}
}
