package args

import (
	"strings"
	"testing"

	"recipfit/internal/config"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantMode   string
		wantSource string
	}{
		{
			name:     "empty args",
			args:     []string{},
			wantMode: ModeTUI,
		},
		{
			name:       "source only opens the TUI",
			args:       []string{"a@x.com, b@y.com"},
			wantMode:   ModeTUI,
			wantSource: "a@x.com, b@y.com",
		},
		{
			name:       "run command",
			args:       []string{"run", "a@x.com,", "b@y.com"},
			wantMode:   ModeRun,
			wantSource: "a@x.com, b@y.com",
		},
		{
			name:       "measure command",
			args:       []string{"measure", "hello"},
			wantMode:   ModeMeasure,
			wantSource: "hello",
		},
		{
			name:       "flags between words",
			args:       []string{"run", "-w", "30", "a@x.com"},
			wantMode:   ModeRun,
			wantSource: "a@x.com",
		},
		{
			name:       "mode word later is part of the source",
			args:       []string{"a@x.com", "run"},
			wantMode:   ModeTUI,
			wantSource: "a@x.com run",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%v) error = %v", tt.args, err)
			}
			if opts.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", opts.Mode, tt.wantMode)
			}
			if opts.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", opts.Source, tt.wantSource)
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := Parse([]string{
		"run",
		"--width", "42.5",
		"--suffix", " +",
		"--no-overflow",
		"--min-width", "8",
		"--unit", "px",
		"--font", "bold 14px Go",
		"--watch",
		"-v",
		"a@x.com",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if opts.Width != 42.5 {
		t.Errorf("Width = %v, want 42.5", opts.Width)
	}
	if opts.Suffix != " +" {
		t.Errorf("Suffix = %q", opts.Suffix)
	}
	if !opts.NoOverflow {
		t.Error("NoOverflow should be true")
	}
	if opts.MinWidth != 8 {
		t.Errorf("MinWidth = %v, want 8", opts.MinWidth)
	}
	if opts.Unit != "px" {
		t.Errorf("Unit = %q", opts.Unit)
	}
	if opts.Font != "bold 14px Go" {
		t.Errorf("Font = %q", opts.Font)
	}
	if !opts.Watch || !opts.Verbose {
		t.Errorf("Watch = %v, Verbose = %v, want both true", opts.Watch, opts.Verbose)
	}
	if !opts.Changed("width") || opts.Changed("help") {
		t.Error("Changed() does not reflect the given flags")
	}
}

func TestParseHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		opts, err := Parse([]string{arg})
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", arg, err)
		}
		if !opts.Help {
			t.Errorf("Parse(%q).Help = false, want true", arg)
		}
		if err := opts.Validate(); err != nil {
			t.Errorf("Validate() with help = %v, want nil", err)
		}
	}
}

func TestParseUnknownFlag(t *testing.T) {
	_, err := Parse([]string{"--bogus"})
	if err == nil {
		t.Fatal("Parse() should reject unknown flags")
	}
	if !strings.Contains(err.Error(), "invalid arguments") {
		t.Errorf("error = %q, want it to mention invalid arguments", err.Error())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"tui without source", []string{}, false},
		{"run without source", []string{"run"}, false},
		{"measure without text", []string{"measure"}, true},
		{"watch outside run", []string{"--watch", "a@x.com"}, true},
		{"watch in run", []string{"run", "--watch", "a@x.com"}, false},
		{"negative width", []string{"run", "-w", "-3"}, true},
		{"NaN width", []string{"run", "-w", "NaN"}, true},
		{"infinite min width", []string{"run", "--min-width", "Inf"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			err = opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApply(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SuffixMarker = "from file"

	opts, err := Parse([]string{"run", "--width", "30", "--no-overflow", "a@x.com"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	opts.Apply(cfg)

	if cfg.AvailableWidth != 30 {
		t.Errorf("AvailableWidth = %v, want 30", cfg.AvailableWidth)
	}
	if cfg.AllowSingleOverflow {
		t.Error("AllowSingleOverflow should be false")
	}
	// Flags that were not given leave the config untouched.
	if cfg.SuffixMarker != "from file" {
		t.Errorf("SuffixMarker = %q, want untouched", cfg.SuffixMarker)
	}
	if cfg.Unit != "cells" {
		t.Errorf("Unit = %q, want untouched", cfg.Unit)
	}
}

func TestHelpText(t *testing.T) {
	help := HelpText()
	for _, want := range []string{"recipfit", "--width", "--no-overflow", "run", "measure", "RECIPFIT_CONFIG"} {
		if !strings.Contains(help, want) {
			t.Errorf("HelpText() missing %q", want)
		}
	}
}
