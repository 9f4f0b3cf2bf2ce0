package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"recipfit/internal/config"
	"recipfit/internal/observe"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.MinimumViableWidth = 5
	return cfg
}

func TestRunPrintsFittedSummary(t *testing.T) {
	cfg := testConfig()
	cfg.AvailableWidth = 25

	var buf bytes.Buffer
	r := NewRunner(cfg, "a@x.com, bb@y.com, ccc@z.com", false, WithWriter(&buf), WithTerminal(nil))

	if code := r.Run(); code != 0 {
		t.Fatalf("Run() = %d, want 0", code)
	}
	got := strings.TrimSpace(buf.String())
	if got != "a@x.com, bb@y.com,... (+1)" {
		t.Errorf("output = %q, want %q", got, "a@x.com, bb@y.com,... (+1)")
	}

	res := r.Result()
	if len(res.Visible) != 0 || res.Ready {
		t.Errorf("Result() after Run = %+v, want cleared by unmount", res)
	}
}

func TestRunEverythingFits(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(testConfig(), "a@x.com, b@y.com", false, WithWriter(&buf), WithTerminal(nil))
	r.Run()

	if got := strings.TrimSpace(buf.String()); got != "a@x.com, b@y.com" {
		t.Errorf("output = %q, want %q", got, "a@x.com, b@y.com")
	}
}

func TestRunDropsMalformed(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(testConfig(), "notanemail, ok@z.com", false, WithWriter(&buf), WithTerminal(nil))
	r.Run()

	if got := strings.TrimSpace(buf.String()); got != "ok@z.com" {
		t.Errorf("output = %q, want %q", got, "ok@z.com")
	}
}

func TestRunBelowMinimumWidth(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AvailableWidth = 20

	var buf bytes.Buffer
	r := NewRunner(cfg, "a@x.com, b@y.com", false, WithWriter(&buf), WithTerminal(nil))
	r.Run()

	if got := strings.TrimSpace(buf.String()); got != "(+2)" {
		t.Errorf("output = %q, want only the hidden count", got)
	}
}

func TestRunWatchStopsOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.AvailableWidth = 25

	var buf bytes.Buffer
	r := NewRunner(cfg, "a@x.com", true, WithWriter(&buf), WithTerminal(observe.NewTerminal(os.Stdout)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := r.run(ctx); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if !strings.Contains(buf.String(), "a@x.com") {
		t.Errorf("output = %q, want the summary before exit", buf.String())
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		unit      string
		wantWidth string
	}{
		{"cells", "width: 7.00"},
		{"fixed", "width: 49.00"},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Unit = tt.unit

			var buf bytes.Buffer
			r := NewRunner(cfg, "", false, WithWriter(&buf), WithTerminal(nil))
			r.Measure("a@x.com")

			out := buf.String()
			if !strings.Contains(out, "font:  normal 400 13px Go") {
				t.Errorf("output missing computed font: %q", out)
			}
			if !strings.Contains(out, tt.wantWidth) {
				t.Errorf("output = %q, want %q", out, tt.wantWidth)
			}
		})
	}
}

func TestMeasurePixels(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Unit = "px"
	cfg.Font = "bold 16px Go"

	var buf bytes.Buffer
	r := NewRunner(cfg, "", false, WithWriter(&buf), WithTerminal(nil))
	r.Measure("a@x.com")

	out := buf.String()
	if !strings.Contains(out, "font:  normal 700 16px Go") {
		t.Errorf("output missing computed font: %q", out)
	}
	if strings.Contains(out, "width: 0.00") {
		t.Errorf("pixel measurement returned zero: %q", out)
	}
}

func TestLiveWidth(t *testing.T) {
	tests := []struct {
		unit string
		want float64
	}{
		{"cells", 80},
		{"px", 560},
		{"fixed", 560},
	}

	for _, tt := range tests {
		cfg := config.DefaultConfig()
		cfg.Unit = tt.unit
		r := NewRunner(cfg, "", false, WithWriter(&bytes.Buffer{}), WithTerminal(nil))
		if got := r.liveWidth(r.columns()); got != tt.want {
			t.Errorf("liveWidth(%s) = %v, want %v", tt.unit, got, tt.want)
		}
	}
}
