package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kpuputti/spamham/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      func(c *Config) bool
		wantParam string
		wantErr   bool
	}{
		{
			name:  "empty document keeps defaults",
			input: "",
			want:  func(c *Config) bool { return *c == *Default() },
		},
		{
			name: "full document",
			input: `log_level: debug
seed: 42
heuristic:
  field_freq: 0.7
  fields_freq: 0.3
svm:
  c: 0.1
  max_iter: 20
`,
			want: func(c *Config) bool {
				return c.LogLevel == "debug" && c.Seed == 42 &&
					c.Heuristic.FieldFreq == 0.7 && c.Heuristic.FieldsFreq == 0.3 &&
					c.SVM.C == 0.1 && c.SVM.MaxIter == 20
			},
		},
		{
			name:  "partial document",
			input: "svm:\n  c: 2\n",
			want: func(c *Config) bool {
				return c.SVM.C == 2 && c.SVM.MaxIter == Default().SVM.MaxIter && c.LogLevel == "info"
			},
		},
		{name: "unknown key", input: "colour: blue\n", wantErr: true},
		{name: "malformed", input: "seed: [1\n", wantErr: true},
		{name: "bad level", input: "log_level: loud\n", wantErr: true, wantParam: "log_level"},
		{name: "negative seed", input: "seed: -1\n", wantErr: true, wantParam: "seed"},
		{name: "field freq out of range", input: "heuristic:\n  field_freq: 1.5\n", wantErr: true, wantParam: "heuristic.field_freq"},
		{name: "fields freq out of range", input: "heuristic:\n  fields_freq: -0.5\n", wantErr: true, wantParam: "heuristic.fields_freq"},
		{name: "zero c", input: "svm:\n  c: 0\n", wantErr: true, wantParam: "svm.c"},
		{name: "zero iterations", input: "svm:\n  max_iter: 0\n", wantErr: true, wantParam: "svm.max_iter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if tt.wantParam == "" {
					return
				}
				var verr *errors.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Parse() error = %v, want *ValidationError", err)
				}
				if verr.ParamName != tt.wantParam {
					t.Errorf("ParamName = %q, want %q", verr.ParamName, tt.wantParam)
				}
				return
			}
			if !tt.want(cfg) {
				t.Errorf("Parse() = %+v", cfg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spamham.yaml")
	if err := os.WriteFile(path, []byte("seed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if got := len(cfg.ClassifierOptions()); got != 3 {
		t.Errorf("ClassifierOptions() returned %d options, want 3", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}
