package dataset

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kpuputti/spamham/pkg/errors"
)

// makeData returns n datums; every third one is unlabeled, the rest
// alternate spam and ham.
func makeData(n int) []Datum {
	data := make([]Datum, n)
	for i := range data {
		label := Ham
		switch {
		case i%3 == 0:
			label = Unlabeled
		case i%2 == 0:
			label = Spam
		}
		data[i] = Datum{ID: i + 1, Label: label, Features: []int{i % 2, 1, 0}}
	}
	return data
}

func TestPartitionInvariants(t *testing.T) {
	for _, n := range []int{0, 1, 5, 20, 101} {
		for _, mode := range []SplitMode{SplitEvaluate, SplitClassify} {
			data := makeData(n)
			split := NewPartitioner(mode, rand.New(rand.NewSource(int64(n)))).Partition(data)

			if split.Len() != len(data) {
				t.Errorf("n=%d mode=%v: split has %d datums, want %d", n, mode, split.Len(), len(data))
			}

			seen := make(map[int]string)
			check := func(name string, subset []Datum) {
				for _, d := range subset {
					if prev, dup := seen[d.ID]; dup {
						t.Errorf("id %d in both %s and %s", d.ID, prev, name)
					}
					seen[d.ID] = name
				}
			}
			check("train", split.Train)
			check("validation", split.Validation)
			check("test", split.Test)

			for _, d := range data {
				where := seen[d.ID]
				if !d.Label.IsLabeled() && where != "test" {
					t.Errorf("unlabeled id %d placed in %s", d.ID, where)
				}
				if d.Label.IsLabeled() && where == "test" {
					t.Errorf("labeled id %d placed in test", d.ID)
				}
			}

			if mode == SplitClassify && len(split.Validation) != 0 {
				t.Errorf("classify mode produced %d validation datums", len(split.Validation))
			}
		}
	}
}

func TestPartitionSeedIsReproducible(t *testing.T) {
	data := makeData(200)

	a := NewPartitioner(SplitEvaluate, rand.New(rand.NewSource(42))).Partition(data)
	b := NewPartitioner(SplitEvaluate, rand.New(rand.NewSource(42))).Partition(data)

	if len(a.Train) != len(b.Train) || len(a.Validation) != len(b.Validation) {
		t.Fatalf("same seed gave different sizes: %d/%d vs %d/%d",
			len(a.Train), len(a.Validation), len(b.Train), len(b.Validation))
	}
	for i := range a.Train {
		if a.Train[i].ID != b.Train[i].ID {
			t.Fatalf("same seed gave different train order at %d", i)
		}
	}
	if len(a.Train) == 0 || len(a.Validation) == 0 {
		t.Errorf("expected both subsets to be populated for 200 datums, got %d/%d", len(a.Train), len(a.Validation))
	}
}

func TestPartitionNilRand(t *testing.T) {
	p := NewPartitioner(SplitEvaluate, nil)
	if p.Mode() != SplitEvaluate {
		t.Errorf("Mode() = %v", p.Mode())
	}
	if got := p.Partition(makeData(10)).Len(); got != 10 {
		t.Errorf("Len() = %d, want 10", got)
	}
}

func TestNewDataset(t *testing.T) {
	tests := []struct {
		name    string
		data    []Datum
		wantErr interface{}
	}{
		{
			name: "valid",
			data: []Datum{{ID: 1, Label: Spam, Features: []int{1, 0}}, {ID: 2, Label: Unlabeled, Features: []int{0, 0}}},
		},
		{
			name:    "feature length mismatch",
			data:    []Datum{{ID: 1, Features: []int{1, 0}}, {ID: 2, Features: []int{1}}},
			wantErr: new(*errors.DimensionError),
		},
		{
			name:    "duplicate id",
			data:    []Datum{{ID: 1, Features: []int{1}}, {ID: 1, Features: []int{0}}},
			wantErr: new(*errors.ValueError),
		},
		{
			name:    "negative id",
			data:    []Datum{{ID: -3, Features: []int{1}}},
			wantErr: new(*errors.ValueError),
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := New(tt.data)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if ds.Len() != len(tt.data) {
					t.Errorf("Len() = %d, want %d", ds.Len(), len(tt.data))
				}
				return
			}
			if !errors.As(err, tt.wantErr) {
				t.Errorf("expected %T, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRead(t *testing.T) {
	input := `1 1 0 1 1
2 0 1 0 0

3 nan 1 1 0
4 NaN 0 0 0
`
	ds, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ds.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", ds.Len())
	}
	if ds.NumFeatures() != 3 {
		t.Errorf("NumFeatures() = %d, want 3", ds.NumFeatures())
	}

	wantLabels := []Label{Spam, Ham, Unlabeled, Unlabeled}
	for i, d := range ds.Data() {
		if d.Label != wantLabels[i] {
			t.Errorf("datum %d label = %v, want %v", i, d.Label, wantLabels[i])
		}
	}
	if !ds.Data()[0].IsSet(2) || ds.Data()[0].IsSet(0) {
		t.Errorf("unexpected features %v", ds.Data()[0].Features)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr interface{}
	}{
		{name: "missing label", input: "1\n", wantErr: new(*errors.ParseError)},
		{name: "bad id", input: "x 1 0\n", wantErr: new(*errors.ParseError)},
		{name: "bad label", input: "1 2 0\n", wantErr: new(*errors.ParseError)},
		{name: "bad feature", input: "1 1 a\n", wantErr: new(*errors.ParseError)},
		{name: "ragged rows", input: "1 1 0 1\n2 0 1\n", wantErr: new(*errors.DimensionError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if !errors.As(err, tt.wantErr) {
				t.Errorf("expected %T, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	recs := []Record{{ID: 3, Label: Spam}, {ID: 1, Label: Ham}}

	var buf bytes.Buffer
	if err := WriteRecords(&buf, recs); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "3 1\n1 0\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteRecordsFile(path, recs); err != nil {
		t.Fatal(err)
	}
	got, err := ReadRecordsFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != recs[0] || got[1] != recs[1] {
		t.Errorf("ReadRecordsFile() = %v, want %v", got, recs)
	}
}

func TestReadRecordsIgnoresFeatures(t *testing.T) {
	recs, err := ReadRecords(strings.NewReader("5 1 0 0 1\n6 nan 1 1 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if recs[0] != (Record{ID: 5, Label: Spam}) || recs[1] != (Record{ID: 6, Label: Unlabeled}) {
		t.Errorf("ReadRecords() = %v", recs)
	}
}
