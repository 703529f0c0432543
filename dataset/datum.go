// Package dataset holds the record types of a spam/ham run, the
// train/validation/test partitioner and the text record format.
package dataset

import (
	"strconv"

	"github.com/kpuputti/spamham/pkg/errors"
)

// Label is the class of a datum. The zero value is Ham.
type Label int8

const (
	// Unlabeled marks a datum whose class is unknown (textual "nan").
	Unlabeled Label = -1
	// Ham is a legitimate message.
	Ham Label = 0
	// Spam is an unwanted message.
	Spam Label = 1
)

// LabelOf converts a prediction into a Label.
func LabelOf(isSpam bool) Label {
	if isSpam {
		return Spam
	}
	return Ham
}

// IsLabeled reports whether the class is known.
func (l Label) IsLabeled() bool {
	return l == Ham || l == Spam
}

// IsSpam reports whether the label is Spam.
func (l Label) IsSpam() bool {
	return l == Spam
}

// String returns the textual form used by the record format.
func (l Label) String() string {
	switch l {
	case Spam:
		return "1"
	case Ham:
		return "0"
	default:
		return nanToken
	}
}

// Datum is one row: [id, label, feature_1, ..., feature_n].
// A non-zero feature value means the field is set.
type Datum struct {
	ID       int
	Label    Label
	Features []int
}

// NumFeatures returns the length of the feature vector.
func (d Datum) NumFeatures() int {
	return len(d.Features)
}

// IsSet reports whether feature i is non-zero. Out of range indices are unset.
func (d Datum) IsSet(i int) bool {
	return i >= 0 && i < len(d.Features) && d.Features[i] != 0
}

// Floats returns the feature vector converted for numeric solvers.
func (d Datum) Floats() []float64 {
	out := make([]float64, len(d.Features))
	for i, v := range d.Features {
		out[i] = float64(v)
	}
	return out
}

// Record correlates an id with a label; it is the two-column output form.
type Record struct {
	ID    int
	Label Label
}

// Record returns the id/label pair of d.
func (d Datum) Record() Record {
	return Record{ID: d.ID, Label: d.Label}
}

// Dataset is an ordered, validated sequence of datums sharing one feature
// vector length.
type Dataset struct {
	data        []Datum
	numFeatures int
}

// New validates data and wraps it in a Dataset. All datums must have the
// same number of features, ids must be non-negative and unique.
func New(data []Datum) (*Dataset, error) {
	ds := &Dataset{data: data}
	if len(data) == 0 {
		return ds, nil
	}

	ds.numFeatures = len(data[0].Features)
	seen := make(map[int]struct{}, len(data))
	for i, d := range data {
		if len(d.Features) != ds.numFeatures {
			return nil, errors.Wrapf(
				errors.NewDimensionError("dataset.New", ds.numFeatures, len(d.Features), 1),
				"datum %d (id %d)", i, d.ID)
		}
		if d.ID < 0 {
			return nil, errors.NewValueError("dataset.New", "negative id "+strconv.Itoa(d.ID))
		}
		if _, dup := seen[d.ID]; dup {
			return nil, errors.NewValueError("dataset.New", "duplicate id "+strconv.Itoa(d.ID))
		}
		seen[d.ID] = struct{}{}
		if d.Label != Unlabeled && !d.Label.IsLabeled() {
			return nil, errors.NewValueError("dataset.New", "invalid label for id "+strconv.Itoa(d.ID))
		}
	}
	return ds, nil
}

// Len returns the number of datums.
func (ds *Dataset) Len() int { return len(ds.data) }

// NumFeatures returns the shared feature vector length.
func (ds *Dataset) NumFeatures() int { return ds.numFeatures }

// Data returns the datums in input order. Callers must not modify it.
func (ds *Dataset) Data() []Datum { return ds.data }

// Records returns the id/label pairs in input order.
func (ds *Dataset) Records() []Record {
	out := make([]Record, len(ds.data))
	for i, d := range ds.data {
		out[i] = d.Record()
	}
	return out
}
