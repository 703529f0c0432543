package dataset

import (
	"math/rand"
	"time"
)

// SplitMode selects how labeled data is divided.
type SplitMode int

const (
	// SplitEvaluate sends each labeled datum to Train or Validation with an
	// independent 50/50 draw.
	SplitEvaluate SplitMode = iota
	// SplitClassify sends every labeled datum to Train; Validation stays
	// empty. Used for production classification runs.
	SplitClassify
)

// String returns the mode name.
func (m SplitMode) String() string {
	switch m {
	case SplitEvaluate:
		return "evaluate"
	case SplitClassify:
		return "classify"
	default:
		return "unknown"
	}
}

// Split is a partition of a dataset into three disjoint subsets whose
// union is the input. Test holds exactly the unlabeled datums.
type Split struct {
	Train      []Datum
	Validation []Datum
	Test       []Datum
}

// Len returns the total number of datums in the split.
func (s Split) Len() int {
	return len(s.Train) + len(s.Validation) + len(s.Test)
}

// Partitioner divides datums into a Split. It is not safe for concurrent
// use because it owns its random source.
type Partitioner struct {
	mode SplitMode
	rng  *rand.Rand
}

// NewPartitioner creates a Partitioner. A nil rng is replaced by a
// time-seeded source; pass rand.New(rand.NewSource(seed)) for reproducible
// splits.
func NewPartitioner(mode SplitMode, rng *rand.Rand) *Partitioner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Partitioner{mode: mode, rng: rng}
}

// Mode returns the split mode.
func (p *Partitioner) Mode() SplitMode {
	return p.mode
}

// Partition splits data. Order inside each subset follows the input order.
// No stratification is done: the spam/ham ratio of Train and Validation
// varies from run to run.
func (p *Partitioner) Partition(data []Datum) Split {
	var s Split
	for _, d := range data {
		switch {
		case !d.Label.IsLabeled():
			s.Test = append(s.Test, d)
		case p.mode == SplitClassify || p.rng.Intn(2) == 0:
			s.Train = append(s.Train, d)
		default:
			s.Validation = append(s.Validation, d)
		}
	}
	return s
}
