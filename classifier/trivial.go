package classifier

import (
	"math/rand"
	"time"

	"github.com/kpuputti/spamham/dataset"
)

// Random labels each datum spam or ham with equal probability. The label of
// a datum depends only on its id and a salt drawn at construction, so
// repeated calls agree.
type Random struct {
	*Base
	salt int64
}

// NewRandom creates a Random classifier. The injected rng (WithRand,
// WithSeed) drives the split and then the salt.
func NewRandom(ds *dataset.Dataset, opts ...Option) *Random {
	o := buildOptions(opts)
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	base := newBase("RandomClassifier", ds, o)
	return &Random{Base: base, salt: o.rng.Int63()}
}

// Train implements Classifier.
func (c *Random) Train() error {
	if err := c.beginTrain(); err != nil {
		return err
	}
	c.finishTrain()
	return nil
}

// Classify implements Classifier.
func (c *Random) Classify(d dataset.Datum) (bool, error) {
	if err := c.state.RequireTrained("Classify"); err != nil {
		return false, err
	}
	return rand.New(rand.NewSource(c.salt^int64(d.ID))).Intn(2) == 0, nil
}

// constant predicts the same label for every datum.
type constant struct {
	*Base
	spam bool
}

// Train implements Classifier.
func (c *constant) Train() error {
	if err := c.beginTrain(); err != nil {
		return err
	}
	c.finishTrain()
	return nil
}

// Classify implements Classifier.
func (c *constant) Classify(_ dataset.Datum) (bool, error) {
	if err := c.state.RequireTrained("Classify"); err != nil {
		return false, err
	}
	return c.spam, nil
}

// AllSpam classifies every datum as spam.
type AllSpam struct{ constant }

// NewAllSpam creates an AllSpam classifier.
func NewAllSpam(ds *dataset.Dataset, opts ...Option) *AllSpam {
	return &AllSpam{constant{Base: newBase("AllSpamClassifier", ds, buildOptions(opts)), spam: true}}
}

// AllHam classifies every datum as ham.
type AllHam struct{ constant }

// NewAllHam creates an AllHam classifier.
func NewAllHam(ds *dataset.Dataset, opts ...Option) *AllHam {
	return &AllHam{constant{Base: newBase("AllHamClassifier", ds, buildOptions(opts)), spam: false}}
}
