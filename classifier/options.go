package classifier

import (
	"math/rand"

	"github.com/kpuputti/spamham/core/model"
	"github.com/kpuputti/spamham/dataset"
	"github.com/kpuputti/spamham/pkg/log"
)

// Default thresholds of the majority field heuristic.
const (
	DefaultFieldFreq  = 0.5
	DefaultFieldsFreq = 0.5
)

type options struct {
	mode   dataset.SplitMode
	rng    *rand.Rand
	logger log.Logger

	fieldFreq  float64
	fieldsFreq float64

	fitter  model.Fitter
	c       float64
	maxIter int
	seed    int64
}

func defaultOptions() *options {
	return &options{
		mode:       dataset.SplitEvaluate,
		fieldFreq:  DefaultFieldFreq,
		fieldsFreq: DefaultFieldsFreq,
		seed:       1,
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.GetLogger()
	}
	return o
}

// Option configures a classifier.
type Option func(*options)

// WithSplitMode selects how labeled data is divided. The default is
// dataset.SplitEvaluate.
func WithSplitMode(mode dataset.SplitMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithRand injects the random source used by the split and by the Random
// classifier.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed is WithRand with a fresh source seeded by seed. The seed is
// also handed to the default SVM fitter.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
		o.seed = seed
	}
}

// WithLogger sets the logger; the default is log.GetLogger().
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithThresholds sets the majority field heuristic thresholds: fieldFreq
// is the share of spam samples a column must be set in to become a spam
// column, fieldsFreq the share of spam columns a datum must have set to be
// classified as spam.
func WithThresholds(fieldFreq, fieldsFreq float64) Option {
	return func(o *options) {
		o.fieldFreq = fieldFreq
		o.fieldsFreq = fieldsFreq
	}
}

// WithFitter injects the model-fitting capability of the Statistical
// classifier.
func WithFitter(f model.Fitter) Option {
	return func(o *options) {
		o.fitter = f
	}
}

// WithC sets the regularization parameter of the default SVM fitter.
func WithC(c float64) Option {
	return func(o *options) {
		o.c = c
	}
}

// WithMaxIter sets the number of solver passes of the default SVM fitter.
func WithMaxIter(n int) Option {
	return func(o *options) {
		o.maxIter = n
	}
}
