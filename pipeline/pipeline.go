// Package pipeline drives the three spamham runs: train and evaluate,
// classify a data file, and validate a stored classification.
package pipeline

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/kpuputti/spamham/classifier"
	"github.com/kpuputti/spamham/config"
	"github.com/kpuputti/spamham/dataset"
	"github.com/kpuputti/spamham/metrics"
	"github.com/kpuputti/spamham/pkg/errors"
	"github.com/kpuputti/spamham/pkg/log"
	"github.com/kpuputti/spamham/report"
)

// Runner executes runs with one configuration and writes human readable
// summaries to its output.
type Runner struct {
	cfg    *config.Config
	logger log.Logger
	out    io.Writer
	rng    *rand.Rand

	// PlotPath, when set, makes Train save a bar chart of its metrics.
	PlotPath string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; the default is log.GetLogger().
func WithLogger(l log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithOutput sets where summaries are printed; the default is io.Discard.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithPlot makes Train save a chart of its metrics to path.
func WithPlot(path string) Option {
	return func(r *Runner) {
		r.PlotPath = path
	}
}

// New creates a Runner. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	r := &Runner{cfg: cfg, out: io.Discard}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.GetLogger()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r.rng = rand.New(rand.NewSource(seed))
	r.logger.Debug("runner configured", log.RandomSeedKey, seed)
	return r
}

func (r *Runner) classifierOptions(mode dataset.SplitMode) []classifier.Option {
	opts := []classifier.Option{
		classifier.WithSplitMode(mode),
		classifier.WithRand(r.rng),
		classifier.WithLogger(r.logger),
	}
	return append(opts, r.cfg.ClassifierOptions()...)
}

func (r *Runner) newTrained(name string, ds *dataset.Dataset, mode dataset.SplitMode) (classifier.Classifier, error) {
	c, err := classifier.New(name, ds, r.classifierOptions(mode)...)
	if err != nil {
		return nil, err
	}
	r.logger.Info("training classifier",
		log.ModelNameKey, c.Name(),
		log.SplitModeKey, mode.String(),
		log.TrainKey, len(c.Split().Train),
		log.ValidationKey, len(c.Split().Validation),
		log.TestKey, len(c.Split().Test),
	)
	if err := c.Train(); err != nil {
		return nil, errors.Wrapf(err, "train %s", c.Name())
	}
	return c, nil
}

// Train reads the labeled file at path, splits it for evaluation, trains
// the named classifier and scores it on the validation subset.
func (r *Runner) Train(ctx context.Context, name, path string) (metrics.Metrics, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return metrics.Metrics{}, err
	}

	ds, err := dataset.ReadFile(path)
	if err != nil {
		return metrics.Metrics{}, err
	}
	c, err := r.newTrained(name, ds, dataset.SplitEvaluate)
	if err != nil {
		return metrics.Metrics{}, err
	}

	m, err := metrics.Evaluate(c, c.Split().Validation)
	if err != nil {
		return metrics.Metrics{}, errors.Wrapf(err, "evaluate %s", c.Name())
	}
	r.logger.Info("evaluated classifier",
		log.OperationKey, log.OperationEvaluate,
		log.ModelNameKey, c.Name(),
		log.AccuracyKey, m.Accuracy,
		log.PrecisionKey, m.Precision,
		log.RecallKey, m.Recall,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	if err := report.Write(r.out, "Training classifier: "+c.Name(), m); err != nil {
		return m, err
	}
	if r.PlotPath != "" {
		if err := report.SavePlot(r.PlotPath, c.Name(), m); err != nil {
			return m, err
		}
		r.logger.Info("saved metrics plot", log.PathKey, r.PlotPath)
	}
	return m, nil
}

// Classify trains the named classifier on every labeled row of trainPath,
// classifies every row of dataPath and writes "id label" lines to outPath.
func (r *Runner) Classify(ctx context.Context, name, trainPath, dataPath, outPath string) ([]dataset.Record, error) {
	start := time.Now()

	train, err := dataset.ReadFile(trainPath)
	if err != nil {
		return nil, err
	}
	data, err := dataset.ReadFile(dataPath)
	if err != nil {
		return nil, err
	}

	c, err := r.newTrained(name, train, dataset.SplitClassify)
	if err != nil {
		return nil, err
	}

	out := make([]dataset.Record, 0, data.Len())
	for _, d := range data.Data() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		isSpam, err := c.Classify(d)
		if err != nil {
			return nil, errors.Wrapf(err, "classify datum %d", d.ID)
		}
		out = append(out, dataset.Record{ID: d.ID, Label: dataset.LabelOf(isSpam)})
	}

	if err := dataset.WriteRecordsFile(outPath, out); err != nil {
		return nil, err
	}

	spams := 0
	for _, rec := range out {
		if rec.Label.IsSpam() {
			spams++
		}
	}
	r.logger.Info("classified data",
		log.OperationKey, log.OperationClassify,
		log.ModelNameKey, c.Name(),
		log.SamplesKey, len(out),
		log.PredsKey, spams,
		log.PathKey, outPath,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return out, nil
}

// Validate compares the classification stored at outPath against the
// labels of labeledPath.
func (r *Runner) Validate(ctx context.Context, outPath, labeledPath string) (metrics.Validation, error) {
	if err := ctx.Err(); err != nil {
		return metrics.Validation{}, err
	}

	output, err := dataset.ReadRecordsFile(outPath)
	if err != nil {
		return metrics.Validation{}, err
	}
	truth, err := dataset.ReadRecordsFile(labeledPath)
	if err != nil {
		return metrics.Validation{}, err
	}

	v, err := metrics.Validate(output, truth)
	if err != nil {
		return metrics.Validation{}, err
	}
	r.logger.Info("validated output",
		log.OperationKey, log.OperationValidate,
		log.PathKey, outPath,
		log.AccuracyKey, v.Accuracy,
		log.FalsePositivesKey, v.FalsePositives,
	)

	if err := report.WriteValidation(r.out, "Validating classified output file: "+outPath, v); err != nil {
		return v, err
	}
	return v, nil
}
