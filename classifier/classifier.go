// Package classifier defines the spam/ham classifier contract and its
// variants: Random, AllSpam, AllHam, MajorityField and Statistical.
//
// Every classifier partitions its dataset when constructed, must be
// trained exactly once, and only then classifies datums:
//
//	c, err := classifier.New("DummyClassifier", ds, classifier.WithSeed(1))
//	if err != nil {
//	    return err
//	}
//	if err := c.Train(); err != nil {
//	    return err
//	}
//	isSpam, err := c.Classify(datum)
package classifier

import (
	"github.com/google/uuid"

	"github.com/kpuputti/spamham/core/model"
	"github.com/kpuputti/spamham/dataset"
	"github.com/kpuputti/spamham/pkg/log"
)

// Classifier is a trainable binary spam/ham classifier.
type Classifier interface {
	// Name returns the registry name of the variant.
	Name() string

	// Split returns the train/validation/test partition made at
	// construction.
	Split() dataset.Split

	// Train fits the classifier on the training subset. It may be called
	// once; a second call returns an AlreadyTrainedError.
	Train() error

	// Classify returns true when d is predicted to be spam. It returns a
	// NotTrainedError before Train.
	Classify(d dataset.Datum) (bool, error)
}

// Base carries what every variant shares: its name, its partition, the
// training state and a logger. Variants embed it.
type Base struct {
	name        string
	id          string
	numFeatures int
	split       dataset.Split
	state       *model.StateManager
	logger      log.Logger
}

func newBase(name string, ds *dataset.Dataset, o *options) *Base {
	id := uuid.NewString()
	logger := o.logger.With(
		log.ModelNameKey, name,
		log.EstimatorIDKey, id,
	)

	split := dataset.NewPartitioner(o.mode, o.rng).Partition(ds.Data())
	logger.Debug("split dataset",
		log.OperationKey, log.OperationSplit,
		log.SplitModeKey, o.mode.String(),
		log.TrainKey, len(split.Train),
		log.ValidationKey, len(split.Validation),
		log.TestKey, len(split.Test),
	)

	return &Base{
		name:        name,
		id:          id,
		numFeatures: ds.NumFeatures(),
		split:       split,
		state:       model.NewStateManager(name),
		logger:      logger,
	}
}

// Name implements Classifier.
func (b *Base) Name() string { return b.name }

// ID returns the unique id of this instance used in log records.
func (b *Base) ID() string { return b.id }

// Split implements Classifier.
func (b *Base) Split() dataset.Split { return b.split }

// State returns the training state.
func (b *Base) State() model.State { return b.state.State() }

// beginTrain guards against retraining and logs the start of training.
func (b *Base) beginTrain() error {
	if err := b.state.RequireUntrained(); err != nil {
		return err
	}
	b.logger.Debug("training classifier",
		log.OperationKey, log.OperationTrain,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, len(b.split.Train),
		log.FeaturesKey, b.numFeatures,
	)
	return nil
}

func (b *Base) finishTrain() {
	b.state.SetTrained(b.numFeatures, len(b.split.Train))
}
