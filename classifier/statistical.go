package classifier

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/kpuputti/spamham/core/model"
	"github.com/kpuputti/spamham/dataset"
	"github.com/kpuputti/spamham/pkg/errors"
	"github.com/kpuputti/spamham/pkg/log"
)

// Statistical delegates fitting and prediction to an injected model.Fitter.
type Statistical struct {
	*Base

	fitter model.Fitter
	model  model.BinaryModel
}

// NewStatistical creates a Statistical classifier named name that trains
// with the Fitter given by WithFitter.
func NewStatistical(name string, ds *dataset.Dataset, opts ...Option) *Statistical {
	o := buildOptions(opts)
	return &Statistical{
		Base:   newBase(name, ds, o),
		fitter: o.fitter,
	}
}

// Train implements Classifier. The training features become the rows of a
// dense matrix and the labels a column vector with 1 for spam, 0 for ham.
func (c *Statistical) Train() error {
	if err := c.beginTrain(); err != nil {
		return err
	}
	op := c.name + ".Train"
	if c.fitter == nil {
		return errors.NewValueError(op, "no model fitter configured")
	}
	train := c.split.Train
	if len(train) == 0 {
		return errors.NewValueError(op, "training set is empty")
	}
	if c.numFeatures == 0 {
		return errors.NewValueError(op, "datums have no features")
	}

	X := mat.NewDense(len(train), c.numFeatures, nil)
	y := mat.NewDense(len(train), 1, nil)
	for i, d := range train {
		X.SetRow(i, d.Floats())
		if d.Label.IsSpam() {
			y.Set(i, 0, 1)
		}
	}

	start := time.Now()
	var fitted model.BinaryModel
	err := errors.SafeExecute(op, func() error {
		var fitErr error
		fitted, fitErr = c.fitter.Fit(X, y)
		return fitErr
	})
	if err != nil {
		c.logger.Error("model fit failed", err, log.OperationKey, log.OperationTrain)
		return errors.NewModelError(op, "fit failed", err)
	}

	if fitted == nil {
		return errors.NewModelError(op, "fitter returned no model", nil)
	}

	c.model = fitted
	c.finishTrain()
	c.logger.Debug("model fitted",
		log.OperationKey, log.OperationTrain,
		log.SamplesKey, len(train),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Classify implements Classifier.
func (c *Statistical) Classify(d dataset.Datum) (bool, error) {
	if err := c.state.RequireTrained("Classify"); err != nil {
		return false, err
	}
	if d.NumFeatures() != c.numFeatures {
		return false, errors.NewDimensionError(c.name+".Classify", c.numFeatures, d.NumFeatures(), 1)
	}
	isSpam, err := c.model.PredictOne(mat.NewVecDense(c.numFeatures, d.Floats()))
	if err != nil {
		return false, errors.Wrapf(err, "%s: predict datum %d", c.name, d.ID)
	}
	return isSpam, nil
}
