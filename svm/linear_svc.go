// Package svm provides a linear support vector machine fitted with the
// Pegasos stochastic sub-gradient solver on the hinge loss. It implements
// model.Fitter so the Statistical classifier can use it.
package svm

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/kpuputti/spamham/core/model"
	"github.com/kpuputti/spamham/pkg/errors"
)

// Defaults of NewLinearSVC.
const (
	DefaultC       = 1.0
	DefaultMaxIter = 100
)

// LinearSVC fits linear soft-margin SVMs. The zero value is not usable;
// create one with NewLinearSVC.
type LinearSVC struct {
	C            float64 // inverse regularization strength
	maxIter      int     // passes over the training data
	fitIntercept bool
	randomState  int64
}

// Option configures a LinearSVC.
type Option func(*LinearSVC)

// NewLinearSVC creates a LinearSVC with C=1, 100 passes, an intercept and
// a fixed random state.
func NewLinearSVC(opts ...Option) *LinearSVC {
	s := &LinearSVC{
		C:            DefaultC,
		maxIter:      DefaultMaxIter,
		fitIntercept: true,
		randomState:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithC sets the regularization parameter. Non-positive values fall back
// to DefaultC.
func WithC(c float64) Option {
	return func(s *LinearSVC) {
		if c > 0 {
			s.C = c
		} else {
			s.C = DefaultC
		}
	}
}

// WithMaxIter sets the number of passes over the training data.
func WithMaxIter(n int) Option {
	return func(s *LinearSVC) {
		if n > 0 {
			s.maxIter = n
		}
	}
}

// WithFitIntercept sets whether a bias term is learned.
func WithFitIntercept(fit bool) Option {
	return func(s *LinearSVC) {
		s.fitIntercept = fit
	}
}

// WithRandomState sets the seed of the sample order shuffle.
func WithRandomState(seed int64) Option {
	return func(s *LinearSVC) {
		s.randomState = seed
	}
}

// Fit trains on X (samples x features) and y (column of 0/1 labels).
// The returned model is independent of the LinearSVC.
func (s *LinearSVC) Fit(X, y mat.Matrix) (model.BinaryModel, error) {
	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return nil, errors.NewValueError("LinearSVC.Fit", "empty training matrix")
	}
	if yRows != nSamples {
		return nil, errors.NewDimensionError("LinearSVC.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return nil, errors.NewDimensionError("LinearSVC.Fit", 1, yCols, 1)
	}

	// +1 spam, -1 ham
	signs := make([]float64, nSamples)
	positives := 0
	for i := range signs {
		if y.At(i, 0) > 0 {
			signs[i] = 1
			positives++
		} else {
			signs[i] = -1
		}
	}

	// A single class cannot be separated; predict it everywhere.
	if positives == 0 || positives == nSamples {
		return &LinearModel{
			weights:   mat.NewVecDense(nFeatures, nil),
			intercept: signs[0],
		}, nil
	}

	// Samples are augmented with a constant column so the bias is
	// regularized with the weights.
	dim := nFeatures
	if s.fitIntercept {
		dim++
	}
	data := mat.NewDense(nSamples, dim, nil)
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			data.Set(i, j, X.At(i, j))
		}
		if s.fitIntercept {
			data.Set(i, nFeatures, 1)
		}
	}

	lambda := 1.0 / (s.C * float64(nSamples))
	w := mat.NewVecDense(dim, nil)
	rng := rand.New(rand.NewSource(s.randomState))

	t := 0
	for iter := 0; iter < s.maxIter; iter++ {
		violations := 0
		for _, i := range rng.Perm(nSamples) {
			t++
			eta := 1.0 / (lambda * float64(t))
			xi := data.RowView(i)
			margin := signs[i] * mat.Dot(w, xi)

			w.ScaleVec(1-eta*lambda, w)
			if margin < 1 {
				violations++
				w.AddScaledVec(w, eta*signs[i], xi)
			}
		}

		// projection onto the ball of radius 1/sqrt(lambda)
		if norm := mat.Norm(w, 2); norm > 0 {
			if limit := 1 / math.Sqrt(lambda); norm > limit {
				w.ScaleVec(limit/norm, w)
			}
		}

		if err := errors.CheckNumericalStability("LinearSVC.Fit", w.RawVector().Data, iter); err != nil {
			return nil, err
		}
		if violations == 0 {
			break
		}
	}

	weights := mat.NewVecDense(nFeatures, nil)
	for j := 0; j < nFeatures; j++ {
		weights.SetVec(j, w.AtVec(j))
	}
	intercept := 0.0
	if s.fitIntercept {
		intercept = w.AtVec(nFeatures)
	}

	return &LinearModel{weights: weights, intercept: intercept}, nil
}

// LinearModel is a fitted linear decision function w·x + b.
type LinearModel struct {
	weights   *mat.VecDense
	intercept float64
}

// Weights returns a copy of the learned coefficients.
func (m *LinearModel) Weights() []float64 {
	out := make([]float64, m.weights.Len())
	copy(out, m.weights.RawVector().Data)
	return out
}

// Intercept returns the learned bias.
func (m *LinearModel) Intercept() float64 {
	return m.intercept
}

// DecisionFunction returns the signed distance score of x.
func (m *LinearModel) DecisionFunction(x mat.Vector) (float64, error) {
	if x.Len() != m.weights.Len() {
		return 0, errors.NewDimensionError("LinearModel.DecisionFunction", m.weights.Len(), x.Len(), 1)
	}
	return mat.Dot(m.weights, x) + m.intercept, nil
}

// PredictOne returns true (spam) when the decision function is positive.
func (m *LinearModel) PredictOne(x mat.Vector) (bool, error) {
	score, err := m.DecisionFunction(x)
	if err != nil {
		return false, err
	}
	return score > 0, nil
}
