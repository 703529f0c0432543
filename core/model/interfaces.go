package model

import "gonum.org/v1/gonum/mat"

// BinaryModel is a fitted model answering spam/ham for one feature vector.
type BinaryModel interface {
	// PredictOne returns true for spam.
	PredictOne(x mat.Vector) (bool, error)
}

// Fitter is the injected model-fitting capability. X holds one sample per
// row; y is a column vector with 1 for spam and 0 for ham.
type Fitter interface {
	Fit(X, y mat.Matrix) (BinaryModel, error)
}

// FitterFunc adapts a function to the Fitter interface.
type FitterFunc func(X, y mat.Matrix) (BinaryModel, error)

// Fit calls f(X, y).
func (f FitterFunc) Fit(X, y mat.Matrix) (BinaryModel, error) {
	return f(X, y)
}
