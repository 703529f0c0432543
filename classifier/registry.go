package classifier

import (
	"sort"

	"github.com/kpuputti/spamham/dataset"
	"github.com/kpuputti/spamham/pkg/errors"
	"github.com/kpuputti/spamham/svm"
)

// DerivedC is the regularization of the DerivedSVMClassifier variant.
const DerivedC = 0.1

// Factory builds a classifier over ds.
type Factory func(ds *dataset.Dataset, opts ...Option) (Classifier, error)

var registry = map[string]Factory{}

func init() {
	random := func(ds *dataset.Dataset, opts ...Option) (Classifier, error) {
		return NewRandom(ds, opts...), nil
	}
	allSpam := func(ds *dataset.Dataset, opts ...Option) (Classifier, error) {
		return NewAllSpam(ds, opts...), nil
	}
	allHam := func(ds *dataset.Dataset, opts ...Option) (Classifier, error) {
		return NewAllHam(ds, opts...), nil
	}
	majority := func(ds *dataset.Dataset, opts ...Option) (Classifier, error) {
		return NewMajorityField(ds, opts...)
	}
	linearSVM := func(ds *dataset.Dataset, opts ...Option) (Classifier, error) {
		return NewSVM("SVMClassifier", ds, opts...), nil
	}
	derivedSVM := func(ds *dataset.Dataset, opts ...Option) (Classifier, error) {
		return NewSVM("DerivedSVMClassifier", ds, append(opts[:len(opts):len(opts)], WithC(DerivedC))...), nil
	}

	for name, f := range map[string]Factory{
		"RandomClassifier":     random,
		"random":               random,
		"AllSpamClassifier":    allSpam,
		"allspam":              allSpam,
		"AllHamClassifier":     allHam,
		"allham":               allHam,
		"DummyClassifier":      majority,
		"dummy":                majority,
		"majority":             majority,
		"SVMClassifier":        linearSVM,
		"svm":                  linearSVM,
		"DerivedSVMClassifier": derivedSVM,
		"derivedsvm":           derivedSVM,
	} {
		Register(name, f)
	}
}

// Register adds f under name, replacing any previous entry. It is meant to
// be called from init functions.
func Register(name string, f Factory) {
	registry[name] = f
}

// Names returns every registered name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the classifier registered under name. The dataset is split
// immediately; the returned classifier is untrained.
func New(name string, ds *dataset.Dataset, opts ...Option) (Classifier, error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.NewUnknownClassifierError(name, Names())
	}
	return f(ds, opts...)
}

// NewSVM creates a Statistical classifier backed by a linear SVM unless a
// Fitter was injected with WithFitter.
func NewSVM(name string, ds *dataset.Dataset, opts ...Option) *Statistical {
	o := buildOptions(opts)
	if o.fitter == nil {
		svmOpts := []svm.Option{svm.WithRandomState(o.seed)}
		if o.c > 0 {
			svmOpts = append(svmOpts, svm.WithC(o.c))
		}
		if o.maxIter > 0 {
			svmOpts = append(svmOpts, svm.WithMaxIter(o.maxIter))
		}
		opts = append(opts[:len(opts):len(opts)], WithFitter(svm.NewLinearSVC(svmOpts...)))
	}
	return NewStatistical(name, ds, opts...)
}
