// Package spamham is a small experimental harness for binary spam/ham
// classification.
//
// Labeled and partially labeled rows of integer features are read from
// text files, split into training, validation and test subsets, and fed to
// one of several interchangeable classifiers. The trained classifier is
// scored on held-out data by accuracy, precision and recall.
//
// # Packages
//
//   - dataset: Datum, Label, the partitioner and the record format
//   - classifier: the Classifier contract, its variants and the name registry
//   - svm: a linear SVM used as the default model fitter
//   - metrics: Evaluate and Validate
//   - report: text and chart output of metrics
//   - config: YAML run configuration
//   - pipeline: the train, classify and validate runs
//   - pkg/errors, pkg/log: error taxonomy and structured logging
//
// # Quick Start
//
//	ds, err := dataset.ReadFile("train.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := classifier.New("DummyClassifier", ds, classifier.WithSeed(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := c.Train(); err != nil {
//	    log.Fatal(err)
//	}
//
//	m, err := metrics.Evaluate(c, c.Split().Validation)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("accuracy %.2f%%, precision %.2f%%, recall %.2f%%\n",
//	    m.Accuracy, m.Precision, m.Recall)
//
// The same runs are available from the command line:
//
//	spamham train DummyClassifier train.txt
//	spamham classify svm train.txt data.txt out.txt
//	spamham validate out.txt labeled.txt
//
// # Error Handling
//
// Errors are typed and carry a stack trace; test for them with errors.As:
//
//	var notTrained *errors.NotTrainedError
//	if errors.As(err, &notTrained) {
//	    // call Train first
//	}
package spamham
