package log

// Model and operation context.
const (
	// ModelNameKey identifies the classifier variant, e.g. "DummyClassifier".
	ModelNameKey = "model.name"

	// EstimatorIDKey identifies one classifier instance (a UUID).
	EstimatorIDKey = "estimator.id"

	// OperationKey names the operation: see the Operation* values.
	OperationKey = "ml.operation"

	// ComponentKey names the package doing the work, e.g. "pipeline".
	ComponentKey = "ml.component"

	// PhaseKey is the lifecycle phase: see the Phase* values.
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	SamplesKey    = "data.samples"
	FeaturesKey   = "data.features"
	TrainKey      = "data.train"
	ValidationKey = "data.validation"
	TestKey       = "data.test"
	SplitModeKey  = "data.split_mode"
	PathKey       = "data.path"
)

// Metrics and timing.
const (
	DurationMsKey = "perf.duration_ms"
	AccuracyKey   = "metrics.accuracy"
	PrecisionKey  = "metrics.precision"
	RecallKey     = "metrics.recall"

	// FalsePositivesKey counts ham samples classified as spam.
	FalsePositivesKey = "metrics.false_positives"
	IterationKey      = "training.iteration"
)

// Predictions.
const (
	PredsKey     = "preds.count"
	ThresholdKey = "preds.threshold"
)

// Error context.
const (
	ErrorKey      = "error"
	ErrorTypeKey  = "error.type"
	StacktraceKey = "error.stacktrace"
)

// Hyperparameters and configuration.
const (
	RegularizationKey = "hyperparams.regularization"
	SpamColumnsKey    = "hyperparams.spam_columns"
	RandomSeedKey     = "config.random_seed"
	ConfigPathKey     = "config.path"
)

// Standard attribute values.
const (
	OperationSplit    = "split"
	OperationTrain    = "train"
	OperationClassify = "classify"
	OperationEvaluate = "evaluate"
	OperationValidate = "validate"

	PhaseTraining   = "training"
	PhaseValidation = "validation"
	PhaseInference  = "inference"
)
