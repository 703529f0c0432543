// Package errors provides the error taxonomy and warning channel shared by
// every spamham package. Errors are plain struct types carrying structured
// context; constructors attach a stack trace through cockroachdb/errors.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("spamham-warning: %v\n", w)
	}
	// set by pkg/log once a zerolog logger exists (avoids an import cycle)
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the fallback warning handler.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs the structured warning sink.
// Passing nil restores the fallback handler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. The zerolog sink wins when installed.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warnings
//
// ===========================================================================

// UndefinedMetricWarning is raised when a metric has a zero denominator and
// a sentinel value is reported instead, e.g. precision with no positive
// predictions.
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // value reported under this condition
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning creates an UndefinedMetricWarning.
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	Structured errors
//
// ===========================================================================

// UnknownClassifierError is returned when a classifier is requested by a
// name the registry does not know.
type UnknownClassifierError struct {
	Name  string
	Known []string
}

func (e *UnknownClassifierError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("spamham: unknown classifier: %s", e.Name)
	}
	return fmt.Sprintf("spamham: unknown classifier: %s (known: %v)", e.Name, e.Known)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *UnknownClassifierError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("name", e.Name).
		Strs("known", e.Known).
		Str("type", "UnknownClassifierError")
}

// NewUnknownClassifierError creates an UnknownClassifierError with a stack trace.
func NewUnknownClassifierError(name string, known []string) error {
	err := &UnknownClassifierError{Name: name, Known: known}
	return errors.WithStack(err)
}

// NotTrainedError is returned when Classify is called on a classifier that
// has not been trained.
type NotTrainedError struct {
	Classifier string
	Method     string
}

func (e *NotTrainedError) Error() string {
	return fmt.Sprintf("spamham: %s: classifier is not trained yet. Call Train() before using %s()", e.Classifier, e.Method)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NotTrainedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("classifier", e.Classifier).
		Str("method", e.Method).
		Str("type", "NotTrainedError")
}

// NewNotTrainedError creates a NotTrainedError with a stack trace.
func NewNotTrainedError(classifier, method string) error {
	err := &NotTrainedError{Classifier: classifier, Method: method}
	return errors.WithStack(err)
}

// AlreadyTrainedError is returned by a second Train call on one instance.
type AlreadyTrainedError struct {
	Classifier string
}

func (e *AlreadyTrainedError) Error() string {
	return fmt.Sprintf("spamham: %s: classifier is already trained; create a new instance to retrain", e.Classifier)
}

// NewAlreadyTrainedError creates an AlreadyTrainedError with a stack trace.
func NewAlreadyTrainedError(classifier string) error {
	err := &AlreadyTrainedError{Classifier: classifier}
	return errors.WithStack(err)
}

// CorrelationError reports two parallel sequences that cannot be matched
// row by row: either their lengths differ or the ids at one position differ.
type CorrelationError struct {
	Index    int
	OutputID int
	TruthID  int
	Reason   string
}

func (e *CorrelationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("spamham: correlation failed: %s", e.Reason)
	}
	return fmt.Sprintf("spamham: correlation failed at row %d: output id %d does not match labeled id %d",
		e.Index, e.OutputID, e.TruthID)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *CorrelationError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("index", e.Index).
		Int("output_id", e.OutputID).
		Int("truth_id", e.TruthID).
		Str("reason", e.Reason).
		Str("type", "CorrelationError")
}

// NewCorrelationError creates a CorrelationError for an id mismatch.
func NewCorrelationError(index, outputID, truthID int) error {
	err := &CorrelationError{Index: index, OutputID: outputID, TruthID: truthID}
	return errors.WithStack(err)
}

// NewLengthCorrelationError creates a CorrelationError for sequences of
// different length.
func NewLengthCorrelationError(outputLen, truthLen int) error {
	err := &CorrelationError{
		Index:  -1,
		Reason: fmt.Sprintf("output has %d rows but labeled data has %d", outputLen, truthLen),
	}
	return errors.WithStack(err)
}

// EmptyEvaluationSetError is returned when accuracy would be computed over
// zero samples.
type EmptyEvaluationSetError struct {
	Op string
}

func (e *EmptyEvaluationSetError) Error() string {
	return fmt.Sprintf("spamham: %s: evaluation set is empty", e.Op)
}

// NewEmptyEvaluationSetError creates an EmptyEvaluationSetError with a stack trace.
func NewEmptyEvaluationSetError(op string) error {
	err := &EmptyEvaluationSetError{Op: op}
	return errors.WithStack(err)
}

// DimensionError is returned when a feature vector does not have the
// length the dataset or model expects.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("spamham: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError is returned when a configuration or hyperparameter value
// is out of range.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("spamham: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError is returned when an argument has an unusable value.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("spamham: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ParseError reports a malformed line in the whitespace separated record
// format.
type ParseError struct {
	Line   int
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("spamham: line %d: %s: %q", e.Line, e.Reason, e.Token)
	}
	return fmt.Sprintf("spamham: line %d: %s", e.Line, e.Reason)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ParseError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("line", e.Line).
		Str("token", e.Token).
		Str("reason", e.Reason).
		Str("type", "ParseError")
}

// NewParseError creates a ParseError with a stack trace.
func NewParseError(line int, token, reason string) error {
	err := &ParseError{Line: line, Token: token, Reason: reason}
	return errors.WithStack(err)
}

// ModelError wraps a failure of an injected model-fitting capability.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("spamham: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("spamham: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when a non-empty input is required.
	ErrEmptyData = New("empty data")
)
