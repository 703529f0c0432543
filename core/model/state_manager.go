// Package model provides the training state machine shared by classifiers
// and the injected model-fitting capability.
package model

import (
	"sync"

	"github.com/kpuputti/spamham/pkg/errors"
)

// State is the lifecycle position of a classifier.
type State int

const (
	// Untrained: data has been split, Train has not run.
	Untrained State = iota
	// Trained: Train completed; Classify is allowed.
	Trained
)

// String returns the state name.
func (s State) String() string {
	if s == Trained {
		return "trained"
	}
	return "untrained"
}

// StateManager tracks whether a classifier has been trained, in a
// thread-safe manner. Training is allowed exactly once.
type StateManager struct {
	name  string
	state State
	mu    sync.RWMutex

	NFeatures int
	NSamples  int
}

// NewStateManager creates a StateManager for the named classifier.
func NewStateManager(name string) *StateManager {
	return &StateManager{name: name, state: Untrained}
}

// State returns the current state.
func (s *StateManager) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsTrained reports whether Train has completed.
func (s *StateManager) IsTrained() bool {
	return s.State() == Trained
}

// RequireTrained returns a NotTrainedError unless the classifier is trained.
func (s *StateManager) RequireTrained(method string) error {
	if !s.IsTrained() {
		return errors.NewNotTrainedError(s.name, method)
	}
	return nil
}

// RequireUntrained returns an AlreadyTrainedError once training completed.
func (s *StateManager) RequireUntrained() error {
	if s.IsTrained() {
		return errors.NewAlreadyTrainedError(s.name)
	}
	return nil
}

// SetTrained records a completed training run on nSamples datums with
// nFeatures features each.
func (s *StateManager) SetTrained(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Trained
	s.NFeatures = nFeatures
	s.NSamples = nSamples
}

// GetDimensions returns the number of features and samples seen in training.
func (s *StateManager) GetDimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NFeatures, s.NSamples
}
