package model

import (
	"testing"

	"github.com/kpuputti/spamham/pkg/errors"
)

func TestStateManager(t *testing.T) {
	s := NewStateManager("DummyClassifier")

	if s.State() != Untrained {
		t.Fatalf("initial state = %v, want untrained", s.State())
	}

	err := s.RequireTrained("Classify")
	var notTrained *errors.NotTrainedError
	if !errors.As(err, &notTrained) {
		t.Fatalf("expected NotTrainedError, got %v", err)
	}
	if notTrained.Classifier != "DummyClassifier" || notTrained.Method != "Classify" {
		t.Errorf("unexpected error fields: %+v", notTrained)
	}
	if err := s.RequireUntrained(); err != nil {
		t.Errorf("RequireUntrained() before training = %v", err)
	}

	s.SetTrained(57, 1200)

	if !s.IsTrained() || s.State().String() != "trained" {
		t.Error("expected trained state")
	}
	if err := s.RequireTrained("Classify"); err != nil {
		t.Errorf("RequireTrained() after training = %v", err)
	}
	var already *errors.AlreadyTrainedError
	if !errors.As(s.RequireUntrained(), &already) {
		t.Error("expected AlreadyTrainedError after training")
	}
	if f, n := s.GetDimensions(); f != 57 || n != 1200 {
		t.Errorf("GetDimensions() = %d, %d", f, n)
	}
}
