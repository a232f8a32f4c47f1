// Package model provides state management for machine learning models.
package model

import (
	"sync"

	"github.com/YuminosukeSato/krr/pkg/errors"
)

// StateManager tracks the trained state of a model in a thread-safe manner.
type StateManager struct {
	mu sync.RWMutex

	fitted    bool
	nFeatures int
	nSamples  int
}

// NewStateManager creates a StateManager in the untrained state.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the model has been trained.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// SetFitted marks the model as trained on nSamples vectors of nFeatures dimensions.
func (s *StateManager) SetFitted(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
	s.nFeatures = nFeatures
	s.nSamples = nSamples
}

// Reset returns to the untrained state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.nFeatures = 0
	s.nSamples = 0
}

// Dimensions returns the shape seen during training.
func (s *StateManager) Dimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures, s.nSamples
}

// RequireFitted returns a NotFittedError naming modelName and method if the
// model has not been trained.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}

// ModelState is a snapshot of StateManager for serialization.
type ModelState struct {
	Fitted    bool `json:"fitted"`
	NFeatures int  `json:"n_features,omitempty"`
	NSamples  int  `json:"n_samples,omitempty"`
}

// GetState returns the current state.
func (s *StateManager) GetState() ModelState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ModelState{Fitted: s.fitted, NFeatures: s.nFeatures, NSamples: s.nSamples}
}

// SetState restores a state captured with GetState.
func (s *StateManager) SetState(state ModelState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = state.Fitted
	s.nFeatures = state.NFeatures
	s.nSamples = state.NSamples
}
