// Package setup contains the one-time initial setup wizard use cases.
package setup

import "github.com/financas-app/backend/internal/domain/valueobject"

// Wizard is the finite-state sequence behind the setup flow: the fixed step
// table, the current index, and the accumulated field map. There is no other
// hidden state; forward and back are bounded increments of the index.
type Wizard struct {
	steps  []Step
	index  int
	values map[string]string
}

// NewWizard creates a wizard positioned at the first step.
func NewWizard() *Wizard {
	return &Wizard{
		steps:  Steps,
		values: make(map[string]string),
	}
}

// CurrentStep returns the step at the current index.
func (w *Wizard) CurrentStep() Step {
	return w.steps[w.index]
}

// StepIndex returns the zero-based current index.
func (w *Wizard) StepIndex() int {
	return w.index
}

// AtLastStep reports whether the wizard is on its final screen.
func (w *Wizard) AtLastStep() bool {
	return w.index == len(w.steps)-1
}

// Advance moves forward one step; it reports false at the last step.
func (w *Wizard) Advance() bool {
	if w.index >= len(w.steps)-1 {
		return false
	}
	w.index++
	return true
}

// Back moves back one step; it reports false at the first step.
func (w *Wizard) Back() bool {
	if w.index <= 0 {
		return false
	}
	w.index--
	return true
}

// Progress returns completion as a fraction of steps entered, 0.25 per step.
func (w *Wizard) Progress() float64 {
	return float64(w.index+1) / float64(len(w.steps))
}

// TypeValue applies the money mask to raw keystrokes for a field.
func (w *Wizard) TypeValue(key, raw string) {
	w.values[key] = valueobject.FormatKeystroke(raw)
}

// ClearValue empties a field.
func (w *Wizard) ClearValue(key string) {
	w.values[key] = ""
}

// Value returns the masked value of a field, empty when untouched.
func (w *Wizard) Value(key string) string {
	return w.values[key]
}

// Values returns a copy of the accumulated field map.
func (w *Wizard) Values() map[string]string {
	out := make(map[string]string, len(w.values))
	for k, v := range w.values {
		out[k] = v
	}
	return out
}
