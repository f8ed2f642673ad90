package domain

import "fmt"

// FieldKey addresses a single input field within a step. Using a
// structured key instead of a concatenated string keeps error maps
// stable when items are removed or reindexed.
type FieldKey struct {
	Step  Step   `json:"step"`
	Index int    `json:"index"`
	Field string `json:"field"`
}

// StepField builds a key for a step-level field without an item index.
func StepField(step Step, field string) FieldKey {
	return FieldKey{Step: step, Field: field}
}

// ItemField builds a key for a field of the item at the given index.
func ItemField(step Step, index int, field string) FieldKey {
	return FieldKey{Step: step, Index: index, Field: field}
}

// String renders the key for display and logging.
func (k FieldKey) String() string {
	return fmt.Sprintf("%s[%d].%s", k.Step, k.Index, k.Field)
}

// FieldErrors maps input fields to human-readable validation messages.
type FieldErrors map[FieldKey]string

// ForStep returns the subset of errors belonging to the given step.
func (e FieldErrors) ForStep(step Step) FieldErrors {
	out := FieldErrors{}
	for k, msg := range e {
		if k.Step == step {
			out[k] = msg
		}
	}
	return out
}

// ClearStep removes every error belonging to the given step.
func (e FieldErrors) ClearStep(step Step) {
	for k := range e {
		if k.Step == step {
			delete(e, k)
		}
	}
}
