package restwire

// Reducer merges independent field outcomes into a single result: the target
// struct when every outcome is success or absent, or the union of all
// violation lists when any outcome failed. The union is a flat concatenation,
// commutative and associative over violation lists, so sibling evaluation
// order never changes the reported set.
type Reducer struct {
	violations Violations
	failed     bool
}

// Collect folds one outcome into the reducer. Success yields the value,
// absence yields the declared zero value, and failure records the violations
// and yields the zero value. A caller must check Failed before treating the
// collected values as a valid struct.
func Collect[T any](r *Reducer, o Outcome[T]) T {
	switch o.state {
	case outcomeSuccess:
		return o.value
	case outcomeFailure:
		r.failed = true
		r.violations = AppendViolations(r.violations, o.violations...)
	}
	var zero T
	return zero
}

// Failed reports whether any collected outcome was a failure.
func (r *Reducer) Failed() bool { return r.failed }

// Violations returns the accumulated union of all failure outcomes.
func (r *Reducer) Violations() Violations { return r.violations }
