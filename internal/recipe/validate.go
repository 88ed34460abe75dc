package recipe

import "math"

// Catalog is the read-only view of the ingredient catalog the validator needs.
type Catalog interface {
	IsValidGeneric(name string) bool
	IsValidSpecific(generic, specific string) bool
	IsValidAction(name string) bool
}

// Rule identifies one validation rule.
type Rule string

const (
	RuleGeneric  Rule = "generic"
	RuleSpecific Rule = "specific"
	RuleWeight   Rule = "weight"
	RuleAction   Rule = "action"
)

// User-facing reasons, one per rule.
const (
	ReasonGeneric  = "Selecciona un ingrediente genérico válido."
	ReasonSpecific = "Selecciona un ingrediente específico válido."
	ReasonWeight   = "El peso debe ser un número mayor que 0."
	ReasonAction   = "Selecciona una acción válida."
)

// ValidationResult is either Valid or Invalid with the first violated rule.
// The zero value is an invalid result with no rule; use Valid or Invalid.
type ValidationResult struct {
	valid  bool
	rule   Rule
	reason string
}

// Valid returns a passing result.
func Valid() ValidationResult {
	return ValidationResult{valid: true}
}

// Invalid returns a failing result for rule with the given reason.
func Invalid(rule Rule, reason string) ValidationResult {
	return ValidationResult{rule: rule, reason: reason}
}

// OK reports whether the draft passed every rule.
func (r ValidationResult) OK() bool { return r.valid }

// Rule returns the violated rule, or "" when valid.
func (r ValidationResult) Rule() Rule { return r.rule }

// Reason returns the user-facing message, or "" when valid.
func (r ValidationResult) Reason() string { return r.reason }

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r ValidationResult) Err() error {
	if r.valid {
		return nil
	}
	return &ValidationError{Rule: r.rule, Reason: r.reason}
}

// ValidationError carries a failed ValidationResult through error returns.
type ValidationError struct {
	Rule   Rule
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validate checks d against cat. Rules run in a fixed order and the first
// failure wins; later rules are not evaluated.
func Validate(cat Catalog, d Entry) ValidationResult {
	if d.Generic == "" || !cat.IsValidGeneric(d.Generic) {
		return Invalid(RuleGeneric, ReasonGeneric)
	}
	if d.Specific == "" || !cat.IsValidSpecific(d.Generic, d.Specific) {
		return Invalid(RuleSpecific, ReasonSpecific)
	}
	if math.IsNaN(d.Weight) || math.IsInf(d.Weight, 0) || d.Weight <= 0 {
		return Invalid(RuleWeight, ReasonWeight)
	}
	if d.Action == "" || !cat.IsValidAction(d.Action) {
		return Invalid(RuleAction, ReasonAction)
	}
	return Valid()
}
