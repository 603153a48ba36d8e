// Package errors provides structured error handling for the epic
// progression core.
//
// Every public operation returns either nil or an *Error carrying a Code,
// a human-readable message, and optional metadata. The rules-engine codes
// (PREREQUISITE_NOT_MET, INSUFFICIENT_SKILL, CAPACITY_EXCEEDED,
// MAX_RANK_REACHED) identify the specific rule that blocked an operation;
// the generic codes cover storage and argument failures.
//
// Advancement preconditions are collected with ValidationBuilder so a
// failed operation reports every violated condition at once:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateMin("level", snapshot.Level, 20, vb)
//	errors.ValidateMin("experience_points", snapshot.ExperiencePoints, required, vb)
//	if err := vb.Build(); err != nil {
//		return nil, err
//	}
//
// The resulting error has code INVALID_ARGUMENT and a "validation_errors"
// meta map keyed by field name, suitable for the presentation layer to
// render condition by condition.
package errors
