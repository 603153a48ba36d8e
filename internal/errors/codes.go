package errors

// Code represents an error code
type Code string

// Error codes. The first block mirrors the generic codes every service in
// this module reports; the second block belongs to the progression rules
// engine.
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// Rules-engine codes
	CodePrerequisiteNotMet Code = "PREREQUISITE_NOT_MET"
	CodeInsufficientSkill  Code = "INSUFFICIENT_SKILL"
	CodeCapacityExceeded   Code = "CAPACITY_EXCEEDED"
	CodeMaxRankReached     Code = "MAX_RANK_REACHED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
