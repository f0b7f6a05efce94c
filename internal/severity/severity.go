// Package severity provides severity level constants for warnings reported
// by the resolver and subsetter packages.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates the severity level of a reported issue.
type Severity int

const (
	// SeverityError indicates a condition that aborts the run, such as a
	// structurally malformed $ref.
	SeverityError Severity = iota

	// SeverityWarning indicates a non-fatal degradation: a missing root or a
	// dangling reference that the projector will silently omit.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
