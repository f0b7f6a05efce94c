package subsetter

import (
	"fmt"

	"github.com/erraggy/oasubset/internal/severity"
)

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnMissingRoot indicates a caller-supplied root name with no
	// definition in the schema catalog.
	WarnMissingRoot WarningCategory = "missing_root"
	// WarnDanglingReference indicates a $ref target with no definition in
	// the schema catalog; the projector omits it from the output.
	WarnDanglingReference WarningCategory = "dangling_reference"
)

// SubsetWarning represents a structured non-fatal finding from a subset run.
type SubsetWarning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Name is the schema name the warning is about.
	Name string
	// Message is a human-readable description.
	Message string
	// Severity indicates warning severity (default: SeverityWarning).
	Severity severity.Severity
}

// String returns the formatted warning message.
func (w *SubsetWarning) String() string {
	return w.Message
}

// SubsetWarnings is a list of structured warnings.
type SubsetWarnings []*SubsetWarning

// Strings returns the warning messages.
func (ws SubsetWarnings) Strings() []string {
	if len(ws) == 0 {
		return nil
	}
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}

// CountByCategory returns the number of warnings in the given category.
func (ws SubsetWarnings) CountByCategory(category WarningCategory) int {
	n := 0
	for _, w := range ws {
		if w.Category == category {
			n++
		}
	}
	return n
}

// NewMissingRootWarning creates a warning for a root name absent from the
// schema catalog.
func NewMissingRootWarning(name string) *SubsetWarning {
	return &SubsetWarning{
		Category: WarnMissingRoot,
		Name:     name,
		Message:  fmt.Sprintf("root schema '%s' has no definition in the document", name),
		Severity: severity.SeverityWarning,
	}
}

// NewDanglingReferenceWarning creates a warning for a referenced name absent
// from the schema catalog.
func NewDanglingReferenceWarning(name string) *SubsetWarning {
	return &SubsetWarning{
		Category: WarnDanglingReference,
		Name:     name,
		Message:  fmt.Sprintf("referenced schema '%s' has no definition and will be omitted", name),
		Severity: severity.SeverityWarning,
	}
}
