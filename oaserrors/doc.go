// Package oaserrors provides structured error types for oasubset.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON parsing failures and structural issues
//   - ReferenceError: malformed $ref values in a schema definition
//   - EmptyResultError: a projection retained no paths and no schemas
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.As
//
//	result, err := subsetter.SubsetWithOptions(subsetter.WithFilePath("api.yaml"))
//	if err != nil {
//	    var refErr *oaserrors.ReferenceError
//	    if errors.As(err, &refErr) {
//	        fmt.Println("bad $ref at", refErr.NodePath)
//	    }
//	}
package oaserrors
