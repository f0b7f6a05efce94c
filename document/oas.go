package document

import "github.com/erraggy/oasubset/oaserrors"

// OASVersion is the major OpenAPI Specification series of a document. The
// subsetting engine only needs to know where the schema catalog lives, so
// unlike a full parser it does not distinguish patch versions.
type OASVersion int

const (
	// OASVersionUnknown represents an unknown or missing OAS version
	OASVersionUnknown OASVersion = iota
	// OASVersion2 OpenAPI Specification 2.0 (Swagger)
	OASVersion2
	// OASVersion3 OpenAPI Specification 3.x
	OASVersion3
)

// String returns the string representation of the version series.
func (v OASVersion) String() string {
	switch v {
	case OASVersion2:
		return "2.0"
	case OASVersion3:
		return "3.x"
	default:
		return "unknown"
	}
}

// VersionKey returns the top-level key that declares the version:
// "swagger" for 2.0, "openapi" for 3.x.
func (v OASVersion) VersionKey() string {
	if v == OASVersion2 {
		return "swagger"
	}
	return "openapi"
}

// DetectVersion inspects the document's top-level version field.
// A document carrying both fields is treated as 3.x.
func DetectVersion(doc *Node) (OASVersion, error) {
	if doc == nil || doc.Kind() != KindMapping {
		return OASVersionUnknown, &oaserrors.ParseError{
			Message: "document root is not a mapping",
		}
	}
	if doc.Has("openapi") {
		return OASVersion3, nil
	}
	if doc.Has("swagger") {
		return OASVersion2, nil
	}
	return OASVersionUnknown, &oaserrors.ParseError{
		Message: "document has neither an 'openapi' nor a 'swagger' field",
	}
}

// SchemaSectionPath returns the key path of the schema catalog:
// ["definitions"] for 2.0, ["components", "schemas"] for 3.x.
func SchemaSectionPath(v OASVersion) []string {
	if v == OASVersion2 {
		return []string{"definitions"}
	}
	return []string{"components", "schemas"}
}

// SchemaDefinitions returns the document's schema catalog mapping, or false
// when the section is absent or not a mapping.
func SchemaDefinitions(doc *Node, v OASVersion) (*Node, bool) {
	current := doc
	for _, key := range SchemaSectionPath(v) {
		if current == nil {
			return nil, false
		}
		next, ok := current.Get(key)
		if !ok {
			return nil, false
		}
		current = next
	}
	if current == nil || current.Kind() != KindMapping {
		return nil, false
	}
	return current, true
}

// Paths returns the document's paths mapping, or false when absent or not a
// mapping.
func Paths(doc *Node) (*Node, bool) {
	if doc == nil {
		return nil, false
	}
	paths, ok := doc.Get("paths")
	if !ok || paths.Kind() != KindMapping {
		return nil, false
	}
	return paths, true
}
