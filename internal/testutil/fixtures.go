// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"testing"

	"github.com/erraggy/oasubset/document"
)

// MustParse parses YAML/JSON source into a document tree, failing the test on
// error.
func MustParse(t *testing.T, src string) *document.Node {
	t.Helper()
	node, err := document.Parse([]byte(src))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return node
}

// PetstoreOAS3 returns a small OAS 3.x document with two paths and a schema
// catalog containing a self-referential schema (Pet.friends), a chain
// (Order -> Pet -> Category), and an unreferenced schema (Unused).
func PetstoreOAS3(t *testing.T) *document.Node {
	t.Helper()
	return MustParse(t, `
openapi: 3.0.3
info:
  title: Petstore
  description: |
    A sample API used by the test suite.
    Spans multiple lines on purpose.
  version: 1.2.3
servers:
  - url: https://api.example.com/v1
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        '200':
          description: pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/Pet'
  /orders:
    post:
      operationId: createOrder
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Order'
      responses:
        '201':
          description: created
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
        category:
          $ref: '#/components/schemas/Category'
        friends:
          type: array
          items:
            $ref: '#/components/schemas/Pet'
    Category:
      type: object
      properties:
        parent:
          $ref: '#/components/schemas/Category'
    Order:
      type: object
      properties:
        pet:
          $ref: '#/components/schemas/Pet'
        status:
          type: string
    Unused:
      type: object
`)
}

// PetstoreOAS2 returns the OAS 2.0 sibling of PetstoreOAS3 with the schema
// catalog under "definitions".
func PetstoreOAS2(t *testing.T) *document.Node {
	t.Helper()
	return MustParse(t, `
swagger: "2.0"
info:
  title: Petstore
  version: 1.0.0
host: api.example.com
basePath: /v1
schemes:
  - https
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        '200':
          description: pets
          schema:
            type: array
            items:
              $ref: '#/definitions/Pet'
definitions:
  Pet:
    type: object
    properties:
      category:
        $ref: '#/definitions/Category'
  Category:
    type: object
  Unused:
    type: object
`)
}

// SchemaCatalog parses a YAML mapping of schema name to definition, for
// driving the resolver directly without a surrounding document.
func SchemaCatalog(t *testing.T, src string) *document.Node {
	t.Helper()
	return MustParse(t, src)
}
