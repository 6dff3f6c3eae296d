package missions

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// OperationName is the name of the operation in QueryDocument.
const OperationName = "MissionsQuery"

//go:embed schema.graphql
var schemaSDL string

// QueryDocument is the GraphQL document sent with every fetch.
//
//go:embed missions.graphql
var QueryDocument string

// ErrInvalidFind reports a find field the schema does not accept.
var ErrInvalidFind = errors.New("invalid find field")

var loadSchema = sync.OnceValues(func() (*ast.Schema, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSDL})
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	return schema, nil
})

// Schema returns the parsed missions schema.
func Schema() (*ast.Schema, error) {
	return loadSchema()
}

// FindFields lists the fields accepted by the MissionsFind input type.
func FindFields() []string {
	schema, err := Schema()
	if err != nil {
		return nil
	}
	def := schema.Types["MissionsFind"]
	if def == nil {
		return nil
	}
	fields := make([]string, 0, len(def.Fields))
	for _, f := range def.Fields {
		fields = append(fields, f.Name)
	}
	return fields
}

// ValidateFind checks that find names a MissionsFind field.
func ValidateFind(find *Find) error {
	if find == nil {
		return nil
	}
	field := strings.TrimSpace(find.Field)
	for _, name := range FindFields() {
		if name == field {
			return nil
		}
	}
	return fmt.Errorf("%w %q (want one of %s)", ErrInvalidFind, find.Field, strings.Join(FindFields(), ", "))
}

// parseOperation loads and validates QueryDocument against the schema.
func parseOperation(schema *ast.Schema) (*ast.OperationDefinition, error) {
	doc, errs := gqlparser.LoadQuery(schema, QueryDocument)
	if len(errs) > 0 {
		return nil, fmt.Errorf("validate query document: %w", errs)
	}
	op := doc.Operations.ForName(OperationName)
	if op == nil {
		return nil, fmt.Errorf("query document has no %s operation", OperationName)
	}
	return op, nil
}
