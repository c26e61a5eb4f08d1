package dto

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema checks a request body's shape before it is decoded into a DTO.
type Schema struct {
	name   string
	schema *jsonschema.Schema
}

// Request body schemas.
var (
	CreateItemSchema          = mustCompile("create_item.json")
	UpdateItemSchema          = mustCompile("update_item.json")
	RegisterProgressionSchema = mustCompile("register_progression.json")
)

func mustCompile(file string) *Schema {
	raw, err := schemaFS.ReadFile("schemas/" + file)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", file, err))
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	url := "mem://schemas/" + file
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", file, err))
	}

	s, err := compiler.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", file, err))
	}
	return &Schema{name: file, schema: s}
}

// bodyField is the field name used for errors about the body as a whole.
const bodyField = "body"

// Decode reads one JSON document from r, checks it against the schema and
// decodes it into dst. Every failure is a *domain.ValidationError.
func (s *Schema) Decode(r io.Reader, dst any) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fieldError(bodyField, "could not be read")
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fieldError(bodyField, "invalid JSON")
	}

	if err := s.schema.Validate(doc); err != nil {
		return schemaError(err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fieldError(bodyField, "invalid JSON")
	}
	return nil
}

func fieldError(field, msg string) *domain.ValidationError {
	return &domain.ValidationError{Fields: map[string]string{field: msg}}
}

// schemaError flattens the leaf causes of a schema failure into one message
// per field. The first message for a field wins.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fieldError(bodyField, err.Error())
	}

	fields := make(map[string]string)
	collectLeaves(ve, fields)
	if len(fields) == 0 {
		fields[bodyField] = ve.Message
	}
	return &domain.ValidationError{Fields: fields}
}

// quotedName matches the property names listed in a "required" failure.
var quotedName = regexp.MustCompile(`'([^']+)'`)

func collectLeaves(ve *jsonschema.ValidationError, fields map[string]string) {
	if len(ve.Causes) == 0 {
		if strings.HasSuffix(ve.KeywordLocation, "/required") {
			for _, m := range quotedName.FindAllStringSubmatch(ve.Message, -1) {
				fields[m[1]] = domain.MsgRequired
			}
			return
		}
		field := strings.TrimPrefix(ve.InstanceLocation, "/")
		if field == "" {
			field = bodyField
		}
		if _, seen := fields[field]; !seen {
			fields[field] = ve.Message
		}
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, fields)
	}
}
