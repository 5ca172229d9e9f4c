package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "lockbox://config.schema.json"

//go:embed config.schema.json
var schemaJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func fileSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateFile checks decoded TOML against the embedded schema. Keys are
// compared in lower case so PORT and port are treated alike.
func validateFile(raw map[string]interface{}) error {
	schema, err := fileSchema()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCompileSchema, err)
	}

	normalized := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		normalized[strings.ToLower(k)] = v
	}

	// round-trip through JSON so numbers arrive as json.Number
	data, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfigFile, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfigFile, err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("%s: %s", ErrMsgInvalidConfigFile, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var msgs []string
	collectCauses(verr, &msgs)
	if len(msgs) == 0 {
		return verr.Error()
	}
	return strings.Join(msgs, "; ")
}

func collectCauses(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		location := "/" + strings.Join(err.InstanceLocation, "/")
		keyword := "schema"
		if err.ErrorKind != nil && len(err.ErrorKind.KeywordPath()) > 0 {
			keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
		}
		*msgs = append(*msgs, fmt.Sprintf("at %s: %s validation failed", location, keyword))
		return
	}
	for _, cause := range err.Causes {
		collectCauses(cause, msgs)
	}
}
