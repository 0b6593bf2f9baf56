package storage

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/tracker_state.schema.json
var trackerStateSchema string

var (
	stateSchemaOnce sync.Once
	stateSchema     *jsonschema.Schema
	stateSchemaErr  error
)

func compiledStateSchema() (*jsonschema.Schema, error) {
	stateSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("tracker_state.schema.json", strings.NewReader(trackerStateSchema)); err != nil {
			stateSchemaErr = fmt.Errorf("add state schema: %w", err)
			return
		}
		stateSchema, stateSchemaErr = compiler.Compile("tracker_state.schema.json")
	})
	return stateSchema, stateSchemaErr
}

// validateStateBlob checks the raw JSON document against the embedded
// schema before it is unmarshalled into TrackerState. Schema failures are
// reported as ErrCorrupt so callers fall back to defaults.
func validateStateBlob(raw []byte) error {
	schema, err := compiledStateSchema()
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}
