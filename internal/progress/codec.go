package progress

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	ErrInvalidState       = errors.New("invalid state")
	ErrUnsupportedVersion = errors.New("unsupported state version")
)

//go:embed state.schema.json
var stateSchemaJSON []byte

const stateSchemaURL = "schema://ailearn/state.json"

var stateSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(stateSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse state schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(stateSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(stateSchemaURL)
})

// Encode serializes s at the current schema version.
func Encode(s State) ([]byte, error) {
	s = s.Clone()
	s.SchemaVersion = SchemaVersion
	return json.Marshal(s)
}

// EncodeIndent is Encode formatted for people.
func EncodeIndent(s State) ([]byte, error) {
	s = s.Clone()
	s.SchemaVersion = SchemaVersion
	return json.MarshalIndent(s, "", "  ")
}

// Decode parses a stored blob of any known version, migrating it to the
// current one and validating it before use. Fields missing from old blobs
// take their Initial values.
func Decode(data []byte) (State, error) {
	raw, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return State{}, fmt.Errorf("%w: top level is not an object", ErrInvalidState)
	}

	obj, err = migrate(obj)
	if err != nil {
		return State{}, err
	}

	sch, err := stateSchema()
	if err != nil {
		return State{}, fmt.Errorf("state schema: %w", err)
	}
	if err := sch.Validate(obj); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	migrated, err := json.Marshal(obj)
	if err != nil {
		return State{}, fmt.Errorf("re-encode state: %w", err)
	}
	st := Initial()
	if err := json.Unmarshal(migrated, &st); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	st.fillEmpty()
	return st, nil
}

// migrations[v] upgrades a blob from version v to v+1.
var migrations = map[int]func(map[string]any) map[string]any{
	0: migrateV0,
}

func migrate(obj map[string]any) (map[string]any, error) {
	// Unversioned blobs may still carry the persistence wrapper
	// {"state": {...}, "version": 0}.
	if _, ok := obj["schemaVersion"]; !ok {
		if inner, ok := obj["state"].(map[string]any); ok {
			obj = inner
		}
	}

	v, err := versionOf(obj)
	if err != nil {
		return nil, err
	}
	if v > SchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	for ; v < SchemaVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			return nil, fmt.Errorf("%w: no migration from %d", ErrUnsupportedVersion, v)
		}
		obj = step(obj)
	}
	return obj, nil
}

func versionOf(obj map[string]any) (int, error) {
	raw, ok := obj["schemaVersion"]
	if !ok {
		return 0, nil
	}
	n, ok := raw.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: schemaVersion is %T", ErrInvalidState, raw)
	}
	v, err := n.Int64()
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: schemaVersion %s", ErrInvalidState, n)
	}
	return int(v), nil
}

// migrateV0 stamps the version and rounds fractional mastery values, which
// unversioned blobs could hold.
func migrateV0(obj map[string]any) map[string]any {
	obj["schemaVersion"] = json.Number("1")
	if mastery, ok := obj["lessonMastery"].(map[string]any); ok {
		for id, v := range mastery {
			n, ok := v.(json.Number)
			if !ok {
				continue
			}
			f, err := n.Float64()
			if err != nil {
				continue
			}
			mastery[id] = json.Number(fmt.Sprint(int(math.Round(f))))
		}
	}
	return obj
}
