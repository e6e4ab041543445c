package validation

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()

	schemaPath := writeFile(t, tmpDir, "test.schema.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer", "minimum": 0}
		},
		"required": ["name"]
	}`)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "optional field omitted", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "John", "age": "thirty"}`, errorMsg: "/age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, errorMsg: ErrContextParseData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := writeFile(t, tmpDir, "data.json", tt.data)
			err := v.ValidateFile(dataPath, schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()

	dataPath := writeFile(t, tmpDir, "data.json", `{}`)
	err := v.ValidateFile(dataPath, "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextLoadSchema)

	schemaPath := writeFile(t, tmpDir, "s.schema.json", `{"type": "object"}`)
	err = v.ValidateFile(filepath.Join(tmpDir, "nonexistent.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextReadDataFile)
}

func TestSchemaValidator_JackpotSchema(t *testing.T) {
	v := NewSchemaValidator()

	valid := []byte(`{
		"version": "1.0",
		"jackpots": [
			{
				"jackpot_id": "jp-fixed",
				"initial_pool_value": "1000.00",
				"contribution": {"type": "FIXED", "percentage": "5"},
				"reward": {"type": "FIXED", "chance": "1"}
			},
			{
				"jackpot_id": "jp-variable",
				"initial_pool_value": "2000",
				"contribution": {"type": "VARIABLE", "base_percentage": "10", "decay_rate": "0.1"},
				"reward": {"type": "VARIABLE", "base_chance": "0.5", "increment": "2", "threshold": "5000"}
			}
		]
	}`)
	require.NoError(t, v.ValidateBytes(valid, SchemaPathJackpots))

	tests := []struct {
		name string
		data string
	}{
		{
			name: "fixed contribution without percentage",
			data: `{"version": "1.0", "jackpots": [{"jackpot_id": "a", "initial_pool_value": "1",
				"contribution": {"type": "FIXED"}, "reward": {"type": "FIXED", "chance": "1"}}]}`,
		},
		{
			name: "unknown reward type",
			data: `{"version": "1.0", "jackpots": [{"jackpot_id": "a", "initial_pool_value": "1",
				"contribution": {"type": "FIXED", "percentage": "5"}, "reward": {"type": "PROGRESSIVE"}}]}`,
		},
		{
			name: "money as number",
			data: `{"version": "1.0", "jackpots": [{"jackpot_id": "a", "initial_pool_value": 1000,
				"contribution": {"type": "FIXED", "percentage": "5"}, "reward": {"type": "FIXED", "chance": "1"}}]}`,
		},
		{
			name: "empty jackpot list",
			data: `{"version": "1.0", "jackpots": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SchemaPathJackpots)
			require.Error(t, err)
			assert.Contains(t, err.Error(), ErrMsgSchemaValidation)
		})
	}
}

func TestSchemaValidator_ConcurrentUse(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "s.schema.json", `{"type": "object"}`)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, v.ValidateBytes([]byte(`{}`), schemaPath))
		}()
	}
	wg.Wait()
}
