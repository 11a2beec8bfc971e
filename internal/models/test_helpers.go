package models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// GetFixturePath returns the absolute path to a fixture file in the "testdata" directory relative to the project's root.
func GetFixturePath(t *testing.T, fixturePath string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("..", "..", "testdata", fixturePath))
	if err != nil {
		t.Fatalf("Failed to get absolute path to testdata/%s: %v", fixturePath, err)
	}

	return absPath
}

// LoadLineFixture decodes testdata/information/<code>.json.
func LoadLineFixture(t *testing.T, code string) *LineDetail {
	t.Helper()

	raw, err := os.ReadFile(GetFixturePath(t, filepath.Join("information", code+".json")))
	if err != nil {
		t.Fatalf("Failed to read line fixture %s: %v", code, err)
	}

	var detail LineDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		t.Fatalf("Failed to decode line fixture %s: %v", code, err)
	}
	return &detail
}
