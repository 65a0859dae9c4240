// Package golden compares generated output against files kept in testdata.
package golden

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Ext is the file extension for golden files.
const Ext = ".golden"

// Manager handles golden file storage and comparison.
type Manager struct {
	baseDir    string
	updateMode bool
}

// NewManager creates a manager rooted at baseDir. In update mode mismatched
// or missing golden files are rewritten instead of reported.
func NewManager(baseDir string, updateMode bool) *Manager {
	return &Manager{
		baseDir:    baseDir,
		updateMode: updateMode,
	}
}

// Result represents the result of a golden comparison.
type Result struct {
	Passed     bool
	Message    string
	Diff       string
	IsNew      bool
	WasUpdated bool
	// Err is set when the golden file could not be read or written.
	Err error
}

// Path returns the golden file for name.
func (m *Manager) Path(name string) string {
	return filepath.Join(m.baseDir, name+Ext)
}

// Compare compares actual against the golden file for name.
func (m *Manager) Compare(name string, actual []byte) *Result {
	return m.CompareFile(m.Path(name), actual)
}

// CompareFile compares actual against the file at path.
func (m *Manager) CompareFile(path string, actual []byte) *Result {
	result := &Result{}

	expected, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if !m.updateMode {
			result.Message = fmt.Sprintf("golden file %s does not exist (run with -update to create)", path)
			return result
		}
		if err := m.write(path, actual); err != nil {
			result.Err = err
			result.Message = fmt.Sprintf("failed to create golden file: %v", err)
			return result
		}
		result.Passed = true
		result.IsNew = true
		result.Message = "new golden file created"
		return result
	}
	if err != nil {
		result.Err = err
		result.Message = fmt.Sprintf("failed to read golden file: %v", err)
		return result
	}

	if string(expected) == string(actual) {
		result.Passed = true
		return result
	}

	if m.updateMode {
		if err := m.write(path, actual); err != nil {
			result.Err = err
			result.Message = fmt.Sprintf("failed to update golden file: %v", err)
			return result
		}
		result.Passed = true
		result.WasUpdated = true
		result.Message = "golden file updated"
		return result
	}

	result.Message = "golden mismatch"
	result.Diff = Diff(string(expected), string(actual))
	return result
}

// Diff renders a line diff between want and got, (-want +got).
func Diff(want, got string) string {
	return cmp.Diff(strings.Split(want, "\n"), strings.Split(got, "\n"))
}

func (m *Manager) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
