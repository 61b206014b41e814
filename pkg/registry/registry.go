// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Load reads and parses the registry file. Callers decide how to treat a
// broken registry: worker-manager only warns, the updater tool fails.
func Load(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return &reg, nil
}

// Save writes the registry back with stable indentation, creating the
// parent directory when needed.
func (r *ActivityRegistry) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write registry %s: %w", path, err)
	}
	return nil
}

// Validate checks the declarations: unique non-empty IDs, required display
// fields, a known category, a parseable positive timeout, and a
// non-negative retry count.
func (r *ActivityRegistry) Validate() error {
	if len(r.Activities) == 0 {
		return fmt.Errorf("registry declares no activities")
	}

	seen := make(map[string]bool, len(r.Activities))
	for _, a := range r.Activities {
		if a.ID == "" {
			return fmt.Errorf("activity with empty id")
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate activity id %s", a.ID)
		}
		seen[a.ID] = true

		if a.DisplayName == "" {
			return fmt.Errorf("activity %s: displayName is required", a.ID)
		}
		if a.TaskType == "" {
			return fmt.Errorf("activity %s: taskType is required", a.ID)
		}
		if !KnownCategory(a.Category) {
			return fmt.Errorf("activity %s: unknown category %q, want one of %v", a.ID, a.Category, Categories)
		}
		if a.Timeout != "" {
			d, err := time.ParseDuration(a.Timeout)
			if err != nil || d <= 0 {
				return fmt.Errorf("activity %s: timeout %q is not a positive duration", a.ID, a.Timeout)
			}
		}
		if a.Retries < 0 {
			return fmt.Errorf("activity %s: retries must not be negative", a.ID)
		}
	}
	return nil
}

// TaskTypes returns the set of declared BPMN task types.
func (r *ActivityRegistry) TaskTypes() map[string]bool {
	types := make(map[string]bool, len(r.Activities))
	for _, a := range r.Activities {
		types[a.TaskType] = true
	}
	return types
}

// Find returns a pointer to the declared activity with the given id, so
// callers can update it in place before saving.
func (r *ActivityRegistry) Find(id string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].ID == id {
			return &r.Activities[i], true
		}
	}
	return nil, false
}
