// cmd/tools/registry-updater/main.go
//
// Maintains configs/activity-registry.json, the declared activity set for
// the benchmark-report worker fleet. worker-manager warns at startup about
// any registered worker missing from this file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"benchmark-workers/pkg/registry"
)

const defaultRegistryPath = "configs/activity-registry.json"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "add":
		err = runAdd(os.Args[2:])
	case "update":
		err = runUpdate(os.Args[2:])
	case "validate":
		err = runValidate(os.Args[2:])
	case "help":
		usage()
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runAdd(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	path := fs.String("path", defaultRegistryPath, "Registry file")
	id := fs.String("id", "", "Activity ID (e.g., generate-report)")
	displayName := fs.String("displayName", "", "Display name")
	description := fs.String("description", "", "Description")
	category := fs.String("category", "", "Category: "+strings.Join(registry.Categories, ", "))
	taskType := fs.String("taskType", "", "BPMN task type (defaults to the activity ID)")
	timeout := fs.String("timeout", "30s", "Job timeout as a Go duration")
	retries := fs.Int("retries", 3, "BPMN retry count")
	status := fs.String("status", "planned", "Implementation status (planned, in-progress, completed, verified)")
	fs.Parse(args)

	if *id == "" || *displayName == "" || *description == "" || *category == "" {
		fs.Usage()
		return fmt.Errorf("id, displayName, description, and category are required")
	}
	if !registry.KnownCategory(*category) {
		return fmt.Errorf("unknown category %q, want one of: %s", *category, strings.Join(registry.Categories, ", "))
	}
	if d, err := time.ParseDuration(*timeout); err != nil || d <= 0 {
		return fmt.Errorf("timeout %q is not a positive duration", *timeout)
	}
	if *taskType == "" {
		*taskType = *id
	}

	reg, err := registry.Load(*path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("load registry: %w", err)
		}
		reg = &registry.ActivityRegistry{Version: "1.0.0"}
	}
	if _, ok := reg.Find(*id); ok {
		return fmt.Errorf("activity %s already declared", *id)
	}

	reg.Activities = append(reg.Activities, registry.Activity{
		ID:                   *id,
		DisplayName:          *displayName,
		Description:          *description,
		Category:             *category,
		Version:              "1.0.0",
		TaskType:             *taskType,
		ImplementationStatus: *status,
		InputSchema:          map[string]interface{}{},
		OutputSchema:         map[string]interface{}{},
		ErrorCodes:           []string{},
		Timeout:              *timeout,
		Retries:              *retries,
		Workflows:            []string{},
		Tags:                 []string{*category},
	})
	reg.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	if err := reg.Validate(); err != nil {
		return fmt.Errorf("add leaves registry invalid: %w", err)
	}
	if err := reg.Save(*path); err != nil {
		return err
	}
	fmt.Printf("Added %s (%s)\n", *id, *category)
	return nil
}

func runUpdate(args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	path := fs.String("path", defaultRegistryPath, "Registry file")
	id := fs.String("id", "", "Activity ID to update")
	field := fs.String("field", "", "Field to set (status, version, displayName, description, category, taskType, timeout, retries)")
	value := fs.String("value", "", "New value")
	fs.Parse(args)

	if *id == "" || *field == "" || *value == "" {
		fs.Usage()
		return fmt.Errorf("id, field, and value are required")
	}

	reg, err := registry.Load(*path)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}
	activity, ok := reg.Find(*id)
	if !ok {
		return fmt.Errorf("activity %s not declared", *id)
	}
	if err := setField(activity, *field, *value); err != nil {
		return err
	}
	reg.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	if err := reg.Validate(); err != nil {
		return fmt.Errorf("update leaves registry invalid: %w", err)
	}
	if err := reg.Save(*path); err != nil {
		return err
	}
	fmt.Printf("Updated %s: %s = %s\n", *id, *field, *value)
	return nil
}

func setField(a *registry.Activity, field, value string) error {
	switch field {
	case "status":
		a.ImplementationStatus = value
	case "version":
		a.Version = value
	case "displayName":
		a.DisplayName = value
	case "description":
		a.Description = value
	case "category":
		if !registry.KnownCategory(value) {
			return fmt.Errorf("unknown category %q, want one of: %s", value, strings.Join(registry.Categories, ", "))
		}
		a.Category = value
	case "taskType":
		a.TaskType = value
	case "timeout":
		a.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retries value %q: %w", value, err)
		}
		a.Retries = retries
	default:
		return fmt.Errorf("unknown field %s", field)
	}
	return nil
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	path := fs.String("path", defaultRegistryPath, "Registry file")
	fs.Parse(args)

	reg, err := registry.Load(*path)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return err
	}

	byCategory := make(map[string]int, len(registry.Categories))
	for _, a := range reg.Activities {
		byCategory[a.Category]++
	}
	fmt.Printf("Registry %s is valid: %d activities\n", reg.Version, len(reg.Activities))
	for _, c := range registry.Categories {
		fmt.Printf("  %-10s %d\n", c, byCategory[c])
	}
	return nil
}

func usage() {
	fmt.Printf(`Usage: registry-updater <command> [flags]

Maintains %s, the declared activity set for the
benchmark-report worker fleet.

Commands:
  add       Declare a new activity
  update    Change one field of a declared activity
  validate  Check the registry file

Categories: %s

Examples:
  registry-updater add -id calculate-benchmark -displayName "Calculate Benchmark" \
      -description "Computes the peer benchmark preview for one survey response" \
      -category benchmark -timeout 15s
  registry-updater update -id generate-report -field status -value completed
  registry-updater validate

Use 'registry-updater <command> -h' for command flags.
`, defaultRegistryPath, strings.Join(registry.Categories, ", "))
}
