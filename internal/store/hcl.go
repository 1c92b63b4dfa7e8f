// Package store keeps the custom word bank and the named player groups in
// small HCL files on local disk.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/lox/impostor/internal/fileutil"
)

var (
	// ErrDuplicateWord is returned when adding a word that is already stored
	ErrDuplicateWord = errors.New("word already exists")

	// ErrGroupNameRequired is returned when saving a group without a name
	ErrGroupNameRequired = errors.New("group name is required")
)

// decodeFile parses an HCL file into target. A missing or empty file leaves
// target untouched.
func decodeFile(path string, target any) error {
	data, err := fileutil.ReadFileIfExists(path)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	diags = gohcl.DecodeBody(file.Body, nil, target)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return nil
}

func writeFile(path string, f *hclwrite.File) error {
	if err := fileutil.WriteFileAtomic(path, f.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	return cty.ListVal(vals)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime returns the zero time for missing or hand-edited values.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
