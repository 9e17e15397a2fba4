package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SchemaError indicates the input is missing columns the pipeline resolves.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %s is missing required columns: %s", filepath.Base(e.Path), strings.Join(e.Missing, ", "))
}
