// Package storage loads the timesheet dataset. A default fixture is
// compiled into the binary; a user-supplied JSON file with the same
// shape can replace it. The dataset is read once at startup and never
// written.
package storage

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/teamtrace/tsheet/internal/model"
)

//go:embed data/timesheet.json
var defaultData []byte

// Load returns the dataset at path, or the embedded default when path
// is empty.
func Load(path string) (model.Dataset, error) {
	if path == "" {
		return parse(defaultData, "embedded dataset")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, source string) (model.Dataset, error) {
	var ds model.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return model.Dataset{}, fmt.Errorf("corrupt JSON in %s: %w", source, err)
	}
	return ds, nil
}
