// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/meshintel/transcript-engine/pkg/types"
)

// WriteRecordsYAML dumps the normalized course records to a YAML file for
// inspection. Handy when a transcript parses strangely and the question is
// what the extractor actually saw.
func WriteRecordsYAML(records []types.CourseRecord, path string) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing records dump: %w", err)
	}
	return nil
}
