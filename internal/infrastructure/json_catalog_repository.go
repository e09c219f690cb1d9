package infrastructure

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/campusplan/timetable-planner/internal/catalog"
)

// JSONCatalogRepository reads a PlanInput as a single JSON document from
// an io.Reader — normally os.Stdin, the planner's default input mode.
type JSONCatalogRepository struct {
	r io.Reader
}

// NewJSONCatalogRepository wraps r.
func NewJSONCatalogRepository(r io.Reader) *JSONCatalogRepository {
	return &JSONCatalogRepository{r: r}
}

// LoadCatalog decodes the whole input as one catalog.PlanInput.
func (j *JSONCatalogRepository) LoadCatalog() (catalog.PlanInput, error) {
	var input catalog.PlanInput
	if err := json.NewDecoder(j.r).Decode(&input); err != nil {
		return catalog.PlanInput{}, fmt.Errorf("decoding catalog JSON: %w", err)
	}
	return input, nil
}

// JSONOutputWriter writes a PlanOutput as indented JSON to an io.Writer —
// normally a file or os.Stdout.
type JSONOutputWriter struct {
	w io.Writer
}

// NewJSONOutputWriter wraps w.
func NewJSONOutputWriter(w io.Writer) *JSONOutputWriter {
	return &JSONOutputWriter{w: w}
}

// WriteOutput encodes output as indented JSON.
func (j *JSONOutputWriter) WriteOutput(output catalog.PlanOutput) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("encoding plan output: %w", err)
	}
	return nil
}
