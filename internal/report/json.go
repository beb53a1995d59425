package report

import (
	"encoding/json"
	"fmt"
	"io"

	"ProposalEngine/internal/model"
)

// WriteJSON writes the comparison as indented JSON. An absent distribution
// analysis is left out of the metrics object.
func WriteJSON(w io.Writer, c *model.Comparison) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal comparison: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write comparison: %w", err)
	}
	return nil
}
