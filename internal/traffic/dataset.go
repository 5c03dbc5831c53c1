package traffic

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Dataset is an ordered sequence of traffic records. It is treated as
// read-only once constructed; every aggregation is a pure reduction over it.
type Dataset []TrafficRecord

// ParseDataset decodes a JSON array of traffic records. The derived calendar
// fields are recomputed from each record's timestamp, so input files only need
// to carry the timestamp itself.
func ParseDataset(data []byte) (Dataset, error) {
	var records Dataset
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing dataset: %w", err)
	}

	for i := range records {
		records[i].DeriveTimeFields()
	}

	return records, nil
}

// LoadDataset reads a JSON dataset file from disk.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset file %s: %w", path, err)
	}
	return ParseDataset(data)
}

// WriteFile serializes the dataset as indented JSON to the given path.
func (d Dataset) WriteFile(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing dataset file %s: %w", path, err)
	}
	return nil
}

// Dates returns the distinct calendar days present in the dataset, in
// chronological order.
func (d Dataset) Dates() []string {
	seen := make(map[string]bool, len(d))
	var dates []string
	for _, r := range d {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	sort.Strings(dates)
	return dates
}
