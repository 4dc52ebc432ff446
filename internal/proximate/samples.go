package proximate

import (
	"encoding/json"
	"fmt"
	"os"
)

// Sample is a named analysis read from a batch file
type Sample struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Analysis
}

// Result pairs a sample with its converted bases or the conversion error
type Result struct {
	Sample Sample
	Bases  *Bases
	Err    error
}

// LoadSamples loads sample definitions from a JSON file holding an array of
// objects such as {"name": "pine", "fc": 16.92, "vm": 76.40, "ash": 0.64, "moisture": 6.04}.
func LoadSamples(filepath string) ([]Sample, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var samples []Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s contains no samples", filepath)
	}

	for i := range samples {
		if samples[i].Name == "" {
			samples[i].Name = fmt.Sprintf("sample %d", i+1)
		}
	}
	return samples, nil
}

// ConvertAll converts each sample independently. A failing sample does not
// stop the batch; its error is kept in the result.
func ConvertAll(samples []Sample, tolerance float64) []Result {
	results := make([]Result, len(samples))
	for i, s := range samples {
		b, err := Convert(s.Analysis, tolerance)
		results[i] = Result{Sample: s, Bases: b, Err: err}
	}
	return results
}
