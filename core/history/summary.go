package history

// Summary aggregates the recent state of the prediction log
type Summary struct {
	// Entries is the total number of retained entries
	Entries int `json:"entries"`

	// RecentAlpha is the average blend weight over the last window
	RecentAlpha float64 `json:"recent_alpha,omitempty"`

	// RecentMLPrediction is the average raw model prediction over the last window
	RecentMLPrediction float64 `json:"recent_ml_prediction,omitempty"`

	// Validated is how many retained entries carry an observed outcome
	Validated int `json:"validated"`
}

const summaryWindow = 10

// Summarize reports recent averages over the last few entries
func (s *Store) Summarize() Summary {
	entries := s.LoadAll()
	summary := Summary{Entries: len(entries)}
	if len(entries) == 0 {
		return summary
	}

	for _, e := range entries {
		if e.Validated() {
			summary.Validated++
		}
	}

	recent := entries
	if len(recent) > summaryWindow {
		recent = recent[len(recent)-summaryWindow:]
	}

	var sumAlpha, sumML float64
	for _, e := range recent {
		sumAlpha += e.AlphaUsed
		sumML += e.MLPrediction
	}
	n := float64(len(recent))
	summary.RecentAlpha = sumAlpha / n
	summary.RecentMLPrediction = sumML / n
	return summary
}
