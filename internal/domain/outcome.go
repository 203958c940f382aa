package domain

// OutcomeStatus represents the result of a single fetch-and-save attempt.
type OutcomeStatus string

const (
	OutcomeSaved  OutcomeStatus = "saved"
	OutcomeFailed OutcomeStatus = "failed"
)

// DownloadOutcome is the result for one StylesheetRef: either saved with a path
// and size, or failed with a reason.
type DownloadOutcome struct {
	URL    string        `json:"url"`
	Status OutcomeStatus `json:"status"`
	Path   string        `json:"path,omitempty"`
	Bytes  int64         `json:"bytes,omitempty"`
	Reason string        `json:"reason,omitempty"`
}

// Saved builds a successful outcome.
func Saved(url, path string, bytes int64) DownloadOutcome {
	return DownloadOutcome{URL: url, Status: OutcomeSaved, Path: path, Bytes: bytes}
}

// Failed builds a failed outcome.
func Failed(url, reason string) DownloadOutcome {
	return DownloadOutcome{URL: url, Status: OutcomeFailed, Reason: reason}
}

func (o DownloadOutcome) IsSaved() bool {
	return o.Status == OutcomeSaved
}

// Summary aggregates a sequence of outcomes for the final report line.
type Summary struct {
	Total  int
	Saved  int
	Failed int
	Bytes  int64
}

// Summarize counts saved and failed outcomes.
func Summarize(outcomes []DownloadOutcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.IsSaved() {
			s.Saved++
			s.Bytes += o.Bytes
		} else {
			s.Failed++
		}
	}
	return s
}
