package progress

import (
	"encoding/json"
	"time"
)

// HistoryCap is how many adaptations are kept.
const HistoryCap = 20

// Adaptation records why content or difficulty changed.
type Adaptation struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"adaptationType"`
	Reason    string    `json:"reason"`
}

// History is a fixed-capacity ring of the most recent adaptations. Pushing
// onto a full ring evicts the oldest entry. The zero value is empty.
type History struct {
	buf   [HistoryCap]Adaptation
	start int
	n     int
}

// Push appends a, evicting the oldest entry when full.
func (h *History) Push(a Adaptation) {
	if h.n < HistoryCap {
		h.buf[(h.start+h.n)%HistoryCap] = a
		h.n++
		return
	}
	h.buf[h.start] = a
	h.start = (h.start + 1) % HistoryCap
}

// Len is the number of entries held.
func (h *History) Len() int { return h.n }

// Entries returns the held adaptations, oldest first.
func (h *History) Entries() []Adaptation {
	out := make([]Adaptation, h.n)
	for i := range h.n {
		out[i] = h.buf[(h.start+i)%HistoryCap]
	}
	return out
}

// Last returns the most recent adaptation.
func (h *History) Last() (Adaptation, bool) {
	if h.n == 0 {
		return Adaptation{}, false
	}
	return h.buf[(h.start+h.n-1)%HistoryCap], true
}

// Clear empties the ring.
func (h *History) Clear() { *h = History{} }

// MarshalJSON encodes the ring as a list, oldest first.
func (h History) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Entries())
}

// UnmarshalJSON replaces the ring with a list. Longer lists keep their tail.
func (h *History) UnmarshalJSON(data []byte) error {
	var entries []Adaptation
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	h.Clear()
	for _, a := range entries {
		h.Push(a)
	}
	return nil
}
