package progress

import (
	"encoding/json"
	"fmt"
	"testing"
)

func pushN(h *History, from, to int) {
	for i := from; i < to; i++ {
		h.Push(Adaptation{Type: "t", Reason: fmt.Sprintf("r%d", i)})
	}
}

func reasons(entries []Adaptation) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Reason
	}
	return out
}

func TestHistoryKeepsMostRecent(t *testing.T) {
	var h History
	pushN(&h, 0, 25)

	if h.Len() != HistoryCap {
		t.Fatalf("Len = %d, want %d", h.Len(), HistoryCap)
	}
	got := reasons(h.Entries())
	for i, r := range got {
		if want := fmt.Sprintf("r%d", i+5); r != want {
			t.Errorf("entry %d = %s, want %s", i, r, want)
		}
	}
	last, ok := h.Last()
	if !ok || last.Reason != "r24" {
		t.Errorf("Last = %v, %v; want r24", last.Reason, ok)
	}
}

func TestHistoryBelowCapacity(t *testing.T) {
	var h History
	if _, ok := h.Last(); ok {
		t.Error("Last on empty history reported ok")
	}
	pushN(&h, 0, 3)
	if got := reasons(h.Entries()); len(got) != 3 || got[0] != "r0" || got[2] != "r2" {
		t.Errorf("Entries = %v", got)
	}
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len after Clear = %d", h.Len())
	}
}

func TestHistoryJSON(t *testing.T) {
	var h History
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("empty history = %s, want []", data)
	}

	var long []Adaptation
	for i := range 30 {
		long = append(long, Adaptation{Type: "t", Reason: fmt.Sprintf("r%d", i)})
	}
	data, err = json.Marshal(long)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &h); err != nil {
		t.Fatal(err)
	}
	got := reasons(h.Entries())
	if len(got) != HistoryCap || got[0] != "r10" || got[HistoryCap-1] != "r29" {
		t.Errorf("decoded = %v, want r10..r29", got)
	}
}
