package scoring

import (
	"reflect"
	"testing"

	"confluence-journal/internal/catalog"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		total int
		tier  Tier
		label string
	}{
		{0, TierNoConfluence, "No confluence"},
		{1, TierLow, "Low confluence"},
		{40, TierLow, "Low confluence"},
		{41, TierMedium, "Medium confluence"},
		{80, TierMedium, "Medium confluence"},
		{81, TierHigh, "High confluence"},
		{100, TierHigh, "High confluence"},
		{101, TierAPlus, "A+ setup"},
		{118, TierAPlus, "A+ setup"},
	}

	for _, tc := range cases {
		got := Classify(tc.total)
		if got.Tier != tc.tier {
			t.Errorf("Classify(%d) tier = %v, want %v", tc.total, got.Tier, tc.tier)
		}
		if got.Label != tc.label {
			t.Errorf("Classify(%d) label = %q, want %q", tc.total, got.Label, tc.label)
		}
		if got.Caption == "" {
			t.Errorf("Classify(%d) has empty caption", tc.total)
		}
	}
}

func TestScoreScenario(t *testing.T) {
	cat := catalog.New([]catalog.Confluence{
		{ID: "a", Label: "A", Weight: 10},
		{ID: "aoi", Label: "AOI", Weight: 20},
		{ID: "bos", Label: "BOS", Weight: 15},
	})

	res := Score(Selection{"a": true, "aoi": true}, cat)
	if res.Total != 30 {
		t.Errorf("Total = %d, want 30", res.Total)
	}
	if !reflect.DeepEqual(res.ActiveIDs, []string{"a", "aoi"}) {
		t.Errorf("ActiveIDs = %v, want [a aoi]", res.ActiveIDs)
	}
	if lvl := Classify(res.Total); lvl.Tier != TierLow {
		t.Errorf("tier = %v, want Low", lvl.Tier)
	}
}

func TestScoreEmptySelection(t *testing.T) {
	cat := catalog.Default()

	for _, sel := range []Selection{nil, {}, {"weekly": false, "daily": false}} {
		res := Score(sel, cat)
		if res.Total != 0 {
			t.Errorf("Total = %d, want 0", res.Total)
		}
		if len(res.ActiveIDs) != 0 {
			t.Errorf("ActiveIDs = %v, want empty", res.ActiveIDs)
		}
	}
}

func TestScoreIgnoresUnknownIDs(t *testing.T) {
	cat := catalog.Default()

	res := Score(Selection{"weekly": true, "nosuchid": true}, cat)
	if res.Total != 10 {
		t.Errorf("Total = %d, want 10", res.Total)
	}
	if !reflect.DeepEqual(res.ActiveIDs, []string{"weekly"}) {
		t.Errorf("ActiveIDs = %v, want [weekly]", res.ActiveIDs)
	}
}

func TestScoreFullDefaultCatalog(t *testing.T) {
	cat := catalog.Default()
	sel := Selection{}
	for _, c := range cat.Entries() {
		sel[c.ID] = true
	}

	res := Score(sel, cat)
	if res.Total != 118 {
		t.Errorf("Total = %d, want 118", res.Total)
	}
	if lvl := Classify(res.Total); lvl.Tier != TierAPlus {
		t.Errorf("full catalog should classify as A+, got %v", lvl.Tier)
	}
}

func TestActiveLabelsOrder(t *testing.T) {
	cat := catalog.Default()

	// Selection order must not leak into output order.
	labels := ActiveLabels(Selection{"bos": true, "weekly": true}, cat)
	if !reflect.DeepEqual(labels, []string{"WEEKLY", "BOS / SHIFT"}) {
		t.Errorf("labels = %v, want [WEEKLY, BOS / SHIFT]", labels)
	}
}

func TestSelectionFromLabels(t *testing.T) {
	cat := catalog.Default()

	// Labels, ids, and unknowns mixed: labels and ids resolve, unknowns drop.
	sel := SelectionFromLabels([]string{"WEEKLY", "aoi", "GONE"}, cat)
	want := Selection{"weekly": true, "aoi": true}
	if !reflect.DeepEqual(sel, want) {
		t.Errorf("selection = %v, want %v", sel, want)
	}
}
