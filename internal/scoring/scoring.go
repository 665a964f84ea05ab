// Package scoring computes weighted confluence scores and maps them to
// qualitative setup tiers.
package scoring

import (
	"confluence-journal/internal/catalog"
)

// Selection maps confluence id to checked state. Absent keys count as
// unchecked; ids not present in the catalog are ignored.
type Selection map[string]bool

// Result is the outcome of scoring a selection against a catalog.
type Result struct {
	Total     int      // sum of weights of the checked entries, not clamped
	ActiveIDs []string // checked ids in catalog order
}

// Score sums the weights of the checked catalog entries. Pure function:
// output order follows the catalog, never the selection.
func Score(sel Selection, cat catalog.Catalog) Result {
	res := Result{ActiveIDs: []string{}}
	for _, conf := range cat.Entries() {
		if sel[conf.ID] {
			res.Total += conf.Weight
			res.ActiveIDs = append(res.ActiveIDs, conf.ID)
		}
	}
	return res
}

// ActiveLabels returns the labels of the checked entries in catalog order.
// Trades snapshot labels, not ids, so history survives catalog edits.
func ActiveLabels(sel Selection, cat catalog.Catalog) []string {
	labels := []string{}
	for _, conf := range cat.Entries() {
		if sel[conf.ID] {
			labels = append(labels, conf.Label)
		}
	}
	return labels
}

// SelectionFromLabels rebuilds a selection from snapshot labels, matching
// each against the catalog by label or id. Unresolvable entries are dropped.
func SelectionFromLabels(labels []string, cat catalog.Catalog) Selection {
	sel := make(Selection, len(labels))
	for _, l := range labels {
		if conf, ok := cat.Resolve(l); ok {
			sel[conf.ID] = true
		}
	}
	return sel
}

// Tier is the qualitative bucket for a score.
type Tier int

const (
	TierNoConfluence Tier = iota
	TierLow
	TierMedium
	TierHigh
	TierAPlus
)

// Level carries the tier with its display label and advisory caption.
type Level struct {
	Tier    Tier
	Label   string
	Caption string
}

// Classify maps a total score to its tier. Band upper edges are inclusive:
// 40 is still Low, 41 is Medium.
func Classify(total int) Level {
	switch {
	case total == 0:
		return Level{TierNoConfluence, "No confluence", "No confluences marked – stay out."}
	case total <= 40:
		return Level{TierLow, "Low confluence", "Weak setup. Probably skip."}
	case total <= 80:
		return Level{TierMedium, "Medium confluence", "Decent setup, but not A+."}
	case total <= 100:
		return Level{TierHigh, "High confluence", "Strong setup. Trade only if risk makes sense."}
	default:
		return Level{TierAPlus, "A+ setup", "Very rare, high conviction setup."}
	}
}
