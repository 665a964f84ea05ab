// Package catalog defines the weighted confluence checklist.
package catalog

import (
	"fmt"

	"github.com/spf13/viper"

	apperrors "confluence-journal/internal/errors"
)

// Confluence is one weighted checklist criterion. Entries are defined at
// startup and never mutated afterwards.
type Confluence struct {
	ID     string `mapstructure:"id"`
	Label  string `mapstructure:"label"`
	Weight int    `mapstructure:"weight"` // percentage points, 0-100; weights need not sum to 100
	Helper string `mapstructure:"helper"`
}

// Catalog is an ordered, immutable list of confluences. Iteration order is
// the definition order and drives scoring output order.
type Catalog struct {
	entries []Confluence
	byID    map[string]int
}

// Default returns the built-in confluence catalog. The weights sum to 118,
// so a fully checked list scores above 100.
func Default() Catalog {
	return New([]Confluence{
		{ID: "weekly", Label: "WEEKLY", Weight: 10, Helper: "Higher timeframe weekly trend aligned"},
		{ID: "daily", Label: "DAILY", Weight: 10, Helper: "Daily trend aligned"},
		{ID: "h4", Label: "4H", Weight: 10, Helper: "4H trend aligned"},
		{ID: "aoi", Label: "AOI", Weight: 20, Helper: "Strong area of interest"},
		{ID: "bos", Label: "BOS / SHIFT", Weight: 15, Helper: "Break of structure in your direction"},
		{ID: "fibo", Label: "FIBO 62%", Weight: 10, Helper: "Prime fib retracement (around 62%)"},
		{ID: "medias", Label: "EMAs", Weight: 10, Helper: "EMAs stacked in clear trend"},
		{ID: "retest", Label: "RETEST", Weight: 10, Helper: "Clean break & retest"},
		{ID: "tl", Label: "TL / FLAG", Weight: 8, Helper: "Trendline / flag / channel structure"},
		{ID: "candle", Label: "CANDLE", Weight: 5, Helper: "Strong trigger candle (engulfing, hammer, etc.)"},
		{ID: "poc", Label: "POC", Weight: 5, Helper: "Point of control / volume node at entry"},
		{ID: "ob", Label: "ORDER BLOCK", Weight: 5, Helper: "Clean OB inside AOI"},
	})
}

// New builds a catalog from the given entries, preserving their order.
func New(entries []Confluence) Catalog {
	c := Catalog{
		entries: append([]Confluence(nil), entries...),
		byID:    make(map[string]int, len(entries)),
	}
	for i, e := range c.entries {
		c.byID[e.ID] = i
	}
	return c
}

// Load reads confluences.toml from configDir via viper. A missing file
// falls back to the default catalog; a present but invalid file is an error
// so a typo does not silently discard the user's checklist.
func Load(configDir string) (Catalog, error) {
	v := viper.New()
	v.SetConfigName("confluences")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return Default(), nil
		}
		return Catalog{}, apperrors.Wrap(err, "reading confluences.toml")
	}

	var file struct {
		Confluences []Confluence `mapstructure:"confluences"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return Catalog{}, apperrors.Wrap(err, "parsing confluences.toml")
	}
	if len(file.Confluences) == 0 {
		return Catalog{}, apperrors.ErrCatalogEmpty
	}

	seen := make(map[string]bool, len(file.Confluences))
	for _, e := range file.Confluences {
		if e.ID == "" {
			return Catalog{}, apperrors.NewValidationError("id", e.ID, "confluence id must not be empty")
		}
		if seen[e.ID] {
			return Catalog{}, apperrors.NewValidationError("id", e.ID, "duplicate confluence id")
		}
		seen[e.ID] = true
		if e.Weight < 0 || e.Weight > 100 {
			return Catalog{}, apperrors.NewValidationError("weight", e.Weight,
				fmt.Sprintf("weight for %q must be between 0 and 100", e.ID))
		}
	}

	return New(file.Confluences), nil
}

// Entries returns the catalog entries in definition order.
func (c Catalog) Entries() []Confluence {
	return append([]Confluence(nil), c.entries...)
}

// Len returns the number of entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// ByID looks up a confluence by id.
func (c Catalog) ByID(id string) (Confluence, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Confluence{}, false
	}
	return c.entries[i], true
}

// Resolve looks up a confluence by label or id. Stored trades snapshot
// labels rather than ids, so re-editing an old trade must survive catalog
// relabeling: the label is tried first, then the id.
func (c Catalog) Resolve(labelOrID string) (Confluence, bool) {
	for _, e := range c.entries {
		if e.Label == labelOrID {
			return e, true
		}
	}
	return c.ByID(labelOrID)
}

// TotalWeight returns the sum of all weights, the maximum reachable score.
func (c Catalog) TotalWeight() int {
	total := 0
	for _, e := range c.entries {
		total += e.Weight
	}
	return total
}
