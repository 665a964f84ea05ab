package cli

import (
	"testing"

	"github.com/rs/zerolog"

	"confluence-journal/internal/catalog"
	"confluence-journal/internal/models"
	"confluence-journal/internal/store"
)

func newTestApp() *App {
	s := store.NewTradeStore(store.NewMemDocumentStore(), nil, zerolog.Nop())
	s.Hydrate()
	return &App{
		Catalog: catalog.Default(),
		Store:   s,
		Logger:  zerolog.Nop(),
	}
}

func TestParseSelection(t *testing.T) {
	cat := catalog.Default()

	sel, err := parseSelection("weekly, AOI ,bos", cat)
	if err != nil {
		t.Fatalf("parseSelection: %v", err)
	}
	for _, id := range []string{"weekly", "aoi", "bos"} {
		if !sel[id] {
			t.Errorf("%s not selected", id)
		}
	}

	if _, err := parseSelection("weekly,nonsense", cat); err == nil {
		t.Error("accepted an unknown confluence")
	}

	empty, err := parseSelection("  ", cat)
	if err != nil || len(empty) != 0 {
		t.Errorf("blank selection = (%v, %v)", empty, err)
	}
}

func TestFindTradeByPrefix(t *testing.T) {
	app := newTestApp()

	created, err := app.Store.Create(models.Draft{Pair: "XAUUSD"}, 10, "Low confluence", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	byFull, ok := findTrade(app, created.ID)
	if !ok || byFull.ID != created.ID {
		t.Errorf("full id lookup failed")
	}

	byPrefix, ok := findTrade(app, created.ID[:10])
	if !ok || byPrefix.ID != created.ID {
		t.Errorf("prefix lookup failed")
	}

	if _, ok := findTrade(app, "zzzz"); ok {
		t.Error("found a trade for an unknown id")
	}
}

func TestFindTradeAmbiguousPrefix(t *testing.T) {
	app := newTestApp()

	// ULIDs created in the same second share a long timestamp prefix, so a
	// short prefix matches both.
	a, _ := app.Store.Create(models.Draft{}, 0, "No confluence", nil)
	b, _ := app.Store.Create(models.Draft{}, 0, "No confluence", nil)

	if a.ID[:4] == b.ID[:4] {
		if _, ok := findTrade(app, a.ID[:4]); ok {
			t.Error("ambiguous prefix resolved to a single trade")
		}
	}
}
