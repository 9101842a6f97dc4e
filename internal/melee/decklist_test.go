package melee

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

const deckPage = `<html>
<head>
	<meta name="description" content="Boros Energy - Alice Smith - Modern">
</head>
<body>
	<div class="decklist-category">
		<div class="decklist-category-title">Creatures (8)</div>
		<div class="decklist-record">
			<span class="decklist-record-quantity">4</span>
			<span class="decklist-record-name">Ocelot Pride</span>
		</div>
		<div class="decklist-record">
			<span class="decklist-record-quantity">4</span>
			<span class="decklist-record-name">Guide of Souls</span>
		</div>
	</div>
	<div class="decklist-category">
		<div class="decklist-category-title">Sideboard (3)</div>
		<div class="decklist-record">
			<span class="decklist-record-quantity">3</span>
			<span class="decklist-record-name">Wear // Tear</span>
		</div>
	</div>
</body>
</html>`

func TestParseDecklistHTML(t *testing.T) {
	dl, err := ParseDecklistHTML(strings.NewReader(deckPage))
	if err != nil {
		t.Fatalf("ParseDecklistHTML: %v", err)
	}

	if dl.Player != "Alice Smith" {
		t.Errorf("player = %q, want %q", dl.Player, "Alice Smith")
	}
	if len(dl.Cards) != 3 {
		t.Fatalf("cards = %d, want 3", len(dl.Cards))
	}

	byName := make(map[string]Card)
	for _, c := range dl.Cards {
		byName[c.Name] = c
	}
	if c := byName["Ocelot Pride"]; c.Quantity != 4 || c.Zone != "main" {
		t.Errorf("Ocelot Pride = %+v", c)
	}
	if c := byName["Wear // Tear"]; c.Quantity != 3 || c.Zone != "side" {
		t.Errorf("Wear // Tear = %+v", c)
	}
}

// Duplicate names within a zone merge with quantities summed.
func TestParseDecklistHTMLMergesDuplicates(t *testing.T) {
	page := `<html><body>
	<div class="decklist-category">
		<div class="decklist-category-title">Spells</div>
		<div class="decklist-record">
			<span class="decklist-record-quantity">2</span>
			<span class="decklist-record-name">Lightning Bolt</span>
		</div>
		<div class="decklist-record">
			<span class="decklist-record-quantity">2</span>
			<span class="decklist-record-name">Lightning Bolt</span>
		</div>
	</div>
	</body></html>`

	dl, err := ParseDecklistHTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ParseDecklistHTML: %v", err)
	}
	if len(dl.Cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(dl.Cards))
	}
	if dl.Cards[0].Quantity != 4 {
		t.Errorf("quantity = %d, want 4", dl.Cards[0].Quantity)
	}
}

func TestParseDecklistHTMLMissingQuantity(t *testing.T) {
	page := `<html><body>
	<div class="decklist-category">
		<div class="decklist-record">
			<span class="decklist-record-name">Swamp</span>
		</div>
	</div>
	</body></html>`

	dl, err := ParseDecklistHTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ParseDecklistHTML: %v", err)
	}
	if len(dl.Cards) != 1 || dl.Cards[0].Quantity != 1 {
		t.Errorf("cards = %+v, want Swamp x1", dl.Cards)
	}
}

func TestGetDecklist(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Decklist/View/abc-123" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, deckPage)
	}))

	dl, err := client.GetDecklist(context.Background(), "abc-123")
	if err != nil {
		t.Fatalf("GetDecklist: %v", err)
	}
	if dl.Guid != "abc-123" {
		t.Errorf("guid = %q", dl.Guid)
	}
	if len(dl.Cards) != 3 {
		t.Errorf("cards = %d, want 3", len(dl.Cards))
	}
}
