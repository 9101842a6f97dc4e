package melee

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Card is one row of a scraped decklist.
type Card struct {
	Name     string
	Quantity int
	Zone     string // "main" or "side"
}

// Decklist is the content of one deck view page.
type Decklist struct {
	Guid   string
	Player string
	Cards  []Card
}

var sideboardRe = regexp.MustCompile(`(?i)side(board)?`)

// GetDecklist fetches and parses one deck view page by its guid.
func (c *Client) GetDecklist(ctx context.Context, guid string) (*Decklist, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/Decklist/View/" + guid)
	if err != nil {
		return nil, fmt.Errorf("fetch decklist %s: %w", guid, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("decklist %s: HTTP %d", guid, resp.StatusCode())
	}
	dl, err := ParseDecklistHTML(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("parse decklist %s: %w", guid, err)
	}
	dl.Guid = guid
	return dl, nil
}

// ParseDecklistHTML extracts the card rows and the deck owner from a deck
// view page. Cards grouped under a sideboard-titled category get zone
// "side", everything else "main"; duplicate card names within a zone are
// merged with their quantities summed.
func ParseDecklistHTML(r io.Reader) (*Decklist, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var cards []Card

	// Preferred: category-grouped records, which carry explicit zone titles.
	doc.Find(".decklist-category").Each(func(_ int, cat *goquery.Selection) {
		zone := "main"
		if title := cat.Find(".decklist-category-title").Text(); sideboardRe.MatchString(title) {
			zone = "side"
		}
		cat.Find(".decklist-record").Each(func(_ int, rec *goquery.Selection) {
			if c, ok := parseRecord(rec, zone); ok {
				cards = append(cards, c)
			}
		})
	})

	// Fallback: ungrouped records, zone guessed from ancestor classes.
	if len(cards) == 0 {
		doc.Find(".decklist-record").Each(func(_ int, rec *goquery.Selection) {
			zone := "main"
			if rec.Closest(`[class*="side"]`).Length() > 0 {
				zone = "side"
			}
			if c, ok := parseRecord(rec, zone); ok {
				cards = append(cards, c)
			}
		})
	}

	return &Decklist{
		Player: extractPlayer(doc),
		Cards:  mergeCards(cards),
	}, nil
}

func parseRecord(rec *goquery.Selection, zone string) (Card, bool) {
	name := strings.TrimSpace(rec.Find(".decklist-record-name").Text())
	if name == "" {
		return Card{}, false
	}
	qty := 1
	if qtyText := strings.TrimSpace(rec.Find(".decklist-record-quantity").Text()); qtyText != "" {
		if n, err := strconv.Atoi(qtyText); err == nil {
			qty = n
		}
	}
	return Card{Name: name, Quantity: qty, Zone: zone}, true
}

// extractPlayer finds the deck owner's display name. The meta description is
// the most reliable source ("DeckTitle - Player - Format"); profile links in
// the decklist header are the fallback.
func extractPlayer(doc *goquery.Document) string {
	for _, sel := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if content, ok := doc.Find(sel).Attr("content"); ok {
			parts := strings.Split(content, " - ")
			if len(parts) >= 2 {
				if p := strings.TrimSpace(parts[1]); p != "" {
					return p
				}
			}
		}
	}
	for _, sel := range []string{
		`.decklist-header a[href*="/Profile"]`,
		`.decklist-info a[href*="/Profile"]`,
		`.decklist-owner a[href*="/Profile"]`,
	} {
		if name := strings.TrimSpace(doc.Find(sel).First().Text()); name != "" {
			return name
		}
	}
	return ""
}

func mergeCards(cards []Card) []Card {
	type key struct{ name, zone string }
	idx := make(map[key]int)
	var out []Card
	for _, c := range cards {
		k := key{strings.ToLower(c.Name), c.Zone}
		if i, ok := idx[k]; ok {
			out[i].Quantity += c.Quantity
			continue
		}
		idx[k] = len(out)
		out = append(out, c)
	}
	return out
}
