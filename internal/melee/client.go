// Package melee is a client for the melee.gg tournament service: round
// discovery, paged pairings and standings fetches, and decklist scraping.
//
// The service has no public API; every endpoint here mirrors the DataTables
// requests the site itself makes, authenticated with a pasted session cookie.
package melee

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/pable/go-meta-metrics/internal/model"
)

const defaultBaseURL = "https://melee.gg"

// Client talks to the tournament service. Safe for sequential use; requests
// are rate limited to stay friendly to the site.
type Client struct {
	http    *resty.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the service base URL (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
		c.http.SetBaseURL(c.baseURL)
	}
}

// NewClient returns a client authenticated with the given session cookie
// header value.
func NewClient(cookie string, opts ...Option) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(defaultBaseURL)
	httpClient.SetTimeout(30 * time.Second)
	httpClient.SetHeader("Accept", "application/json, text/javascript, */*; q=0.01")
	httpClient.SetHeader("X-Requested-With", "XMLHttpRequest")
	if cookie != "" {
		httpClient.SetHeader("Cookie", cookie)
	}

	// 2 requests per second max across all endpoints.
	limiter := rate.NewLimiter(2, 2)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return limiter.Wait(req.Context())
	})

	c := &Client{http: httpClient, baseURL: defaultBaseURL}
	for _, o := range opts {
		o(c)
	}
	return c
}

// RoundMode selects which round selector to scrape from the tournament page.
type RoundMode string

const (
	RoundsStandings RoundMode = "standings"
	RoundsPairings  RoundMode = "pairings"
)

// GetRoundIDs scrapes the round selector buttons from the tournament view
// page and returns the round ids oldest first.
func (c *Client) GetRoundIDs(ctx context.Context, eventID int, mode RoundMode) ([]int, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/Tournament/View/%d", eventID))
	if err != nil {
		return nil, fmt.Errorf("fetch tournament page: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("tournament page: HTTP %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("parse tournament page: %w", err)
	}

	selector := "#pairings-round-selector-container .round-selector"
	if mode == RoundsStandings {
		selector = "#standings-round-selector-container .round-selector"
	}

	var ids []int
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.AttrOr("data-id", ""))
		if id, err := strconv.Atoi(raw); err == nil {
			ids = append(ids, id)
		}
	})
	if len(ids) == 0 {
		return nil, fmt.Errorf("no %s rounds found for event %d (expired cookie?)", mode, eventID)
	}

	// The page lists rounds newest first.
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids, nil
}

// ---- Pairings ----

// matchRow is one entry of the GetRoundMatches response.
type matchRow struct {
	TableNumber            json.RawMessage   `json:"TableNumber"`
	TableNumberDescription string            `json:"TableNumberDescription"`
	ResultString           string            `json:"ResultString"`
	Competitors            []competitorEntry `json:"Competitors"`
}

type competitorEntry struct {
	Team struct {
		Players []playerEntry `json:"Players"`
	} `json:"Team"`
	Decklists []struct {
		DecklistName string `json:"DecklistName"`
		Guid         string `json:"Guid"`
	} `json:"Decklists"`
}

type playerEntry struct {
	DisplayName          string `json:"DisplayName"`
	DisplayNameLastFirst string `json:"DisplayNameLastFirst"`
	Username             string `json:"Username"`
	Name                 string `json:"Name"`
}

// name returns the first non-empty display-name field.
func (p playerEntry) name() string {
	for _, n := range []string{p.DisplayName, p.DisplayNameLastFirst, p.Username, p.Name} {
		if n != "" {
			return n
		}
	}
	return ""
}

// GetRoundPairings fetches every pairing of one round, paging until the
// service returns a short page. pageSize follows the site's own requests;
// 400 is a safe default.
func (c *Client) GetRoundPairings(ctx context.Context, roundID, pageSize int) ([]model.RawMatch, error) {
	var out []model.RawMatch
	for start := 0; ; start += pageSize {
		var page struct {
			Data []matchRow `json:"data"`
		}
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("Referer", fmt.Sprintf("%s/Pairing/Round/%d", c.baseURL, roundID)).
			SetFormDataFromValues(pairingsPayload(start, pageSize)).
			SetResult(&page).
			Post(fmt.Sprintf("/Match/GetRoundMatches/%d", roundID))
		if err != nil {
			return nil, fmt.Errorf("round %d pairings at start=%d: %w", roundID, start, err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("round %d pairings: HTTP %d", roundID, resp.StatusCode())
		}
		if strings.HasPrefix(strings.TrimSpace(resp.String()), "<!DOCTYPE html>") {
			return nil, fmt.Errorf("round %d: got login page instead of JSON (expired cookie?)", roundID)
		}

		for _, row := range page.Data {
			out = append(out, row.toRawMatch(roundID))
		}
		if len(page.Data) < pageSize {
			break
		}
	}
	return out, nil
}

// toRawMatch converts one service row into a RawMatch, injecting the round
// id that the response itself does not carry.
func (r matchRow) toRawMatch(roundID int) model.RawMatch {
	m := model.RawMatch{
		RoundID:      roundID,
		TableNumber:  r.tableField(),
		ResultString: r.ResultString,
	}
	for _, comp := range r.Competitors {
		var entry model.Competitor
		if len(comp.Team.Players) > 0 {
			entry.Name = comp.Team.Players[0].name()
		}
		if len(comp.Decklists) > 0 {
			entry.Deck = comp.Decklists[0].DecklistName
			entry.DecklistGuid = comp.Decklists[0].Guid
		}
		m.Competitors = append(m.Competitors, entry)
	}
	return m
}

// tableField prefers the description cell (which may wrap the number in
// markup) over the plain TableNumber, matching how the site renders tables.
func (r matchRow) tableField() string {
	if r.TableNumberDescription != "" {
		return r.TableNumberDescription
	}
	return strings.Trim(string(r.TableNumber), `"`)
}

// pairingsPayload mirrors the DataTables form body captured from the site's
// own pairings requests; anything less gets a 500 back.
func pairingsPayload(start, length int) url.Values {
	v := url.Values{}
	v.Set("draw", "3")
	for i, col := range []string{"TableNumber", "PodNumber", "Teams", "Decklists", "ResultString"} {
		prefix := fmt.Sprintf("columns[%d]", i)
		v.Set(prefix+"[data]", col)
		v.Set(prefix+"[name]", col)
		searchable := "false"
		if col == "TableNumber" || col == "PodNumber" {
			searchable = "true"
		}
		v.Set(prefix+"[searchable]", searchable)
		v.Set(prefix+"[orderable]", searchable)
		v.Set(prefix+"[search][value]", "")
		v.Set(prefix+"[search][regex]", "false")
	}
	v.Set("order[0][column]", "0")
	v.Set("order[0][dir]", "asc")
	v.Set("start", strconv.Itoa(start))
	v.Set("length", strconv.Itoa(length))
	v.Set("search[value]", "")
	v.Set("search[regex]", "false")
	return v
}
