package melee

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pable/go-meta-metrics/internal/model"
)

// standingEntry is one line of the GetRoundStandings response.
type standingEntry struct {
	Rank                       int     `json:"Rank"`
	Points                     int     `json:"Points"`
	MatchRecord                string  `json:"MatchRecord"`
	OpponentMatchWinPercentage float64 `json:"OpponentMatchWinPercentage"`
	TeamGameWinPercentage      float64 `json:"TeamGameWinPercentage"`
	OpponentGameWinPercentage  float64 `json:"OpponentGameWinPercentage"`
	Team                       struct {
		Players []playerEntry `json:"Players"`
	} `json:"Team"`
}

// GetRoundStandings fetches the full standings of one round, paging until a
// short page. The anti-forgery token from the event standings page is sent
// along when present; the service rejects some accounts without it.
func (c *Client) GetRoundStandings(ctx context.Context, eventID, roundID, pageSize int) ([]model.StandingRow, error) {
	csrf := c.standingsCSRFToken(ctx, eventID)

	var out []model.StandingRow
	for start := 0; ; start += pageSize {
		var page struct {
			Data []standingEntry `json:"data"`
		}
		req := c.http.R().
			SetContext(ctx).
			SetHeader("Referer", fmt.Sprintf("%s/Standing/Event/%d", c.baseURL, eventID)).
			SetFormDataFromValues(standingsPayload(roundID, start, pageSize)).
			SetResult(&page)
		if csrf != "" {
			req.SetHeader("RequestVerificationToken", csrf)
		}
		resp, err := req.Post("/Standing/GetRoundStandings")
		if err != nil {
			return nil, fmt.Errorf("round %d standings at start=%d: %w", roundID, start, err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("round %d standings: HTTP %d", roundID, resp.StatusCode())
		}

		for _, e := range page.Data {
			row := model.StandingRow{
				Rank:        e.Rank,
				Points:      e.Points,
				MatchRecord: e.MatchRecord,
				OMWPercent:  e.OpponentMatchWinPercentage,
				GWPercent:   e.TeamGameWinPercentage,
				OGWPercent:  e.OpponentGameWinPercentage,
			}
			if len(e.Team.Players) > 0 {
				names := make([]string, 0, len(e.Team.Players))
				for _, p := range e.Team.Players {
					if n := p.name(); n != "" {
						names = append(names, n)
					}
				}
				row.Player = strings.Join(names, ", ")
			}
			if w, l, d, ok := ParseMatchRecord(e.MatchRecord); ok {
				row.Wins, row.Losses, row.Draws = w, l, d
			}
			out = append(out, row)
		}
		if len(page.Data) < pageSize {
			break
		}
	}
	return out, nil
}

// ParseMatchRecord splits a "W-L-D" record string into its three counts.
func ParseMatchRecord(record string) (wins, losses, draws int, ok bool) {
	parts := strings.Split(strings.TrimSpace(record), "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	vals := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = n
	}
	return vals[0], vals[1], vals[2], true
}

// standingsCSRFToken fetches the anti-forgery token from the event standings
// page. Best effort: an empty string just means the header is omitted.
func (c *Client) standingsCSRFToken(ctx context.Context, eventID int) string {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/Standing/Event/%d", eventID))
	if err != nil || resp.StatusCode() != 200 {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return ""
	}
	if v, ok := doc.Find(`input[name="__RequestVerificationToken"]`).Attr("value"); ok && v != "" {
		return v
	}
	if v, ok := doc.Find(`meta[name="__RequestVerificationToken"]`).Attr("content"); ok {
		return v
	}
	return ""
}

// standingsPayload mirrors the DataTables form body of the site's standings
// requests, including the full column list the endpoint insists on.
func standingsPayload(roundID, start, length int) url.Values {
	cols := []struct {
		name       string
		searchable bool
		orderable  bool
	}{
		{"Rank", true, true},
		{"Player", false, false},
		{"Decklists", false, false},
		{"MatchRecord", false, false},
		{"GameRecord", false, false},
		{"Points", true, true},
		{"OpponentMatchWinPercentage", false, true},
		{"TeamGameWinPercentage", false, true},
		{"OpponentGameWinPercentage", false, true},
		{"FinalTiebreaker", false, true},
		{"OpponentCount", true, true},
	}

	v := url.Values{}
	v.Set("draw", "1")
	for i, col := range cols {
		prefix := fmt.Sprintf("columns[%d]", i)
		v.Set(prefix+"[data]", col.name)
		v.Set(prefix+"[name]", col.name)
		v.Set(prefix+"[searchable]", strconv.FormatBool(col.searchable))
		v.Set(prefix+"[orderable]", strconv.FormatBool(col.orderable))
		v.Set(prefix+"[search][value]", "")
		v.Set(prefix+"[search][regex]", "false")
	}
	v.Set("order[0][column]", "0")
	v.Set("order[0][dir]", "asc")
	v.Set("start", strconv.Itoa(start))
	v.Set("length", strconv.Itoa(length))
	v.Set("search[value]", "")
	v.Set("search[regex]", "false")
	v.Set("roundId", strconv.Itoa(roundID))
	return v
}
