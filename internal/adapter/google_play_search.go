package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-review-fetcher/models"
	"github.com/PuerkitoBio/goquery"
)

var (
	datasetKeyRe   = regexp.MustCompile(`key: '(ds:\d+)'`)
	datasetValueRe = regexp.MustCompile(`data:([\s\S]*?), sideChannel: \{\}\}\);`)
)

// Search implements [StoreAdapter]. It loads the store search page and reads
// the embedded search dataset. The highlighted "top result" card, when
// present, is listed first.
func (g *googlePlayAdapter) Search(ctx context.Context, req models.SearchRequest) ([]models.AppListing, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":  req.Query,
			"c":  "apps",
			"hl": req.Locale,
			"gl": req.Region,
		}).
		Get(searchPath)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	datasets, err := extractDatasets(resp.Body())
	if err != nil {
		return nil, err
	}

	raw, ok := datasets[searchDatasetKey]
	if !ok {
		return nil, fmt.Errorf("%w: dataset %s is missing", ErrMalformedResponse, searchDatasetKey)
	}

	var dataset any
	if err = json.Unmarshal([]byte(raw), &dataset); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrMalformedResponse, searchDatasetKey, err)
	}

	listings := parseSearchDataset(dataset, req.Limit)
	g.logger.Debug().
		Str("query", req.Query).
		Int("results", len(listings)).
		Msg("search completed")

	return listings, nil
}

// extractDatasets returns the raw JSON of every AF_initDataCallback block in
// the page, keyed by dataset key.
func extractDatasets(page []byte) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %v", ErrMalformedResponse, err)
	}

	datasets := make(map[string]string)
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		if !strings.Contains(text, "AF_initDataCallback") {
			return
		}

		key := datasetKeyRe.FindStringSubmatch(text)
		value := datasetValueRe.FindStringSubmatch(text)
		if key == nil || value == nil {
			return
		}
		datasets[key[1]] = value[1]
	})

	return datasets, nil
}

func parseSearchDataset(dataset any, limit int) []models.AppListing {
	listings := make([]models.AppListing, 0)
	seen := make(map[string]struct{})

	add := func(l models.AppListing) {
		if l.AppID == "" || (limit > 0 && len(listings) >= limit) {
			return
		}
		if _, dup := seen[l.AppID]; dup {
			return
		}
		seen[l.AppID] = struct{}{}
		listings = append(listings, l)
	}

	if top, ok := lookup(dataset, 0, 1, 0, 23, 16); ok {
		add(models.AppListing{
			Name:  lookupString(top, 2, 0, 0),
			AppID: lookupString(top, 11, 0, 0),
		})
	}

	// The section holding the app list moves between locales; the first one
	// that has it wins.
	for _, section := range lookupSlice(dataset, 0, 1) {
		apps := lookupSlice(section, 22, 0)
		if apps == nil {
			continue
		}
		for _, app := range apps {
			add(models.AppListing{
				Name:  lookupString(app, 0, 3),
				AppID: lookupString(app, 0, 0, 0),
			})
		}
		break
	}

	return listings
}
