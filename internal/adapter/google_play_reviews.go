package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-review-fetcher/models"
)

// batchExecutePrefix guards every batchexecute response against JSON
// hijacking and must be stripped before decoding.
var batchExecutePrefix = []byte(")]}'")

// Reviews implements [StoreAdapter]. Pages of up to maxReviewsPerPage are
// requested while fewer than req.Count reviews have been collected and the
// store keeps returning a continuation token.
func (g *googlePlayAdapter) Reviews(ctx context.Context, req models.ReviewsRequest) ([]models.Review, error) {
	if req.Count <= 0 {
		return []models.Review{}, nil
	}

	sort := req.Sort
	if sort == 0 {
		sort = models.SortNewest
	}

	reviews := make([]models.Review, 0, req.Count)
	token := ""
	for page := 1; len(reviews) < req.Count; page++ {
		pageSize := min(req.Count-len(reviews), maxReviewsPerPage)

		items, next, err := g.fetchReviewPage(ctx, req, sort, pageSize, token)
		if err != nil {
			return nil, fmt.Errorf("reviews page %d: %w", page, err)
		}
		reviews = append(reviews, items...)

		g.logger.Debug().
			Str("app_id", req.AppID).
			Int("page", page).
			Int("page_items", len(items)).
			Int("collected", len(reviews)).
			Msg("review page fetched")

		if next == "" || len(items) == 0 {
			break
		}
		token = next
	}

	if len(reviews) > req.Count {
		reviews = reviews[:req.Count]
	}
	return reviews, nil
}

func (g *googlePlayAdapter) fetchReviewPage(
	ctx context.Context,
	req models.ReviewsRequest,
	sort models.SortOrder,
	pageSize int,
	token string,
) ([]models.Review, string, error) {
	payload, err := reviewsPayload(req.AppID, sort, pageSize, token)
	if err != nil {
		return nil, "", err
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"hl": req.Locale, "gl": req.Region}).
		SetFormData(map[string]string{"f.req": payload}).
		Post(batchExecutePath)
	if err != nil {
		return nil, "", fmt.Errorf("reviews request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	return parseReviewsResponse(resp.Body())
}

// reviewsPayload builds the f.req form value. The RPC arguments are
// themselves a JSON document embedded as a string in the envelope.
func reviewsPayload(appID string, sort models.SortOrder, pageSize int, token string) (string, error) {
	appIDJSON, err := json.Marshal(appID)
	if err != nil {
		return "", err
	}

	tokenJSON := []byte("null")
	if token != "" {
		if tokenJSON, err = json.Marshal(token); err != nil {
			return "", err
		}
	}

	args := fmt.Sprintf(`[null,null,[2,%d,[%d,null,%s],null,[]],[%s,7]]`,
		sort, pageSize, tokenJSON, appIDJSON)

	envelope, err := json.Marshal([][][]any{{{reviewsRPCID, args, nil, "generic"}}})
	if err != nil {
		return "", err
	}
	return string(envelope), nil
}

func parseReviewsResponse(body []byte) ([]models.Review, string, error) {
	body = bytes.TrimSpace(body)
	body = bytes.TrimPrefix(body, batchExecutePrefix)

	var envelope any
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, "", fmt.Errorf("%w: decode envelope: %v", ErrMalformedResponse, err)
	}

	// A missing payload means the app has no (more) reviews.
	inner := lookupString(envelope, 0, 2)
	if inner == "" {
		return []models.Review{}, "", nil
	}

	var data []any
	if err := json.Unmarshal([]byte(inner), &data); err != nil {
		return nil, "", fmt.Errorf("%w: decode payload: %v", ErrMalformedResponse, err)
	}

	items := lookupSlice(data, 0)
	reviews := make([]models.Review, 0, len(items))
	for _, item := range items {
		if r, ok := parseReview(item); ok {
			reviews = append(reviews, r)
		}
	}

	var token string
	if len(data) >= 2 {
		if last := lookupSlice(data, len(data)-2); len(last) > 0 {
			token, _ = last[len(last)-1].(string)
		}
	}

	return reviews, token, nil
}

func parseReview(item any) (models.Review, bool) {
	id := lookupString(item, 0)
	if id == "" {
		return models.Review{}, false
	}

	r := models.Review{
		ReviewID: id,
		UserName: lookupString(item, 1, 0),
		Content:  lookupString(item, 4),
	}
	if score, ok := lookupInt(item, 2); ok {
		r.Rating = int(score)
	}
	if secs, ok := lookupInt(item, 5, 0); ok {
		r.PostedAt = time.Unix(secs, 0).UTC()
	}

	if reply, ok := lookup(item, 7, 1); ok {
		if text, isString := reply.(string); isString {
			r.ResponseContent = &text
		}
	}
	if secs, ok := lookupInt(item, 7, 2, 0); ok {
		at := time.Unix(secs, 0).UTC()
		r.RespondedAt = &at
	}

	return r, true
}
