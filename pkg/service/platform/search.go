package platform

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
	"github.com/tidwall/gjson"
)

// WindowTimeFormat is the timestamp layout of the last-marked window bounds
const WindowTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// searchFields are the user attributes requested from the directory
var searchFields = []string{"userId", "rootOrgName", "profileDetails"}

type searchRequest struct {
	Request searchRequestBody `json:"request"`
}

type searchRequestBody struct {
	Filters searchFilters `json:"filters"`
	Offset  int           `json:"offset"`
	Limit   int           `json:"limit"`
	Fields  []string      `json:"fields"`
}

type searchFilters struct {
	Status           string       `json:"status"`
	LastMarkedWindow markedWindow `json:"lastMarkedWindow"`
}

type markedWindow struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SearchUsers fetches one page of the user directory
func (c *Client) SearchUsers(ctx context.Context, req model.PageRequest) ([]model.UserRecord, error) {
	const operation = "search users"

	if err := req.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid directory page request")
	}

	body := searchRequest{
		Request: searchRequestBody{
			Filters: searchFilters{
				Status: req.Filter.Status,
				LastMarkedWindow: markedWindow{
					From: req.Filter.LastMarkedFrom.UTC().Format(WindowTimeFormat),
					To:   req.Filter.LastMarkedTo.UTC().Format(WindowTimeFormat),
				},
			},
			Offset: req.Offset,
			Limit:  req.Limit,
			Fields: searchFields,
		},
	}

	resp, err := c.fetch(ctx, operation, c.apiBuilder(searchUsersPath).Post().BodyJSON(&body))
	if err != nil {
		return nil, err
	}
	if err := resp.expectOK(operation); err != nil {
		return nil, err
	}

	content := gjson.Get(resp.body, "result.response.content")
	if !content.IsArray() {
		return nil, goerr.Wrap(&model.UpstreamError{
			Operation:  operation,
			StatusCode: resp.status,
			Message:    "directory response has no content list",
		}, "missing content in search response")
	}

	var records []model.UserRecord
	for _, item := range content.Array() {
		records = append(records, parseUserRecord(item))
	}
	return records, nil
}

func parseUserRecord(item gjson.Result) model.UserRecord {
	record := model.UserRecord{
		ID: types.UserID(item.Get("userId").String()),
	}
	if record.ID == "" {
		record.ID = types.UserID(item.Get("id").String())
	}
	if org := item.Get("rootOrgName"); org.Exists() && org.Type != gjson.Null {
		name := types.OrgName(org.String())
		record.RootOrgName = &name
	}
	if details := item.Get("profileDetails"); details.Exists() && details.Type != gjson.Null {
		record.ProfileDetails = json.RawMessage(details.Raw)
	}
	return record
}
