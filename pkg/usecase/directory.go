package usecase

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
)

// DirectoryPageFetcher reads pages of users flagged as not belonging to their
// organization
type DirectoryPageFetcher struct {
	platform interfaces.Platform
	clock    clock.Clock
}

// NewDirectoryPageFetcher creates a page fetcher
func NewDirectoryPageFetcher(platform interfaces.Platform, clk clock.Clock) *DirectoryPageFetcher {
	return &DirectoryPageFetcher{
		platform: platform,
		clock:    clk,
	}
}

// FetchPage returns the records at offset. The last-marked window is computed
// from the current time on every call. An empty slice means there are no more
// records.
func (f *DirectoryPageFetcher) FetchPage(ctx context.Context, offset, limit int) ([]model.UserRecord, error) {
	req := model.PageRequest{
		Offset: offset,
		Limit:  limit,
		Filter: model.NewLastMarkedFilter(f.clock.Now()),
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := f.platform.SearchUsers(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch directory page",
			goerr.V("offset", offset),
			goerr.V("limit", limit),
		)
	}

	ctxlog.From(ctx).Debug("Fetched directory page",
		"offset", offset,
		"limit", limit,
		"count", len(records),
		"from", req.Filter.LastMarkedFrom,
		"to", req.Filter.LastMarkedTo,
	)
	return records, nil
}
