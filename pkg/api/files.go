package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/odvcencio/cfapi/pkg/schema"
)

// modFilesPageSize asks for every file of a mod in a single page.
const modFilesPageSize = "10000"

type filesRequest struct {
	FileIDs []int `json:"fileIds"`
}

func fileURLPath(modID, fileID int) ([]string, error) {
	m, err := pathID("mod", modID)
	if err != nil {
		return nil, err
	}
	f, err := pathID("file", fileID)
	if err != nil {
		return nil, err
	}
	return []string{"mods", m, "files", f}, nil
}

// GetModFiles lists the files of a mod.
func (c *Client) GetModFiles(ctx context.Context, modID int) ([]schema.File, error) {
	id, err := pathID("mod", modID)
	if err != nil {
		return nil, err
	}
	u := c.endpoint("mods", id, "files")
	u.RawQuery = url.Values{"pageSize": {modFilesPageSize}}.Encode()

	env, err := getJSON[[]schema.File](ctx, c, "get mod files", u, responseLimitFiles)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetModFile fetches a single file of a mod.
func (c *Client) GetModFile(ctx context.Context, modID, fileID int) (*schema.File, error) {
	segs, err := fileURLPath(modID, fileID)
	if err != nil {
		return nil, err
	}
	env, err := getJSON[schema.File](ctx, c, "get mod file", c.endpoint(segs...), responseLimitDefault)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetFiles fetches files by ID across mods. Order and completeness follow
// the service; see GetFilesOrdered.
func (c *Client) GetFiles(ctx context.Context, fileIDs []int) ([]schema.File, error) {
	env, err := postJSON[[]schema.File](ctx, c, "get files", c.endpoint("mods", "files"),
		filesRequest{FileIDs: nonNil(fileIDs)}, responseLimitFiles)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetFilesOrdered is GetFiles with one result per requested ID, in request
// order.
func (c *Client) GetFilesOrdered(ctx context.Context, fileIDs []int) ([]Lookup[int, schema.File], error) {
	files, err := c.GetFiles(ctx, fileIDs)
	if err != nil {
		return nil, err
	}
	return Correlate(fileIDs, files, func(f schema.File) int { return f.ID }), nil
}

// GetModFileChangelog returns the HTML changelog of a file.
func (c *Client) GetModFileChangelog(ctx context.Context, modID, fileID int) (string, error) {
	segs, err := fileURLPath(modID, fileID)
	if err != nil {
		return "", err
	}
	env, err := getJSON[string](ctx, c, "get file changelog", c.endpoint(append(segs, "changelog")...), responseLimitDefault)
	if err != nil {
		return "", err
	}
	return env.Data, nil
}

// GetModFileDownloadURL asks the service for a file's download URL. Files
// whose mod disallows third-party distribution come back with an empty or
// URL, reported as ErrNoDownloadURL.
func (c *Client) GetModFileDownloadURL(ctx context.Context, modID, fileID int) (*url.URL, error) {
	segs, err := fileURLPath(modID, fileID)
	if err != nil {
		return nil, err
	}
	env, err := getJSON[string](ctx, c, "get file download url", c.endpoint(append(segs, "download-url")...), responseLimitDefault)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(env.Data) == "" {
		return nil, ErrNoDownloadURL
	}
	return parseHTTPURL(env.Data)
}
