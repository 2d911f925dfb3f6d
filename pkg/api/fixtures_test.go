package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/odvcencio/cfapi/pkg/fingerprint"
	"github.com/odvcencio/cfapi/pkg/schema"
)

const testAPIKey = "test-key-123"

type fileFixture struct {
	ID          int
	ModID       int
	Fingerprint fingerprint.Fingerprint
	DownloadURL string // empty renders null
	SHA1        string
	MD5         string
	Modules     []fingerprint.Fingerprint
}

func (f fileFixture) JSON() string {
	var hashes []string
	if f.SHA1 != "" {
		hashes = append(hashes, fmt.Sprintf(`{"value":%q,"algo":1}`, f.SHA1))
	}
	if f.MD5 != "" {
		hashes = append(hashes, fmt.Sprintf(`{"value":%q,"algo":2}`, f.MD5))
	}
	var modules []string
	for i, fp := range f.Modules {
		modules = append(modules, fmt.Sprintf(`{"name":"module-%d","fingerprint":%d}`, i, fp))
	}
	dl := "null"
	if f.DownloadURL != "" {
		dl = fmt.Sprintf("%q", f.DownloadURL)
	}
	return fmt.Sprintf(`{
		"id": %d, "gameId": 432, "modId": %d, "isAvailable": true,
		"displayName": "file-%d", "fileName": "file-%d.jar",
		"releaseType": 1, "fileStatus": 4,
		"hashes": [%s],
		"fileDate": "2023-05-01T10:00:00Z", "fileLength": 11, "downloadCount": 5,
		"downloadUrl": %s,
		"gameVersions": ["1.20.1"], "sortableGameVersions": [],
		"dependencies": [], "fileFingerprint": %d,
		"modules": [%s]
	}`, f.ID, f.ModID, f.ID, f.ID, strings.Join(hashes, ","), dl, f.Fingerprint, strings.Join(modules, ","))
}

func (f fileFixture) File(t *testing.T) schema.File {
	t.Helper()
	var file schema.File
	if err := json.Unmarshal([]byte(f.JSON()), &file); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return file
}

func matchJSON(f fileFixture) string {
	return fmt.Sprintf(`{"id": %d, "file": %s, "latestFiles": []}`, f.ModID, f.JSON())
}

func modJSON(id int, name string) string {
	return fmt.Sprintf(`{
		"id": %d, "gameId": 432, "name": %q, "slug": %q,
		"links": {"websiteUrl": "https://www.curseforge.com/minecraft/mc-mods/%s", "wikiUrl": "", "issuesUrl": null, "sourceUrl": "https://github.com/example/%s"},
		"summary": "a mod", "status": 4, "downloadCount": 1234567,
		"isFeatured": false, "primaryCategoryId": 423, "categories": [],
		"authors": [{"id": 1, "name": "author", "url": "https://www.curseforge.com/members/author"}],
		"screenshots": [], "mainFileId": 1, "latestFiles": [], "latestFilesIndexes": [],
		"dateCreated": "2020-01-01T00:00:00Z", "dateModified": "2023-01-01T00:00:00Z",
		"dateReleased": "2023-01-01T00:00:00Z", "gamePopularityRank": 10, "isAvailable": true
	}`, id, name, name, name, name)
}

func envelope(data string) string {
	return `{"data": ` + data + `}`
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

// newTestClient starts h behind an httptest server and returns a client
// rooted at its /v1/ path.
func newTestClient(t *testing.T, h http.HandlerFunc, opts ...func(*Config)) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	cfg := Config{BaseURL: ts.URL + "/v1/", APIKey: testAPIKey}
	for _, opt := range opts {
		opt(&cfg)
	}
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}
