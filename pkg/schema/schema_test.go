package schema

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/cfapi/pkg/fingerprint"
)

const fileJSON = `{
	"id": 3606078,
	"gameId": 432,
	"modId": 513688,
	"isAvailable": true,
	"displayName": "Terralith v2.0.12",
	"fileName": "Terralith_v2.0.12.jar",
	"releaseType": 1,
	"fileStatus": 4,
	"hashes": [
		{"value": "d1f6c5e3b0a4f9e2c7b8a1d0e3f4a5b6c7d8e9f0", "algo": 1},
		{"value": "9e107d9d372bb6826bd81d3542a419d6", "algo": 2}
	],
	"fileDate": "2022-01-02T03:04:05.67Z",
	"fileLength": 1234567,
	"downloadCount": 42,
	"downloadUrl": "https://edge.forgecdn.net/files/3606/78/Terralith_v2.0.12.jar",
	"gameVersions": ["1.18.1", "Fabric"],
	"sortableGameVersions": [{
		"gameVersionName": "1.18.1",
		"gameVersionPadded": "0000000001.0000000018.0000000001",
		"gameVersion": "1.18.1",
		"gameVersionReleaseDate": "2021-12-10T00:00:00Z",
		"gameVersionTypeId": 73250
	}],
	"dependencies": [{"modId": 306612, "relationType": 3}],
	"isServerPack": false,
	"earlyAccessEndDate": "",
	"fileFingerprint": 3152352289,
	"modules": [{"name": "META-INF", "fingerprint": 4147383233}],
	"someFieldAddedLater": {"ignored": true}
}`

func TestDecodeFile(t *testing.T) {
	var f File
	require.NoError(t, json.Unmarshal([]byte(fileJSON), &f))

	assert.Equal(t, 3606078, f.ID)
	assert.Equal(t, 513688, f.ModID)
	assert.Equal(t, ReleaseTypeRelease, f.ReleaseType)
	assert.Equal(t, FileStatusApproved, f.FileStatus)
	assert.Equal(t, fingerprint.Fingerprint(3152352289), f.FileFingerprint)
	assert.Equal(t, int64(1234567), f.FileLength)
	assert.Nil(t, f.FileSizeOnDisk)
	require.NotNil(t, f.IsServerPack)
	assert.False(t, *f.IsServerPack)

	u, ok := f.DownloadURL.Get()
	require.True(t, ok)
	assert.Equal(t, "edge.forgecdn.net", u.Host)

	assert.False(t, f.EarlyAccessEndDate.IsSet())

	sha1, ok := f.Hash(HashAlgoSHA1)
	require.True(t, ok)
	assert.Equal(t, "d1f6c5e3b0a4f9e2c7b8a1d0e3f4a5b6c7d8e9f0", sha1)

	require.Len(t, f.Dependencies, 1)
	assert.Equal(t, RelationRequiredDependency, f.Dependencies[0].RelationType)
	require.Len(t, f.SortableGameVersions, 1)
	require.NotNil(t, f.SortableGameVersions[0].GameVersionTypeID)
	assert.Equal(t, 73250, *f.SortableGameVersions[0].GameVersionTypeID)
}

func TestDecodeFileEmptyDownloadURLIsAbsent(t *testing.T) {
	for _, raw := range []string{`""`, `null`} {
		body := strings.Replace(fileJSON,
			`"https://edge.forgecdn.net/files/3606/78/Terralith_v2.0.12.jar"`, raw, 1)
		var f File
		require.NoError(t, json.Unmarshal([]byte(body), &f), "downloadUrl=%s", raw)
		assert.False(t, f.DownloadURL.IsSet(), "downloadUrl=%s", raw)
	}
}

func TestDecodeFileMissingRequiredField(t *testing.T) {
	body := strings.Replace(fileJSON, `"fileFingerprint": 3152352289,`, "", 1)
	var f File
	err := json.Unmarshal([]byte(body), &f)
	require.Error(t, err)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing), "err = %v", err)
	assert.Equal(t, "File", missing.Type)
	assert.Equal(t, "fileFingerprint", missing.Field)
}

func TestDecodeFileNullRequiredField(t *testing.T) {
	body := strings.Replace(fileJSON, `"fileName": "Terralith_v2.0.12.jar"`, `"fileName": null`, 1)
	var f File
	var missing *MissingFieldError
	require.ErrorAs(t, json.Unmarshal([]byte(body), &f), &missing)
	assert.Equal(t, "fileName", missing.Field)
}

func TestDecodeFileUnknownEnumCode(t *testing.T) {
	body := strings.Replace(fileJSON, `"fileStatus": 4`, `"fileStatus": 99`, 1)
	var f File
	err := json.Unmarshal([]byte(body), &f)

	var unknown *UnknownCodeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "FileStatus", unknown.Enum)
	assert.Equal(t, 99, unknown.Code)
}

func TestDecodeFileMalformedDownloadURL(t *testing.T) {
	body := strings.Replace(fileJSON,
		`"https://edge.forgecdn.net/files/3606/78/Terralith_v2.0.12.jar"`, `"http://[::1"`, 1)
	var f File
	assert.Error(t, json.Unmarshal([]byte(body), &f))
}

func TestEnumsDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		decode  func([]byte) (string, error)
		want    string
		wantErr bool
	}{
		{name: "release type beta", raw: "2", decode: decodeAs[FileReleaseType], want: "beta"},
		{name: "release type zero", raw: "0", decode: decodeAs[FileReleaseType], wantErr: true},
		{name: "file status last", raw: "23", decode: decodeAs[FileStatus], want: "post-processing"},
		{name: "file status past end", raw: "24", decode: decodeAs[FileStatus], wantErr: true},
		{name: "hash algo md5", raw: "2", decode: decodeAs[HashAlgo], want: "md5"},
		{name: "relation include", raw: "6", decode: decodeAs[FileRelationType], want: "include"},
		{name: "relation negative", raw: "-1", decode: decodeAs[FileRelationType], wantErr: true},
		{name: "mod status under review", raw: "10", decode: decodeAs[ModStatus], want: "under-review"},
		{name: "mod loader any", raw: "0", decode: decodeAs[ModLoaderType], want: "any"},
		{name: "mod loader neoforge", raw: "6", decode: decodeAs[ModLoaderType], want: "neoforge"},
		{name: "mod loader unknown", raw: "7", decode: decodeAs[ModLoaderType], wantErr: true},
		{name: "string code", raw: `"1"`, decode: decodeAs[HashAlgo], wantErr: true},
		{name: "null code", raw: `null`, decode: decodeAs[ModStatus], wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.decode([]byte(tc.raw))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// decodeAs unmarshals raw into a T and returns its String form.
func decodeAs[T interface{ String() string }](raw []byte) (string, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	return v.String(), nil
}

func TestEnumStringUnknown(t *testing.T) {
	assert.Equal(t, "FileStatus(0)", FileStatus(0).String())
	assert.Equal(t, "ModLoaderType(200)", ModLoaderType(200).String())
}

func TestOptionalTime(t *testing.T) {
	var v struct {
		A OptionalTime `json:"a"`
		B OptionalTime `json:"b"`
		C OptionalTime `json:"c"`
		D OptionalTime `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"2024-05-01T10:00:00Z","b":"","c":null}`), &v))

	ts, ok := v.A.Get()
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())
	assert.False(t, v.B.IsSet())
	assert.False(t, v.C.IsSet())
	assert.False(t, v.D.IsSet())

	assert.Error(t, json.Unmarshal([]byte(`{"a":"yesterday"}`), &v))
}

func TestRequiredURLRejectsEmpty(t *testing.T) {
	var a ModAuthor
	err := json.Unmarshal([]byte(`{"id":1,"name":"Starmute","url":""}`), &a)
	assert.Error(t, err)

	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Starmute","url":"https://www.curseforge.com/members/starmute"}`), &a))
	assert.Equal(t, "https://www.curseforge.com/members/starmute", a.URL.String())
}

func TestURLRejectsRelativeAndGarbage(t *testing.T) {
	for _, raw := range []string{"not a url at all", "/members/starmute", "www.curseforge.com/members/starmute", "mailto:someone"} {
		t.Run(raw, func(t *testing.T) {
			var a ModAuthor
			body := `{"id":1,"name":"Starmute","url":` + strconv.Quote(raw) + `}`
			assert.Error(t, json.Unmarshal([]byte(body), &a))

			var links ModLinks
			body = `{"websiteUrl":"https://example.com/m","wikiUrl":` + strconv.Quote(raw) + `}`
			assert.Error(t, json.Unmarshal([]byte(body), &links))
		})
	}
}

func TestOptionalURLRoundTrip(t *testing.T) {
	links := ModLinks{}
	require.NoError(t, json.Unmarshal([]byte(`{"websiteUrl":"https://example.com/m","wikiUrl":"","issuesUrl":"https://example.com/i","sourceUrl":null}`), &links))

	out, err := json.Marshal(links)
	require.NoError(t, err)
	assert.JSONEq(t, `{"websiteUrl":"https://example.com/m","wikiUrl":null,"issuesUrl":"https://example.com/i","sourceUrl":null}`, string(out))
}

func TestDecodeEnvelopeIsTransparent(t *testing.T) {
	payload := `{"isCacheBuilt":true,"exactMatches":[],"exactFingerprints":[],"partialMatches":[],"partialMatchFingerprints":{},"installedFingerprints":[],"unmatchedFingerprints":[12]}`

	env, err := DecodeEnvelope[FingerprintMatches]([]byte(`{"data":` + payload + `,"pagination":null}`))
	require.NoError(t, err)
	assert.Nil(t, env.Pagination)

	var direct FingerprintMatches
	require.NoError(t, json.Unmarshal([]byte(payload), &direct))
	assert.Equal(t, direct, env.Data)
}

func TestDecodeEnvelopeWithPagination(t *testing.T) {
	env, err := DecodeEnvelope[[]int]([]byte(`{"data":[1,2],"pagination":{"index":0,"pageSize":50,"resultCount":2,"totalCount":2}}`))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, env.Data)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 50, env.Pagination.PageSize)
}

func TestDecodeEnvelopeRejectsMissingData(t *testing.T) {
	for _, body := range []string{`{}`, `{"data":null}`, `{"pagination":null}`} {
		_, err := DecodeEnvelope[FingerprintMatches]([]byte(body))
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing, "body %s", body)
		assert.Equal(t, "data", missing.Field)
	}
}

func TestDecodeEnvelopeRejectsGarbage(t *testing.T) {
	for _, body := range []string{``, `not json`, `[1,2,3]`, `{"data":{"exactMatches":"nope"}}`} {
		_, err := DecodeEnvelope[FingerprintMatches]([]byte(body))
		assert.Error(t, err, "body %q", body)
	}
}

func TestFingerprintMatchesRequiresFields(t *testing.T) {
	var m FingerprintMatches
	err := json.Unmarshal([]byte(`{"isCacheBuilt":true,"exactMatches":[]}`), &m)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "exactFingerprints", missing.Field)
}

func TestFingerprintMatchesUnmatchedAbsent(t *testing.T) {
	var m FingerprintMatches
	require.NoError(t, json.Unmarshal([]byte(`{"isCacheBuilt":true,"exactMatches":[],"exactFingerprints":[],"partialMatches":[],"partialMatchFingerprints":{"3606078":[1,2]},"installedFingerprints":[7]}`), &m))
	assert.Nil(t, m.UnmatchedFingerprints)
	assert.Equal(t, []fingerprint.Fingerprint{1, 2}, m.PartialMatchFingerprints["3606078"])
	assert.Equal(t, []fingerprint.Fingerprint{7}, m.InstalledFingerprints)
}

func TestMatchFingerprintComesFromFile(t *testing.T) {
	var m Match
	require.NoError(t, json.Unmarshal([]byte(`{"id":513688,"file":`+fileJSON+`,"latestFiles":[]}`), &m))
	assert.Equal(t, 513688, m.ModID)
	assert.Equal(t, fingerprint.Fingerprint(3152352289), m.Fingerprint())
}
