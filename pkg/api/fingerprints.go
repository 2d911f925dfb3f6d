package api

import (
	"context"
	"strconv"

	"github.com/odvcencio/cfapi/pkg/fingerprint"
	"github.com/odvcencio/cfapi/pkg/schema"
)

// MatchKind classifies how a fingerprint was matched.
type MatchKind uint8

const (
	Unmatched MatchKind = iota
	Exact
	Partial
)

func (k MatchKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Partial:
		return "partial"
	default:
		return "unmatched"
	}
}

// FingerprintResult is the outcome for one requested fingerprint.
type FingerprintResult struct {
	Fingerprint fingerprint.Fingerprint
	Kind        MatchKind
	Match       *schema.Match // nil when Kind is Unmatched
}

func (c *Client) fingerprintsEndpoint() []string {
	if c.cfg.LegacyFingerprints {
		return []string{"fingerprints"}
	}
	return []string{"fingerprints", strconv.Itoa(c.cfg.GameID)}
}

// GetFingerprintMatches resolves fingerprints against the service in one
// request. The response is returned as reported; exact matches are not in
// request order and may omit fingerprints. MatchFingerprints pairs them up.
func (c *Client) GetFingerprintMatches(ctx context.Context, fps []fingerprint.Fingerprint) (*schema.FingerprintMatches, error) {
	body := schema.FingerprintsRequest{Fingerprints: nonNil(fps)}
	env, err := postJSON[schema.FingerprintMatches](ctx, c, "get fingerprint matches",
		c.endpoint(c.fingerprintsEndpoint()...), body, responseLimitFiles)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetFingerprintMatchesFromContents fingerprints each content and resolves
// the results.
func (c *Client) GetFingerprintMatchesFromContents(ctx context.Context, contents [][]byte) (*schema.FingerprintMatches, error) {
	return c.GetFingerprintMatches(ctx, fingerprint.ComputeAll(contents))
}

// MatchFingerprints resolves fingerprints and returns one result per input,
// in input order.
func (c *Client) MatchFingerprints(ctx context.Context, fps []fingerprint.Fingerprint) ([]FingerprintResult, error) {
	m, err := c.GetFingerprintMatches(ctx, fps)
	if err != nil {
		return nil, err
	}
	return CorrelateMatches(fps, m), nil
}

// CorrelateMatches pairs each fingerprint with its match in m. Exact
// matches are keyed by the matched file's fingerprint. A fingerprint with no
// exact match is looked up among partial matches, by file fingerprint,
// module fingerprints and the service's per-file partial fingerprint lists.
func CorrelateMatches(fps []fingerprint.Fingerprint, m *schema.FingerprintMatches) []FingerprintResult {
	out := make([]FingerprintResult, len(fps))
	if m == nil {
		for i, fp := range fps {
			out[i].Fingerprint = fp
		}
		return out
	}

	partial := partialIndex(m)
	for i, l := range Correlate(fps, m.ExactMatches, schema.Match.Fingerprint) {
		out[i].Fingerprint = l.Key
		if l.Found {
			match := l.Value
			out[i].Kind = Exact
			out[i].Match = &match
			continue
		}
		if j, ok := partial[l.Key]; ok {
			match := m.PartialMatches[j]
			out[i].Kind = Partial
			out[i].Match = &match
		}
	}
	return out
}

func partialIndex(m *schema.FingerprintMatches) map[fingerprint.Fingerprint]int {
	index := make(map[fingerprint.Fingerprint]int)
	add := func(fp fingerprint.Fingerprint, j int) {
		if _, dup := index[fp]; !dup {
			index[fp] = j
		}
	}
	for j, pm := range m.PartialMatches {
		add(pm.File.FileFingerprint, j)
		for _, mod := range pm.File.Modules {
			add(mod.Fingerprint, j)
		}
		for _, fp := range m.PartialMatchFingerprints[strconv.Itoa(pm.File.ID)] {
			add(fp, j)
		}
	}
	return index
}
