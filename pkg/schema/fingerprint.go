package schema

import "github.com/odvcencio/cfapi/pkg/fingerprint"

// FingerprintMatches is the result of a fingerprint lookup.
type FingerprintMatches struct {
	IsCacheBuilt bool `json:"isCacheBuilt"`
	// ExactMatches holds one entry per fingerprint the service matched
	// unambiguously.
	ExactMatches      []Match                   `json:"exactMatches"`
	ExactFingerprints []fingerprint.Fingerprint `json:"exactFingerprints"`
	PartialMatches    []Match                   `json:"partialMatches"`
	// PartialMatchFingerprints groups contributing fingerprints under a
	// service-defined key. It is passed through unchanged.
	PartialMatchFingerprints map[string][]fingerprint.Fingerprint `json:"partialMatchFingerprints"`
	// InstalledFingerprints is service bookkeeping, passed through unchanged.
	InstalledFingerprints []fingerprint.Fingerprint `json:"installedFingerprints"`
	// UnmatchedFingerprints is usually null in practice; nil means the
	// service did not report it, not that everything matched.
	UnmatchedFingerprints []fingerprint.Fingerprint `json:"unmatchedFingerprints"`
}

func (m *FingerprintMatches) UnmarshalJSON(data []byte) error {
	type plain FingerprintMatches
	return decodeStrict(data, "FingerprintMatches", (*plain)(m),
		"isCacheBuilt", "exactMatches", "exactFingerprints", "partialMatches",
		"partialMatchFingerprints", "installedFingerprints")
}

// Match pairs a matched file with its mod and that mod's latest files.
type Match struct {
	ModID       int    `json:"id"`
	File        File   `json:"file"`
	LatestFiles []File `json:"latestFiles"`
}

func (m *Match) UnmarshalJSON(data []byte) error {
	type plain Match
	return decodeStrict(data, "Match", (*plain)(m), "id", "file", "latestFiles")
}

// Fingerprint returns the fingerprint of the matched file.
func (m Match) Fingerprint() fingerprint.Fingerprint {
	return m.File.FileFingerprint
}

// FingerprintsRequest is the body of a fingerprint lookup.
type FingerprintsRequest struct {
	Fingerprints []fingerprint.Fingerprint `json:"fingerprints"`
}
