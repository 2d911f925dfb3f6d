package schema

import "time"

// Mod is a project hosted on the service.
type Mod struct {
	ID                 int         `json:"id"`
	GameID             int         `json:"gameId"`
	Name               string      `json:"name"`
	Slug               string      `json:"slug"`
	Links              ModLinks    `json:"links"`
	Summary            string      `json:"summary"`
	Status             ModStatus   `json:"status"`
	DownloadCount      int64       `json:"downloadCount"`
	IsFeatured         bool        `json:"isFeatured"`
	PrimaryCategoryID  int         `json:"primaryCategoryId"`
	Categories         []Category  `json:"categories"`
	ClassID            *int        `json:"classId,omitempty"`
	Authors            []ModAuthor `json:"authors"`
	Logo               *ModAsset   `json:"logo,omitempty"`
	Screenshots        []ModAsset  `json:"screenshots"`
	MainFileID         int         `json:"mainFileId"`
	LatestFiles        []File      `json:"latestFiles"`
	LatestFilesIndexes []FileIndex `json:"latestFilesIndexes"`
	DateCreated        time.Time   `json:"dateCreated"`
	DateModified       time.Time   `json:"dateModified"`
	DateReleased       time.Time   `json:"dateReleased"`
	// AllowModDistribution is false when the author disabled third-party
	// downloads; files then carry no download URL.
	AllowModDistribution *bool `json:"allowModDistribution,omitempty"`
	GamePopularityRank   int64 `json:"gamePopularityRank"`
	// IsAvailable is false for experimental or deleted mods and for mods with
	// only alpha files.
	IsAvailable   bool   `json:"isAvailable"`
	ThumbsUpCount *int64 `json:"thumbsUpCount,omitempty"`
}

func (m *Mod) UnmarshalJSON(data []byte) error {
	type plain Mod
	return decodeStrict(data, "Mod", (*plain)(m),
		"id", "gameId", "name", "slug", "links", "summary", "status",
		"downloadCount", "isFeatured", "primaryCategoryId", "categories",
		"authors", "screenshots", "mainFileId", "latestFiles",
		"latestFilesIndexes", "dateCreated", "dateModified", "dateReleased",
		"gamePopularityRank", "isAvailable")
}

// ModLinks are the external pages of a mod.
type ModLinks struct {
	WebsiteURL URL         `json:"websiteUrl"`
	WikiURL    OptionalURL `json:"wikiUrl"`
	IssuesURL  OptionalURL `json:"issuesUrl"`
	SourceURL  OptionalURL `json:"sourceUrl"`
}

func (l *ModLinks) UnmarshalJSON(data []byte) error {
	type plain ModLinks
	return decodeStrict(data, "ModLinks", (*plain)(l), "websiteUrl")
}

// ModAuthor is a member credited on a mod.
type ModAuthor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  URL    `json:"url"`
}

func (a *ModAuthor) UnmarshalJSON(data []byte) error {
	type plain ModAuthor
	return decodeStrict(data, "ModAuthor", (*plain)(a), "id", "name", "url")
}

// ModAsset is an image attached to a mod (logo or screenshot).
type ModAsset struct {
	ID           int    `json:"id"`
	ModID        int    `json:"modId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	URL          URL    `json:"url"`
}

func (a *ModAsset) UnmarshalJSON(data []byte) error {
	type plain ModAsset
	return decodeStrict(data, "ModAsset", (*plain)(a),
		"id", "modId", "title", "description", "thumbnailUrl", "url")
}
