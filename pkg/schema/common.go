package schema

import (
	"encoding/json"
	"time"
)

// Category is a classification a mod can belong to.
type Category struct {
	ID               int       `json:"id"`
	GameID           int       `json:"gameId"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	URL              URL       `json:"url"`
	IconURL          URL       `json:"iconUrl"`
	DateModified     time.Time `json:"dateModified"`
	IsClass          *bool     `json:"isClass,omitempty"`
	ClassID          *int      `json:"classId,omitempty"`
	ParentCategoryID *int      `json:"parentCategoryId,omitempty"`
	DisplayIndex     *int      `json:"displayIndex,omitempty"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	return decodeStrict(data, "Category", (*plain)(c),
		"id", "gameId", "name", "slug", "url", "iconUrl", "dateModified")
}

// SortableGameVersion carries the padded form of a game version used for
// ordering, e.g. "1.5b" pads to "0000000001.0000000005".
type SortableGameVersion struct {
	GameVersionName        string    `json:"gameVersionName"`
	GameVersionPadded      string    `json:"gameVersionPadded"`
	GameVersion            string    `json:"gameVersion"`
	GameVersionReleaseDate time.Time `json:"gameVersionReleaseDate"`
	GameVersionTypeID      *int      `json:"gameVersionTypeId,omitempty"`
}

func (v *SortableGameVersion) UnmarshalJSON(data []byte) error {
	type plain SortableGameVersion
	return decodeStrict(data, "SortableGameVersion", (*plain)(v),
		"gameVersionName", "gameVersionPadded", "gameVersion", "gameVersionReleaseDate")
}

// Pagination describes one page of a paginated listing.
type Pagination struct {
	Index       int `json:"index"`
	PageSize    int `json:"pageSize"`
	ResultCount int `json:"resultCount"`
	TotalCount  int `json:"totalCount"`
}

func (p *Pagination) UnmarshalJSON(data []byte) error {
	type plain Pagination
	return decodeStrict(data, "Pagination", (*plain)(p),
		"index", "pageSize", "resultCount", "totalCount")
}

// Envelope is the wrapper every API response uses.
type Envelope[T any] struct {
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// DecodeEnvelope decodes an API response body. A missing or null data member
// is an error.
func DecodeEnvelope[T any](body []byte) (Envelope[T], error) {
	var raw struct {
		Data       json.RawMessage `json:"data"`
		Pagination *Pagination     `json:"pagination"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Envelope[T]{}, err
	}
	if len(raw.Data) == 0 || isNull(raw.Data) {
		return Envelope[T]{}, &MissingFieldError{Type: "Envelope", Field: "data"}
	}
	var env Envelope[T]
	if err := json.Unmarshal(raw.Data, &env.Data); err != nil {
		return Envelope[T]{}, err
	}
	env.Pagination = raw.Pagination
	return env, nil
}
