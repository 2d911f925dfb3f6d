package api

import (
	"context"

	"github.com/odvcencio/cfapi/pkg/schema"
)

type modsRequest struct {
	ModIDs []int `json:"modIds"`
}

// GetMod fetches a single mod.
func (c *Client) GetMod(ctx context.Context, modID int) (*schema.Mod, error) {
	id, err := pathID("mod", modID)
	if err != nil {
		return nil, err
	}
	env, err := getJSON[schema.Mod](ctx, c, "get mod", c.endpoint("mods", id), responseLimitMods)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetModDescription returns the HTML description of a mod.
func (c *Client) GetModDescription(ctx context.Context, modID int) (string, error) {
	id, err := pathID("mod", modID)
	if err != nil {
		return "", err
	}
	env, err := getJSON[string](ctx, c, "get mod description", c.endpoint("mods", id, "description"), responseLimitDefault)
	if err != nil {
		return "", err
	}
	return env.Data, nil
}

// GetMods fetches several mods in one request. The service returns them in
// no particular order and silently omits unknown IDs; use GetModsOrdered to
// pair results with the request.
func (c *Client) GetMods(ctx context.Context, modIDs []int) ([]schema.Mod, error) {
	env, err := postJSON[[]schema.Mod](ctx, c, "get mods", c.endpoint("mods"),
		modsRequest{ModIDs: nonNil(modIDs)}, responseLimitMods)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetModsOrdered is GetMods with one result per requested ID, in request
// order.
func (c *Client) GetModsOrdered(ctx context.Context, modIDs []int) ([]Lookup[int, schema.Mod], error) {
	mods, err := c.GetMods(ctx, modIDs)
	if err != nil {
		return nil, err
	}
	return Correlate(modIDs, mods, func(m schema.Mod) int { return m.ID }), nil
}

// nonNil keeps empty ID lists encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
