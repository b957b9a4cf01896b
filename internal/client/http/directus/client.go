package directus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/sezikua/TruckTyres-GE/internal/model"
)

type client struct {
	httpc      *http.Client
	baseURL    string
	token      string
	collection string
}

func NewClient(httpc *http.Client, baseURL, token, collection string) *client {
	return &client{
		httpc:      httpc,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		collection: collection,
	}
}

// Count reports the authoritative match total for the clause set,
// independent of any page actually fetched.
func (c *client) Count(ctx context.Context, clauses []model.Clause) (int, error) {
	const op = "directus.Count"

	params := clauseParams(clauses)
	params.Set("limit", "0")
	params.Set("meta", "total_count")

	var env listEnvelope
	if err := c.getJSON(ctx, c.itemsURL(params), &env); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if env.Meta == nil || env.Meta.TotalCount == nil {
		return 0, fmt.Errorf("%s: response carries no total_count", op)
	}

	return *env.Meta.TotalCount, nil
}

// Fetch returns one page of matches. A negative limit retrieves every
// match.
func (c *client) Fetch(ctx context.Context, clauses []model.Clause, page, limit int) ([]model.Product, error) {
	const op = "directus.Fetch"

	params := clauseParams(clauses)
	if limit < 0 {
		params.Set("limit", "-1")
	} else {
		params.Set("page", strconv.Itoa(page))
		params.Set("limit", strconv.Itoa(limit))
	}

	var env listEnvelope
	if err := c.getJSON(ctx, c.itemsURL(params), &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entitiesToModels(env.Data), nil
}

func (c *client) ProductByID(ctx context.Context, id int64) (*model.Product, error) {
	const op = "directus.ProductByID"

	u := fmt.Sprintf("%s/items/%s/%d", c.baseURL, c.collection, id)

	var env itemEnvelope
	if err := c.getJSON(ctx, u, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if env.Data == nil {
		return nil, model.ErrProductNotFound
	}

	return entityToModel(env.Data), nil
}

func (c *client) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	const op = "directus.ProductBySlug"

	params := url.Values{}
	params.Set("filter[slug][_eq]", slug)
	params.Set("limit", "1")

	var env listEnvelope
	if err := c.getJSON(ctx, c.itemsURL(params), &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(env.Data) == 0 {
		return nil, model.ErrProductNotFound
	}

	return entityToModel(&env.Data[0]), nil
}

// FieldValues lists the distinct non-empty values of one store field,
// sorted ascending.
func (c *client) FieldValues(ctx context.Context, field string) ([]string, error) {
	const op = "directus.FieldValues"

	params := url.Values{}
	params.Set("fields", field)
	params.Set("limit", "-1")

	var env valuesEnvelope
	if err := c.getJSON(ctx, c.itemsURL(params), &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	values := make([]string, 0, len(env.Data))
	for _, row := range env.Data {
		if v, ok := row[field].(string); ok {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}

	values = lo.Uniq(values)
	sort.Strings(values)

	return values, nil
}

func (c *client) itemsURL(params url.Values) string {
	return fmt.Sprintf("%s/items/%s?%s", c.baseURL, c.collection, params.Encode())
}

func (c *client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return model.ErrProductNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
