package lostpetsapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"lost-pets-catalog/internal/domain/pets"
	"lost-pets-catalog/internal/platform/httpclient"
)

// ListPets: GET /pets/?page=&size=
func (c *Client) ListPets(ctx context.Context, token string, page, size int) (pets.ListPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	path := "/pets/"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out pageWire
	err := c.call("list_pets", func() error {
		return c.http.DoJSON(ctx, http.MethodGet, path, httpclient.Bearer(token), nil, &out)
	})
	if err != nil {
		return pets.ListPage{}, err
	}
	return out.toPage(), nil
}

// ListAllPets junta todas las páginas siguiendo has_next, hasta maxFetchPages.
func (c *Client) ListAllPets(ctx context.Context, token string) ([]pets.Listing, error) {
	all := make([]pets.Listing, 0)
	for page := 1; page <= c.maxFetchPages; page++ {
		p, err := c.ListPets(ctx, token, page, c.fetchSize)
		if err != nil {
			return nil, err
		}
		all = append(all, p.Items...)
		if !p.HasNext {
			return all, nil
		}
	}

	c.log.Warn("listing truncated at max fetch pages", map[string]any{
		"max_pages": c.maxFetchPages,
		"fetched":   len(all),
	})
	return all, nil
}

// GetPet: GET /pets/{id}
func (c *Client) GetPet(ctx context.Context, token, id string) (pets.Detail, error) {
	var out detailWire
	err := c.call("get_pet", func() error {
		return c.http.DoJSON(ctx, http.MethodGet, "/pets/"+url.PathEscape(id), httpclient.Bearer(token), nil, &out)
	})
	if err != nil {
		return pets.Detail{}, err
	}
	return out.toDetail(), nil
}

// CreatePet: POST /pets/ con JSON.
func (c *Client) CreatePet(ctx context.Context, token string, d pets.Draft) (pets.Listing, error) {
	var out listItemWire
	err := c.call("create_pet", func() error {
		return c.http.DoJSON(ctx, http.MethodPost, "/pets/", httpclient.Bearer(token), toDraftWire(d), &out)
	})
	if err != nil {
		return pets.Listing{}, err
	}
	return out.toListing(), nil
}

// CreatePetWithImage: POST /pets/ como multipart, la foto va en el campo "picture".
func (c *Client) CreatePetWithImage(ctx context.Context, token string, d pets.Draft, img pets.Image) (pets.Listing, error) {
	file := &httpclient.FilePart{
		Field:       "picture",
		Filename:    img.Filename,
		ContentType: img.ContentType,
		Content:     img.Content,
	}

	var out listItemWire
	err := c.call("create_pet", func() error {
		return c.http.DoMultipart(ctx, http.MethodPost, "/pets/", httpclient.Bearer(token), toDraftWire(d).fields(), file, &out)
	})
	if err != nil {
		return pets.Listing{}, err
	}
	return out.toListing(), nil
}

// UpdatePet: PUT /pets/{id}
func (c *Client) UpdatePet(ctx context.Context, token, id string, d pets.Draft) error {
	return c.call("update_pet", func() error {
		return c.http.DoJSON(ctx, http.MethodPut, "/pets/"+url.PathEscape(id), httpclient.Bearer(token), toDraftWire(d), nil)
	})
}

// DeletePet: DELETE /pets/{id}
func (c *Client) DeletePet(ctx context.Context, token, id string) error {
	return c.call("delete_pet", func() error {
		return c.http.DoJSON(ctx, http.MethodDelete, "/pets/"+url.PathEscape(id), httpclient.Bearer(token), nil, nil)
	})
}

// MarkFound: PATCH /pets/{id}/mark-found
func (c *Client) MarkFound(ctx context.Context, token, id string) error {
	path := fmt.Sprintf("/pets/%s/mark-found", url.PathEscape(id))
	return c.call("mark_found", func() error {
		return c.http.DoJSON(ctx, http.MethodPatch, path, httpclient.Bearer(token), nil, nil)
	})
}

// SearchPets: GET /pets/search?type&breed&city&search. Solo manda los filtros presentes.
func (c *Client) SearchPets(ctx context.Context, token string, sq pets.SearchQuery) ([]pets.Listing, error) {
	q := url.Values{}
	if sq.Type != "" {
		q.Set("type", string(sq.Type))
	}
	if sq.Breed != "" {
		q.Set("breed", sq.Breed)
	}
	if sq.City != "" {
		q.Set("city", sq.City)
	}
	if sq.Search != "" {
		q.Set("search", sq.Search)
	}

	var out pageWire
	err := c.call("search_pets", func() error {
		return c.http.DoJSON(ctx, http.MethodGet, "/pets/search?"+q.Encode(), httpclient.Bearer(token), nil, &out)
	})
	if err != nil {
		return nil, err
	}
	return out.toPage().Items, nil
}
