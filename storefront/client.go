package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"ashwi.GO/model/dto"
)

// Client is a typed HTTP client over the catalog REST API. Timeouts
// and retries are left to the underlying http.Client; errors collapse
// to one flat message per call (the pages show a generic failure and
// stay interactive).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for a base URL like "http://host:8080/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

// NewClientWithHTTP creates a client with a caller-supplied http.Client.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	c := NewClient(baseURL)
	if hc != nil {
		c.http = hc
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("catalog api: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog api: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("catalog api: GET %s: status %d", path, res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog api: GET %s: %w", path, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("catalog api: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("catalog api: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog api: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("catalog api: POST %s: status %d", path, res.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("catalog api: POST %s: %w", path, err)
		}
	}
	return nil
}

// --- categories ---

func (c *Client) Categories(ctx context.Context) ([]dto.Category, error) {
	var resp dto.CategoryListResponse
	if err := c.get(ctx, "/categories/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) Category(ctx context.Context, slug string) (*dto.Category, error) {
	var cat dto.Category
	if err := c.get(ctx, "/categories/"+url.PathEscape(slug)+"/", nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) CategoryProducts(ctx context.Context, slug string, f FilterState) (*dto.ProductListResponse, error) {
	var resp dto.ProductListResponse
	if err := c.get(ctx, "/categories/"+url.PathEscape(slug)+"/products/", pageValues(f), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- subcategories ---

func (c *Client) Subcategories(ctx context.Context, categorySlug string) ([]dto.Subcategory, error) {
	q := url.Values{}
	if categorySlug != "" {
		q.Set("category", categorySlug)
	}
	var resp dto.SubcategoryListResponse
	if err := c.get(ctx, "/subcategories/", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) Subcategory(ctx context.Context, slug string) (*dto.Subcategory, error) {
	var sub dto.Subcategory
	if err := c.get(ctx, "/subcategories/"+url.PathEscape(slug)+"/", nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) SubcategoryProducts(ctx context.Context, slug string, f FilterState) (*dto.ProductListResponse, error) {
	var resp dto.ProductListResponse
	if err := c.get(ctx, "/subcategories/"+url.PathEscape(slug)+"/products/", pageValues(f), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- products ---

func (c *Client) Products(ctx context.Context, f FilterState) (*dto.ProductListResponse, error) {
	var resp dto.ProductListResponse
	if err := c.get(ctx, "/products/", f.Values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Product(ctx context.Context, slug string) (*dto.Product, error) {
	var p dto.Product
	if err := c.get(ctx, "/products/"+url.PathEscape(slug)+"/", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Featured(ctx context.Context) (*dto.ProductListResponse, error) {
	var resp dto.ProductListResponse
	if err := c.get(ctx, "/products/featured/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Bestsellers(ctx context.Context) (*dto.ProductListResponse, error) {
	var resp dto.ProductListResponse
	if err := c.get(ctx, "/products/bestsellers/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) OnSale(ctx context.Context) (*dto.ProductListResponse, error) {
	var resp dto.ProductListResponse
	if err := c.get(ctx, "/products/on_sale/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) (*dto.ProductListResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	var resp dto.ProductListResponse
	if err := c.get(ctx, "/products/search/", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- reviews ---

func (c *Client) Reviews(ctx context.Context, productSlug string) ([]dto.ProductReview, error) {
	var resp struct {
		Count   int                 `json:"count"`
		Results []dto.ProductReview `json:"results"`
	}
	if err := c.get(ctx, "/products/"+url.PathEscape(productSlug)+"/reviews/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) CreateReview(ctx context.Context, productSlug string, review dto.ProductReview) (*dto.ProductReview, error) {
	var created dto.ProductReview
	if err := c.post(ctx, "/products/"+url.PathEscape(productSlug)+"/reviews/", review, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// pageValues keeps only pagination/ordering for the nested product
// routes, where the path already fixes the category facet.
func pageValues(f FilterState) url.Values {
	q := f.Values()
	q.Del("category")
	q.Del("subcategory")
	return q
}
