// Package storeclient talks to the store HTTP API on behalf of storectl.
package storeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"store-offers-api/internal/importer"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const offersPath = "/api/store/offers"

// APIError is a non-2xx answer from the store API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("store api: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("store api: %d %s", e.Status, e.Message)
}

type Options struct {
	BaseURL  string
	Token    string
	RetryMax int
	// RetryWait caps the backoff between retries; zero keeps the library default.
	RetryWait time.Duration
	Timeout   time.Duration
	Logger    *logrus.Logger
}

type Client struct {
	baseURL string
	token   string
	http    *retryablehttp.Client
}

var _ importer.OfferAPI = (*Client)(nil)

func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Newf("invalid api url %q", opts.BaseURL)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = opts.RetryMax
	retryClient.CheckRetry = retryPolicy
	if opts.RetryWait > 0 {
		retryClient.RetryWaitMin = opts.RetryWait
		retryClient.RetryWaitMax = opts.RetryWait
	}
	if opts.Timeout > 0 {
		retryClient.HTTPClient.Timeout = opts.Timeout
	}
	if opts.Logger != nil && opts.Logger.IsLevelEnabled(logrus.DebugLevel) {
		retryClient.Logger = opts.Logger
	} else {
		retryClient.Logger = log.New(io.Discard, "", 0)
	}

	return &Client{baseURL: base.String(), token: opts.Token, http: retryClient}, nil
}

// retryPolicy is the library default minus plain 500s, which may already
// have committed a write.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err == nil && resp != nil && resp.StatusCode == http.StatusInternalServerError {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func (c *Client) AddOffer(ctx context.Context, in importer.OfferInput) (string, error) {
	body := map[string]any{
		"appIds":      nonNil(in.AppIDs),
		"itemIds":     nonNil(in.ItemIDs),
		"name":        in.Name,
		"description": in.Description,
		"tags":        nonNil(in.Tags),
	}
	resp, err := c.send(ctx, http.MethodPost, offersPath, body)
	if err != nil {
		return "", err
	}
	id := gjson.GetBytes(resp, "id").String()
	if id == "" {
		return "", errors.New("store api: created offer has no id")
	}
	return id, nil
}

func (c *Client) SetImageURL(ctx context.Context, offerID, imageURL string) error {
	_, err := c.send(ctx, http.MethodPut, offerPath(offerID, "image-url"), map[string]string{"imageUrl": imageURL})
	return err
}

func (c *Client) SetTime(ctx context.Context, offerID string, timeInfo json.RawMessage) error {
	_, err := c.send(ctx, http.MethodPut, offerPath(offerID, "time"), timeInfo)
	return err
}

func (c *Client) SetProperties(ctx context.Context, offerID string, properties json.RawMessage) error {
	_, err := c.send(ctx, http.MethodPut, offerPath(offerID, "properties"), properties)
	return err
}

func (c *Client) SetPrices(ctx context.Context, offerID string, prices []importer.Price) error {
	if prices == nil {
		prices = []importer.Price{}
	}
	_, err := c.send(ctx, http.MethodPut, offerPath(offerID, "prices"), map[string]any{"prices": prices})
	return err
}

// GetOffers returns the raw JSON array for the given ids.
func (c *Client) GetOffers(ctx context.Context, ids []string) ([]byte, error) {
	q := url.Values{}
	for _, id := range ids {
		q.Add("ids", id)
	}
	return c.send(ctx, http.MethodGet, offersPath+"/by-ids?"+q.Encode(), nil)
}

func (c *Client) send(ctx context.Context, method, path string, body any) ([]byte, error) {
	var raw []byte
	switch b := body.(type) {
	case nil:
	case json.RawMessage:
		raw = b
	default:
		var err error
		if raw, err = json.Marshal(b); err != nil {
			return nil, errors.Wrap(err, "encode request")
		}
	}

	var reqBody any
	if raw != nil {
		reqBody = raw
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if raw != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: gjson.GetBytes(respBody, "error.message").String(),
		}
	}
	return respBody, nil
}

func offerPath(offerID, field string) string {
	return offersPath + "/" + url.PathEscape(offerID) + "/" + field
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
