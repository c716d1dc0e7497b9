package listingapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"stayfront/internal/app/policies"
	domainlistings "stayfront/internal/domain/listings"
)

var (
	ErrNotConfigured    = errors.New("listing api: client not configured")
	ErrUnexpectedStatus = errors.New("listing api: unexpected status")
	ErrUnsuccessful     = errors.New("listing api: unsuccessful response")
	ErrUnavailable      = errors.New("listing api: unavailable")
	ErrTimeout          = errors.New("listing api: timeout")
)

const catalogKey = "catalog"

type envelope[T any] struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Client talks to the remote hotel-room API. The catalog and room detail
// responses are cached for CacheTTL; search responses are never cached.
type Client struct {
	BaseURL string
	Client  *http.Client
	Timeout time.Duration
	Logger  *slog.Logger

	catalog *ttlcache.Cache[string, []domainlistings.Listing]
	rooms   *ttlcache.Cache[domainlistings.ListingID, domainlistings.Detail]
}

type Options struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
	Client   *http.Client
	Logger   *slog.Logger
}

func New(opts Options) *Client {
	httpClient := opts.Client
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	c := &Client{
		BaseURL: strings.TrimRight(opts.BaseURL, "/"),
		Client:  httpClient,
		Timeout: opts.Timeout,
		Logger:  opts.Logger,
	}
	if opts.CacheTTL > 0 {
		c.catalog = ttlcache.New(
			ttlcache.WithTTL[string, []domainlistings.Listing](opts.CacheTTL),
			ttlcache.WithDisableTouchOnHit[string, []domainlistings.Listing](),
		)
		c.rooms = ttlcache.New(
			ttlcache.WithTTL[domainlistings.ListingID, domainlistings.Detail](opts.CacheTTL),
			ttlcache.WithDisableTouchOnHit[domainlistings.ListingID, domainlistings.Detail](),
			ttlcache.WithCapacity[domainlistings.ListingID, domainlistings.Detail](512),
		)
	}
	return c
}

// Start runs the cache expiry loops until Stop is called.
func (c *Client) Start() {
	if c.catalog != nil {
		go c.catalog.Start()
		go c.rooms.Start()
	}
}

func (c *Client) Stop() {
	if c.catalog != nil {
		c.catalog.Stop()
		c.rooms.Stop()
	}
}

func (c *Client) Catalog(ctx context.Context) ([]domainlistings.Listing, error) {
	if c.catalog != nil {
		if item := c.catalog.Get(catalogKey); item != nil {
			return item.Value(), nil
		}
	}
	var env envelope[[]domainlistings.Listing]
	if err := c.get(ctx, "/hotelrooms", nil, &env); err != nil {
		return nil, err
	}
	if env.Success != nil && !*env.Success {
		return nil, c.unsuccessful("/hotelrooms", env.Message)
	}
	if c.catalog != nil {
		c.catalog.Set(catalogKey, env.Data, ttlcache.DefaultTTL)
	}
	return env.Data, nil
}

func (c *Client) Room(ctx context.Context, id domainlistings.ListingID) (domainlistings.Detail, error) {
	if c.rooms != nil {
		if item := c.rooms.Get(id); item != nil {
			return item.Value(), nil
		}
	}
	path := "/hotelrooms/" + url.PathEscape(string(id))
	var env envelope[domainlistings.Detail]
	if err := c.get(ctx, path, nil, &env); err != nil {
		return domainlistings.Detail{}, err
	}
	if env.Success == nil || !*env.Success {
		return domainlistings.Detail{}, c.unsuccessful(path, env.Message)
	}
	if c.rooms != nil {
		c.rooms.Set(id, env.Data, ttlcache.DefaultTTL)
	}
	return env.Data, nil
}

// Search forwards params to the search endpoint. A response without a data
// array is an empty result.
func (c *Client) Search(ctx context.Context, params url.Values) ([]domainlistings.Listing, error) {
	var env envelope[[]domainlistings.Listing]
	if err := c.get(ctx, "/hotelrooms/search", params, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []domainlistings.Listing{}, nil
	}
	return env.Data, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c == nil || c.Client == nil || c.BaseURL == "" {
		return ErrNotConfigured
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	endpoint := c.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		var netErr net.Error
		switch {
		case errors.Is(err, context.Canceled):
			return err
		case errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()):
			err = fmt.Errorf("%w (%s)", ErrTimeout, path)
		default:
			err = fmt.Errorf("%w (%s): %v", ErrUnavailable, path, err)
		}
		c.logError("listing request failed", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("%w %d from %s: %s", ErrUnexpectedStatus, resp.StatusCode, path, strings.TrimSpace(string(snippet)))
		c.logError("listing api returned error", err)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		err = fmt.Errorf("listing api: decode %s: %w", path, err)
		c.logError("listing decode failed", err)
		return err
	}
	return nil
}

func (c *Client) unsuccessful(path, message string) error {
	err := fmt.Errorf("%w (%s): %s", ErrUnsuccessful, path, message)
	c.logError("listing api reported failure", err)
	return err
}

func (c *Client) logError(msg string, err error) {
	if c.Logger != nil {
		c.Logger.Error(msg, "error", err)
	}
}

var _ policies.ListingPort = (*Client)(nil)
