package algolia

import (
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/search"
)

// Client is an Algolia search client bound to one set of credentials.
// It embeds *search.Client, so index and query methods are available directly.
type Client struct {
	*search.Client
	appID string
}

// New creates an Algolia client from cfg.
// Both credentials are required; an empty value and an unset one are rejected alike.
// No request is issued, and each call returns a new handle.
func New(cfg Config) (*Client, error) {
	if cfg.AppID == "" {
		return nil, fmt.Errorf("%w: AppID is required", ErrInvalidConfig)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: APIKey is required", ErrInvalidConfig)
	}

	client := search.NewClientWithConfig(search.Configuration{
		AppID:        cfg.AppID,
		APIKey:       cfg.APIKey,
		Hosts:        cfg.Hosts,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	return &Client{
		Client: client,
		appID:  cfg.AppID,
	}, nil
}

// MustNew creates an Algolia client that panics on invalid config.
// Follows framework pattern of failing fast during initialization rather than
// allowing broken services to start.
func MustNew(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// AppID returns the application identifier the client is bound to.
func (c *Client) AppID() string {
	return c.appID
}
