package gallery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/Sirdoh/NFTArtGallery/lib/client"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/svc"
)

// Client expposes the gallery API of the gallery running at Host.
type Client struct {
	Host     string
	Username string
	Password string
}

// Post performs a POST request to the gallery.
func (c *Client) Post(
	ctx context.Context,
	path string,
	query url.Values,
	params url.Values,
) (*int, *svc.Resp, error) {
	req, err := http.NewRequest("POST",
		FullGalleryURL(ctx, c.Host, path, query).String(),
		strings.NewReader(params.Encode()))
	if err != nil {
		return nil, nil, errors.Trace(err)
	}

	req.Header.Add("Gallery-Protocol-Version", ProtocolVersion)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	r, err := client.Default(ctx).Do(req)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	defer r.Body.Close()

	var raw svc.Resp
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, nil, errors.Trace(err)
	}

	return &r.StatusCode, &raw, nil
}

// Get performs a GET request to the gallery.
func (c *Client) Get(
	ctx context.Context,
	path string,
	query url.Values,
) (*int, *svc.Resp, error) {
	req, err := http.NewRequest("GET",
		FullGalleryURL(ctx, c.Host, path, query).String(), nil)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}

	req.Header.Add("Gallery-Protocol-Version", ProtocolVersion)
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	r, err := client.Default(ctx).Do(req)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	defer r.Body.Close()

	var raw svc.Resp
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, nil, errors.Trace(err)
	}

	return &r.StatusCode, &raw, nil
}
