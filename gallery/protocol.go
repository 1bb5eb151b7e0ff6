package gallery

import (
	"context"
	"net/url"
	"regexp"

	"github.com/Sirdoh/NFTArtGallery/lib/env"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
)

const (
	// ProtocolVersion is the version of the gallery API protocol.
	ProtocolVersion string = "1"

	// TimeResolutionNs is the resolution of timestamps exposed by the API
	// expressed in nanoseconds (currently a millisecond).
	TimeResolutionNs int64 = 1000 * 1000

	// DetailsMinLength is the minimal length of an artwork details string.
	DetailsMinLength int = 1
	// DetailsMaxLength is the maximal length of an artwork details string.
	DetailsMaxLength int = 512

	// MaxBatchSize is the maximal number of artworks that can be minted in
	// one batch, and the cap on listing windows.
	MaxBatchSize int64 = 50
)

// IDRegexp is used to validate artwork IDs.
var IDRegexp = regexp.MustCompile("^[0-9]{1,19}$")

// AddressRegexp is used to validate user addresses (username@host).
var AddressRegexp = regexp.MustCompile(
	"^([a-zA-Z0-9\\-_.]{1,256})@([a-z0-9\\-.]{1,255}(:[0-9]{1,5})?)$")

// UsernameAndHostFromAddress extracts the username and gallery host from a
// user address.
func UsernameAndHostFromAddress(
	ctx context.Context,
	address string,
) (string, string, error) {
	m := AddressRegexp.FindStringSubmatch(address)
	if len(m) == 0 {
		return "", "", errors.Trace(errors.Newf(
			"Invalid address: %s", address))
	}

	return m[1], m[2], nil
}

// RegistryCode is the stable numeric code of a registry error condition.
// Values are part of the API contract and must never be reassigned.
type RegistryCode int

const (
	// CodeNotAdmin is returned when a restricted operation is attempted by a
	// caller that is not the gallery administrator.
	CodeNotAdmin RegistryCode = 1
	// CodeNotOwner is returned when an operation requires ownership of the
	// artwork and the caller does not qualify.
	CodeNotOwner RegistryCode = 2
	// CodeArtworkExists is returned when minting collides with an already
	// allocated artwork id.
	CodeArtworkExists RegistryCode = 3
	// CodeArtworkNotFound is returned when the artwork targeted by an
	// operation was never minted or is no longer transferable.
	CodeArtworkNotFound RegistryCode = 4
	// CodeInvalidDetails is returned when an artwork details string violates
	// the length constraints.
	CodeInvalidDetails RegistryCode = 5
	// CodeMaxBatchSize is returned when a batch mint size is outside the
	// accepted bounds.
	CodeMaxBatchSize RegistryCode = 6
)

// ErrCodes maps registry codes to the error code strings returned by the
// API.
var ErrCodes = map[RegistryCode]string{
	CodeNotAdmin:        "not_admin",
	CodeNotOwner:        "not_owner",
	CodeArtworkExists:   "asset_exists",
	CodeArtworkNotFound: "asset_not_found",
	CodeInvalidDetails:  "details_invalid",
	CodeMaxBatchSize:    "batch_size_invalid",
}

// ArtworkResource is the representation of an artwork in the gallery API.
type ArtworkResource struct {
	ID       int64 `json:"id"`
	Created  int64 `json:"created"`
	Livemode bool  `json:"livemode"`

	Details     string `json:"details"`
	Owner       string `json:"owner"`
	Transferred bool   `json:"transferred"`
}

// PageResource is the pagination metadata returned by listing endpoints.
type PageResource struct {
	Total   int64 `json:"total"`
	Start   int64 `json:"start"`
	Count   int64 `json:"count"`
	HasMore bool  `json:"has_more"`
}

// NewPageResource generates a new page resource.
func NewPageResource(
	ctx context.Context,
	total int64,
	start int64,
	count int64,
) PageResource {
	return PageResource{
		Total:   total,
		Start:   start,
		Count:   count,
		HasMore: total > start+count,
	}
}

// RegistryResource is the representation of the registry state in the
// gallery API.
type RegistryResource struct {
	LatestID   int64  `json:"latest_id"`
	TotalCount int64  `json:"total_count"`
	Admin      string `json:"admin"`
}

// FullGalleryURL constructs a fully qualified URL to the specified gallery
// path.
func FullGalleryURL(
	ctx context.Context,
	host string,
	path string,
	query url.Values,
) *url.URL {
	scheme := "https"
	if env.Get(ctx).Environment == env.QA {
		scheme = "http"
	}
	url := url.URL{
		Scheme:   scheme,
		Host:     host,
		Path:     path,
		RawQuery: query.Encode(),
	}
	return &url
}
