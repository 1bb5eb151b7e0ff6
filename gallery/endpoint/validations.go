package endpoint

import (
	"context"
	"regexp"
	"strconv"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/lib/authentication"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
)

// UsernameRegexp is used to validate usernames passed as operation
// parameters.
var UsernameRegexp = regexp.MustCompile("^[a-zA-Z0-9\\-_.]{1,256}$")

// ValidateAdmin validates that the authenticated caller is the gallery
// administrator and returns their username.
func ValidateAdmin(
	ctx context.Context,
) (*string, error) {
	username := authentication.Get(ctx).User.Username
	if !gallery.IsAdmin(ctx, username) {
		return nil, errors.Trace(errors.NewUserErrorf(nil,
			400, gallery.ErrCodes[gallery.CodeNotAdmin],
			"You must be the gallery administrator to mint artworks: "+
				"authenticated as %s.",
			username,
		))
	}

	return &username, nil
}

// ValidateArtworkID validates an artwork id.
func ValidateArtworkID(
	ctx context.Context,
	id string,
) (*int64, error) {
	if !gallery.IDRegexp.MatchString(id) {
		return nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "id_invalid",
			"The artwork id you provided is invalid: %s. Artwork ids are "+
				"positive integers.",
			id,
		))
	}
	converted, err := strconv.ParseInt(id, 10, 64)
	if err != nil || converted <= 0 {
		return nil, errors.Trace(errors.NewUserErrorf(err,
			400, "id_invalid",
			"The artwork id you provided is invalid: %s. Artwork ids are "+
				"positive integers.",
			id,
		))
	}

	return &converted, nil
}

// ValidateDetails validates an artwork details string.
func ValidateDetails(
	ctx context.Context,
	details string,
) (*string, error) {
	if len(details) < gallery.DetailsMinLength ||
		len(details) > gallery.DetailsMaxLength {
		return nil, errors.Trace(errors.NewUserErrorf(nil,
			400, gallery.ErrCodes[gallery.CodeInvalidDetails],
			"The details you provided are %d characters long. Details must "+
				"be between %d and %d characters long.",
			len(details), gallery.DetailsMinLength, gallery.DetailsMaxLength,
		))
	}

	return &details, nil
}

// ValidateUsername validates a username passed as an operation parameter.
func ValidateUsername(
	ctx context.Context,
	username string,
) (*string, error) {
	if !UsernameRegexp.MatchString(username) {
		return nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "username_invalid",
			"The username you provided is invalid: %s.",
			username,
		))
	}

	return &username, nil
}

// ValidateStart validates a listing start id, defaulting to the first
// artwork id.
func ValidateStart(
	ctx context.Context,
	start string,
) (*int64, error) {
	if start == "" {
		s := int64(1)
		return &s, nil
	}

	s, err := strconv.ParseInt(start, 10, 64)
	if err != nil || s < 1 {
		return nil, errors.Trace(errors.NewUserErrorf(err,
			400, "start_invalid",
			"The listing start you provided is invalid: %s. Listing starts "+
				"must be positive integers.",
			start,
		))
	}

	return &s, nil
}

// ValidateCount validates a listing count, defaulting to the maximal page
// size. Counts above the maximal page size are capped.
func ValidateCount(
	ctx context.Context,
	count string,
) (*int64, error) {
	if count == "" {
		c := gallery.MaxBatchSize
		return &c, nil
	}

	c, err := strconv.ParseInt(count, 10, 64)
	if err != nil || c < 0 {
		return nil, errors.Trace(errors.NewUserErrorf(err,
			400, "count_invalid",
			"The listing count you provided is invalid: %s. Listing counts "+
				"must be integers between 0 and %d.",
			count, gallery.MaxBatchSize,
		))
	}
	if c > gallery.MaxBatchSize {
		c = gallery.MaxBatchSize
	}

	return &c, nil
}

// ValidatePage validates a page number.
func ValidatePage(
	ctx context.Context,
	page string,
) (*int64, error) {
	p, err := strconv.ParseInt(page, 10, 64)
	if err != nil || p < 1 {
		return nil, errors.Trace(errors.NewUserErrorf(err,
			400, "page_invalid",
			"The page number you provided is invalid: %s. Page numbers are "+
				"positive integers.",
			page,
		))
	}

	return &p, nil
}

// ValidateReserveCount validates the number of ids to reserve.
func ValidateReserveCount(
	ctx context.Context,
	count string,
) (*int64, error) {
	c, err := strconv.ParseInt(count, 10, 64)
	if err != nil || c < 1 {
		return nil, errors.Trace(errors.NewUserErrorf(err,
			400, "count_invalid",
			"The reservation count you provided is invalid: %s. Reservation "+
				"counts must be positive integers.",
			count,
		))
	}

	return &c, nil
}
