package app

import (
	"github.com/Sirdoh/NFTArtGallery/gallery/endpoint"
	"goji.io"
	"goji.io/pat"
)

// Controller binds the API
type Controller struct{}

// Bind registers the API routes. Literal paths must be bound before
// parametrized ones; goji dispatches to the first matching pattern.
func (c *Controller) Bind(
	mux *goji.Mux,
) {
	// Authenticated.
	mux.HandleFunc(pat.Post("/artworks"), endpoint.HandlerFor(endpoint.EndPtCreateArtwork))
	mux.HandleFunc(pat.Post("/artworks/batch"), endpoint.HandlerFor(endpoint.EndPtCreateArtworkBatch))
	mux.HandleFunc(pat.Post("/artworks/reserve"), endpoint.HandlerFor(endpoint.EndPtReserveArtworkIDs))
	mux.HandleFunc(pat.Post("/artworks/:artwork/transfer"), endpoint.HandlerFor(endpoint.EndPtTransferArtwork))
	mux.HandleFunc(pat.Post("/artworks/:artwork/details"), endpoint.HandlerFor(endpoint.EndPtUpdateArtworkDetails))
	mux.HandleFunc(pat.Post("/artworks/:artwork/details/secure"), endpoint.HandlerFor(endpoint.EndPtSecureUpdateArtworkDetails))

	// Public.
	mux.HandleFunc(pat.Get("/artworks"), endpoint.HandlerFor(endpoint.EndPtListArtworks))
	mux.HandleFunc(pat.Get("/artworks/transferred"), endpoint.HandlerFor(endpoint.EndPtListTransferredArtworks))
	mux.HandleFunc(pat.Get("/artworks/pagination"), endpoint.HandlerFor(endpoint.EndPtRetrievePageInfo))
	mux.HandleFunc(pat.Get("/artworks/pages/:page"), endpoint.HandlerFor(endpoint.EndPtListArtworksPaginated))
	mux.HandleFunc(pat.Get("/artworks/:artwork/validity"), endpoint.HandlerFor(endpoint.EndPtRetrieveArtworkValidity))
	mux.HandleFunc(pat.Get("/artworks/:artwork"), endpoint.HandlerFor(endpoint.EndPtRetrieveArtwork))
	mux.HandleFunc(pat.Get("/registry"), endpoint.HandlerFor(endpoint.EndPtRetrieveRegistry))
}
