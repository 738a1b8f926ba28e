package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// Catalog browsing is public
	r.Get("/api/movies", catalogHandler.ListMovies)
	r.Get("/api/movies/{id}", catalogHandler.GetMovie)
	r.Get("/api/theaters", catalogHandler.ListTheaters)
	r.Get("/api/theaters/{id}", catalogHandler.GetTheater)
	r.Get("/api/theaters/{id}/screens", catalogHandler.ListScreens)
	r.Get("/api/screens/{id}", catalogHandler.GetScreen)
}
