package main

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yourscinema-backend/internal/catalog"
	"yourscinema-backend/internal/db"
	"yourscinema-backend/internal/repository"
	"yourscinema-backend/internal/service"
)

// prepareCatalog migrates the schema, seeds the built-in movies when asked
// to and loads the catalog served by this process.
func prepareCatalog(conn *gorm.DB, initialize bool, logger *zap.Logger) (*catalog.Catalog, error) {
	if err := db.Migrate(conn); err != nil {
		return nil, err
	}

	movieRepo := repository.NewMovieRepository(conn)
	if initialize {
		if err := service.SeedMovies(movieRepo, catalog.Default()); err != nil {
			return nil, err
		}
		logger.Info("movie catalog seeded", zap.Int("movies", len(catalog.DefaultItems())))
	}

	c, err := service.LoadCatalog(movieRepo)
	if err != nil {
		return nil, err
	}
	logger.Info("movie catalog loaded", zap.Int("movies", c.Len()))
	return c, nil
}
