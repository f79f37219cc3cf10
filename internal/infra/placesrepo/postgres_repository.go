package placesrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/places"
)

// PostgresRepository reads locations from the places table.
//
//	CREATE TABLE places (
//	    id        BIGSERIAL PRIMARY KEY,
//	    name      TEXT NOT NULL,
//	    lat       DOUBLE PRECISION NOT NULL,
//	    lng       DOUBLE PRECISION NOT NULL,
//	    category  TEXT NOT NULL,
//	    climates  TEXT[] NOT NULL DEFAULT '{}'
//	);
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Load implements places.Repository.
func (r *PostgresRepository) Load(ctx context.Context) ([]catalog.Location, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, lat, lng, category, climates
		FROM places
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanLocation)
}

func scanLocation(row pgx.CollectableRow) (catalog.Location, error) {
	var (
		loc      catalog.Location
		category string
		climates []string
	)
	if err := row.Scan(&loc.Name, &loc.Lat, &loc.Lng, &category, &climates); err != nil {
		return catalog.Location{}, err
	}
	loc.Category = catalog.Category(category)
	for _, c := range climates {
		loc.Climates = append(loc.Climates, catalog.ClimateTag(c))
	}
	return loc, nil
}

var _ places.Repository = (*PostgresRepository)(nil)
