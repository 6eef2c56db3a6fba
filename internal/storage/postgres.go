package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"

	"hearth/internal/domain"
	"hearth/pkg/platform/sentinel"
	txcontext "hearth/pkg/platform/tx"
	"hearth/pkg/requestcontext"
)

// Schema is the relational layout of the durable backend: one table per
// entity kind, identity as primary key, foreign keys for every reference.
// Amenity name uniqueness is deliberately absent here; it is a configurable
// service rule, not a schema invariant.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS countries (
	code       TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS cities (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	country_code TEXT NOT NULL REFERENCES countries (code),
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS amenities (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS places (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	host_id         TEXT NOT NULL REFERENCES users (id),
	city_id         TEXT NOT NULL REFERENCES cities (id),
	price_per_night DOUBLE PRECISION NOT NULL,
	latitude        DOUBLE PRECISION NOT NULL,
	longitude       DOUBLE PRECISION NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS place_amenities (
	place_id   TEXT NOT NULL REFERENCES places (id) ON DELETE CASCADE,
	amenity_id TEXT NOT NULL REFERENCES amenities (id),
	PRIMARY KEY (place_id, amenity_id)
);

CREATE TABLE IF NOT EXISTS reviews (
	id         TEXT PRIMARY KEY,
	place_id   TEXT NOT NULL REFERENCES places (id),
	user_id    TEXT NOT NULL REFERENCES users (id),
	comment    TEXT NOT NULL,
	rating     DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS audit_events (
	id         TEXT PRIMARY KEY,
	timestamp  TIMESTAMPTZ NOT NULL,
	actor_id   TEXT NOT NULL,
	action     TEXT NOT NULL,
	kind       TEXT NOT NULL,
	entity_id  TEXT NOT NULL,
	request_id TEXT NOT NULL DEFAULT ''
);
`

// PostgresStore implements the storage port against PostgreSQL via lib/pq.
// Every write runs in a transaction: its own when called bare, the ambient
// one when the caller wrapped the sequence in RunInTx.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres connects, pings, and applies the schema.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", sentinel.ErrUnavailable)
	}
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return NewPostgres(db), nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error { return s.db.Close() }

// DB exposes the pool for collaborators that share it (audit store).
func (s *PostgresStore) DB() *sql.DB { return s.db }

type dbOps interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbOps {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// RunInTx opens a transaction and stashes it in the context so every store
// call inside fn joins it. Nested calls reuse the ambient transaction.
func (s *PostgresStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txcontext.From(ctx); ok {
		return fn(ctx)
	}
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin tx", err)
	}
	if err := fn(txcontext.WithTx(ctx, sqlTx)); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return classify("commit tx", err)
	}
	return nil
}

// Reload verifies the connection is alive.
func (s *PostgresStore) Reload(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", sentinel.ErrUnavailable)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, kind domain.Kind, id string) (domain.Record, error) {
	switch kind {
	case domain.KindUser:
		return s.getUser(ctx, id)
	case domain.KindCountry:
		return s.getCountry(ctx, id)
	case domain.KindCity:
		return s.getCity(ctx, id)
	case domain.KindPlace:
		return s.getPlace(ctx, id)
	case domain.KindAmenity:
		return s.getAmenity(ctx, id)
	case domain.KindReview:
		return s.getReview(ctx, id)
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func (s *PostgresStore) GetAll(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	switch kind {
	case domain.KindUser:
		return s.listUsers(ctx)
	case domain.KindCountry:
		return s.listCountries(ctx)
	case domain.KindCity:
		return s.listCities(ctx)
	case domain.KindPlace:
		return s.listPlaces(ctx)
	case domain.KindAmenity:
		return s.listAmenities(ctx)
	case domain.KindReview:
		return s.listReviews(ctx)
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func (s *PostgresStore) Save(ctx context.Context, record domain.Record) error {
	return s.RunInTx(ctx, func(ctx context.Context) error {
		switch rec := record.(type) {
		case *domain.User:
			return s.saveUser(ctx, rec)
		case *domain.Country:
			return s.saveCountry(ctx, rec)
		case *domain.City:
			return s.saveCity(ctx, rec)
		case *domain.Place:
			return s.savePlace(ctx, rec)
		case *domain.Amenity:
			return s.saveAmenity(ctx, rec)
		case *domain.Review:
			return s.saveReview(ctx, rec)
		default:
			return fmt.Errorf("unknown record type %T", record)
		}
	})
}

func (s *PostgresStore) Update(ctx context.Context, record domain.Record) (domain.Record, error) {
	updated := record.Clone()
	updated.Touch(requestcontext.Now(ctx))
	err := s.RunInTx(ctx, func(ctx context.Context) error {
		switch rec := updated.(type) {
		case *domain.User:
			return s.updateUser(ctx, rec)
		case *domain.Country:
			return s.updateCountry(ctx, rec)
		case *domain.City:
			return s.updateCity(ctx, rec)
		case *domain.Place:
			return s.updatePlace(ctx, rec)
		case *domain.Amenity:
			return s.updateAmenity(ctx, rec)
		case *domain.Review:
			return s.updateReview(ctx, rec)
		default:
			return fmt.Errorf("unknown record type %T", updated)
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *PostgresStore) Delete(ctx context.Context, record domain.Record) (bool, error) {
	table, idColumn, err := tableFor(record.RecordKind())
	if err != nil {
		return false, err
	}
	result, err := s.execer(ctx).ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, idColumn), record.RecordID())
	if err != nil {
		return false, classify("delete "+string(record.RecordKind()), err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s: rows affected: %w", record.RecordKind(), err)
	}
	return affected > 0, nil
}

func tableFor(kind domain.Kind) (table, idColumn string, err error) {
	switch kind {
	case domain.KindUser:
		return "users", "id", nil
	case domain.KindCountry:
		return "countries", "code", nil
	case domain.KindCity:
		return "cities", "id", nil
	case domain.KindPlace:
		return "places", "id", nil
	case domain.KindAmenity:
		return "amenities", "id", nil
	case domain.KindReview:
		return "reviews", "id", nil
	default:
		return "", "", fmt.Errorf("unknown kind %q", kind)
	}
}

// classify translates driver errors into sentinels so services never see
// lib/pq detail. Unique violations and foreign-key violations map to
// distinct sentinels; connection-level failures map to ErrUnavailable.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, sentinel.ErrNotFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505":
			return fmt.Errorf("%s: %w", op, sentinel.ErrConflict)
		case pqErr.Code == "23503":
			return fmt.Errorf("%s: %w", op, sentinel.ErrForeignKey)
		case pqErr.Code.Class() == "08":
			return fmt.Errorf("%s: %w", op, sentinel.ErrUnavailable)
		}
	}
	var netErr *net.OpError
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w", op, sentinel.ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// requireRow converts a zero-rows-affected update into ErrNotFound.
func requireRow(op string, result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, sentinel.ErrNotFound)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Users
// -----------------------------------------------------------------------------

func (s *PostgresStore) saveUser(ctx context.Context, user *domain.User) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO users (id, email, first_name, last_name, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.FirstName, user.LastName, user.PasswordHash, user.IsAdmin, user.CreatedAt, user.UpdatedAt,
	)
	return classify("save user", err)
}

func (s *PostgresStore) updateUser(ctx context.Context, user *domain.User) error {
	result, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE users
		   SET email = $2, first_name = $3, last_name = $4, password_hash = $5, is_admin = $6, updated_at = $7
		 WHERE id = $1`,
		user.ID, user.Email, user.FirstName, user.LastName, user.PasswordHash, user.IsAdmin, user.UpdatedAt,
	)
	if err != nil {
		return classify("update user", err)
	}
	return requireRow("update user", result)
}

func (s *PostgresStore) getUser(ctx context.Context, id string) (domain.Record, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, email, first_name, last_name, password_hash, is_admin, created_at, updated_at
		  FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *PostgresStore) listUsers(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT id, email, first_name, last_name, password_hash, is_admin, created_at, updated_at
		  FROM users`)
	if err != nil {
		return nil, classify("list users", err)
	}
	defer rows.Close()

	var all []domain.Record
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, user)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list users", err)
	}
	return all, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.Record, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.PasswordHash, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, classify("scan user", err)
	}
	return &user, nil
}

// -----------------------------------------------------------------------------
// Countries
// -----------------------------------------------------------------------------

func (s *PostgresStore) saveCountry(ctx context.Context, country *domain.Country) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO countries (code, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`,
		country.Code, country.Name, country.CreatedAt, country.UpdatedAt,
	)
	return classify("save country", err)
}

func (s *PostgresStore) updateCountry(ctx context.Context, country *domain.Country) error {
	result, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE countries SET name = $2, updated_at = $3 WHERE code = $1`,
		country.Code, country.Name, country.UpdatedAt,
	)
	if err != nil {
		return classify("update country", err)
	}
	return requireRow("update country", result)
}

func (s *PostgresStore) getCountry(ctx context.Context, code string) (domain.Record, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `
		SELECT code, name, created_at, updated_at FROM countries WHERE code = $1`, code)
	var country domain.Country
	if err := row.Scan(&country.Code, &country.Name, &country.CreatedAt, &country.UpdatedAt); err != nil {
		return nil, classify("get country", err)
	}
	return &country, nil
}

func (s *PostgresStore) listCountries(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT code, name, created_at, updated_at FROM countries`)
	if err != nil {
		return nil, classify("list countries", err)
	}
	defer rows.Close()

	var all []domain.Record
	for rows.Next() {
		var country domain.Country
		if err := rows.Scan(&country.Code, &country.Name, &country.CreatedAt, &country.UpdatedAt); err != nil {
			return nil, classify("scan country", err)
		}
		all = append(all, &country)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list countries", err)
	}
	return all, nil
}

// -----------------------------------------------------------------------------
// Cities
// -----------------------------------------------------------------------------

func (s *PostgresStore) saveCity(ctx context.Context, city *domain.City) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO cities (id, name, country_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		city.ID, city.Name, city.CountryCode, city.CreatedAt, city.UpdatedAt,
	)
	return classify("save city", err)
}

func (s *PostgresStore) updateCity(ctx context.Context, city *domain.City) error {
	result, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE cities SET name = $2, country_code = $3, updated_at = $4 WHERE id = $1`,
		city.ID, city.Name, city.CountryCode, city.UpdatedAt,
	)
	if err != nil {
		return classify("update city", err)
	}
	return requireRow("update city", result)
}

func (s *PostgresStore) getCity(ctx context.Context, id string) (domain.Record, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, name, country_code, created_at, updated_at FROM cities WHERE id = $1`, id)
	var city domain.City
	if err := row.Scan(&city.ID, &city.Name, &city.CountryCode, &city.CreatedAt, &city.UpdatedAt); err != nil {
		return nil, classify("get city", err)
	}
	return &city, nil
}

func (s *PostgresStore) listCities(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT id, name, country_code, created_at, updated_at FROM cities`)
	if err != nil {
		return nil, classify("list cities", err)
	}
	defer rows.Close()

	var all []domain.Record
	for rows.Next() {
		var city domain.City
		if err := rows.Scan(&city.ID, &city.Name, &city.CountryCode, &city.CreatedAt, &city.UpdatedAt); err != nil {
			return nil, classify("scan city", err)
		}
		all = append(all, &city)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list cities", err)
	}
	return all, nil
}

// -----------------------------------------------------------------------------
// Amenities
// -----------------------------------------------------------------------------

func (s *PostgresStore) saveAmenity(ctx context.Context, amenity *domain.Amenity) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO amenities (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`,
		amenity.ID, amenity.Name, amenity.CreatedAt, amenity.UpdatedAt,
	)
	return classify("save amenity", err)
}

func (s *PostgresStore) updateAmenity(ctx context.Context, amenity *domain.Amenity) error {
	result, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE amenities SET name = $2, updated_at = $3 WHERE id = $1`,
		amenity.ID, amenity.Name, amenity.UpdatedAt,
	)
	if err != nil {
		return classify("update amenity", err)
	}
	return requireRow("update amenity", result)
}

func (s *PostgresStore) getAmenity(ctx context.Context, id string) (domain.Record, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at FROM amenities WHERE id = $1`, id)
	var amenity domain.Amenity
	if err := row.Scan(&amenity.ID, &amenity.Name, &amenity.CreatedAt, &amenity.UpdatedAt); err != nil {
		return nil, classify("get amenity", err)
	}
	return &amenity, nil
}

func (s *PostgresStore) listAmenities(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT id, name, created_at, updated_at FROM amenities`)
	if err != nil {
		return nil, classify("list amenities", err)
	}
	defer rows.Close()

	var all []domain.Record
	for rows.Next() {
		var amenity domain.Amenity
		if err := rows.Scan(&amenity.ID, &amenity.Name, &amenity.CreatedAt, &amenity.UpdatedAt); err != nil {
			return nil, classify("scan amenity", err)
		}
		all = append(all, &amenity)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list amenities", err)
	}
	return all, nil
}

// -----------------------------------------------------------------------------
// Places (row + amenity join table, written in one unit of work)
// -----------------------------------------------------------------------------

const placeColumns = `p.id, p.name, p.description, p.host_id, p.city_id,
	p.price_per_night, p.latitude, p.longitude, p.created_at, p.updated_at,
	COALESCE(array_agg(pa.amenity_id) FILTER (WHERE pa.amenity_id IS NOT NULL), '{}')`

func (s *PostgresStore) savePlace(ctx context.Context, place *domain.Place) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO places (id, name, description, host_id, city_id, price_per_night, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		place.ID, place.Name, place.Description, place.HostID, place.CityID,
		place.PricePerNight, place.Latitude, place.Longitude, place.CreatedAt, place.UpdatedAt,
	)
	if err != nil {
		return classify("save place", err)
	}
	return s.insertAmenityLinks(ctx, place)
}

func (s *PostgresStore) updatePlace(ctx context.Context, place *domain.Place) error {
	result, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE places
		   SET name = $2, description = $3, host_id = $4, city_id = $5,
		       price_per_night = $6, latitude = $7, longitude = $8, updated_at = $9
		 WHERE id = $1`,
		place.ID, place.Name, place.Description, place.HostID, place.CityID,
		place.PricePerNight, place.Latitude, place.Longitude, place.UpdatedAt,
	)
	if err != nil {
		return classify("update place", err)
	}
	if err := requireRow("update place", result); err != nil {
		return err
	}
	if _, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM place_amenities WHERE place_id = $1`, place.ID); err != nil {
		return classify("update place amenities", err)
	}
	return s.insertAmenityLinks(ctx, place)
}

func (s *PostgresStore) insertAmenityLinks(ctx context.Context, place *domain.Place) error {
	for _, amenityID := range place.AmenityIDs {
		if _, err := s.execer(ctx).ExecContext(ctx, `
			INSERT INTO place_amenities (place_id, amenity_id) VALUES ($1, $2)`,
			place.ID, amenityID); err != nil {
			return classify("link amenity", err)
		}
	}
	return nil
}

func (s *PostgresStore) getPlace(ctx context.Context, id string) (domain.Record, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `
		SELECT `+placeColumns+`
		  FROM places p
		  LEFT JOIN place_amenities pa ON pa.place_id = p.id
		 WHERE p.id = $1
		 GROUP BY p.id`, id)
	return scanPlace(row)
}

func (s *PostgresStore) listPlaces(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT `+placeColumns+`
		  FROM places p
		  LEFT JOIN place_amenities pa ON pa.place_id = p.id
		 GROUP BY p.id`)
	if err != nil {
		return nil, classify("list places", err)
	}
	defer rows.Close()

	var all []domain.Record
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, place)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list places", err)
	}
	return all, nil
}

func scanPlace(row rowScanner) (domain.Record, error) {
	var place domain.Place
	err := row.Scan(&place.ID, &place.Name, &place.Description, &place.HostID, &place.CityID,
		&place.PricePerNight, &place.Latitude, &place.Longitude,
		&place.CreatedAt, &place.UpdatedAt, pq.Array(&place.AmenityIDs))
	if err != nil {
		return nil, classify("scan place", err)
	}
	return &place, nil
}

// -----------------------------------------------------------------------------
// Reviews
// -----------------------------------------------------------------------------

func (s *PostgresStore) saveReview(ctx context.Context, review *domain.Review) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO reviews (id, place_id, user_id, comment, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		review.ID, review.PlaceID, review.UserID, review.Comment, review.Rating,
		review.CreatedAt, review.UpdatedAt,
	)
	return classify("save review", err)
}

func (s *PostgresStore) updateReview(ctx context.Context, review *domain.Review) error {
	result, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE reviews SET comment = $2, rating = $3, updated_at = $4 WHERE id = $1`,
		review.ID, review.Comment, review.Rating, review.UpdatedAt,
	)
	if err != nil {
		return classify("update review", err)
	}
	return requireRow("update review", result)
}

func (s *PostgresStore) getReview(ctx context.Context, id string) (domain.Record, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, place_id, user_id, comment, rating, created_at, updated_at
		  FROM reviews WHERE id = $1`, id)
	var review domain.Review
	err := row.Scan(&review.ID, &review.PlaceID, &review.UserID, &review.Comment,
		&review.Rating, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return nil, classify("get review", err)
	}
	return &review, nil
}

func (s *PostgresStore) listReviews(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT id, place_id, user_id, comment, rating, created_at, updated_at FROM reviews`)
	if err != nil {
		return nil, classify("list reviews", err)
	}
	defer rows.Close()

	var all []domain.Record
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(&review.ID, &review.PlaceID, &review.UserID, &review.Comment,
			&review.Rating, &review.CreatedAt, &review.UpdatedAt)
		if err != nil {
			return nil, classify("scan review", err)
		}
		all = append(all, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list reviews", err)
	}
	return all, nil
}
