package repositories

import (
	"database/sql"

	"github.com/alimgiray/workhours/internal/models"
)

type HolidayRepository struct {
	db *sql.DB
}

func NewHolidayRepository(db *sql.DB) *HolidayRepository {
	return &HolidayRepository{
		db: db,
	}
}

// Upsert inserts a holiday, overwriting the description when the
// (country, date) pair already exists.
func (r *HolidayRepository) Upsert(holiday *models.Holiday) error {
	query := `
		INSERT INTO holidays (id, country, date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT(country, date) DO UPDATE SET description = excluded.description, updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query,
		holiday.ID,
		holiday.Country,
		holiday.Date,
		holiday.Description,
		holiday.CreatedAt,
		holiday.UpdatedAt,
	)

	return err
}

// GetByCountry retrieves all holidays for a country, ascending by date.
// An unknown country yields an empty slice, not an error.
func (r *HolidayRepository) GetByCountry(country string) ([]*models.Holiday, error) {
	query := `
		SELECT id, country, date, description, created_at, updated_at
		FROM holidays
		WHERE country = $1
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query, country)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := []*models.Holiday{}
	for rows.Next() {
		holiday := &models.Holiday{}
		err := rows.Scan(
			&holiday.ID,
			&holiday.Country,
			&holiday.Date,
			&holiday.Description,
			&holiday.CreatedAt,
			&holiday.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}

	return holidays, rows.Err()
}

// GetCountries retrieves the distinct set of countries with registered holidays
func (r *HolidayRepository) GetCountries() ([]string, error) {
	query := `SELECT DISTINCT country FROM holidays ORDER BY country ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := []string{}
	for rows.Next() {
		var country string
		if err := rows.Scan(&country); err != nil {
			return nil, err
		}
		countries = append(countries, country)
	}

	return countries, rows.Err()
}

// Delete removes a holiday by ID
func (r *HolidayRepository) Delete(id string) error {
	query := `DELETE FROM holidays WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
