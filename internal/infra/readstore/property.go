package readstore

import (
	"context"
	"time"

	"unistay/internal/infra"
	"unistay/internal/infra/db"
	"unistay/internal/pkg/pgconv"
	"unistay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PropertyStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error)
	SearchFirstPage(ctx context.Context, filter queries.PropertyFilter, limit int32) ([]*queries.PropertyListItem, error)
	SearchKeyset(ctx context.Context, filter queries.PropertyFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PropertyListItem, error)
	FindByHost(ctx context.Context, hostID uuid.UUID) ([]*queries.PropertyListItem, error)
}

type PropertyReadStore struct {
	dbtx db.DBTX
}

func NewPropertyReadStore(dbtx db.DBTX) *PropertyReadStore {
	return &PropertyReadStore{dbtx: dbtx}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	var v queries.PropertyView
	err := r.dbtx.QueryRow(ctx, `
		SELECT p.id, p.host_id, p.title, p.description, p.city,
			p.monthly_price_cents, p.cleaning_fee_cents, p.security_deposit_cents,
			p.minimum_stay_weeks, p.maximum_stay_months, p.bedrooms, p.max_guests,
			p.is_active,
			COALESCE(s.review_count, 0), s.average_rating,
			p.created_at, p.updated_at
		FROM properties p
		LEFT JOIN property_rating_stats s ON s.property_id = p.id
		WHERE p.id = $1`,
		id,
	).Scan(
		&v.ID, &v.HostID, &v.Title, &v.Description, &v.City,
		&v.MonthlyPriceCents, &v.CleaningFeeCents, &v.SecurityDepositCents,
		&v.MinimumStayWeeks, &v.MaximumStayMonths, &v.Bedrooms, &v.MaxGuests,
		&v.IsActive,
		&v.ReviewCount, &v.AverageRating,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}
	return &v, nil
}

const propertyListSelect = `
	SELECT p.id, p.title, p.city, p.monthly_price_cents, p.bedrooms, p.max_guests,
		COALESCE(s.review_count, 0), s.average_rating, p.created_at
	FROM properties p
	LEFT JOIN property_rating_stats s ON s.property_id = p.id`

// Search filters are optional; NULL parameters disable the clause so one
// statement serves every combination.
const propertySearchWhere = `
	WHERE p.is_active
	  AND ($1::text IS NULL OR p.city = $1)
	  AND ($2::bigint IS NULL OR p.monthly_price_cents >= $2)
	  AND ($3::bigint IS NULL OR p.monthly_price_cents <= $3)
	  AND ($4::int IS NULL OR p.max_guests >= $4)`

func (r *PropertyReadStore) SearchFirstPage(ctx context.Context, filter queries.PropertyFilter, limit int32) ([]*queries.PropertyListItem, error) {
	rows, err := r.dbtx.Query(ctx, propertyListSelect+propertySearchWhere+`
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $5`,
		filter.City, filter.MinMonthlyPriceCents, filter.MaxMonthlyPriceCents, filter.MinGuests, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search properties first page", err)
	}
	return scanPropertyListItems(rows)
}

func (r *PropertyReadStore) SearchKeyset(ctx context.Context, filter queries.PropertyFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PropertyListItem, error) {
	rows, err := r.dbtx.Query(ctx, propertyListSelect+propertySearchWhere+`
		  AND (p.created_at, p.id) < ($5, $6)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $7`,
		filter.City, filter.MinMonthlyPriceCents, filter.MaxMonthlyPriceCents, filter.MinGuests,
		lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search properties keyset", err)
	}
	return scanPropertyListItems(rows)
}

func (r *PropertyReadStore) FindByHost(ctx context.Context, hostID uuid.UUID) ([]*queries.PropertyListItem, error) {
	rows, err := r.dbtx.Query(ctx, propertyListSelect+`
		WHERE p.host_id = $1
		ORDER BY p.created_at DESC, p.id DESC`,
		hostID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find host properties", err)
	}
	return scanPropertyListItems(rows)
}

func scanPropertyListItems(rows pgx.Rows) ([]*queries.PropertyListItem, error) {
	defer rows.Close()

	items := make([]*queries.PropertyListItem, 0)
	for rows.Next() {
		var it queries.PropertyListItem
		if err := rows.Scan(
			&it.ID, &it.Title, &it.City, &it.MonthlyPriceCents, &it.Bedrooms, &it.MaxGuests,
			&it.ReviewCount, &it.AverageRating, &it.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan property list item", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read property list rows", err)
	}
	return items, nil
}
