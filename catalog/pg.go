package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// LoadPostgres reads the catalog from the merchant dashboard database:
// categories, their active establishments and each establishment's
// available products. Establishment item lists come pre-normalized since
// the products table serves every category.
func LoadPostgres(ctx context.Context, db *sql.DB) (*Store, error) {
	catRows, err := db.QueryContext(ctx, `SELECT id, name FROM category ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	defer catRows.Close()

	type catRow struct {
		id   int64
		name string
	}
	var cats []catRow
	for catRows.Next() {
		var c catRow
		if err := catRows.Scan(&c.id, &c.name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := catRows.Err(); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	categories := make([]Category, 0, len(cats))
	for _, c := range cats {
		ests, err := loadEstablishments(ctx, db, c.id)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", c.name, err)
		}
		categories = append(categories, Category{Name: c.name, Establishments: ests})
	}

	return NewStore(categories), nil
}

func loadEstablishments(ctx context.Context, db *sql.DB, categoryID int64) ([]Establishment, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, COALESCE(address, ''), COALESCE(opening_hours, ''), COALESCE(average_rating, 0)
		FROM establishment
		WHERE category_id = $1 AND is_active
		ORDER BY id`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("load establishments: %w", err)
	}
	defer rows.Close()

	type estRow struct {
		id  int64
		est Establishment
	}
	var ests []estRow
	for rows.Next() {
		var e estRow
		if err := rows.Scan(&e.id, &e.est.Name, &e.est.Address, &e.est.OpeningHours, &e.est.AverageRating); err != nil {
			return nil, fmt.Errorf("scan establishment: %w", err)
		}
		ests = append(ests, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load establishments: %w", err)
	}

	result := make([]Establishment, 0, len(ests))
	for _, e := range ests {
		items, err := loadItems(ctx, db, e.id)
		if err != nil {
			return nil, fmt.Errorf("establishment %q: %w", e.est.Name, err)
		}
		e.est.Items = items
		result = append(result, e.est)
	}
	return result, nil
}

func loadItems(ctx context.Context, db *sql.DB, establishmentID int64) ([]Item, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name, price, COALESCE(description, '')
		FROM product
		WHERE establishment_id = $1 AND is_available
		ORDER BY id`, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.Name, &it.Price, &it.Description); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return items, nil
}
