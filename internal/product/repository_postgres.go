package product

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT id, name, category, description, price, stock, video, images, addons, "extraFields"
		FROM products
		ORDER BY id
	`
	getProductByIDQuery = `
		SELECT id, name, category, description, price, stock, video, images, addons, "extraFields"
		FROM products
		WHERE id = $1
	`
	upsertProductQuery = `
		INSERT INTO products (id, name, category, description, price, stock, video, images, addons, "extraFields")
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			stock = EXCLUDED.stock,
			video = EXCLUDED.video,
			images = EXCLUDED.images,
			addons = EXCLUDED.addons,
			"extraFields" = EXCLUDED."extraFields"
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			category = $2,
			description = $3,
			price = $4,
			stock = $5,
			video = $6,
			images = $7,
			addons = $8,
			"extraFields" = $9
		WHERE id = $10
	`
	deleteProductQuery = `DELETE FROM products WHERE id = $1`
	countProductsQuery = `SELECT COUNT(*) FROM products`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		// reads degrade to an empty collection; the storefront renders an
		// empty state rather than an error page
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	row := r.db.QueryRow(getProductByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	addonsJSON, extraJSON, err := marshalProductJSON(p)
	if err != nil {
		return Product{}, err
	}
	_, err = r.db.Exec(upsertProductQuery,
		p.ID, p.Name, p.Category, p.Description, p.Price, p.Stock, p.Video,
		pq.Array(p.Images), addonsJSON, extraJSON)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id string, p Product) (Product, error) {
	addonsJSON, extraJSON, err := marshalProductJSON(p)
	if err != nil {
		return Product{}, err
	}
	res, err := r.db.Exec(updateProductQuery,
		p.Name, p.Category, p.Description, p.Price, p.Stock, p.Video,
		pq.Array(p.Images), addonsJSON, extraJSON, id)
	if err != nil {
		return Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(countProductsQuery).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func marshalProductJSON(p Product) (addons []byte, extra []byte, err error) {
	addons, err = json.Marshal(p.Addons)
	if err != nil {
		return nil, nil, err
	}
	extra, err = json.Marshal(p.ExtraFields)
	if err != nil {
		return nil, nil, err
	}
	return addons, extra, nil
}

// rowScanner lets scanProduct work for both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p          Product
		video      sql.NullString
		images     pq.StringArray
		addonsJSON []byte
		extraJSON  []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &p.Price, &p.Stock, &video, &images, &addonsJSON, &extraJSON); err != nil {
		return Product{}, err
	}
	if video.Valid {
		p.Video = &video.String
	}
	p.Images = []string(images)
	if len(addonsJSON) > 0 {
		json.Unmarshal(addonsJSON, &p.Addons)
	}
	if len(extraJSON) > 0 {
		json.Unmarshal(extraJSON, &p.ExtraFields)
	}
	return p, nil
}
