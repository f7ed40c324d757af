package order

import (
	"database/sql"
	"encoding/json"

	"github.com/rfapbd/jersey-store-backend/internal/product"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `id, "productId", "customerName", phone, address, "senderNumber", quantity, "extraFields", addons, "totalPrice", "securityCharge", "paymentScreenshot", status, "trackingSteps", "createdAt"`

	listOrdersQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY "createdAt" DESC
	`
	getOrderByIDQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`
	insertOrderQuery = `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`
	updateOrderStatusQuery = `
		UPDATE orders
		SET status = $1, "trackingSteps" = $2
		WHERE id = $3
	`
	deleteOrderQuery = `DELETE FROM orders WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Order {
	rows, err := r.db.Query(listOrdersQuery)
	if err != nil {
		return []Order{}
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			continue
		}
		out = append(out, ord)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Order, error) {
	row := r.db.QueryRow(getOrderByIDQuery, id)
	ord, err := scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	extraJSON, err := json.Marshal(ord.ExtraFields)
	if err != nil {
		return Order{}, err
	}
	addonsJSON, err := json.Marshal(ord.Addons)
	if err != nil {
		return Order{}, err
	}
	stepsJSON, err := json.Marshal(ord.TrackingSteps)
	if err != nil {
		return Order{}, err
	}

	_, err = r.db.Exec(insertOrderQuery,
		ord.ID, ord.ProductID, ord.CustomerName, ord.Phone, ord.Address,
		ord.SenderNumber, ord.Quantity, extraJSON, addonsJSON,
		ord.TotalPrice, ord.SecurityCharge, ord.PaymentScreenshot,
		ord.Status, stepsJSON, ord.CreatedAt)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) UpdateStatus(id string, st Status, steps []TrackingStep) error {
	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return err
	}
	res, err := r.db.Exec(updateOrderStatusQuery, st, stepsJSON, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deleteOrderQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		ord        Order
		sender     sql.NullString
		screenshot sql.NullString
		extraJSON  []byte
		addonsJSON []byte
		stepsJSON  []byte
	)
	if err := row.Scan(&ord.ID, &ord.ProductID, &ord.CustomerName, &ord.Phone, &ord.Address,
		&sender, &ord.Quantity, &extraJSON, &addonsJSON,
		&ord.TotalPrice, &ord.SecurityCharge, &screenshot,
		&ord.Status, &stepsJSON, &ord.CreatedAt); err != nil {
		return Order{}, err
	}
	if sender.Valid {
		ord.SenderNumber = sender.String
	}
	if screenshot.Valid {
		ord.PaymentScreenshot = screenshot.String
	}
	if len(extraJSON) > 0 && string(extraJSON) != "null" {
		var extra ExtraFields
		if err := json.Unmarshal(extraJSON, &extra); err == nil {
			ord.ExtraFields = &extra
		}
	}
	if len(addonsJSON) > 0 {
		var addons []product.Addon
		json.Unmarshal(addonsJSON, &addons)
		ord.Addons = addons
	}
	if len(stepsJSON) > 0 {
		json.Unmarshal(stepsJSON, &ord.TrackingSteps)
	}
	return ord, nil
}
