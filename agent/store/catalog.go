package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	catalogx "github.com/tanpawarit/Chative-Sales-Assistant/agent/catalog"
	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
)

func (p *Postgres) ProductByID(ctx context.Context, id int64) (*catalogx.Product, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row := new(productRow)
	err := p.db.NewSelect().Model(row).Where("p.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", contractx.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("select product %d: %w", id, err)
	}
	return row.toDomain()
}

// ProductByName resolves the first case-insensitive substring match, lowest
// id first. Ambiguous names silently resolve to that first row.
func (p *Postgres) ProductByName(ctx context.Context, name string) (*catalogx.Product, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row := new(productRow)
	err := p.db.NewSelect().
		Model(row).
		Where("p.product_name ILIKE ?", "%"+name+"%").
		Order("p.id ASC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", contractx.ErrProductNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("select product by name %q: %w", name, err)
	}
	return row.toDomain()
}

func (p *Postgres) Products(ctx context.Context) ([]catalogx.Product, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var rows []productRow
	if err := p.db.NewSelect().Model(&rows).Order("p.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}

	products := make([]catalogx.Product, 0, len(rows))
	for i := range rows {
		product, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}

func (p *Postgres) SetStockStatus(ctx context.Context, productID int64, status catalogx.StockStatus) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	_, err := p.db.NewUpdate().
		Model((*productRow)(nil)).
		Set("stock_status = ?", string(status)).
		Where("id = ?", productID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update stock status for product %d: %w", productID, err)
	}
	return nil
}

func (p *Postgres) InventoryByProduct(ctx context.Context, productID int64) ([]catalogx.InventoryRecord, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var rows []inventoryRow
	err := p.db.NewSelect().Model(&rows).Where("i.product_id = ?", productID).Order("i.id ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select inventory for product %d: %w", productID, err)
	}

	records := make([]catalogx.InventoryRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toDomain())
	}
	return records, nil
}

func (p *Postgres) CustomerByID(ctx context.Context, id int64) (*catalogx.Customer, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row := new(userRow)
	err := p.db.NewSelect().Model(row).Where("u.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", contractx.ErrCustomerNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("select customer %d: %w", id, err)
	}
	return row.toDomain(), nil
}

func (p *Postgres) CustomerByEmail(ctx context.Context, email string) (*catalogx.Customer, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row := new(userRow)
	err := p.db.NewSelect().Model(row).Where("u.email = ?", email).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: email %s", contractx.ErrCustomerNotFound, email)
	}
	if err != nil {
		return nil, fmt.Errorf("select customer by email %s: %w", email, err)
	}
	return row.toDomain(), nil
}

func (p *Postgres) ShippingRuleByCountry(ctx context.Context, country string) (*catalogx.ShippingRule, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row := new(shippingRuleRow)
	err := p.db.NewSelect().Model(row).Where("sr.country = ?", country).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", contractx.ErrNoShippingRule, country)
	}
	if err != nil {
		return nil, fmt.Errorf("select shipping rule for %s: %w", country, err)
	}
	return row.toDomain(), nil
}
