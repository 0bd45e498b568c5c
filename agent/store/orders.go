package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"

	catalogx "github.com/tanpawarit/Chative-Sales-Assistant/agent/catalog"
	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
	orderx "github.com/tanpawarit/Chative-Sales-Assistant/agent/order"
	quotex "github.com/tanpawarit/Chative-Sales-Assistant/agent/quote"
)

// PlaceOrder persists the order, decrements inventory across warehouses for
// each line item, refreshes the derived stock status, and marks the quote
// consumed, all in
// one transaction. Any line whose decrement would go negative aborts the
// whole unit: no order row and no partial decrement survive.
func (p *Postgres) PlaceOrder(ctx context.Context, o *orderx.Order) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row, err := newOrderRow(o)
	if err != nil {
		return err
	}

	return p.db.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
			return fmt.Errorf("insert order %s: %w", o.OrderID, err)
		}

		for _, item := range o.Items {
			if err := decrementInventory(ctx, tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
			if err := refreshStockStatus(ctx, tx, item.ProductID); err != nil {
				return err
			}
		}

		res, err := tx.NewUpdate().
			Model((*quoteRow)(nil)).
			Set("status = ?", string(quotex.StatusConsumed)).
			Where("quote_id = ?", o.QuoteID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("mark quote %s consumed: %w", o.QuoteID, err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return fmt.Errorf("%w: %s", contractx.ErrQuoteNotFound, o.QuoteID)
		}
		return nil
	})
}

// decrementInventory covers the ordered quantity from the product's
// warehouse rows, allocated greedily lowest id first. All rows are locked
// for the transaction, so availability matches what the quote engine summed.
// The guarded update keeps quantity_left non-negative even if a row mutated
// between lock and update.
func decrementInventory(ctx context.Context, tx bun.Tx, productID int64, quantity int) error {
	var rows []inventoryRow
	err := tx.NewSelect().
		Model(&rows).
		Where("i.product_id = ?", productID).
		Order("i.id ASC").
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return fmt.Errorf("lock inventory for product %d: %w", productID, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: no inventory row for product %d", contractx.ErrProductNotFound, productID)
	}

	plan, err := planDecrements(rows, quantity)
	if err != nil {
		return fmt.Errorf("%w: product %d", err, productID)
	}

	for _, d := range plan {
		res, err := tx.NewUpdate().
			Model((*inventoryRow)(nil)).
			Set("quantity_left = quantity_left - ?", d.take).
			Where("id = ?", d.rowID).
			Where("quantity_left >= ?", d.take).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("decrement inventory row %d: %w", d.rowID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("decrement inventory row %d: %w", d.rowID, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: product %d", contractx.ErrInsufficientStock, productID)
		}
	}
	return nil
}

type decrement struct {
	rowID int64
	take  int
}

// planDecrements allocates quantity across the rows in the order given,
// taking as much as each row holds. Rows that cannot jointly cover the
// quantity yield ErrInsufficientStock and nothing is allocated.
func planDecrements(rows []inventoryRow, quantity int) ([]decrement, error) {
	remaining := quantity
	plan := make([]decrement, 0, len(rows))
	for _, r := range rows {
		if remaining == 0 {
			break
		}
		if r.QuantityLeft <= 0 {
			continue
		}
		take := r.QuantityLeft
		if take > remaining {
			take = remaining
		}
		plan = append(plan, decrement{rowID: r.ID, take: take})
		remaining -= take
	}
	if remaining > 0 {
		return nil, contractx.ErrInsufficientStock
	}
	return plan, nil
}

// refreshStockStatus recomputes the product's derived stock status from the
// sum of its inventory rows.
func refreshStockStatus(ctx context.Context, idb bun.IDB, productID int64) error {
	var total int
	err := idb.NewSelect().
		Model((*inventoryRow)(nil)).
		ColumnExpr("COALESCE(SUM(i.quantity_left), 0)").
		Where("i.product_id = ?", productID).
		Scan(ctx, &total)
	if err != nil {
		return fmt.Errorf("sum inventory for product %d: %w", productID, err)
	}

	_, err = idb.NewUpdate().
		Model((*productRow)(nil)).
		Set("stock_status = ?", string(catalogx.StockStatusFor(total))).
		Where("id = ?", productID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("refresh stock status for product %d: %w", productID, err)
	}
	return nil
}

func (p *Postgres) OrdersByCustomer(ctx context.Context, customerID int64) ([]orderx.Order, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var rows []orderRow
	err := p.db.NewSelect().Model(&rows).Where("o.customer_id = ?", customerID).Order("o.created_at ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select orders for customer %d: %w", customerID, err)
	}

	orders := make([]orderx.Order, 0, len(rows))
	for i := range rows {
		o, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, nil
}
