package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/retailops/storeadmin/internal/api"
	"github.com/retailops/storeadmin/internal/models"
	"github.com/retailops/storeadmin/internal/util"
)

// dashboard loads every section jointly, runs the low-stock check and
// prints the aggregate view.
func (a *app) dashboard(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { _, err := a.products.Load(gctx); return err })
	g.Go(func() error { _, err := a.products.LoadCategories(gctx); return err })
	g.Go(func() error { _, err := a.customers.Load(gctx); return err })
	g.Go(func() error { _, err := a.orders.Load(gctx); return err })
	g.Go(func() error { _, err := a.inventory.Load(gctx); return err })
	if err := g.Wait(); err != nil {
		return err
	}

	toast, err := a.inventory.CheckLowStock(ctx)
	if err != nil {
		return err
	}
	if toast != nil {
		defer toast.Dismiss()
	}

	stats := a.shell.Stats()
	fmt.Printf("Products:  %d\n", stats.TotalProducts)
	fmt.Printf("Customers: %d\n", stats.TotalCustomers)
	fmt.Printf("Orders:    %d\n", stats.TotalOrders)
	fmt.Printf("Revenue:   %s\n", util.FormatCurrency(stats.TotalRevenue))

	low := a.inventory.LowStock()
	if len(low) > 0 {
		fmt.Printf("\nLow stock (%d):\n", len(low))
		w := newTable()
		fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tTHRESHOLD")
		for _, i := range low {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", i.ProductID, i.ProductName, i.Quantity, i.LowStockThreshold)
		}
		w.Flush()
	}
	fmt.Printf("\nNotifications: %d\n", a.shell.BadgeCount())
	return nil
}

func (a *app) productsCmd(ctx context.Context, args []string) error {
	if err := a.shell.Navigate("products"); err != nil {
		return err
	}
	op := "list"
	if len(args) > 0 {
		op = args[0]
		args = args[1:]
	}

	switch op {
	case "list":
		products, err := a.products.Load(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tSKU")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Category, util.FormatCurrency(p.Price), p.Stock, p.SKU)
		}
		return w.Flush()

	case "add":
		fs := flag.NewFlagSet("products add", flag.ExitOnError)
		name := fs.String("name", "", "product name")
		category := fs.String("category", "", "category name")
		price := fs.Float64("price", 0, "unit price")
		stock := fs.Int("stock", 0, "initial stock")
		description := fs.String("description", "", "description")
		sku := fs.String("sku", "", "stock keeping unit")
		fs.Parse(args)

		p, err := a.products.Add(ctx, models.Product{
			Name:        *name,
			Category:    *category,
			Price:       *price,
			Stock:       *stock,
			Description: *description,
			SKU:         *sku,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created product %d\n", p.ID)
		return nil

	case "update":
		fs := flag.NewFlagSet("products update", flag.ExitOnError)
		id := fs.Int("id", 0, "product ID")
		name := fs.String("name", "", "product name")
		category := fs.String("category", "", "category name")
		price := fs.Float64("price", 0, "unit price")
		stock := fs.Int("stock", 0, "stock level")
		description := fs.String("description", "", "description")
		sku := fs.String("sku", "", "stock keeping unit")
		fs.Parse(args)

		p, err := a.products.Update(ctx, *id, models.Product{
			Name:        *name,
			Category:    *category,
			Price:       *price,
			Stock:       *stock,
			Description: *description,
			SKU:         *sku,
		})
		if err != nil {
			return err
		}
		fmt.Printf("updated product %d\n", p.ID)
		return nil

	case "delete":
		id, err := argID(args)
		if err != nil {
			return err
		}
		if err := a.products.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("deleted product %d\n", id)
		return nil

	default:
		return fmt.Errorf("unknown products operation %q", op)
	}
}

func (a *app) customersCmd(ctx context.Context, args []string) error {
	if err := a.shell.Navigate("customers"); err != nil {
		return err
	}
	op := "list"
	if len(args) > 0 {
		op = args[0]
		args = args[1:]
	}

	switch op {
	case "list":
		customers, err := a.customers.Load(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tSINCE\tORDERS\tSPENT")
		for _, c := range customers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
				c.ID, c.Name, c.Email, c.Phone, util.FormatDate(c.CreatedAt), c.TotalOrders, util.FormatCurrency(c.TotalSpent))
		}
		return w.Flush()

	case "add":
		fs := flag.NewFlagSet("customers add", flag.ExitOnError)
		name := fs.String("name", "", "customer name")
		email := fs.String("email", "", "email address")
		phone := fs.String("phone", "", "phone number")
		street := fs.String("street", "", "street address")
		city := fs.String("city", "", "city")
		state := fs.String("state", "", "state")
		zip := fs.String("zip", "", "zip code")
		fs.Parse(args)

		c, err := a.customers.Add(ctx, models.Customer{
			Name:  *name,
			Email: *email,
			Phone: *phone,
			Address: models.Address{
				Street:  *street,
				City:    *city,
				State:   *state,
				ZipCode: *zip,
			},
		})
		if err != nil {
			return err
		}
		fmt.Printf("created customer %d\n", c.ID)
		return nil

	case "history":
		id, err := argID(args)
		if err != nil {
			return err
		}
		h, err := a.customers.History(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s> — %d order(s), %s spent\n",
			h.Customer.Name, h.Customer.Email, h.TotalOrders, util.FormatCurrency(h.TotalSpent))
		w := newTable()
		fmt.Fprintln(w, "ORDER\tDATE\tSTATUS\tTOTAL")
		for _, o := range h.Orders {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", o.ID, util.FormatDate(o.Date), o.Status, util.FormatCurrency(o.Total))
		}
		return w.Flush()

	default:
		return fmt.Errorf("unknown customers operation %q", op)
	}
}

func (a *app) ordersCmd(ctx context.Context, args []string) error {
	if err := a.shell.Navigate("orders"); err != nil {
		return err
	}
	op := "list"
	if len(args) > 0 {
		op = args[0]
		args = args[1:]
	}

	switch op {
	case "list":
		orders, err := a.orders.Load(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tCUSTOMER\tDATE\tSTATUS\tITEMS\tTOTAL")
		for _, o := range orders {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
				o.ID, o.CustomerName, util.FormatDate(o.Date), o.Status, len(o.Items), util.FormatCurrency(o.Total))
		}
		return w.Flush()

	case "detail":
		id, err := argID(args)
		if err != nil {
			return err
		}
		d, err := a.orders.Detail(ctx, id)
		if err != nil {
			return err
		}
		o := d.Order
		fmt.Printf("Order %d — %s (%s)\n", o.ID, o.CustomerName, o.Status)
		fmt.Printf("Placed %s, paid via %s\n", util.FormatDate(o.Date), o.PaymentMethod)
		w := newTable()
		fmt.Fprintln(w, "ITEM\tPRICE\tQTY\tLINE TOTAL")
		for _, l := range d.Lines {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", l.Name, util.FormatCurrency(l.Price), l.Quantity, util.FormatCurrency(l.LineTotal))
		}
		w.Flush()
		fmt.Printf("Subtotal %s, shipping %s, tax %s, total %s\n",
			util.FormatCurrency(o.Subtotal), util.FormatCurrency(o.Shipping), util.FormatCurrency(o.Tax), util.FormatCurrency(o.Total))
		return nil

	case "create":
		fs := flag.NewFlagSet("orders create", flag.ExitOnError)
		customerID := fs.Int("customer", 0, "customer ID")
		items := fs.String("items", "", `order lines as JSON, e.g. [{"name":"Widget","price":9.99,"quantity":2}]`)
		payment := fs.String("payment", "credit_card", "payment method")
		notes := fs.String("notes", "", "order notes")
		fs.Parse(args)

		var lines []models.OrderItem
		if err := json.Unmarshal([]byte(*items), &lines); err != nil {
			return fmt.Errorf("parse -items: %w", err)
		}
		o, err := a.orders.Create(ctx, models.Order{
			CustomerID:    *customerID,
			Items:         lines,
			PaymentMethod: *payment,
			Notes:         *notes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created order %d, total %s\n", o.ID, util.FormatCurrency(o.Total))
		return nil

	case "status":
		fs := flag.NewFlagSet("orders status", flag.ExitOnError)
		id := fs.Int("id", 0, "order ID")
		status := fs.String("status", "", "new status")
		notes := fs.String("notes", "", "status notes")
		fs.Parse(args)

		o, err := a.orders.UpdateStatus(ctx, *id, *status, *notes)
		if err != nil {
			return err
		}
		fmt.Printf("order %d is now %s\n", o.ID, o.Status)
		return nil

	default:
		return fmt.Errorf("unknown orders operation %q", op)
	}
}

func (a *app) inventoryCmd(ctx context.Context, args []string) error {
	if err := a.shell.Navigate("inventory"); err != nil {
		return err
	}
	op := "list"
	if len(args) > 0 {
		op = args[0]
		args = args[1:]
	}

	switch op {
	case "list":
		items, err := a.inventory.Load(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tTHRESHOLD\tSTATUS\tUPDATED")
		for _, i := range items {
			status := "ok"
			if i.LowStock() {
				status = "LOW"
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\n",
				i.ProductID, i.ProductName, i.Quantity, i.LowStockThreshold, status, util.FormatDate(i.LastUpdated))
		}
		return w.Flush()

	case "adjust":
		fs := flag.NewFlagSet("inventory adjust", flag.ExitOnError)
		id := fs.Int("id", 0, "product ID")
		qty := fs.Int("quantity", 0, "adjustment, positive or negative")
		reason := fs.String("reason", models.ReasonRestock, "restock, damage, return or other")
		notes := fs.String("notes", "", "adjustment notes")
		fs.Parse(args)

		item, err := a.inventory.AdjustStock(ctx, *id, api.StockAdjustment{
			Quantity: *qty,
			Reason:   *reason,
			Notes:    *notes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s now at %d\n", item.ProductName, item.Quantity)
		return nil

	case "history":
		id, err := argID(args)
		if err != nil {
			return err
		}
		movements, err := a.inventory.History(ctx, id)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "WHEN\tCHANGE\tREASON\tNOTES")
		for _, m := range movements {
			fmt.Fprintf(w, "%s\t%+d\t%s\t%s\n", util.FormatDate(m.Timestamp), m.Adjustment, m.Reason, m.Notes)
		}
		return w.Flush()

	default:
		return fmt.Errorf("unknown inventory operation %q", op)
	}
}

func argID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing ID argument")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q", args[0])
	}
	return id, nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
