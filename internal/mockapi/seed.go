package mockapi

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/retailops/storeadmin/internal/models"
)

// Seed fills the dataset with fake products, customers and orders so the
// dashboard has something to show out of the box. The same seed value
// always produces the same dataset.
func (s *Server) Seed(seed uint64, products, customers, orders int) {
	f := gofakeit.New(seed)

	s.mu.Lock()
	defer s.mu.Unlock()

	categories := []string{"Electronics", "Clothing", "Home & Garden", "Toys", "Groceries"}
	for _, name := range categories {
		s.categories = append(s.categories, models.Category{ID: s.nextCategoryID, Name: name})
		s.nextCategoryID++
	}

	for i := 0; i < products; i++ {
		rec := productRecord{
			Product: models.Product{
				ID:          s.nextProductID,
				Name:        f.ProductName(),
				Category:    categories[f.Number(0, len(categories)-1)],
				Price:       f.Price(1, 500),
				Description: f.Sentence(8),
				Stock:       f.Number(0, 100),
				SKU:         f.UUID()[:8],
			},
			threshold:   f.Number(5, 20),
			lastUpdated: time.Now().Format(time.RFC3339),
		}
		s.nextProductID++
		s.products = append(s.products, rec)
	}

	for i := 0; i < customers; i++ {
		c := models.Customer{
			ID:    s.nextCustomerID,
			Name:  f.Name(),
			Email: f.Email(),
			Phone: f.Phone(),
			Address: models.Address{
				Street:  f.Street(),
				City:    f.City(),
				State:   f.StateAbr(),
				ZipCode: f.Zip(),
			},
			CreatedAt: f.DateRange(time.Now().AddDate(-2, 0, 0), time.Now()).Format(time.RFC3339),
		}
		s.nextCustomerID++
		s.customers = append(s.customers, c)
	}

	if len(s.customers) == 0 || len(s.products) == 0 {
		return
	}

	payments := []string{"credit_card", "paypal", "bank_transfer"}
	statuses := []string{
		models.OrderPending, models.OrderProcessing, models.OrderShipped,
		models.OrderDelivered, models.OrderCancelled,
	}
	for i := 0; i < orders; i++ {
		customer := s.customers[f.Number(0, len(s.customers)-1)]

		var items []models.OrderItem
		subtotal := decimal.Zero
		for n := f.Number(1, 4); n > 0; n-- {
			p := s.products[f.Number(0, len(s.products)-1)]
			qty := f.Number(1, 3)
			items = append(items, models.OrderItem{Name: p.Name, Price: p.Price, Quantity: qty})
			subtotal = subtotal.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(qty))))
		}
		tax := subtotal.Mul(taxRate).Round(2)
		total := subtotal.Add(shippingFee).Add(tax)

		o := models.Order{
			ID:              s.nextOrderID,
			CustomerID:      customer.ID,
			CustomerName:    customer.Name,
			CustomerEmail:   customer.Email,
			CustomerPhone:   customer.Phone,
			Date:            f.DateRange(time.Now().AddDate(0, -6, 0), time.Now()).Format(time.RFC3339),
			Items:           items,
			ShippingAddress: customer.Address,
			PaymentMethod:   payments[f.Number(0, len(payments)-1)],
			Status:          statuses[f.Number(0, len(statuses)-1)],
		}
		o.Subtotal, _ = subtotal.Float64()
		o.Shipping, _ = shippingFee.Float64()
		o.Tax, _ = tax.Float64()
		o.Total, _ = total.Float64()

		s.nextOrderID++
		s.orders = append(s.orders, o)
	}
}
