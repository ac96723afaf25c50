package catalog

import (
	"time"

	"smartgrocery/pkg/models"
)

// seed installs the demo dataset: three role accounts, a small product
// range and a couple of historical orders. Demo credentials are
// admin@demo.com / manager@demo.com / supplier@demo.com with password
// "password".
func (c *Catalog) seed() {
	now := time.Now().UTC()
	ts := func() *time.Time { t := now; return &t }

	c.users = []models.User{
		{ID: 1, Name: "Admin User", Email: "admin@demo.com", Role: models.RoleAdmin, Password: "password", CreatedAt: ts(), UpdatedAt: ts()},
		{ID: 2, Name: "Manager User", Email: "manager@demo.com", Role: models.RoleManager, Password: "password", CreatedAt: ts(), UpdatedAt: ts()},
		{ID: 3, Name: "Supplier User", Email: "supplier@demo.com", Role: models.RoleSupplier, Password: "password", CreatedAt: ts(), UpdatedAt: ts()},
	}

	c.products = []models.Product{
		{ID: 1, Name: "Rice 5kg", Description: "Long grain white rice", Price: 400, Stock: 42, Threshold: 10, Category: "Staples", SKU: "STP-001", Unit: "bag", SupplierID: 3, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Toothpaste", Description: "Mint, 100g", Price: 80, Stock: 8, Threshold: 15, Category: "Personal Care", SKU: "PC-014", Unit: "tube", SupplierID: 3, CreatedAt: now, UpdatedAt: now},
		{ID: 3, Name: "Sunflower Oil 1L", Price: 150, Stock: 25, Threshold: 12, Category: "Staples", SKU: "STP-007", Unit: "bottle", SupplierID: 3, CreatedAt: now, UpdatedAt: now},
		{ID: 4, Name: "Dish Soap", Price: 60, Stock: 30, Threshold: 10, Category: "Cleaning", SKU: "CLN-003", Unit: "bottle", SupplierID: 3, CreatedAt: now, UpdatedAt: now},
		{ID: 5, Name: "Wheat Flour 2kg", Price: 120, Stock: 5, Threshold: 20, Category: "Staples", SKU: "STP-012", Unit: "bag", SupplierID: 3, CreatedAt: now, UpdatedAt: now},
		{ID: 6, Name: "Paper Towels", Price: 90, Stock: 18, Threshold: 8, Category: "Cleaning", SKU: "CLN-009", Unit: "roll", SupplierID: 3, CreatedAt: now, UpdatedAt: now},
	}

	c.orders = []models.Order{
		{ID: 1, ProductID: 1, Quantity: 20, Status: models.OrderDelivered, PaymentStatus: models.PaymentPaid, TotalAmount: 8000, SupplierID: 3, RequestedBy: 2, PaidAt: ts(), CreatedAt: now.Add(-72 * time.Hour), UpdatedAt: now.Add(-24 * time.Hour)},
		{ID: 2, ProductID: 3, Quantity: 10, Status: models.OrderShipped, PaymentStatus: models.PaymentUnpaid, TotalAmount: 1500, SupplierID: 3, RequestedBy: 2, CreatedAt: now.Add(-48 * time.Hour), UpdatedAt: now.Add(-12 * time.Hour)},
	}

	c.notifications = []models.Notification{
		{ID: 1, Type: models.NotifySystem, Title: "Welcome", Message: "Smart Grocery Refill System is ready", Read: false, CreatedAt: now.Add(-96 * time.Hour)},
	}
}
