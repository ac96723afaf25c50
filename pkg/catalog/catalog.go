// Package catalog holds the in-memory collections behind the inventory
// REST API: users, products, orders and notifications. Data lives for the
// process lifetime only; durability is a non-goal for these collections.
package catalog

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"smartgrocery/pkg/logger"
	"smartgrocery/pkg/models"
)

// Catalog is the single mutex-guarded registry shared by all handlers.
type Catalog struct {
	mu            sync.RWMutex
	users         []models.User
	products      []models.Product
	orders        []models.Order
	notifications []models.Notification
}

// New returns a catalog populated with the demo seed data.
func New() *Catalog {
	c := &Catalog{}
	c.seed()
	return c
}

// Authenticate matches email and password against the user registry.
func (c *Catalog) Authenticate(email, password string) (models.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.users {
		if u.Email == email && u.Password == password {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByID returns a user by id.
func (c *Catalog) UserByID(id int) (models.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// ProductFilters narrow the product listing.
type ProductFilters struct {
	Query    string
	Category string
	LowStock bool
}

// ListProducts returns products matching the filters, unpaginated; the
// HTTP layer slices pages from the filtered set.
func (c *Catalog) ListProducts(f ProductFilters) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.LowStock && !p.LowStock() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetProduct returns a product by id.
func (c *Catalog) GetProduct(id int) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// CreateProduct assigns an id and timestamps and stores the product.
func (c *Catalog) CreateProduct(p models.Product) models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.ID = len(c.products) + 1
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	c.products = append(c.products, p)
	return p
}

// UpdateProduct merges the raw JSON patch onto the stored product: absent
// fields keep their current values, mirroring the partial-update contract
// of the REST API.
func (c *Catalog) UpdateProduct(id int, patch json.RawMessage) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}
		merged := c.products[i]
		if err := json.Unmarshal(patch, &merged); err != nil {
			logger.Warn("product_patch_invalid", "id", id, "error", err)
			return models.Product{}, false
		}
		merged.ID = id
		merged.CreatedAt = c.products[i].CreatedAt
		merged.UpdatedAt = time.Now().UTC()
		c.products[i] = merged
		return merged, true
	}
	return models.Product{}, false
}

// DeleteProduct removes a product by id.
func (c *Catalog) DeleteProduct(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

// AdjustStock sets a product's stock level directly (dev/demo endpoint).
func (c *Catalog) AdjustStock(productID, newStock int) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == productID {
			c.products[i].Stock = newStock
			c.products[i].UpdatedAt = time.Now().UTC()
			return c.products[i], true
		}
	}
	return models.Product{}, false
}

// OrderFilters narrow the order listing.
type OrderFilters struct {
	Status     models.OrderStatus
	SupplierID int
}

// ListOrders returns orders matching the filters with product and user
// references populated.
func (c *Catalog) ListOrders(f OrderFilters) []models.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Order, 0, len(c.orders))
	for _, o := range c.orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.SupplierID != 0 && o.SupplierID != f.SupplierID {
			continue
		}
		out = append(out, c.populate(o))
	}
	return out
}

// GetOrder returns a populated order by id.
func (c *Catalog) GetOrder(id int) (models.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, o := range c.orders {
		if o.ID == id {
			return c.populate(o), true
		}
	}
	return models.Order{}, false
}

// CreateOrder stores a new pending, unpaid order. The total amount is
// computed from the current product price, and an order-created
// notification is raised alongside.
func (c *Catalog) CreateOrder(o models.Order) models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now().UTC()
	o.ID = len(c.orders) + 1
	o.Status = models.OrderPending
	o.PaymentStatus = models.PaymentUnpaid
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Quantity <= 0 {
		o.Quantity = 1
	}
	productName := "product"
	for _, p := range c.products {
		if p.ID == o.ProductID {
			o.TotalAmount = p.Price * float64(o.Quantity)
			productName = p.Name
			if o.SupplierID == 0 {
				o.SupplierID = p.SupplierID
			}
			break
		}
	}
	c.orders = append(c.orders, o)
	c.pushNotification(models.Notification{
		Type:      models.NotifyLowStock,
		Title:     "New Order Created",
		Message:   "Order #" + strconv.Itoa(o.ID) + " created for " + productName,
		OrderID:   o.ID,
		ProductID: o.ProductID,
	})
	logger.Info("order_created", "id", o.ID, "product", o.ProductID, "quantity", o.Quantity)
	return o
}

// UpdateOrder merges the raw JSON patch onto the stored order. A payment
// status transition to paid stamps PaidAt once.
func (c *Catalog) UpdateOrder(id int, patch json.RawMessage) (models.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.orders {
		if c.orders[i].ID != id {
			continue
		}
		prev := c.orders[i]
		merged := prev
		if err := json.Unmarshal(patch, &merged); err != nil {
			logger.Warn("order_patch_invalid", "id", id, "error", err)
			return models.Order{}, false
		}
		merged.ID = id
		merged.CreatedAt = prev.CreatedAt
		merged.UpdatedAt = time.Now().UTC()
		if merged.PaymentStatus == models.PaymentPaid && prev.PaymentStatus != models.PaymentPaid {
			now := time.Now().UTC()
			merged.PaidAt = &now
		}
		c.orders[i] = merged
		return c.populate(merged), true
	}
	return models.Order{}, false
}

// HasOpenOrder reports whether the product already has an order on its
// way (pending, confirmed or shipped).
func (c *Catalog) HasOpenOrder(productID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.orders {
		if c.orders[i].ProductID == productID && c.orders[i].Open() {
			return true
		}
	}
	return false
}

// Notifications returns all notifications, newest first.
func (c *Catalog) Notifications() []models.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Notification, len(c.notifications))
	copy(out, c.notifications)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// MarkNotificationRead marks one notification read. Unknown ids are
// ignored, matching the reference API.
func (c *Catalog) MarkNotificationRead(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications[i].Read = true
			return
		}
	}
}

// MarkAllNotificationsRead marks every notification read.
func (c *Catalog) MarkAllNotificationsRead() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.notifications {
		c.notifications[i].Read = true
	}
}

// PushNotification appends a notification with a fresh id and timestamp.
func (c *Catalog) PushNotification(n models.Notification) models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pushNotification(n)
}

func (c *Catalog) pushNotification(n models.Notification) models.Notification {
	n.ID = len(c.notifications) + 1
	n.CreatedAt = time.Now().UTC()
	c.notifications = append(c.notifications, n)
	return n
}

// ListUsers returns all users. Passwords never serialize.
func (c *Catalog) ListUsers() []models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.User, len(c.users))
	copy(out, c.users)
	return out
}

// CreateUser assigns an id and timestamps and stores the user.
func (c *Catalog) CreateUser(u models.User) models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	u.ID = len(c.users) + 1
	now := time.Now().UTC()
	u.CreatedAt = &now
	u.UpdatedAt = &now
	c.users = append(c.users, u)
	return u
}

// UpdateUser merges the raw JSON patch onto the stored user.
func (c *Catalog) UpdateUser(id int, patch json.RawMessage) (models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.users {
		if c.users[i].ID != id {
			continue
		}
		merged := c.users[i]
		if err := json.Unmarshal(patch, &merged); err != nil {
			logger.Warn("user_patch_invalid", "id", id, "error", err)
			return models.User{}, false
		}
		merged.ID = id
		now := time.Now().UTC()
		merged.UpdatedAt = &now
		c.users[i] = merged
		return merged, true
	}
	return models.User{}, false
}

// DeleteUser removes a user by id.
func (c *Catalog) DeleteUser(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.users {
		if c.users[i].ID == id {
			c.users = append(c.users[:i], c.users[i+1:]...)
			return true
		}
	}
	return false
}

// MonthlyConsumption returns the demo report rows. The range parameters
// are accepted for interface parity but the demo data is fixed.
func (c *Catalog) MonthlyConsumption(start, end string) []models.MonthlyConsumption {
	return []models.MonthlyConsumption{
		{Month: "2024-01", ProductID: 1, ProductName: "Rice 5kg", Quantity: 100, TotalValue: 40000},
		{Month: "2024-02", ProductID: 1, ProductName: "Rice 5kg", Quantity: 120, TotalValue: 48000},
		{Month: "2024-03", ProductID: 2, ProductName: "Toothpaste", Quantity: 50, TotalValue: 4000},
	}
}

// populate attaches product and user references; callers hold the lock.
func (c *Catalog) populate(o models.Order) models.Order {
	for i := range c.products {
		if c.products[i].ID == o.ProductID {
			p := c.products[i]
			o.Product = &p
			break
		}
	}
	for i := range c.users {
		if c.users[i].ID == o.SupplierID {
			u := c.users[i]
			o.Supplier = &u
		}
		if c.users[i].ID == o.RequestedBy {
			u := c.users[i]
			o.RequestedByUser = &u
		}
	}
	return o
}
