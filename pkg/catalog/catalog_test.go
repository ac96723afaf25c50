package catalog

import (
	"encoding/json"
	"testing"

	"smartgrocery/pkg/models"
)

func TestAuthenticate(t *testing.T) {
	c := New()
	u, ok := c.Authenticate("manager@demo.com", "password")
	if !ok {
		t.Fatal("expected manager login to succeed")
	}
	if u.Role != models.RoleManager || u.ID != 2 {
		t.Fatalf("unexpected user %+v", u)
	}
	if _, ok := c.Authenticate("manager@demo.com", "wrong"); ok {
		t.Fatal("wrong password accepted")
	}
	if _, ok := c.Authenticate("nobody@demo.com", "password"); ok {
		t.Fatal("unknown email accepted")
	}
}

func TestListProductsFilters(t *testing.T) {
	c := New()

	all := c.ListProducts(ProductFilters{})
	if len(all) == 0 {
		t.Fatal("seed products missing")
	}

	low := c.ListProducts(ProductFilters{LowStock: true})
	if len(low) == 0 {
		t.Fatal("expected low-stock products in seed data")
	}
	for _, p := range low {
		if !p.LowStock() {
			t.Fatalf("%s not low on stock (%d/%d)", p.Name, p.Stock, p.Threshold)
		}
	}

	rice := c.ListProducts(ProductFilters{Query: "rice"})
	if len(rice) != 1 || rice[0].Name != "Rice 5kg" {
		t.Fatalf("query filter: %+v", rice)
	}
}

func TestUpdateProductMergesPatch(t *testing.T) {
	c := New()
	before, _ := c.GetProduct(1)

	patch := json.RawMessage(`{"price": 999.5}`)
	after, ok := c.UpdateProduct(1, patch)
	if !ok {
		t.Fatal("update failed")
	}
	if after.Price != 999.5 {
		t.Fatalf("price not patched: %v", after.Price)
	}
	if after.Name != before.Name || after.Stock != before.Stock {
		t.Fatalf("absent fields must keep values: %+v", after)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatal("createdAt must be preserved")
	}

	if _, ok := c.UpdateProduct(1, json.RawMessage(`{broken`)); ok {
		t.Fatal("malformed patch accepted")
	}
	if _, ok := c.UpdateProduct(9999, patch); ok {
		t.Fatal("unknown id accepted")
	}
}

func TestCreateOrderComputesTotalAndNotifies(t *testing.T) {
	c := New()
	p, _ := c.GetProduct(1)
	notifsBefore := len(c.Notifications())

	o := c.CreateOrder(models.Order{ProductID: p.ID, Quantity: 3, RequestedBy: 2})
	if o.Status != models.OrderPending || o.PaymentStatus != models.PaymentUnpaid {
		t.Fatalf("new order state: %s/%s", o.Status, o.PaymentStatus)
	}
	if o.TotalAmount != p.Price*3 {
		t.Fatalf("total = %v, want %v", o.TotalAmount, p.Price*3)
	}
	if o.SupplierID != p.SupplierID {
		t.Fatalf("supplier not defaulted from product: %d", o.SupplierID)
	}
	if len(c.Notifications()) != notifsBefore+1 {
		t.Fatal("order creation must raise a notification")
	}
}

func TestUpdateOrderStampsPaidAtOnce(t *testing.T) {
	c := New()
	o := c.CreateOrder(models.Order{ProductID: 1, Quantity: 1})

	paid, ok := c.UpdateOrder(o.ID, json.RawMessage(`{"paymentStatus":"paid"}`))
	if !ok {
		t.Fatal("update failed")
	}
	if paid.PaidAt == nil {
		t.Fatal("paidAt not stamped on transition to paid")
	}
	first := *paid.PaidAt

	again, _ := c.UpdateOrder(o.ID, json.RawMessage(`{"status":"delivered"}`))
	if again.PaidAt == nil || !again.PaidAt.Equal(first) {
		t.Fatalf("paidAt must not move on later updates: %v vs %v", again.PaidAt, first)
	}
}

func TestGetOrderPopulatesReferences(t *testing.T) {
	c := New()
	created := c.CreateOrder(models.Order{ProductID: 1, Quantity: 1, RequestedBy: 2})
	o, ok := c.GetOrder(created.ID)
	if !ok {
		t.Fatal("order missing")
	}
	if o.Product == nil || o.Product.ID != 1 {
		t.Fatalf("product not populated: %+v", o.Product)
	}
	if o.Supplier == nil || o.Supplier.ID != o.SupplierID {
		t.Fatalf("supplier not populated: %+v", o.Supplier)
	}
	if o.RequestedByUser == nil || o.RequestedByUser.ID != 2 {
		t.Fatalf("requester not populated: %+v", o.RequestedByUser)
	}
}

func TestHasOpenOrder(t *testing.T) {
	c := New()
	if c.HasOpenOrder(9999) {
		t.Fatal("unknown product reported open order")
	}
	o := c.CreateOrder(models.Order{ProductID: 4, Quantity: 1})
	if !c.HasOpenOrder(4) {
		t.Fatal("pending order not counted as open")
	}
	if _, ok := c.UpdateOrder(o.ID, json.RawMessage(`{"status":"delivered"}`)); !ok {
		t.Fatal("update failed")
	}
	if c.HasOpenOrder(4) {
		t.Fatal("delivered order still counted as open")
	}
}

func TestNotificationsNewestFirstAndMarkRead(t *testing.T) {
	c := New()
	c.PushNotification(models.Notification{Type: models.NotifySystem, Title: "second"})

	ns := c.Notifications()
	if len(ns) < 2 {
		t.Fatalf("expected at least 2 notifications, got %d", len(ns))
	}
	for i := 1; i < len(ns); i++ {
		if ns[i].CreatedAt.After(ns[i-1].CreatedAt) {
			t.Fatalf("not newest-first at %d", i)
		}
	}

	c.MarkNotificationRead(ns[0].ID)
	for _, n := range c.Notifications() {
		if n.ID == ns[0].ID && !n.Read {
			t.Fatal("notification not marked read")
		}
	}

	c.MarkAllNotificationsRead()
	for _, n := range c.Notifications() {
		if !n.Read {
			t.Fatalf("notification %d still unread", n.ID)
		}
	}
}

func TestUserCRUD(t *testing.T) {
	c := New()
	u := c.CreateUser(models.User{Name: "New Supplier", Email: "s2@demo.com", Role: models.RoleSupplier})
	if u.ID == 0 {
		t.Fatal("id not assigned")
	}

	patched, ok := c.UpdateUser(u.ID, json.RawMessage(`{"name":"Renamed"}`))
	if !ok || patched.Name != "Renamed" || patched.Email != "s2@demo.com" {
		t.Fatalf("patch result: %+v", patched)
	}

	if !c.DeleteUser(u.ID) {
		t.Fatal("delete failed")
	}
	if _, ok := c.UserByID(u.ID); ok {
		t.Fatal("user still present after delete")
	}
}
