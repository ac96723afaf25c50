package notify

import (
	"testing"
	"time"
)

func TestBrokerDeliversToAllSubscribers(t *testing.T) {
	b := NewBroker()
	got := make(chan int, 2)
	b.Subscribe(func() { got <- 1 })
	b.Subscribe(func() { got <- 2 })

	b.NotifyChange()

	seen := 0
	timeout := time.After(2 * time.Second)
	for seen < 2 {
		select {
		case <-got:
			seen++
		case <-timeout:
			t.Fatalf("expected 2 deliveries, got %d", seen)
		}
	}
}

func TestBrokerUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBroker()
	got := make(chan struct{}, 4)
	unsub := b.Subscribe(func() { got <- struct{}{} })

	b.NotifyChange()
	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery before unsubscribe")
	}

	unsub()
	b.NotifyChange()
	select {
	case <-got:
		t.Fatal("delivery after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBrokerUnsubscribeIsIdempotent(t *testing.T) {
	b := NewBroker()
	unsub := b.Subscribe(func() {})
	unsub()
	unsub()
	b.NotifyChange()
}

func TestBrokerNotifyWithoutSubscribers(t *testing.T) {
	b := NewBroker()
	b.NotifyChange()
}
