package db

import (
	"testing"
	"time"
)

func drainSignal(signal <-chan struct{}) bool {
	select {
	case <-signal:
		return true
	case <-time.After(time.Second):
		return false
	}
}

func TestBrokerNotifiesSubscribedTablesOnly(t *testing.T) {
	broker := NewChangeBroker()

	signal, cancel := broker.Subscribe(TableUsers)
	defer cancel()

	broker.Notify(TableMeals)
	select {
	case <-signal:
		t.Fatal("subscriber woken by a table it did not subscribe to")
	default:
	}

	broker.Notify(TableUsers)
	if !drainSignal(signal) {
		t.Fatal("expected a signal for the subscribed table")
	}
}

func TestBrokerCoalescesBurstsIntoOneSignal(t *testing.T) {
	broker := NewChangeBroker()

	signal, cancel := broker.Subscribe(TableUsers)
	defer cancel()

	for i := 0; i < 10; i++ {
		broker.Notify(TableUsers)
	}

	if !drainSignal(signal) {
		t.Fatal("expected at least one signal")
	}
	select {
	case <-signal:
		t.Fatal("expected the burst to coalesce into a single pending signal")
	default:
	}
}

func TestBrokerCancelStopsDelivery(t *testing.T) {
	broker := NewChangeBroker()

	signal, cancel := broker.Subscribe(TableUsers, TableGoals)
	cancel()

	broker.Notify(TableUsers)
	broker.Notify(TableGoals)
	select {
	case <-signal:
		t.Fatal("cancelled subscriber still received a signal")
	default:
	}
}

func TestBrokerMultiTableSubscription(t *testing.T) {
	broker := NewChangeBroker()

	signal, cancel := broker.Subscribe(TableHealthGoals, TableHealthProgress)
	defer cancel()

	broker.Notify(TableHealthProgress)
	if !drainSignal(signal) {
		t.Fatal("expected a signal for the second subscribed table")
	}
}
