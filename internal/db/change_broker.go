package db

import "sync"

// Table names used as change-notification topics. Repository writes notify
// the table they touched; live queries subscribe to every table their result
// set depends on.
const (
	TableUsers          = "users"
	TableHealthGoals    = "health_goals"
	TableHealthProgress = "health_progress"
	TableGoals          = "goals"
	TableMeals          = "meals"
)

// ChangeBroker fans out table-change signals to live-query subscribers.
// Signals carry no payload; a subscriber re-runs its query on every signal.
// Delivery is coalescing and never blocks a writer: each subscriber holds a
// buffered signal channel and a notification that finds the buffer full is
// dropped, because an unconsumed signal already implies a pending re-read.
type ChangeBroker struct {
	mu   sync.RWMutex
	subs map[string]map[chan struct{}]struct{}
}

func NewChangeBroker() *ChangeBroker {
	return &ChangeBroker{subs: make(map[string]map[chan struct{}]struct{})}
}

// Subscribe registers interest in the given tables. The returned cancel
// function must be called to release the subscription.
func (broker *ChangeBroker) Subscribe(tables ...string) (<-chan struct{}, func()) {
	signal := make(chan struct{}, 1)

	broker.mu.Lock()
	for _, table := range tables {
		set := broker.subs[table]
		if set == nil {
			set = make(map[chan struct{}]struct{})
			broker.subs[table] = set
		}
		set[signal] = struct{}{}
	}
	broker.mu.Unlock()

	cancel := func() {
		broker.mu.Lock()
		for _, table := range tables {
			if set := broker.subs[table]; set != nil {
				delete(set, signal)
				if len(set) == 0 {
					delete(broker.subs, table)
				}
			}
		}
		broker.mu.Unlock()
	}
	return signal, cancel
}

// Notify signals every subscriber of the given tables.
func (broker *ChangeBroker) Notify(tables ...string) {
	broker.mu.RLock()
	defer broker.mu.RUnlock()
	for _, table := range tables {
		for signal := range broker.subs[table] {
			select {
			case signal <- struct{}{}:
			default:
			}
		}
	}
}
