package redux

// Observer receives state values from an Observable subscription.
type Observer[S any] interface {
	Next(state S)
}

// Subscription is the handle returned by Observable.Subscribe.
type Subscription struct {
	unsubscribe UnsubscribeFunc
}

// Unsubscribe stops further notifications. It is idempotent.
func (s Subscription) Unsubscribe() error { return s.unsubscribe() }

// Observable is a minimal reactive-interop surface over a store. It exists
// purely so external reactive consumers can adapt a store; it adds no
// behavior beyond Subscribe and State.
type Observable[S any] interface {
	// Subscribe emits the current state to observer synchronously, then
	// once after every committed dispatch until unsubscribed.
	Subscribe(observer Observer[S]) (Subscription, error)
}

func (s *store[S]) Observe() Observable[S] { return observable[S]{store: s} }

type observable[S any] struct {
	store Store[S]
}

func (o observable[S]) Subscribe(observer Observer[S]) (Subscription, error) {
	if observer == nil {
		return Subscription{}, ErrNilObserver
	}
	notify := func() {
		if state, err := o.store.State(); err == nil {
			observer.Next(state)
		}
	}
	notify()
	unsubscribe, err := o.store.Subscribe(notify)
	if err != nil {
		return Subscription{}, err
	}
	return Subscription{unsubscribe: unsubscribe}, nil
}
