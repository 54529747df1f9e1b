package bus

import (
	"errors"
	"testing"
)

type testObserver struct {
	publishCount   int
	deliveredCount int
	lastErr        error
}

func (o *testObserver) OnPublish(_ string, _ Event) {
	o.publishCount++
}

func (o *testObserver) OnDelivered(_ string, handlers int, err error, _ int64) {
	o.deliveredCount += handlers
	o.lastErr = err
}

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	called := 0
	_, err := b.Subscribe("test.event", func(e Event) error {
		called++
		if e.Data() != 123 {
			t.Fatalf("unexpected payload: %v", e.Data())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err = b.Publish(NewEvent("test.event", "tester", 123)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if called != 1 {
		t.Fatalf("handler called %d times, want 1", called)
	}
}

func TestRegistrationOrderDelivery(t *testing.T) {
	b := New()
	var order []int
	for i := 0; i < 5; i++ {
		_, _ = b.Subscribe("ev", func(Event) error {
			order = append(order, i)
			return nil
		})
	}
	_ = b.Publish(NewEvent("ev", "src", nil))
	for i, got := range order {
		if got != i {
			t.Fatalf("delivery order %v, want registration order", order)
		}
	}
	if len(order) != 5 {
		t.Fatalf("delivered to %d handlers, want 5", len(order))
	}
}

func TestAtMostOncePerDispatch(t *testing.T) {
	b := New()
	count := 0
	_, _ = b.Subscribe("ev", func(Event) error { count++; return nil })
	_ = b.Publish(NewEvent("ev", "src", nil))
	_ = b.Publish(NewEvent("ev", "src", nil))
	if count != 2 {
		t.Fatalf("count = %d, want exactly one delivery per publish", count)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	count := 0
	sub, _ := b.Subscribe("ev", func(Event) error { count++; return nil })
	_ = b.Publish(NewEvent("ev", "src", nil))
	if err := b.Unsubscribe(sub); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	_ = b.Publish(NewEvent("ev", "src", nil))
	if count != 1 {
		t.Fatalf("count = %d, want 1 after unsubscribe", count)
	}
	if sub.IsActive() {
		t.Fatal("subscription still active after cancel")
	}
	if err := b.Unsubscribe(nil); err != nil {
		t.Fatalf("unsubscribe(nil): %v", err)
	}
}

func TestNoSubscribersIsNoop(t *testing.T) {
	b := New()
	if err := b.Publish(NewEvent("nobody.listens", "src", nil)); err != nil {
		t.Fatalf("publish without subscribers: %v", err)
	}
}

func TestHandlerErrorsJoined(t *testing.T) {
	b := New()
	errA := errors.New("a")
	errB := errors.New("b")
	_, _ = b.Subscribe("ev", func(Event) error { return errA })
	_, _ = b.Subscribe("ev", func(Event) error { return nil })
	_, _ = b.Subscribe("ev", func(Event) error { return errB })
	err := b.Publish(NewEvent("ev", "src", nil))
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("joined error missing parts: %v", err)
	}
}

func TestPublishBatchAggregates(t *testing.T) {
	b := New()
	boom := errors.New("boom")
	_, _ = b.Subscribe("bad", func(Event) error { return boom })
	err := b.PublishBatch(
		NewEvent("good", "src", nil),
		NewEvent("bad", "src", nil),
	)
	if !errors.Is(err, boom) {
		t.Fatalf("batch error = %v, want boom", err)
	}
}

func TestObserverMetricsOptional(t *testing.T) {
	b := New()
	// without observer, metrics stay zero despite activity
	_, _ = b.Subscribe("e", func(e Event) error { return nil })
	_ = b.Publish(NewEvent("e", "s", nil))
	m := b.GetMetrics()
	if m.Published != 0 && m.DeliveredHandlers != 0 {
		t.Fatalf("metrics should be zero without observers: %+v", m)
	}
	obs := &testObserver{}
	b.AddObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	m2 := b.GetMetrics()
	if m2.Published == 0 || m2.DeliveredHandlers == 0 {
		t.Fatalf("metrics should update with observer: %+v", m2)
	}
	if obs.publishCount == 0 || obs.deliveredCount == 0 {
		t.Fatalf("observer not called: %+v", obs)
	}
	b.RemoveObserver(obs)
	before := b.GetMetrics().Published
	_ = b.Publish(NewEvent("e", "s", nil))
	if b.GetMetrics().Published != before {
		t.Fatal("metrics advanced after observer removal")
	}
}
