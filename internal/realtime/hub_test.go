package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHubDeliversToSubscriber(t *testing.T) {
	h := NewHub()
	uid := uuid.Must(uuid.NewV7())

	ch, cancel := h.Subscribe(uid)
	defer cancel()

	h.Broadcast(uid, Event{Type: EventAlert, Data: "hello"})

	select {
	case ev := <-ch:
		if ev.Type != EventAlert {
			t.Errorf("event type = %q, want %q", ev.Type, EventAlert)
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestHubIsolatesUsers(t *testing.T) {
	h := NewHub()
	u1 := uuid.Must(uuid.NewV7())
	u2 := uuid.Must(uuid.NewV7())

	ch1, cancel1 := h.Subscribe(u1)
	defer cancel1()
	_, cancel2 := h.Subscribe(u2)
	defer cancel2()

	h.Broadcast(u2, Event{Type: EventLocation})

	select {
	case ev := <-ch1:
		t.Errorf("user 1 received user 2's event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubMultipleStreamsPerUser(t *testing.T) {
	h := NewHub()
	uid := uuid.Must(uuid.NewV7())

	ch1, cancel1 := h.Subscribe(uid)
	defer cancel1()
	ch2, cancel2 := h.Subscribe(uid)
	defer cancel2()

	if n := h.Subscribers(uid); n != 2 {
		t.Fatalf("Subscribers() = %d, want 2", n)
	}

	h.Broadcast(uid, Event{Type: EventAlert})

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("stream %d did not receive the event", i+1)
		}
	}
}

func TestHubUnsubscribe(t *testing.T) {
	h := NewHub()
	uid := uuid.Must(uuid.NewV7())

	_, cancel := h.Subscribe(uid)
	cancel()
	cancel() // second cancel is a no-op

	if n := h.Subscribers(uid); n != 0 {
		t.Errorf("Subscribers() after cancel = %d, want 0", n)
	}

	// Broadcasting to a user with no streams must not panic.
	h.Broadcast(uid, Event{Type: EventAlert})
}

func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	uid := uuid.Must(uuid.NewV7())

	_, cancel := h.Subscribe(uid) // never drained
	defer cancel()

	done := make(chan struct{})
	go func() {
		// More events than the channel buffer holds.
		for i := 0; i < 100; i++ {
			h.Broadcast(uid, Event{Type: EventAlert})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a slow subscriber")
	}
}

func TestHubConcurrentSubscribeBroadcast(t *testing.T) {
	h := NewHub()
	uid := uuid.Must(uuid.NewV7())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, cancel := h.Subscribe(uid)
			time.Sleep(time.Millisecond)
			cancel()
		}()
		go func() {
			defer wg.Done()
			h.Broadcast(uid, Event{Type: EventLocation})
		}()
	}
	wg.Wait()
}

func TestEventEncode(t *testing.T) {
	ev := Event{Type: EventAlert, Data: map[string]any{"message": "fall detected"}}
	b := ev.Encode()
	want := `{"type":"alert","data":{"message":"fall detected"}}`
	if string(b) != want {
		t.Errorf("Encode() = %s, want %s", b, want)
	}
}
