package notify

import "testing"

func TestNotifier_DeliversInSubscriptionOrder(t *testing.T) {
	var n Notifier[int]
	var got []string

	n.Subscribe(func(v int) { got = append(got, "first") })
	n.Subscribe(func(v int) { got = append(got, "second") })

	n.Notify(1)

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("expected [first second], got %v", got)
	}
}

func TestNotifier_Unsubscribe(t *testing.T) {
	var n Notifier[string]
	calls := 0

	unsubscribe := n.Subscribe(func(string) { calls++ })
	n.Notify("a")
	unsubscribe()
	n.Notify("b")

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if n.Len() != 0 {
		t.Errorf("expected no subscriptions, got %d", n.Len())
	}

	// a second unsubscribe is harmless
	unsubscribe()
}

func TestNotifier_UnsubscribeDuringNotify(t *testing.T) {
	var n Notifier[int]
	calls := 0

	var unsubscribe func()
	unsubscribe = n.Subscribe(func(int) {
		calls++
		unsubscribe()
	})
	n.Subscribe(func(int) { calls++ })

	n.Notify(1)
	if calls != 2 {
		t.Errorf("expected both subscribers on first notify, got %d calls", calls)
	}

	n.Notify(2)
	if calls != 3 {
		t.Errorf("expected only the remaining subscriber on second notify, got %d calls", calls)
	}
}
