package reactive

import (
	"sync"
	"testing"
)

func TestCellBasic(t *testing.T) {
	count := NewCell(0)

	if count.Get() != 0 {
		t.Errorf("expected initial value 0, got %d", count.Get())
	}

	count.Set(5)
	if count.Get() != 5 {
		t.Errorf("expected value 5, got %d", count.Get())
	}

	count.Update(func(n int) int { return n * 2 })
	if count.Get() != 10 {
		t.Errorf("expected value 10, got %d", count.Get())
	}
}

func TestCellNotifiesInOrder(t *testing.T) {
	c := NewCell("a")

	var calls []string
	for _, name := range []string{"s1", "s2", "s3"} {
		name := name
		c.Listen(func(v string) {
			calls = append(calls, name+"="+v)
		})
	}

	c.Set("b")

	want := []string{"s1=b", "s2=b", "s3=b"}
	if len(calls) != len(want) {
		t.Fatalf("expected %d calls, got %d: %v", len(want), len(calls), calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q", i, want[i], calls[i])
		}
	}
}

func TestCellSameValueStillNotifies(t *testing.T) {
	c := NewCell(1)
	count := 0
	c.Listen(func(int) { count++ })

	c.Set(1)
	c.Set(1)

	if count != 2 {
		t.Errorf("expected 2 notifications, got %d", count)
	}
}

func TestCellWithEquals(t *testing.T) {
	c := NewCell(1).WithEquals(Equal[int])
	count := 0
	c.Listen(func(int) { count++ })

	c.Set(1)
	if count != 0 {
		t.Errorf("equal value should not notify, got %d", count)
	}

	c.Set(2)
	if count != 1 {
		t.Errorf("expected 1 notification, got %d", count)
	}
}

func TestCellListenDoesNotDedup(t *testing.T) {
	c := NewCell(0)
	count := 0
	fn := func(int) { count++ }
	c.Listen(fn)
	c.Listen(fn)

	c.Set(1)
	if count != 2 {
		t.Errorf("expected identical callbacks to run twice, got %d", count)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 subscribers, got %d", c.Len())
	}
}

func TestCellCancel(t *testing.T) {
	c := NewCell(0)
	count := 0
	sub := c.Listen(func(int) { count++ })

	c.Set(1)
	sub.Cancel()
	sub.Cancel()
	c.Set(2)

	if count != 1 {
		t.Errorf("expected 1 notification before cancel, got %d", count)
	}
	if sub.Active() {
		t.Error("cancelled subscription should not be active")
	}
	if c.Len() != 0 {
		t.Errorf("expected 0 subscribers, got %d", c.Len())
	}
}

func TestCellCancelPreservesOrder(t *testing.T) {
	c := NewCell(0)
	var calls []int
	subs := make([]*Subscription, 4)
	for i := range subs {
		i := i
		subs[i] = c.Listen(func(int) { calls = append(calls, i) })
	}

	subs[1].Cancel()
	c.Set(1)

	want := []int{0, 2, 3}
	if len(calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("expected %v, got %v", want, calls)
			break
		}
	}
}

func TestCellCancelDuringPass(t *testing.T) {
	c := NewCell(0)
	var second *Subscription
	secondCalls := 0

	c.Listen(func(int) { second.Cancel() })
	second = c.Listen(func(int) { secondCalls++ })

	c.Set(1)
	if secondCalls != 0 {
		t.Errorf("subscriber cancelled mid-pass should not run, ran %d times", secondCalls)
	}
}

func TestCellReentrantSet(t *testing.T) {
	c := NewCell(0)

	var first, second []int
	c.Listen(func(v int) {
		first = append(first, v)
		if v == 1 {
			c.Set(2)
		}
	})
	c.Listen(func(v int) {
		second = append(second, v)
	})

	c.Set(1)

	if c.Get() != 2 {
		t.Errorf("expected final value 2, got %d", c.Get())
	}
	wantFirst := []int{1, 2}
	wantSecond := []int{1, 2}
	if len(first) != 2 || first[0] != wantFirst[0] || first[1] != wantFirst[1] {
		t.Errorf("first subscriber: expected %v, got %v", wantFirst, first)
	}
	if len(second) != 2 || second[0] != wantSecond[0] || second[1] != wantSecond[1] {
		t.Errorf("second subscriber: expected %v, got %v", wantSecond, second)
	}
}

func TestCellReentrantSetSeesNewSubscriber(t *testing.T) {
	c := NewCell(0)
	lateCalls := 0

	c.Listen(func(v int) {
		if v == 1 {
			c.Listen(func(int) { lateCalls++ })
			c.Set(2)
		}
	})

	c.Set(1)
	if lateCalls != 1 {
		t.Errorf("subscriber added mid-pass should see the follow-up pass once, got %d", lateCalls)
	}
}

func TestCellPanicResetsState(t *testing.T) {
	c := NewCell(0)
	boom := true
	c.Listen(func(int) {
		if boom {
			panic("boom")
		}
	})

	func() {
		defer func() { _ = recover() }()
		c.Set(1)
	}()

	boom = false
	count := 0
	c.Listen(func(int) { count++ })
	c.Set(2)
	if count != 1 {
		t.Errorf("cell should keep notifying after a subscriber panic, got %d", count)
	}
}

func TestCellConcurrentAccess(t *testing.T) {
	c := NewCell(0)
	var mu sync.Mutex
	total := 0
	c.Listen(func(int) {
		mu.Lock()
		total++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Update(func(n int) int { return n + 1 })
			_ = c.Get()
		}()
	}
	wg.Wait()

	if c.Get() != 50 {
		t.Errorf("expected 50, got %d", c.Get())
	}
	mu.Lock()
	defer mu.Unlock()
	if total == 0 || total > 50 {
		t.Errorf("expected between 1 and 50 notifications, got %d", total)
	}
}

func TestCellIDsAreUnique(t *testing.T) {
	a := NewCell(0)
	b := NewCell(0)
	if a.ID() == b.ID() {
		t.Error("expected distinct IDs")
	}
}
