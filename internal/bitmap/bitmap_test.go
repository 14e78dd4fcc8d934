package bitmap

import "testing"

func TestBitmapSet(t *testing.T) {
	b := New(130)

	for _, i := range []int{0, 1, 63, 64, 127, 129} {
		b.Set(i)
	}
	for _, i := range []int{0, 1, 63, 64, 127, 129} {
		if !b.IsSet(i) {
			t.Errorf("slot %d should be set", i)
		}
	}
	for _, i := range []int{2, 62, 65, 126, 128} {
		if b.IsSet(i) {
			t.Errorf("slot %d should not be set", i)
		}
	}
	if b.Count() != 6 {
		t.Errorf("expected count 6, got %d", b.Count())
	}
}

func TestBitmapOutOfRange(t *testing.T) {
	b := New(10)

	// Out of range is a no-op
	b.Set(10)
	b.Set(-1)
	b.Set(1000)

	if b.Count() != 0 {
		t.Errorf("expected count 0, got %d", b.Count())
	}
	if b.IsSet(10) || b.IsSet(-1) {
		t.Error("out of range slots should report unset")
	}
}

func TestBitmapClear(t *testing.T) {
	b := New(32)
	for i := 0; i < 32; i++ {
		b.Set(i)
	}
	if b.Count() != 32 {
		t.Fatalf("expected count 32, got %d", b.Count())
	}

	b.Clear()

	if b.Count() != 0 {
		t.Errorf("expected count 0 after clear, got %d", b.Count())
	}
	if b.Len() != 32 {
		t.Errorf("clear should keep length, got %d", b.Len())
	}
}

func TestBitmapNext(t *testing.T) {
	b := New(200)
	want := []int{3, 64, 65, 190}
	for _, i := range want {
		b.Set(i)
	}

	var got []int
	for i := b.Next(0); i >= 0; i = b.Next(i + 1) {
		got = append(got, i)
	}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	if New(0).Next(0) != -1 {
		t.Error("empty bitmap should have no next slot")
	}
}
