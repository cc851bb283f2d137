package atlas

import "testing"

func TestShelfAllocator_Basic(t *testing.T) {
	a := newShelfAllocator(100, 2)

	x, y, ok := a.allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate first cell")
	}
	if x != 0 || y != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", x, y)
	}

	x, y, ok = a.allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate second cell")
	}
	if x != 22 || y != 0 { // 20 + 2 padding
		t.Errorf("expected (22,0), got (%d,%d)", x, y)
	}
}

func TestShelfAllocator_NewShelf(t *testing.T) {
	a := newShelfAllocator(50, 2)

	_, y1, _ := a.allocate(20, 20)
	_, y2, _ := a.allocate(20, 20)
	if y2 != y1 {
		t.Errorf("expected same shelf, got y1=%d, y2=%d", y1, y2)
	}

	x3, y3, ok := a.allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate third cell")
	}
	if y3 != 22 || x3 != 0 {
		t.Errorf("third cell at (%d,%d), want (0,22)", x3, y3)
	}
}

func TestShelfAllocator_GrowsLastShelf(t *testing.T) {
	a := newShelfAllocator(100, 0)

	a.allocate(10, 10)
	x, y, ok := a.allocate(10, 30)
	if !ok || x != 10 || y != 0 {
		t.Fatalf("allocate(10,30) = (%d,%d,%v), want (10,0,true)", x, y, ok)
	}

	// The next shelf opens below the grown height.
	a.allocate(80, 5)
	_, y, _ = a.allocate(50, 5)
	if y != 30 {
		t.Errorf("new shelf y = %d, want 30", y)
	}
}

func TestShelfAllocator_Full(t *testing.T) {
	a := newShelfAllocator(50, 2)

	count := 0
	for {
		if _, _, ok := a.allocate(20, 20); !ok {
			break
		}
		count++
		if count > 100 {
			t.Fatal("allocator never filled up")
		}
	}
	if count != 4 { // 2x2 grid of 20+2 in 50x50
		t.Errorf("allocated %d cells, want 4", count)
	}
	if u := a.utilization(); u != 1600.0/2500.0 {
		t.Errorf("utilization = %v, want %v", u, 1600.0/2500.0)
	}
}
