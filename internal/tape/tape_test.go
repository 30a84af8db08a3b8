package tape

import "testing"

func TestGetDefaultsToZero(t *testing.T) {
	if v := Empty.Get(42); v != 0 {
		t.Fatalf("Get on untouched cell = %d, want 0", v)
	}
	if v := Empty.Get(-7); v != 0 {
		t.Fatalf("Get on negative untouched cell = %d, want 0", v)
	}
}

func TestSetAndGet(t *testing.T) {
	tp := Empty.Set(0, 5).Set(-1, 200).Set(100, 1)
	if v := tp.Get(0); v != 5 {
		t.Fatalf("Get(0) = %d, want 5", v)
	}
	if v := tp.Get(-1); v != 200 {
		t.Fatalf("Get(-1) = %d, want 200", v)
	}
	if v := tp.Get(100); v != 1 {
		t.Fatalf("Get(100) = %d, want 1", v)
	}
}

func TestSetZeroRemoves(t *testing.T) {
	tp := Empty.Set(3, 9).Set(3, 0)
	if v := tp.Get(3); v != 0 {
		t.Fatalf("Get(3) after zeroing = %d, want 0", v)
	}
}

func TestPersistence(t *testing.T) {
	base := Empty.Set(1, 10)
	child := base.Set(1, 20)

	if v := base.Get(1); v != 10 {
		t.Fatalf("mutating a successor changed the predecessor: got %d, want 10", v)
	}
	if v := child.Get(1); v != 20 {
		t.Fatalf("child.Get(1) = %d, want 20", v)
	}
}

func TestOutputAppendAndBytes(t *testing.T) {
	var o Output
	o = o.Append(1).Append(2).Append(3)
	if o.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", o.Len())
	}
	got := o.Bytes()
	want := []byte{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes() = %v, want %v", got, want)
		}
	}
	for i, b := range want {
		if o.At(i) != b {
			t.Fatalf("At(%d) = %d, want %d", i, o.At(i), b)
		}
	}
}

func TestOutputPersistence(t *testing.T) {
	base := Output{}.Append(1).Append(2)
	branchA := base.Append(3)
	branchB := base.Append(9)

	if branchA.Len() != 3 || branchB.Len() != 3 {
		t.Fatal("both branches should extend the shared prefix by one byte")
	}
	if branchA.At(2) == branchB.At(2) {
		t.Fatal("sibling branches should not observe each other's appended byte")
	}
	if base.Len() != 2 {
		t.Fatal("appending from base must not mutate base")
	}
}
