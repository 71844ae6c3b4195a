package lane

import "testing"

func TestLoad(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Error("Load created empty vector")
	}
	if v.NumLanes() != MaxLanes[int32]() {
		t.Errorf("NumLanes() = %d, want %d", v.NumLanes(), MaxLanes[int32]())
	}

	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadShort(t *testing.T) {
	data := []int32{7, 8, 9}
	v := Load(data)

	if v.NumLanes() != 3 {
		t.Errorf("Load of short slice: NumLanes() = %d, want 3", v.NumLanes())
	}
	for i := range data {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestSet(t *testing.T) {
	v := Set[int32](42)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42 {
			t.Errorf("Set: lane %d: got %v, want 42", i, v.data[i])
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestAdd(t *testing.T) {
	a := Set[int32](10)
	b := Set[int32](5)
	result := Add(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 15 {
			t.Errorf("Add: lane %d: got %v, want 15", i, result.data[i])
		}
	}
}

func TestMul(t *testing.T) {
	a := Set[int32](4)
	b := Set[int32](5)
	result := Mul(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 20 {
			t.Errorf("Mul: lane %d: got %v, want 20", i, result.data[i])
		}
	}
}

func TestMulAdd(t *testing.T) {
	a := Set[int32](3)
	b := Set[int32](4)
	c := Set[int32](5)
	result := MulAdd(a, b, c)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 17 {
			t.Errorf("MulAdd: lane %d: got %v, want 17", i, result.data[i])
		}
	}
}

func TestMin(t *testing.T) {
	lanes := MaxLanes[int32]()
	a := make([]int32, lanes)
	b := make([]int32, lanes)
	for i := range lanes {
		a[i] = int32(i)
		b[i] = int32(lanes - i)
	}

	result := Min(Load(a), Load(b))
	for i := 0; i < result.NumLanes(); i++ {
		want := min(a[i], b[i])
		if result.data[i] != want {
			t.Errorf("Min: lane %d: got %v, want %v", i, result.data[i], want)
		}
	}
}

func TestGreaterEqual(t *testing.T) {
	lanes := MaxLanes[int32]()
	a := make([]int32, lanes)
	for i := range lanes {
		a[i] = int32(i)
	}

	mask := GreaterEqual(Load(a), Set[int32](2))
	for i := 0; i < mask.NumLanes(); i++ {
		want := a[i] >= 2
		if mask.bits[i] != want {
			t.Errorf("GreaterEqual: lane %d: got %v, want %v", i, mask.bits[i], want)
		}
	}
}

func TestMaskOr(t *testing.T) {
	a := GreaterEqual(Set[int32](5), Set[int32](3)) // all true
	b := GreaterEqual(Set[int32](1), Set[int32](3)) // all false

	or := MaskOr(a, b)
	if !or.AllTrue() {
		t.Error("MaskOr of all-true and all-false should be all true")
	}

	and := MaskAnd(a, b)
	if and.AnyTrue() {
		t.Error("MaskAnd of all-true and all-false should be all false")
	}
}

func TestIfThenElse(t *testing.T) {
	lanes := MaxLanes[int32]()
	a := make([]int32, lanes)
	for i := range lanes {
		a[i] = int32(i)
	}

	mask := GreaterEqual(Load(a), Set[int32](2))
	result := IfThenElse(mask, Set[int32](-1), Load(a))

	for i := 0; i < result.NumLanes(); i++ {
		want := a[i]
		if a[i] >= 2 {
			want = -1
		}
		if result.data[i] != want {
			t.Errorf("IfThenElse: lane %d: got %v, want %v", i, result.data[i], want)
		}
	}
}

func TestStore(t *testing.T) {
	v := Set[int32](9)
	dst := make([]int32, v.NumLanes())
	Store(v, dst)

	for i, got := range dst {
		if got != 9 {
			t.Errorf("Store: dst[%d] = %v, want 9", i, got)
		}
	}
}
