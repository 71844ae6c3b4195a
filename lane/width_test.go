package lane

import "testing"

func TestWidthDetected(t *testing.T) {
	w := Width()
	if w < MinWidth || w > MaxWidth || w&(w-1) != 0 {
		t.Errorf("Width() = %d, want a power of two in [%d, %d]", w, MinWidth, MaxWidth)
	}
}

func TestSetWidth(t *testing.T) {
	saved := Width()
	defer func() {
		if err := SetWidth(saved); err != nil {
			t.Fatalf("restoring width: %v", err)
		}
	}()

	if err := SetWidth(32); err != nil {
		t.Fatalf("SetWidth(32): %v", err)
	}
	if got := MaxLanes[int32](); got != 8 {
		t.Errorf("MaxLanes[int32]() at 32 bytes = %d, want 8", got)
	}
	if got := MaxLanes[int64](); got != 4 {
		t.Errorf("MaxLanes[int64]() at 32 bytes = %d, want 4", got)
	}

	for _, bad := range []int{0, -16, 8, 20, 128} {
		if err := SetWidth(bad); err == nil {
			t.Errorf("SetWidth(%d) succeeded, want error", bad)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	saved := Width()
	defer SetWidth(saved)
	if err := SetWidth(32); err != nil {
		t.Fatal(err)
	}

	cases := []struct{ in, want int }{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{3000, 3000},
	}
	for _, c := range cases {
		if got := AlignedSize[int32](c.in); got != c.want {
			t.Errorf("AlignedSize[int32](%d) = %d, want %d", c.in, got, c.want)
		}
	}

	if !IsAligned[int32](16) {
		t.Error("IsAligned[int32](16) = false, want true")
	}
	if IsAligned[int32](17) {
		t.Error("IsAligned[int32](17) = true, want false")
	}
}
