package floatutils

import "testing"

func TestClip(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{5, 0, 1, 1},
		{-5, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{1, 0, 1, 1},
	}

	for _, test := range tests {
		if got := Clip(test.value, test.min, test.max); got != test.want {
			t.Errorf("clip(%v, %v, %v) = %v, want %v", test.value,
				test.min, test.max, got, test.want)
		}
	}
}

func TestMaxSliceSingleMax(t *testing.T) {
	max, indices := MaxSlice([]float64{-1, 3, 2, -7})
	if max != 3 {
		t.Errorf("max = %v, want 3", max)
	}
	if len(indices) != 1 || indices[0] != 1 {
		t.Errorf("indices = %v, want [1]", indices)
	}
}

func TestMaxSliceTies(t *testing.T) {
	max, indices := MaxSlice([]float64{0, 0, -1, 0})
	if max != 0 {
		t.Errorf("max = %v, want 0", max)
	}
	want := []int{0, 1, 3}
	if len(indices) != len(want) {
		t.Fatalf("indices = %v, want %v", indices, want)
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("indices = %v, want %v", indices, want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(3, -1, 2); got != -1 {
		t.Errorf("min = %v, want -1", got)
	}
	if got := Max(3, -1, 2); got != 3 {
		t.Errorf("max = %v, want 3", got)
	}
}
