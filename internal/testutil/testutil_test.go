package testutil

import (
	"errors"
	"os"
	"testing"
)

func TestAssertNoError(t *testing.T) {
	t.Parallel()

	fakeT := &testing.T{}
	AssertNoError(fakeT, nil)
	if fakeT.Failed() {
		t.Error("expected no failure for nil error")
	}
}

func TestAssertError(t *testing.T) {
	t.Parallel()

	fakeT := &testing.T{}
	AssertError(fakeT, errors.New("test error"))
	if fakeT.Failed() {
		t.Error("expected no failure when error is present")
	}
}

func TestSquare2x2(t *testing.T) {
	t.Parallel()

	fx := Square2x2("h")
	want := map[[2]int]float64{
		{1, 1}: 10,
		{2, 1}: 20,
		{1, 2}: 30,
		{2, 2}: 40,
	}
	for bin, v := range want {
		if got := fx.Content(bin[0], bin[1]); got != v {
			t.Errorf("Content(%d,%d) = %v, want %v", bin[0], bin[1], got, v)
		}
	}
}

func TestNewH2D_Fills(t *testing.T) {
	t.Parallel()

	h := NewH2D(Square2x2("h"))
	if got := h.SumW(); got != 100 {
		t.Errorf("SumW() = %v, want 100", got)
	}
	if got := h.Entries(); got != 4 {
		t.Errorf("Entries() = %v, want 4", got)
	}
}

func TestWriteTH2D(t *testing.T) {
	t.Parallel()

	path := WriteTH2D(t, Square2x2("h"))
	info, err := os.Stat(path)
	AssertNoError(t, err)
	if info.Size() == 0 {
		t.Error("expected non-empty ROOT file")
	}
}
