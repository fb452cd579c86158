package fixture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAddOne(t *testing.T) {
	for _, x := range []int{-10, -1, 0, 1, 5, 41, 1 << 20} {
		assert.Equal(t, x+1, AddOne(x), "x=%d", x)
	}
}

func TestMultiplyTwo(t *testing.T) {
	for _, x := range []int{-10, -1, 0, 1, 3, 21, 1 << 20} {
		assert.Equal(t, 2*x, MultiplyTwo(x), "x=%d", x)
	}
}

func TestCallIndirect(t *testing.T) {
	assert.Equal(t, 6, CallIndirect(AddOne, 5))
	assert.Equal(t, 6, CallIndirect(MultiplyTwo, 3))

	// Closures satisfy Transform too
	offset := 100
	assert.Equal(t, 103, CallIndirect(func(x int) int { return x + offset }, 3))
}

func TestRun(t *testing.T) {
	r := Run()

	assert.Equal(t, Result{First: 6, Second: 6, Total: 12}, r)
	assert.True(t, r.Passed())
	assert.Equal(t, 0, r.ExitCode())
}

func TestDriveFollowsLatestBinding(t *testing.T) {
	type call struct {
		Target string
		Arg    int
	}
	var calls []call

	record := func(name string, fn Transform) Transform {
		return func(x int) int {
			calls = append(calls, call{Target: name, Arg: x})
			return fn(x)
		}
	}

	r := Drive(record("add_one", AddOne), record("multiply_two", MultiplyTwo))

	expected := []call{
		{Target: "add_one", Arg: 5},
		{Target: "multiply_two", Arg: 3},
	}
	if diff := cmp.Diff(expected, calls); diff != "" {
		t.Errorf("unexpected call sequence (-want +got):\n%s", diff)
	}
	assert.Equal(t, 12, r.Total)
}

func TestDriveSwappedTargets(t *testing.T) {
	r := Drive(MultiplyTwo, AddOne)

	assert.Equal(t, Result{First: 10, Second: 4, Total: 14}, r)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name  string
		total int
		code  int
	}{
		{"positive", 12, 0},
		{"one", 1, 0},
		{"zero", 0, 1},
		{"negative", -3, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Result{Total: tc.total}
			assert.Equal(t, tc.code, r.ExitCode())
			assert.Equal(t, tc.code == 0, r.Passed())
		})
	}
}

func TestDriveNonPositive(t *testing.T) {
	negate := func(x int) int { return -x }

	r := Drive(negate, negate)

	assert.Equal(t, -8, r.Total)
	assert.Equal(t, 1, r.ExitCode())
}
