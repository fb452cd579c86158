// Package fixture is an indirect call test program: two arithmetic
// targets reached through a single reference that is rebound between calls.
package fixture

// Transform is the signature shared by every eligible indirect call target.
type Transform func(int) int

// AddOne returns x incremented by one.
func AddOne(x int) int {
	return x + 1
}

// MultiplyTwo returns x multiplied by two.
func MultiplyTwo(x int) int {
	return x * 2
}

// CallIndirect invokes fn with x and returns its result unchanged.
func CallIndirect(fn Transform, x int) int {
	return fn(x)
}

// Result holds what a single driver run observed.
type Result struct {
	First  int
	Second int
	Total  int
}

// Passed reports whether the accumulated total is positive.
func (r Result) Passed() bool {
	return r.Total > 0
}

// ExitCode is the process status for r: 0 when passed, otherwise 1.
func (r Result) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}

// Drive binds one reference to first, calls through it with 5, then
// rebinds the same reference to second and calls through it with 3.
func Drive(first, second Transform) Result {
	fn := first
	r := Result{First: CallIndirect(fn, 5)}

	fn = second
	r.Second = CallIndirect(fn, 3)

	r.Total = r.First + r.Second
	return r
}

// Run drives the fixture with AddOne followed by MultiplyTwo.
func Run() Result {
	return Drive(AddOne, MultiplyTwo)
}
