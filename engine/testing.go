package engine

// ScriptedRand replays fixed draws, repeating the last value once a script is exhausted
// Used by tests in this and dependent packages to force spawn decisions
type ScriptedRand struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// Float64 returns the next scripted float, 0 when none were scripted
func (r *ScriptedRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0
	}
	v := r.Floats[min(r.fi, len(r.Floats)-1)]
	r.fi++
	return v
}

// Intn returns the next scripted int reduced into [0, n)
func (r *ScriptedRand) Intn(n int) int {
	if len(r.Ints) == 0 || n <= 0 {
		return 0
	}
	v := r.Ints[min(r.ii, len(r.Ints)-1)]
	r.ii++
	return v % n
}
