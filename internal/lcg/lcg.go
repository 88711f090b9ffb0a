package lcg

// Params defines one generator instance. Modulus must be positive;
// multiplier, increment and seed may be any int64.
type Params struct {
	Modulus    int64
	Multiplier int64
	Increment  int64
	Seed       int64
}

// Step is one trajectory entry: the residue visited at a 0-based step index.
// Generate emits exactly one Step per distinct residue, in generation order.
type Step struct {
	Index int
	Value int64
}

// Cycle describes the orbit structure found by Generate. TailLength is the
// number of steps before the trajectory enters the cycle, Start the residue
// at which the repeat occurred, Length the number of distinct values in the
// repeating portion.
type Cycle struct {
	TailLength int
	Start      int64
	Length     int
}

// Trajectory is the full result of one generation run.
type Trajectory struct {
	Params Params
	Steps  []Step
	Cycle  Cycle
}

// Values returns the visited residues in generation order.
func (t *Trajectory) Values() []int64 {
	vals := make([]int64, len(t.Steps))
	for i, s := range t.Steps {
		vals[i] = s.Value
	}
	return vals
}

// NormalizeSeed folds the seed into [0, Modulus). The double modulo keeps
// the result non-negative for negative seeds.
func (p Params) NormalizeSeed() int64 {
	return ((p.Seed % p.Modulus) + p.Modulus) % p.Modulus
}

// Next applies the recurrence once. The double modulo keeps the result in
// [0, Modulus) even when multiplier or increment is negative.
func (p Params) Next(x int64) int64 {
	return ((p.Multiplier*x+p.Increment)%p.Modulus + p.Modulus) % p.Modulus
}

// Generate walks the trajectory from the normalized seed until a residue
// repeats, then reports the tail and cycle split. It returns
// ErrInvalidModulus for a non-positive modulus and ErrCycleNotFound if no
// repeat shows up within 2*Modulus steps. On error the trajectory is nil,
// never truncated.
func Generate(p Params) (*Trajectory, error) {
	if p.Modulus <= 0 {
		return nil, ErrInvalidModulus
	}

	// Cap the allocation hint for large moduli; the structures grow on
	// demand and short cycles never need m entries.
	hint := p.Modulus
	if hint > 1<<16 {
		hint = 1 << 16
	}
	seen := make(map[int64]int, hint)
	steps := make([]Step, 0, hint)

	x := p.NormalizeSeed()
	bound := 2 * p.Modulus

	for step := 0; ; step++ {
		if first, ok := seen[x]; ok {
			return &Trajectory{
				Params: p,
				Steps:  steps,
				Cycle: Cycle{
					TailLength: first,
					Start:      x,
					Length:     step - first,
				},
			}, nil
		}
		if int64(step) > bound {
			return nil, ErrCycleNotFound
		}
		seen[x] = step
		steps = append(steps, Step{Index: step, Value: x})
		x = p.Next(x)
	}
}

// DetectCycle finds the orbit structure in constant memory using Brent's
// algorithm. Unlike Generate it records nothing, so moduli whose
// trajectories do not fit in memory still get an exact tail/cycle report.
func DetectCycle(p Params) (Cycle, error) {
	if p.Modulus <= 0 {
		return Cycle{}, ErrInvalidModulus
	}
	x0 := p.NormalizeSeed()

	// Search for the cycle length in successive powers of two.
	power, length := int64(1), int64(1)
	tortoise, hare := x0, p.Next(x0)
	for tortoise != hare {
		if power == length {
			tortoise = hare
			power *= 2
			length = 0
		}
		hare = p.Next(hare)
		length++
	}

	// Walk two pointers a cycle length apart until they meet at the
	// cycle entry.
	tortoise, hare = x0, x0
	for i := int64(0); i < length; i++ {
		hare = p.Next(hare)
	}
	var tail int64
	for tortoise != hare {
		tortoise = p.Next(tortoise)
		hare = p.Next(hare)
		tail++
	}

	return Cycle{TailLength: int(tail), Start: tortoise, Length: int(length)}, nil
}

// FullPeriod reports whether the parameters satisfy the Hull-Dobell
// criteria, i.e. the generator visits every residue before repeating:
// gcd(c, m) = 1, a-1 divisible by every prime factor of m, and a-1
// divisible by 4 if m is.
func FullPeriod(p Params) bool {
	if p.Modulus <= 0 {
		return false
	}
	m := p.Modulus
	a := ((p.Multiplier % m) + m) % m
	c := ((p.Increment % m) + m) % m

	if gcd(c, m) != 1 {
		return false
	}

	b := a - 1
	rest := m
	for f := int64(2); f*f <= rest; f++ {
		if rest%f != 0 {
			continue
		}
		if b%f != 0 {
			return false
		}
		for rest%f == 0 {
			rest /= f
		}
	}
	if rest > 1 && b%rest != 0 {
		return false
	}
	if m%4 == 0 && b%4 != 0 {
		return false
	}
	return true
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
