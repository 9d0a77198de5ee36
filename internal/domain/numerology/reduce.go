package numerology

// masterNumbers are the totals that are never reduced further.
var masterNumbers = map[int]struct{}{
	11: {},
	22: {},
	33: {},
	44: {},
}

// Reduction is the trace of a digit-sum reduction.
type Reduction struct {
	// Steps starts with the input value and ends with Final.
	Steps []int `json:"steps"`
	Final int   `json:"final"`
}

// Binomial pairs a master number with its single-digit partner.
//
// MasterNumber is nil when the input was not a master number, in which case
// ReducedNumber is the input unchanged.
type Binomial struct {
	MasterNumber  *int `json:"master_number"`
	ReducedNumber int  `json:"reduced_number"`
}

// IsMaster reports whether n is one of the master numbers 11, 22, 33 or 44.
func IsMaster(n int) bool {
	_, ok := masterNumbers[n]
	return ok
}

// DigitSum returns the sum of the base-10 digits of n in a single pass.
// Negative values are summed on their absolute value.
func DigitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// Reduce repeatedly digit-sums n until it is a single digit or a master number.
//
// Algorithm behavior:
//   - The returned Steps always contain at least the starting value
//   - Values of 9 or less (including 0) are already reduced
//   - A master number reached at any point halts the reduction, so
//     38 reduces to 11 and stops there rather than continuing to 2
//
// Every digit-sum of a value above 9 is strictly smaller than the value, so the
// loop terminates after a handful of iterations for any int.
func Reduce(n int) Reduction {
	steps := []int{n}
	current := n

	for current > 9 && !IsMaster(current) {
		current = DigitSum(current)
		steps = append(steps, current)
	}

	return Reduction{Steps: steps, Final: current}
}

// BinomialOf derives the tarot binomial for n.
// Master numbers are paired with their digit-sum (22 becomes 22 + 4); every other
// value is passed through untouched, even if it happens to be above 9.
func BinomialOf(n int) Binomial {
	if IsMaster(n) {
		master := n
		return Binomial{MasterNumber: &master, ReducedNumber: DigitSum(n)}
	}
	return Binomial{ReducedNumber: n}
}
