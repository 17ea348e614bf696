package searcher

// Score is a ready-made float64 Value for domains that score states on a
// single axis.
type Score float64

func (s Score) Add(other Score) Score { return s + other }

func (s Score) Mul(weight float64) Score { return Score(float64(s) * weight) }

func (s Score) Div(weight float64) Score { return Score(float64(s) / weight) }

func (s Score) Cmp(other Score) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}
