package dlcost

import "strconv"

// DlCost is a non-negative (duplication, loss) event count pair.
//
// Zero value is the identity for Add: DlCost{} + x == x.
type DlCost struct {
	Dup  int64
	Loss int64
}

// Weights scales Dup and Loss counts into a single comparable scalar.
// Zero-value Weights is meaningless for comparison purposes; use
// DefaultWeights for the spec's default of 1.0/1.0.
type Weights struct {
	Dup  float64
	Loss float64
}

// DefaultWeights returns the spec default: dup and loss both weighted 1.0.
func DefaultWeights() Weights {
	return Weights{Dup: 1.0, Loss: 1.0}
}

// Add returns the componentwise sum of c and other.
func (c DlCost) Add(other DlCost) DlCost {
	return DlCost{Dup: c.Dup + other.Dup, Loss: c.Loss + other.Loss}
}

// Mut reduces c to a scalar mutation cost under w: w.Dup*c.Dup + w.Loss*c.Loss.
func (c DlCost) Mut(w Weights) float64 {
	return w.Dup*float64(c.Dup) + w.Loss*float64(c.Loss)
}

// String renders c the way the original tool's ostream overload did: "(dup,loss)".
func (c DlCost) String() string {
	return "(" + strconv.FormatInt(c.Dup, 10) + "," + strconv.FormatInt(c.Loss, 10) + ")"
}
