// Package detail models the product detail screen.
package detail

// Quantity is the detail screen's counter. It never drops below 1 and has
// no upper bound.
type Quantity struct {
	n int
}

// NewQuantity returns a counter at 1.
func NewQuantity() *Quantity {
	return &Quantity{n: 1}
}

func (q *Quantity) Value() int {
	return q.n
}

func (q *Quantity) Increment() {
	q.n++
}

// Decrement lowers the counter unless it is already at 1.
func (q *Quantity) Decrement() {
	if q.n > 1 {
		q.n--
	}
}
