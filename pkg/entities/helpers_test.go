package entities

// sequenceRand 依次返回预设的随机数，用完后从头循环
type sequenceRand struct {
	values []float64
	next   int
}

func newSequenceRand(values ...float64) *sequenceRand {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	return &sequenceRand{values: values}
}

func (r *sequenceRand) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}
