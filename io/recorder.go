package io

// Recorder is a Sender that keeps every group it is sent.
type Recorder struct {
	N      int       // Group size; 1 if not positive.
	Groups [][]int64 // Received groups, oldest first.
}

var _ Sender = (*Recorder)(nil)

// Arity returns the group size.
func (rec *Recorder) Arity() int {
	return max(rec.N, 1)
}

// Send records a copy of the group.
func (rec *Recorder) Send(values []int64) (err error) {
	rec.Groups = append(rec.Groups, append([]int64(nil), values...))
	return
}

// Values returns all recorded values in order, ungrouped.
func (rec *Recorder) Values() (values []int64) {
	for _, group := range rec.Groups {
		values = append(values, group...)
	}
	return
}

// Reset discards all recorded groups.
func (rec *Recorder) Reset() {
	rec.Groups = nil
}
