package entity

// DispatchResult records the outcome of one notification sink.
type DispatchResult struct {
	Sink string `json:"sink"`
	Err  error  `json:"-"`
}

// OK reports whether the sink accepted the message.
func (r DispatchResult) OK() bool {
	return r.Err == nil
}
