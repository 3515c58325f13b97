package mock

import "github.com/stockwire/stockwire"

var _ stockwire.Validator = (*Validator)(nil)

// Validator is a mock implementation of stockwire.Validator.
type Validator struct {
	ValidFn         func(title, content string) bool
	MinContentLenFn func() int
}

func (v *Validator) Valid(title, content string) bool {
	return v.ValidFn(title, content)
}

func (v *Validator) MinContentLen() int {
	if v.MinContentLenFn == nil {
		return 0
	}
	return v.MinContentLenFn()
}
