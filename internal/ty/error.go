package ty

import "fmt"

// ParamOutOfRangeError indicates a parameter slot missing from a Substs.
type ParamOutOfRangeError struct {
	Name  string
	Space ParamSpace
	Index uint32
	Len   int
}

func (e *ParamOutOfRangeError) Error() string {
	return fmt.Sprintf("parameter %s (%s.%d) out of range: record has %d entries", e.Name, e.Space, e.Index, e.Len)
}
