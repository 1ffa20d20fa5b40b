package unwind

import (
	"fmt"

	"github.com/joshuapare/unwindkit/internal/debuglog"
)

// MismatchError reports a register whose recorded location differs
// between two independently computed maps.
type MismatchError struct {
	Reg  RegID
	Name string
	A    Address
	B    Address
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("unwind: register map mismatch: %s (reg %d): 0x%X != 0x%X",
		e.Name, e.Reg, e.A, e.B)
}

// Verify compares the raw location tables of two maps produced by
// independently walking the same stack from the same starting point. Any
// difference means one of the two unwind computations is wrong, so it is
// reported as an error rather than resolved silently.
func (m *Map) Verify(other *Map) error {
	if len(m.loc) != len(other.loc) {
		return fmt.Errorf("%w: %d vs %d registers", ErrSpaceMismatch, len(m.loc), len(other.loc))
	}
	for i := range m.loc {
		if m.loc[i] != other.loc[i] {
			err := &MismatchError{
				Reg:  RegID(i),
				Name: m.space.RegName(RegID(i)),
				A:    m.loc[i],
				B:    other.loc[i],
			}
			debuglog.Logger().Error("register map verification failed",
				"reg", err.Name, "a", fmt.Sprintf("0x%X", err.A), "b", fmt.Sprintf("0x%X", err.B))
			return err
		}
	}
	return nil
}
