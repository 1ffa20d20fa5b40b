package unwind

import (
	"fmt"
	"io"
	"strings"
)

// DumpTo writes a human-readable snapshot of the map: configuration
// flags, chunk linkage, and every register with a recorded location.
//
// Example output:
//
//	register map: update=true process=true walkcont=false cont=false
//	  rbp (reg 5) = 0x7FFD4B2A10
func (m *Map) DumpTo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "register map: update=%t process=%t walkcont=%t cont=%t\n",
		m.updateMap, m.processFrames, m.walkCont, m.InCont())
	if err != nil {
		return err
	}
	if m.InCont() {
		if _, err := fmt.Fprintf(w, "  chunk: handle=%d index=%d gen=%d\n",
			m.chunk.ID(), m.chunkIndex, m.chunk.Generation()); err != nil {
			return err
		}
	}
	for i := range m.loc {
		if !m.valid.IsSet(i) {
			continue
		}
		_, err := fmt.Fprintf(w, "  %s (reg %d) = 0x%X\n", m.space.RegName(RegID(i)), i, m.loc[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// String returns the DumpTo output.
func (m *Map) String() string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = m.DumpTo(&sb)
	return sb.String()
}
