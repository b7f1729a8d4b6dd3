package mediator

import (
	"context"
	"io"
)

// Demo builds a small node network with one master and two local groups,
// then shows how toggles from different node roles ripple out.
func Demo(ctx context.Context, w io.Writer) error {
	m := New()
	master := m.Register("root", TypeMaster, "global")
	// Local group 1 (G1)
	g1Master := m.Register("g1_root", TypeLocalMaster, "G1")
	m.Register("g1_a", TypeGeneral, "G1")
	g1B := m.Register("g1_b", TypeGeneral, "G1")
	// Local group 2 (G2)
	m.Register("g2_root", TypeLocalMaster, "G2")
	m.Register("g2_a", TypeGeneral, "G2")
	m.Register("g2_b", TypeGeneral, "G2")

	master.Activate(w)
	g1Master.Deactivate(w)
	g1B.Activate(w)

	m.NetworkStatus(w)
	return nil
}
