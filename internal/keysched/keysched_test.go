package keysched

import "testing"

// First eight words of the FIPS-197 appendix A.3 AES-256 key.
var window = [8]uint32{
	0x603deb10, 0x15ca71be, 0x2b73aef0, 0x857d7781,
	0x1f352c07, 0x3b6108d7, 0x2d9810a3, 0x0914dff4,
}

func run(t *testing.T, e *Expander) int {
	t.Helper()
	for steps := 1; ; steps++ {
		if steps > 8 {
			t.Fatal("expansion still running after 8 steps")
		}
		if e.Step() {
			return steps
		}
	}
}

func TestExpandFullStep(t *testing.T) {
	// Words 8..11 of the FIPS-197 A.3 expansion: RotWord, SubWord, Rcon[0].
	var e Expander
	e.Start(window, 0, true)

	if got, want := run(t, &e), 8; got != want {
		t.Errorf("steps = %d, want = %d", got, want)
	}
	if got, want := e.Words(), ([4]uint32{0x9ba35411, 0x8e6925af, 0xa51a8b5f, 0x2067fcde}); got != want {
		t.Errorf("words = %08x, want = %08x", got, want)
	}
	if got, want := e.NextRconIndex(), 1; got != want {
		t.Errorf("next rcon index = %d, want = %d", got, want)
	}
	if e.NextUseRcon() {
		t.Error("next expansion should be the SubWord-only step")
	}
}

func TestExpandSubWordOnlyStep(t *testing.T) {
	// Words 12..15 of the FIPS-197 A.3 expansion: SubWord without RotWord
	// and without a round constant.
	slid := [8]uint32{
		window[4], window[5], window[6], window[7],
		0x9ba35411, 0x8e6925af, 0xa51a8b5f, 0x2067fcde,
	}

	var e Expander
	e.Start(slid, 1, false)
	run(t, &e)

	if got, want := e.Words(), ([4]uint32{0xa8b09c1a, 0x93d194cd, 0xbe49846e, 0xb75d5b9a}); got != want {
		t.Errorf("words = %08x, want = %08x", got, want)
	}
	if got, want := e.NextRconIndex(), 1; got != want {
		t.Errorf("next rcon index = %d, want = %d", got, want)
	}
	if !e.NextUseRcon() {
		t.Error("next expansion should be the full step")
	}
}

func TestExpandDonePulse(t *testing.T) {
	var e Expander
	e.Start(window, 0, true)
	run(t, &e)

	if e.Running() {
		t.Error("expander still running after done")
	}
	if e.Step() {
		t.Error("idle expander signalled done")
	}
}

func TestRestartPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Start to panic while running")
		}
	}()

	var e Expander
	e.Start(window, 0, true)
	e.Step()
	e.Start(window, 0, true)
}
