package wrap

import "testing"

func TestSeqWraparound(t *testing.T) {
	s := Seq(0xFFFF)

	next := s.Next()
	if next != 0 {
		t.Fatalf("0xFFFF.Next() = %#04x; want 0", uint16(next))
	}
	if !next.After(s) {
		t.Error("successor of 0xFFFF must compare After it")
	}
	if !s.Before(next) {
		t.Error("0xFFFF must compare Before its successor")
	}
}

func TestSeqAddSub(t *testing.T) {
	s := Seq(0xFFF0)
	if got := s.Add(0x20); got != 0x0010 {
		t.Errorf("0xFFF0+0x20 = %#04x; want 0x0010", uint16(got))
	}
	if got := Seq(0x0010).Sub(0x20); got != 0xFFF0 {
		t.Errorf("0x0010-0x20 = %#04x; want 0xfff0", uint16(got))
	}
}

func TestSeqOrderingNearWrap(t *testing.T) {
	// A small forward jump across the wrap point still counts as "after".
	a := Seq(0xFFFE)
	b := Seq(0x0003)
	if !b.After(a) || !a.Before(b) {
		t.Error("0x0003 should be after 0xFFFE across the wrap")
	}

	// Equal values are neither before nor after.
	if a.After(a) || a.Before(a) {
		t.Error("a value must not order against itself")
	}
}

func TestTimestampWraparound(t *testing.T) {
	ts := Timestamp(0xFFFFFFFF)

	next := ts.Next()
	if next != 0 {
		t.Fatalf("max.Next() = %#08x; want 0", uint32(next))
	}
	if !next.After(ts) {
		t.Error("successor of max timestamp must compare After it")
	}

	if got := Timestamp(0x10).Sub(0x20); got != 0xFFFFFFF0 {
		t.Errorf("0x10-0x20 = %#08x; want 0xfffffff0", uint32(got))
	}
	if got := ts.Add(0x11); got != 0x10 {
		t.Errorf("max+0x11 = %#08x; want 0x10", uint32(got))
	}
}
