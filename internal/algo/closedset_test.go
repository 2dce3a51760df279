package algo

import "testing"

func TestClosedSetRejectsDuplicateState(t *testing.T) {
	p := newTwoWaypointProblem()
	c := NewClosedSet(false)

	if !c.CheckAndAdd(p, p.Initial) {
		t.Fatal("expected the first sighting of a state to be reported as new")
	}
	if c.CheckAndAdd(p, p.Initial) {
		t.Fatal("expected a repeated state to be rejected as already seen")
	}
}

func TestClosedSetDistinguishesDifferingStates(t *testing.T) {
	p := newTwoWaypointProblem()
	c := NewClosedSet(false)

	c.CheckAndAdd(p, p.Initial)

	moved := p.Initial.Clone()
	moved.Rovers[0].Position = 1
	if !c.CheckAndAdd(p, moved) {
		t.Fatal("expected a state with a different rover position to be treated as new")
	}
}

func TestClosedSetLossyCollapsesAnalysisBitmaps(t *testing.T) {
	p := newTwoWaypointProblem()
	c := NewClosedSet(true)

	a := p.Initial.Clone()
	a.Rovers[0].HasSoilAnalysis = a.Rovers[0].HasSoilAnalysis.Set(0)

	b := p.Initial.Clone()
	b.Rovers[0].HasSoilAnalysis = b.Rovers[0].HasSoilAnalysis.Set(1)

	if !c.CheckAndAdd(p, a) {
		t.Fatal("expected the first state to be new")
	}
	if c.CheckAndAdd(p, b) {
		t.Fatal("expected the lossy key to collapse distinct analysis bitmaps with the same has-any bit into one entry")
	}
}

func TestClosedSetNonLossyDistinguishesAnalysisBitmaps(t *testing.T) {
	p := newTwoWaypointProblem()
	c := NewClosedSet(false)

	a := p.Initial.Clone()
	a.Rovers[0].HasSoilAnalysis = a.Rovers[0].HasSoilAnalysis.Set(0)

	b := p.Initial.Clone()
	b.Rovers[0].HasSoilAnalysis = b.Rovers[0].HasSoilAnalysis.Set(1)

	if !c.CheckAndAdd(p, a) {
		t.Fatal("expected the first state to be new")
	}
	if !c.CheckAndAdd(p, b) {
		t.Fatal("expected the non-lossy key to distinguish differing analysis bitmaps")
	}
}
