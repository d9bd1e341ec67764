package dsl

// Classics returns a builder preloaded with short textbook exercises. It
// backs the command line when no library directory is given.
func Classics() *Builder {
	b := New()

	b.Add("double-negation").
		Title("Double negation").
		Describe("Two nested cuts with nothing between them cancel out.").
		Premise(Sheet(Cut(Cut(Atom("A"))))).
		Goal("(A)").
		Step("double-cut", 0)

	b.Add("conjunction-elimination").
		Title("Conjunction elimination").
		Describe("Anything on the sheet may be erased.").
		Premise(Sheet(Atom("A"), Atom("B"))).
		Goal("(A)").
		Step("erasure", 1)

	b.Add("modus-ponens").
		Title("Modus ponens").
		Describe("From A and A implies B, conclude B.").
		Premise(Sheet(Atom("A"), Cut(Atom("A"), Cut(Atom("B"))))).
		Goal("(A, B)").
		Step("deiteration", 0, 1).
		Step("double-cut", 0)

	b.Add("disjunctive-syllogism").
		Title("Disjunctive syllogism").
		Describe("From A or B and not A, conclude B.").
		Premise(Sheet(Cut(Cut(Atom("A")), Cut(Atom("B"))), Cut(Atom("A")))).
		Goal("(B)").
		Step("deiteration", 1, 0).
		Step("erasure", 0).
		Step("double-cut", 0)

	return b
}
