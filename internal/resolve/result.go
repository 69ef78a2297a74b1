package resolve

// Result is the decision for one reference site.
type Result struct {
	// Specifier is the replacement; empty when Rewritten is false.
	Specifier string
	// Rewritten is false when the written specifier must be left as authored.
	Rewritten bool
}

// Unchanged returns the "leave it as written" result.
func Unchanged() Result {
	return Result{}
}

// Rewritten returns a result replacing the specifier with s.
func Rewritten(s string) Result {
	return Result{Specifier: s, Rewritten: true}
}

// String returns a human-readable form of the result.
func (r Result) String() string {
	if r.Rewritten {
		return "rewritten(" + r.Specifier + ")"
	}

	return "unchanged"
}
