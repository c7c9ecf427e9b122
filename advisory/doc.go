// Package advisory defines the optional external strategy hint consulted
// during a search. Advice only re-ranks results; the matchers never depend
// on it, and every failure mode degrades to the standard strategy.
package advisory
