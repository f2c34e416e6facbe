package analytics

import "strings"

// StateClassifier extracts a state code from a customer name. The
// default implementation is a best-effort keyword heuristic, not a
// reliable join: account names in the historical exports embed the
// state as a " - AL" suffix or a bare " AL" token, and names that match
// neither pattern simply land in no state bucket. Callers with a real
// geographic source of truth can swap in their own classifier.
type StateClassifier func(customerName string) (string, bool)

// MetroClassifier maps a city (or a customer name containing one) onto
// a named metro grouping.
type MetroClassifier func(city string) (string, bool)

// NewStateClassifier builds the suffix/token heuristic over the given
// state codes. The " - XX" form is checked for every state before the
// looser " XX" form so that "Smoke Ring - GA Buford" resolves to GA
// even though " MS" happens to occur inside another word boundary.
func NewStateClassifier(states []string) StateClassifier {
	return func(customerName string) (string, bool) {
		for _, st := range states {
			if strings.Contains(customerName, " - "+st) {
				return st, true
			}
		}
		for _, st := range states {
			if strings.Contains(customerName, " "+st) {
				return st, true
			}
		}
		return "", false
	}
}

// NewMetroClassifier builds a keyword classifier from a metro -> city
// keyword list. The keyword lists must be disjoint across metros so
// that a city resolves to at most one metro regardless of map
// iteration order.
func NewMetroClassifier(metros map[string][]string) MetroClassifier {
	return func(city string) (string, bool) {
		for metro, keywords := range metros {
			for _, kw := range keywords {
				if strings.Contains(city, kw) {
					return metro, true
				}
			}
		}
		return "", false
	}
}
