package domain

import "fmt"

// School identifies one of the tracked economics PhD programs.
type School string

const (
	Berkeley     School = "berkeley"
	Brown        School = "brown"
	CMU          School = "cmu"
	Columbia     School = "columbia"
	Cornell      School = "cornell"
	Duke         School = "duke"
	Harvard      School = "harvard"
	Illinois     School = "illinois"
	Maryland     School = "maryland"
	Michigan     School = "michigan"
	Minnesota    School = "minnesota"
	MIT          School = "mit"
	Northwestern School = "northwestern"
	NYU          School = "nyu"
	Penn         School = "penn"
	Princeton    School = "princeton"
	Stanford     School = "stanford"
	UChicago     School = "uchicago"
	UCLA         School = "ucla"
	UTAustin     School = "utaustin"
	Virginia     School = "virginia"
	Washington   School = "washington"
	Wisconsin    School = "wisconsin"
	Yale         School = "yale"
)

// Schools lists every tracked school in alphabetical order. The scrape
// pass iterates in exactly this order.
var Schools = []School{
	Berkeley, Brown, CMU, Columbia, Cornell, Duke, Harvard, Illinois,
	Maryland, Michigan, Minnesota, MIT, Northwestern, NYU, Penn,
	Princeton, Stanford, UChicago, UCLA, UTAustin, Virginia,
	Washington, Wisconsin, Yale,
}

var schoolNames = map[School]string{
	Berkeley:     "UC Berkeley",
	Brown:        "Brown",
	CMU:          "Carnegie Mellon",
	Columbia:     "Columbia",
	Cornell:      "Cornell",
	Duke:         "Duke",
	Harvard:      "Harvard",
	Illinois:     "University of Illinois",
	Maryland:     "University of Maryland",
	Michigan:     "University of Michigan",
	Minnesota:    "University of Minnesota",
	MIT:          "MIT",
	Northwestern: "Northwestern",
	NYU:          "NYU",
	Penn:         "University of Pennsylvania",
	Princeton:    "Princeton",
	Stanford:     "Stanford",
	UChicago:     "University of Chicago",
	UCLA:         "UCLA",
	UTAustin:     "UT Austin",
	Virginia:     "University of Virginia",
	Washington:   "University of Washington",
	Wisconsin:    "University of Wisconsin-Madison",
	Yale:         "Yale",
}

func (s School) Valid() bool {
	_, ok := schoolNames[s]
	return ok
}

// DisplayName returns the human-readable institution name.
func (s School) DisplayName() string {
	if n, ok := schoolNames[s]; ok {
		return n
	}
	return string(s)
}

func ParseSchool(slug string) (School, error) {
	s := School(slug)
	if !s.Valid() {
		return "", fmt.Errorf("unknown school %q", slug)
	}
	return s, nil
}
