package parse

import "econgrads/internal/domain"

// One parser per tracked school. Adding a school here without adding
// it to domain.Schools (or vice versa) is caught by tests.
var registry = map[domain.School]Parser{
	domain.Berkeley:     berkeleyParser{},
	domain.Brown:        brownParser{},
	domain.CMU:          cmuParser{},
	domain.Columbia:     columbiaParser{},
	domain.Cornell:      cornellParser{},
	domain.Duke:         dukeParser{},
	domain.Harvard:      harvardParser{},
	domain.Illinois:     illinoisParser{},
	domain.Maryland:     marylandParser{},
	domain.Michigan:     michiganParser{},
	domain.Minnesota:    minnesotaParser{},
	domain.MIT:          mitParser{},
	domain.Northwestern: northwesternParser{},
	domain.NYU:          nyuParser{},
	domain.Penn:         pennParser{},
	domain.Princeton:    princetonParser{},
	domain.Stanford:     stanfordParser{},
	domain.UChicago:     uchicagoParser{},
	domain.UCLA:         uclaParser{},
	domain.UTAustin:     utAustinParser{},
	domain.Virginia:     virginiaParser{},
	domain.Washington:   washingtonParser{},
	domain.Wisconsin:    wisconsinParser{},
	domain.Yale:         yaleParser{},
}
