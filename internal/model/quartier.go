package model

// Quartier is one of the small closed set of neighborhood groupings used
// to filter theaters geographically: rive gauche, rive droite and
// extramuros (everything outside the Paris arrondissements).
type Quartier string

const (
	QuartierRiveGauche Quartier = "rg"
	QuartierRiveDroite Quartier = "rd"
	QuartierExtramuros Quartier = "em"
)

// AllQuartiers lists every quartier in display order.  The calendar view
// starts with all of them selected.
var AllQuartiers = []Quartier{QuartierRiveGauche, QuartierRiveDroite, QuartierExtramuros}

// riveGauche holds the left-bank arrondissement suffixes of a 750xx
// zipcode.  Every other arrondissement is rive droite.
var riveGauche = map[string]bool{
	"05": true, "06": true, "07": true,
	"13": true, "14": true, "15": true,
}

// QuartierFromZipcode resolves a theater's zipcode to its quartier.
// Zipcodes outside the 75 department, and malformed ones, are extramuros.
func QuartierFromZipcode(zipcode string) Quartier {
	if len(zipcode) != 5 || zipcode[:2] != "75" {
		return QuartierExtramuros
	}
	if riveGauche[zipcode[3:]] {
		return QuartierRiveGauche
	}
	return QuartierRiveDroite
}

// ParseQuartier maps the wire value of a quartier back to its constant.
// Unknown values return false.
func ParseQuartier(s string) (Quartier, bool) {
	switch Quartier(s) {
	case QuartierRiveGauche, QuartierRiveDroite, QuartierExtramuros:
		return Quartier(s), true
	}
	return "", false
}
