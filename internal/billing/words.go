package billing

import "strings"

var frUnits = []string{
	"", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
	"dix-sept", "dix-huit", "dix-neuf",
}

var frTens = []string{
	"", "", "vingt", "trente", "quarante", "cinquante", "soixante",
	"soixante-dix", "quatre-vingt", "quatre-vingt-dix",
}

// AmountInWords spells out a non-negative amount in French, capitalized
// and suffixed with "euros". The suffix does not follow the configured
// currency; billing documents have always been worded in euros.
func AmountInWords(amount int64) string {
	w := []rune(frWords(amount))
	return strings.ToUpper(string(w[0])) + string(w[1:]) + " euros"
}

// frWords converts n to French words. 70-79 and 90-99 build on the
// vigesimal tens below them, and exact multiples of 80 take a plural "s".
func frWords(n int64) string {
	if n == 0 {
		return "zéro"
	}

	var b strings.Builder

	if n >= 1000 {
		thousands := n / 1000
		if thousands == 1 {
			b.WriteString("mille ")
		} else {
			b.WriteString(frWords(thousands) + " mille ")
		}
		n %= 1000
	}

	if n >= 100 {
		hundreds := n / 100
		if hundreds == 1 {
			b.WriteString("cent ")
		} else {
			b.WriteString(frWords(hundreds) + " cent ")
		}
		n %= 100
	}

	if n > 0 {
		if n < 20 {
			b.WriteString(frUnits[n])
		} else {
			ten := n / 10
			unit := n % 10

			if ten == 7 || ten == 9 {
				// soixante-dix / quatre-vingt-dix: tens digit borrows
				// from the one below, units 11-19.
				b.WriteString(frTens[ten-1])
				b.WriteString("-")
				if unit == 1 {
					b.WriteString("et-")
				}
				b.WriteString(frUnits[10+unit])
			} else {
				b.WriteString(frTens[ten])
				if unit > 0 {
					if unit == 1 && ten != 8 {
						b.WriteString("-et-")
					} else {
						b.WriteString("-")
					}
					b.WriteString(frUnits[unit])
				} else if ten == 8 {
					b.WriteString("s")
				}
			}
		}
	}

	return strings.TrimSpace(b.String())
}
