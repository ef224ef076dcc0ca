package synthesis

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"sintese/internal/domain"
)

// corporateSuffixes are dropped from party names so "ACME LTDA" and
// "Acme Ltda." collapse into one litigant.
var corporateSuffixes = []string{
	" LTDA.", " LTDA", " S/A", " S.A.", " S.A", " EPP", " ME", " EIRELI", " SOCIEDADE SIMPLES",
}

// stripMarks decomposes accented characters and drops the combining marks.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeName folds a party name for dedupe purposes: accents removed,
// uppercased, corporate suffixes stripped, whitespace collapsed.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}

	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToUpper(strings.TrimSpace(folded))

	for _, suffix := range corporateSuffixes {
		folded = strings.ReplaceAll(folded, suffix, "")
	}

	return strings.Join(strings.Fields(folded), " ")
}

// DateKey converts a dd/mm/aaaa date into an orderable (year, month, day)
// triple. Unparseable dates yield (0, 0, 0), which sorts before everything,
// so undated entries surface at the top instead of being lost.
func DateKey(date string) (year, month, day int) {
	parts := strings.Split(strings.TrimSpace(date), "/")
	if len(parts) != 3 {
		return 0, 0, 0
	}
	d, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return y, m, d
}

// dateBefore reports whether date a sorts chronologically before date b.
func dateBefore(a, b string) bool {
	ay, am, ad := DateKey(a)
	by, bm, bd := DateKey(b)
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

// noiseTerms mark history entries that are pure docket bookkeeping, with no
// legal substance worth reporting.
var noiseTerms = []string{
	"assinado eletronicamente",
	"assinatura eletrônica",
	"documento assinado",
	"concluso para assinatura",
	"conclusos para",
	"remetido para",
	"juntada automática",
	"certidão de publicação",
	"vista ao",
	"autos recebidos",
	"aguardando",
	"expediente forense",
	"não houve expediente",
	"feriado",
	"recesso",
	"portaria conjunta",
}

// Relevant reports whether a history entry carries legal substance.
func Relevant(description string) bool {
	if description == "" {
		return false
	}
	lower := strings.ToLower(description)
	for _, term := range noiseTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return true
}

// factTerms flag events that happened in the world rather than in the docket
// (contracts, payments, negotiations).
var factTerms = []string{
	"contrato", "pagamento", "pago", "boleto", "parcela",
	"protesto", "negativação", "serasa", "spc", "cadastro",
	"whatsapp", "mensagem", "email", "notificação extrajudicial",
	"renegociação", "acordo", "tratamento", "serviço",
	"emissão", "vencimento", "prestação",
}

// Categorize classifies a history entry as a procedural act or an
// underlying fact. Unknown descriptions default to procedural.
func Categorize(description string) domain.EventCategory {
	lower := strings.ToLower(description)
	for _, term := range factTerms {
		if strings.Contains(lower, term) {
			return domain.CategoryFactual
		}
	}
	return domain.CategoryProcedural
}

var nonNumericRe = regexp.MustCompile(`[^\d,.]`)

// amountNumeric parses a Brazilian-formatted monetary string ("R$ 1.234,56")
// into a float for comparison. Garbage parses as 0.
func amountNumeric(value string) float64 {
	cleaned := nonNumericRe.ReplaceAllString(value, "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

// DedupeAmounts keeps one entry per numeric value rounded to the centavo,
// so the same amount quoted under different labels does not repeat in the
// report. The first occurrence's label wins. Entries whose value does not
// parse are kept apart by label instead of collapsing into one bucket.
func DedupeAmounts(amounts []domain.MonetaryValue) []domain.MonetaryValue {
	seen := map[string]bool{}
	var out []domain.MonetaryValue
	for _, a := range amounts {
		desc := strings.TrimSpace(a.Description)
		value := strings.TrimSpace(a.Value)
		if desc == "" || value == "" {
			continue
		}

		key := strconv.FormatFloat(amountNumeric(value), 'f', 2, 64)
		if key == "0.00" {
			key += "|" + strings.ToLower(desc)
		}

		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}
