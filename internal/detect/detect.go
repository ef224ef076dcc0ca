package detect

import (
	"regexp"
	"strings"

	"sintese/internal/domain"
)

// System identifies which electronic-process platform produced the text,
// looking only at the first few thousand characters. The first marker found
// wins; anything unrecognized is treated as generic.
func System(text string) domain.SystemType {
	head := strings.ToLower(truncate(text, 5000))

	switch {
	case strings.Contains(head, "pje - processo judicial eletrônico") || strings.Contains(head, "pje.tjmg"):
		return domain.SystemPJe
	case strings.Contains(head, "página de separação") && strings.Contains(head, "evento"):
		return domain.SystemEProc
	case strings.Contains(head, "projudi"):
		return domain.SystemProjudi
	case strings.Contains(head, "saj") || strings.Contains(head, "esaj"):
		return domain.SystemSAJ
	default:
		return domain.SystemGeneric
	}
}

// Extract runs the system-specific regex pre-extraction over the raw text,
// before any model is involved. Fields the patterns cannot find stay empty;
// the model-side extraction fills the gaps.
func Extract(text string) domain.CaseData {
	system := System(text)

	var data domain.CaseData
	switch system {
	case domain.SystemPJe:
		data = extractPJe(text)
	case domain.SystemEProc:
		data = extractEProc(text)
	default:
		data = extractGeneric(text)
	}
	data.System = system
	data.DocketEvents = dedupeEvents(data.DocketEvents)
	return data
}

// dedupeEvents drops docket rows the patterns matched more than once, which
// happens when the same table appears on several cover pages.
func dedupeEvents(events []domain.Event) []domain.Event {
	seen := map[string]bool{}
	var out []domain.Event
	for _, e := range events {
		key := e.Date + "|" + e.Type + "|" + e.Description
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

var (
	pjeNumberRe   = regexp.MustCompile(`Número:\s*([\d.-]+)`)
	pjeClassRe    = regexp.MustCompile(`Classe:\s*\[?[\p{L}\d_]*\]?\s*([^\n]+)`)
	pjeCourtRe    = regexp.MustCompile(`Órgão julgador:\s*([^\n]+)`)
	districtRe    = regexp.MustCompile(`[Cc]omarca\s+de\s+([^\n]+)`)
	pjeAmountRe   = regexp.MustCompile(`Valor da causa:\s*R?\$?\s*([\d.,]+)`)
	pjeFiledRe    = regexp.MustCompile(`(?:Última )?[Dd]istribuição\s*:?\s*(\d{2}/\d{2}/\d{4})`)
	pjeSubjectRe  = regexp.MustCompile(`Assuntos?:\s*([^\n]+)`)
	pjePartiesRe  = regexp.MustCompile(`([A-ZÁÉÍÓÚÇÃÕ][A-ZÁÉÍÓÚÇÃÕ\s]+)\s*\((AUTOR|RÉU|RÉ|REQUERENTE|REQUERIDO|APELANTE|APELADO)[^)]*\)`)
	pjeDocketRe   = regexp.MustCompile(`(?i)(\d{2}/\d{2}/\d{4}\s+\d{2}:\d{2})\s+([^\n]+?)\s+(Petição|Contestação|Sentença|Despacho|Decisão|Certidão|Intimação|Citação|Manifestação|Acórdão|Recurso|Laudo|Impugnação|Réplica)[^\n]*`)
	eprocNumberRe = regexp.MustCompile(`Processo:\s*([\d.-]+)`)
	eprocDocketRe = regexp.MustCompile(`(?is)Evento\s+(\d+).*?Data:\s*(\d{2}/\d{2}/\d{4})[^\n]*.*?(?:Tipo|Documento):\s*([^\n]+)`)
	amountRe      = regexp.MustCompile(`[Vv]alor\s+(?:da\s+)?[Cc]ausa[:\s]*R?\$?\s*([\d.,]+)`)

	genericNumberRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d{7}-\d{2}\.\d{4}\.\d\.\d{2}\.\d{4})`),
		regexp.MustCompile(`Processo\s*(?:n[ºo.]?)?\s*([\d./-]+)`),
		regexp.MustCompile(`Autos\s*(?:n[ºo.]?)?\s*([\d./-]+)`),
	}

	plaintiffRoles = map[string]bool{"AUTOR": true, "REQUERENTE": true, "APELANTE": true}
)

func extractPJe(text string) domain.CaseData {
	data := domain.CaseData{System: domain.SystemPJe}

	data.Number = firstGroup(pjeNumberRe, text)
	data.Class = firstGroup(pjeClassRe, text)
	data.Court = firstGroup(pjeCourtRe, text)
	data.District = firstGroup(districtRe, text)
	if amount := firstGroup(pjeAmountRe, text); amount != "" {
		data.AmountInDispute = "R$ " + amount
	}
	data.FiledDate = firstGroup(pjeFiledRe, text)
	data.Subject = firstGroup(pjeSubjectRe, text)

	// Parties sit in the header table of the cover pages.
	for _, m := range pjePartiesRe.FindAllStringSubmatch(truncate(text, 3000), -1) {
		name := strings.TrimSpace(m[1])
		if len(name) <= 3 {
			continue
		}
		role := string(domain.RoleDefendant)
		if plaintiffRoles[m[2]] {
			role = string(domain.RolePlaintiff)
		}
		data.Parties = append(data.Parties, domain.Party{Name: name, Role: role})
	}

	// Docket rows: timestamp, description, piece type.
	for _, m := range pjeDocketRe.FindAllStringSubmatch(text, -1) {
		date := strings.Fields(m[1])[0]
		data.DocketEvents = append(data.DocketEvents, domain.Event{
			Date:        date,
			Type:        strings.TrimSpace(m[3]),
			Description: truncate(strings.TrimSpace(m[2]), 100),
		})
	}
	return data
}

func extractEProc(text string) domain.CaseData {
	data := domain.CaseData{System: domain.SystemEProc}
	data.Number = firstGroup(eprocNumberRe, text)

	for _, m := range eprocDocketRe.FindAllStringSubmatch(text, -1) {
		data.DocketEvents = append(data.DocketEvents, domain.Event{
			Date:        m[2],
			Type:        strings.TrimSpace(m[3]),
			Description: "Evento " + m[1],
		})
	}
	return data
}

func extractGeneric(text string) domain.CaseData {
	data := domain.CaseData{System: domain.SystemGeneric}

	head := truncate(text, 2000)
	for _, re := range genericNumberRes {
		if num := firstGroup(re, head); num != "" {
			data.Number = num
			break
		}
	}
	if amount := firstGroup(amountRe, text); amount != "" {
		data.AmountInDispute = "R$ " + amount
	}
	return data
}

func firstGroup(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
