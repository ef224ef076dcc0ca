package synthesis

import (
	"sort"
	"strings"

	"sintese/internal/domain"
)

// Merged is the consolidation of every per-chunk extraction into one view,
// with history split into procedural acts and underlying facts.
type Merged struct {
	Parties         []domain.Party
	Subject         string
	FactsSummary    string
	Amounts         []domain.MonetaryValue
	Claims          []string
	Decisions       []domain.Decision
	PlaintiffTheses []string
	DefendantTheses []string
	KeyDocuments    []domain.KeyDocument
	Procedural      []domain.Event
	Factual         []domain.Event
	CurrentStatus   string
}

// Timeline returns the full history, procedural and factual interleaved in
// chronological order.
func (m *Merged) Timeline() []domain.Event {
	all := make([]domain.Event, 0, len(m.Procedural)+len(m.Factual))
	all = append(all, m.Procedural...)
	all = append(all, m.Factual...)
	sortByDate(all)
	return all
}

// Merge consolidates chunk extractions deterministically, without another
// model round trip. Dedupe rules:
//   - parties by accent-folded name, keeping the longest spelling
//   - claims and theses by their first 50 lowercased characters
//   - key documents by lowercased type
//   - history by date plus the first 30 characters of the description
//
// The subject keeps the first non-empty value, the status the last, and
// fact summaries concatenate when one is not already contained in another.
func Merge(extractions []domain.Extraction) Merged {
	var m Merged

	partyIdx := map[string]int{}
	seenClaims := map[string]bool{}
	seenPlaintiffTheses := map[string]bool{}
	seenDefendantTheses := map[string]bool{}
	seenDocs := map[string]bool{}
	seenHistory := map[string]bool{}
	var allAmounts []domain.MonetaryValue

	for _, ext := range extractions {
		if m.Subject == "" && ext.Subject != "" {
			m.Subject = ext.Subject
		}

		if summary := strings.TrimSpace(ext.FactsSummary); summary != "" && !strings.Contains(m.FactsSummary, summary) {
			if m.FactsSummary != "" {
				m.FactsSummary += "\n\n" + summary
			} else {
				m.FactsSummary = summary
			}
		}

		for _, p := range ext.Parties {
			name := strings.TrimSpace(p.Name)
			if name == "" || strings.EqualFold(name, "none") {
				continue
			}
			key := NormalizeName(name)
			if key == "" {
				continue
			}
			if idx, seen := partyIdx[key]; seen {
				kept := &m.Parties[idx]
				if len(name) > len(kept.Name) {
					kept.Name = name
				}
				if kept.Role == "" {
					kept.Role = p.Role
				}
				if kept.Attorney == "" {
					kept.Attorney = p.Attorney
				}
				continue
			}
			partyIdx[key] = len(m.Parties)
			p.Name = name
			m.Parties = append(m.Parties, p)
		}

		allAmounts = append(allAmounts, ext.Amounts...)

		for _, claim := range ext.Claims {
			if addUnique(seenClaims, claim) {
				m.Claims = append(m.Claims, claim)
			}
		}

		m.Decisions = append(m.Decisions, ext.Decisions...)

		for _, t := range ext.PlaintiffTheses {
			if addUnique(seenPlaintiffTheses, t) {
				m.PlaintiffTheses = append(m.PlaintiffTheses, t)
			}
		}
		for _, t := range ext.DefendantTheses {
			if addUnique(seenDefendantTheses, t) {
				m.DefendantTheses = append(m.DefendantTheses, t)
			}
		}

		for _, doc := range ext.KeyDocuments {
			key := strings.ToLower(strings.TrimSpace(doc.Type))
			if key == "" || seenDocs[key] {
				continue
			}
			seenDocs[key] = true
			m.KeyDocuments = append(m.KeyDocuments, doc)
		}

		for _, event := range ext.History {
			desc := event.Description
			if desc == "" {
				desc = event.Type
			}
			if !Relevant(desc) {
				continue
			}
			key := strings.ToLower(event.Date + "|" + head(desc, 30))
			if seenHistory[key] {
				continue
			}
			seenHistory[key] = true

			if Categorize(desc) == domain.CategoryFactual {
				m.Factual = append(m.Factual, event)
			} else {
				m.Procedural = append(m.Procedural, event)
			}
		}

		if ext.CurrentStatus != "" {
			m.CurrentStatus = ext.CurrentStatus
		}
	}

	m.Amounts = DedupeAmounts(allAmounts)
	sortByDate(m.Procedural)
	sortByDate(m.Factual)

	return m
}

// addUnique records the first 50 lowercased characters of s and reports
// whether it was new. Empty strings never count.
func addUnique(seen map[string]bool, s string) bool {
	key := head(strings.ToLower(strings.TrimSpace(s)), 50)
	if key == "" || seen[key] {
		return false
	}
	seen[key] = true
	return true
}

// sortByDate orders events chronologically, stably, with undated entries
// first.
func sortByDate(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return dateBefore(events[i].Date, events[j].Date)
	})
}

func head(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
