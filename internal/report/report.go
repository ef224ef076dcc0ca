package report

import (
	"sintese/internal/domain"
	"sintese/internal/synthesis"
)

// Build assembles the final Report from the regex pre-extraction, the
// consolidated model extraction and the run metadata. The model's party
// list wins over the regex one when present.
func Build(caseData domain.CaseData, merged synthesis.Merged, run domain.RunInfo) *domain.Report {
	parties := merged.Parties
	if len(parties) == 0 {
		parties = caseData.Parties
	}

	return &domain.Report{
		Case:              caseData,
		Parties:           parties,
		Subject:           merged.Subject,
		FactsSummary:      merged.FactsSummary,
		KeyDocuments:      merged.KeyDocuments,
		ProceduralHistory: merged.Procedural,
		FactTimeline:      merged.Factual,
		Amounts:           merged.Amounts,
		Claims:            merged.Claims,
		PlaintiffTheses:   merged.PlaintiffTheses,
		DefendantTheses:   merged.DefendantTheses,
		Decisions:         merged.Decisions,
		CurrentStatus:     merged.CurrentStatus,
		Run:               run,
	}
}
