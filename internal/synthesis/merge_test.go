package synthesis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sintese/internal/domain"
	"sintese/internal/synthesis"
)

func TestMerge_PartiesFoldAccents(t *testing.T) {
	extractions := []domain.Extraction{
		{Parties: []domain.Party{{Name: "CLÍNICA AVANÇADA LTDA", Role: "Autor"}}},
		{Parties: []domain.Party{
			{Name: "Clinica Avancada Ltda.", Role: "Autor"},
			{Name: "João da Silva", Role: "Réu"},
		}},
	}

	m := synthesis.Merge(extractions)
	require.Len(t, m.Parties, 2)
	assert.Equal(t, "CLÍNICA AVANÇADA LTDA", m.Parties[0].Name)
	assert.Equal(t, "João da Silva", m.Parties[1].Name)
}

func TestMerge_PartiesKeepLongestSpelling(t *testing.T) {
	extractions := []domain.Extraction{
		{Parties: []domain.Party{{Name: "ODONTO VIDA SERVICOS ODONTOLOGICOS"}}},
		{Parties: []domain.Party{{Name: "Odonto Vida Serviços Odontológicos LTDA", Role: "Autor", Attorney: "Dra. Maria"}}},
	}

	m := synthesis.Merge(extractions)
	require.Len(t, m.Parties, 1)
	assert.Equal(t, "Odonto Vida Serviços Odontológicos LTDA", m.Parties[0].Name)
	assert.Equal(t, "Autor", m.Parties[0].Role)
	assert.Equal(t, "Dra. Maria", m.Parties[0].Attorney)
}

func TestMerge_SubjectFirstStatusLast(t *testing.T) {
	extractions := []domain.Extraction{
		{CurrentStatus: "Aguardando citação"},
		{Subject: "Ação de cobrança", CurrentStatus: "Concluso para sentença"},
		{Subject: "Outro objeto"},
	}

	m := synthesis.Merge(extractions)
	assert.Equal(t, "Ação de cobrança", m.Subject)
	assert.Equal(t, "Concluso para sentença", m.CurrentStatus)
}

func TestMerge_FactsSummaryConcatenatesDistinct(t *testing.T) {
	extractions := []domain.Extraction{
		{FactsSummary: "O autor contratou os serviços."},
		{FactsSummary: "O autor contratou os serviços."},
		{FactsSummary: "O réu deixou de pagar."},
	}

	m := synthesis.Merge(extractions)
	assert.Equal(t, "O autor contratou os serviços.\n\nO réu deixou de pagar.", m.FactsSummary)
}

func TestMerge_HistoryFiltersNoiseAndSorts(t *testing.T) {
	extractions := []domain.Extraction{
		{History: []domain.Event{
			{Date: "12/06/2025", Description: "Contestação apresentada pelo réu"},
			{Date: "10/06/2025", Description: "Documento assinado eletronicamente"},
			{Date: "08/05/2025", Description: "Citação do réu"},
		}},
	}

	m := synthesis.Merge(extractions)
	require.Len(t, m.Procedural, 2)
	assert.Equal(t, "08/05/2025", m.Procedural[0].Date)
	assert.Equal(t, "12/06/2025", m.Procedural[1].Date)
	assert.Empty(t, m.Factual)
}

func TestMerge_HistorySplitsFactualTimeline(t *testing.T) {
	extractions := []domain.Extraction{
		{History: []domain.Event{
			{Date: "15/03/2024", Description: "Assinatura do contrato de prestação"},
			{Date: "20/01/2025", Description: "Despacho inicial do juízo"},
		}},
	}

	m := synthesis.Merge(extractions)
	require.Len(t, m.Factual, 1)
	assert.Equal(t, "15/03/2024", m.Factual[0].Date)
	require.Len(t, m.Procedural, 1)
	assert.Equal(t, "20/01/2025", m.Procedural[0].Date)
}

func TestMerge_HistoryDedupeByDateAndPrefix(t *testing.T) {
	extractions := []domain.Extraction{
		{History: []domain.Event{{Date: "08/05/2025", Description: "Citação do réu realizada por oficial de justiça"}}},
		{History: []domain.Event{{Date: "08/05/2025", Description: "Citação do réu realizada por oficial de justiça em diligência"}}},
	}

	m := synthesis.Merge(extractions)
	assert.Len(t, m.Procedural, 1)
}

func TestMerge_UndatedEventsSortFirst(t *testing.T) {
	extractions := []domain.Extraction{
		{History: []domain.Event{
			{Date: "08/05/2025", Description: "Citação do réu"},
			{Date: "", Description: "Distribuição da petição inicial"},
		}},
	}

	m := synthesis.Merge(extractions)
	require.Len(t, m.Procedural, 2)
	assert.Equal(t, "Distribuição da petição inicial", m.Procedural[0].Description)
}

func TestMerge_ClaimsAndThesesDedupe(t *testing.T) {
	extractions := []domain.Extraction{
		{
			Claims:          []string{"Condenação ao pagamento de R$ 10.000,00"},
			PlaintiffTheses: []string{"Inadimplemento contratual"},
		},
		{
			Claims:          []string{"condenação ao pagamento de r$ 10.000,00"},
			PlaintiffTheses: []string{"Inadimplemento contratual"},
			DefendantTheses: []string{"Inexistência de débito"},
		},
	}

	m := synthesis.Merge(extractions)
	assert.Len(t, m.Claims, 1)
	assert.Len(t, m.PlaintiffTheses, 1)
	assert.Len(t, m.DefendantTheses, 1)
}

func TestMerge_KeyDocumentsDedupeByType(t *testing.T) {
	extractions := []domain.Extraction{
		{KeyDocuments: []domain.KeyDocument{{Type: "Petição Inicial", Summary: "primeiro resumo"}}},
		{KeyDocuments: []domain.KeyDocument{
			{Type: "petição inicial", Summary: "resumo repetido"},
			{Type: "Contestação", Summary: "defesa do réu"},
		}},
	}

	m := synthesis.Merge(extractions)
	require.Len(t, m.KeyDocuments, 2)
	assert.Equal(t, "primeiro resumo", m.KeyDocuments[0].Summary)
}

func TestMerge_SkipsNullishPartyNames(t *testing.T) {
	extractions := []domain.Extraction{
		{Parties: []domain.Party{{Name: "None", Role: "Autor"}, {Name: "", Role: "Réu"}}},
	}
	assert.Empty(t, synthesis.Merge(extractions).Parties)
}

func TestMerged_TimelineInterleavesChronologically(t *testing.T) {
	extractions := []domain.Extraction{
		{History: []domain.Event{
			{Date: "10/02/2025", Description: "Despacho inicial"},
			{Date: "15/03/2024", Description: "Assinatura do contrato"},
		}},
	}

	m := synthesis.Merge(extractions)
	timeline := m.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, "15/03/2024", timeline[0].Date)
	assert.Equal(t, "10/02/2025", timeline[1].Date)
}
