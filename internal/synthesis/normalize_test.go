package synthesis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sintese/internal/domain"
	"sintese/internal/synthesis"
)

func TestNormalizeName_FoldsAccentsAndCase(t *testing.T) {
	assert.Equal(t,
		synthesis.NormalizeName("CLÍNICA AVANÇADA DE ODONTOLOGIA"),
		synthesis.NormalizeName("clinica avancada de odontologia"))
}

func TestNormalizeName_StripsCorporateSuffixes(t *testing.T) {
	assert.Equal(t, "ACME COMERCIO", synthesis.NormalizeName("Acme Comércio LTDA."))
	assert.Equal(t, "BANCO EXEMPLO", synthesis.NormalizeName("Banco Exemplo S/A"))
	assert.Equal(t, "ODONTO VIDA", synthesis.NormalizeName("  Odonto   Vida EIRELI "))
}

func TestNormalizeName_Empty(t *testing.T) {
	assert.Equal(t, "", synthesis.NormalizeName(""))
}

func TestDateKey(t *testing.T) {
	y, m, d := synthesis.DateKey("08/05/2025")
	assert.Equal(t, [3]int{2025, 5, 8}, [3]int{y, m, d})

	y, m, d = synthesis.DateKey("não informada")
	assert.Equal(t, [3]int{0, 0, 0}, [3]int{y, m, d})

	y, m, d = synthesis.DateKey("")
	assert.Equal(t, [3]int{0, 0, 0}, [3]int{y, m, d})
}

func TestRelevant_FiltersDocketNoise(t *testing.T) {
	noise := []string{
		"Documento assinado eletronicamente por servidor",
		"Conclusos para despacho",
		"Juntada automática de aviso de recebimento",
		"Não houve expediente forense nesta data",
	}
	for _, desc := range noise {
		assert.False(t, synthesis.Relevant(desc), desc)
	}

	assert.True(t, synthesis.Relevant("Sentença de procedência publicada"))
	assert.False(t, synthesis.Relevant(""))
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, domain.CategoryFactual, synthesis.Categorize("Pagamento da primeira parcela do contrato"))
	assert.Equal(t, domain.CategoryFactual, synthesis.Categorize("Negativação junto ao SERASA"))
	assert.Equal(t, domain.CategoryProcedural, synthesis.Categorize("Citação do réu por oficial de justiça"))
	assert.Equal(t, domain.CategoryProcedural, synthesis.Categorize(""))
}

func TestDedupeAmounts_SameValueRegardlessOfLabel(t *testing.T) {
	amounts := []domain.MonetaryValue{
		{Description: "Valor da causa", Value: "R$ 10.500,00"},
		{Description: "Valor da causa atualizado", Value: "10.500,00"},
		{Description: "Danos morais", Value: "R$ 10.500,00"},
		{Description: "Danos morais", Value: "R$ 5.000,00"},
	}
	out := synthesis.DedupeAmounts(amounts)
	assert.Len(t, out, 2)
	assert.Equal(t, "Valor da causa", out[0].Description)
	assert.Equal(t, "R$ 5.000,00", out[1].Value)
}

func TestDedupeAmounts_UnparseableValuesKeptApartByLabel(t *testing.T) {
	amounts := []domain.MonetaryValue{
		{Description: "Honorários", Value: "a combinar"},
		{Description: "Multa diária", Value: "a arbitrar"},
		{Description: "honorários", Value: "indefinido"},
	}
	out := synthesis.DedupeAmounts(amounts)
	assert.Len(t, out, 2)
}

func TestDedupeAmounts_DropsIncomplete(t *testing.T) {
	amounts := []domain.MonetaryValue{
		{Description: "", Value: "R$ 100,00"},
		{Description: "Honorários", Value: ""},
	}
	assert.Empty(t, synthesis.DedupeAmounts(amounts))
}
