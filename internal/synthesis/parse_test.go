package synthesis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sintese/internal/synthesis"
)

func TestParseExtraction_PlainJSON(t *testing.T) {
	raw := `{"objeto_acao": "Cobrança de honorários", "status_atual": "Concluso para sentença"}`

	ext, err := synthesis.ParseExtraction(raw)
	require.NoError(t, err)
	assert.Equal(t, "Cobrança de honorários", ext.Subject)
	assert.Equal(t, "Concluso para sentença", ext.CurrentStatus)
}

func TestParseExtraction_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"objeto_acao\": \"Ação de indenização\"}\n```"

	ext, err := synthesis.ParseExtraction(raw)
	require.NoError(t, err)
	assert.Equal(t, "Ação de indenização", ext.Subject)
}

func TestParseExtraction_ChatterAroundJSON(t *testing.T) {
	raw := `Segue o JSON solicitado:
{"pedidos": ["Condenação ao pagamento"]}
Espero ter ajudado.`

	ext, err := synthesis.ParseExtraction(raw)
	require.NoError(t, err)
	require.Len(t, ext.Claims, 1)
	assert.Equal(t, "Condenação ao pagamento", ext.Claims[0])
}

func TestParseExtraction_RepairsTrailingCommas(t *testing.T) {
	raw := `{"pedidos": ["Pedido A", "Pedido B",], "status_atual": "Em andamento",}`

	ext, err := synthesis.ParseExtraction(raw)
	require.NoError(t, err)
	assert.Len(t, ext.Claims, 2)
	assert.Equal(t, "Em andamento", ext.CurrentStatus)
}

func TestParseExtraction_RepairsMissingComma(t *testing.T) {
	raw := `{"partes": [{"nome": "Fulano", "polo": "Autor"}] "status_atual": "Citação pendente"}`

	ext, err := synthesis.ParseExtraction(raw)
	require.NoError(t, err)
	require.Len(t, ext.Parties, 1)
	assert.Equal(t, "Fulano", ext.Parties[0].Name)
	assert.Equal(t, "Citação pendente", ext.CurrentStatus)
}

func TestParseExtraction_NoJSON(t *testing.T) {
	_, err := synthesis.ParseExtraction("Desculpe, não consegui analisar o documento.")
	assert.Error(t, err)
}
