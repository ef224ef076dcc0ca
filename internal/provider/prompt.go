package provider

// BuildExtractionPrompt returns the factual-extraction prompt for one chunk
// of process text. The model is instructed to answer with a single JSON
// object and nothing else; internal/synthesis still treats the answer as
// untrusted free text.
func BuildExtractionPrompt(text string) string {
	return `Você é um assistente de extração de dados processuais. Analise o texto e extraia APENAS informações factuais, sem fazer análises ou sugestões.

TEXTO DO PROCESSO:
` + text + `

Extraia as seguintes informações em formato JSON (retorne APENAS o JSON, sem texto adicional):

{
    "partes": [
        {"nome": "Nome completo da parte", "polo": "Autor/Réu"}
    ],
    "objeto_acao": "Descrição breve do que se trata a ação (1-2 frases)",
    "resumo_fatos": "Narrativa dos fatos em parágrafos bem formatados, com quebras de linha (\n\n) entre parágrafos. Conte a história do processo de forma clara e cronológica.",
    "valores_relevantes": [
        {"descricao": "...", "valor": "R$ ..."}
    ],
    "pedidos": ["Pedido 1", "Pedido 2"],
    "decisoes": [
        {"data": "dd/mm/aaaa", "tipo": "Despacho/Decisão/Sentença", "conteudo": "Resumo do que foi decidido"}
    ],
    "teses_autor": ["Tese 1", "Tese 2"],
    "teses_reu": ["Tese 1", "Tese 2"],
    "documentos_importantes": [
        {"tipo": "Petição Inicial/Contestação/Sentença/etc", "data": "dd/mm/aaaa", "parte": "Quem apresentou", "resumo": "Resumo do conteúdo principal do documento"}
    ],
    "historico_detalhado": [
        {"data": "dd/mm/aaaa", "evento": "Tipo do evento", "descricao": "O que aconteceu de fato, quem fez, qual o conteúdo resumido"}
    ],
    "status_atual": "Fase processual atual"
}

REGRAS IMPORTANTES:
- RETORNE APENAS O JSON, sem explicações antes ou depois
- Extraia APENAS o que está explícito no texto
- NÃO invente informações
- NÃO faça análises ou sugestões jurídicas
- PARTES: Extraia da PETIÇÃO INICIAL. O autor é quem propõe a ação. Os réus são contra quem a ação é proposta. Use os nomes completos das pessoas/empresas, não use termos como "Contestante", "Requerido", etc.
- Datas no formato dd/mm/aaaa
- Se não encontrar uma informação, deixe vazio ou null
- No resumo_fatos, use parágrafos separados por \n\n para facilitar leitura
- Em valores_relevantes, inclua APENAS valores diretamente relacionados à causa (valor da causa, valores cobrados, danos pedidos). NÃO inclua capital social de empresas, valor de cotas, salários, etc.
- Em documentos_importantes, foque nas peças processuais principais: petição inicial, contestações, réplicas, decisões, sentenças, laudos
- Em historico_detalhado, seja específico: não "Manifestação", mas "Manifestação do autor sobre citação"
- Seja conciso e objetivo`
}
