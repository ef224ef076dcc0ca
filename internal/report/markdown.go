package report

import (
	"fmt"
	"os"
	"strings"

	"sintese/internal/domain"
)

// utf8BOM keeps Word and older Windows editors from misreading the accents.
const utf8BOM = "\uFEFF"

// WriteMarkdown renders the report and writes it BOM-prefixed to path.
func WriteMarkdown(r *domain.Report, path string) error {
	content := RenderMarkdown(r)
	if err := os.WriteFile(path, []byte(utf8BOM+content), 0o644); err != nil {
		return fmt.Errorf("writing markdown report: %w", err)
	}
	return nil
}

// RenderMarkdown produces the Markdown body of the report. Sections without
// content are omitted entirely.
func RenderMarkdown(r *domain.Report) string {
	var md []string
	add := func(lines ...string) { md = append(md, lines...) }

	number := r.Case.Number
	if number == "" {
		number = "Não identificado"
	}
	add(
		"# Síntese Processual",
		fmt.Sprintf("**Processo:** %s", number),
		fmt.Sprintf("**Gerado em:** %s", r.Run.GeneratedAt.Format("02/01/2006 às 15:04")),
		fmt.Sprintf("**Modo:** %s", strings.ToUpper(string(r.Run.Provider))),
		fmt.Sprintf("**Execução:** %s", r.Run.ID),
		fmt.Sprintf("**Tempo de processamento:** %.1f segundos", r.Run.Elapsed.Seconds()),
		"",
		"---",
		"",
	)

	add("## Dados Gerais", "")
	if r.Case.Class != "" {
		add(fmt.Sprintf("- **Classe:** %s", r.Case.Class))
	}
	if r.Case.Court != "" {
		add(fmt.Sprintf("- **Vara:** %s", r.Case.Court))
	}
	if r.Case.District != "" {
		add(fmt.Sprintf("- **Comarca:** %s", r.Case.District))
	}
	if r.Case.AmountInDispute != "" {
		add(fmt.Sprintf("- **Valor da causa:** %s", r.Case.AmountInDispute))
	}
	if r.Case.FiledDate != "" {
		add(fmt.Sprintf("- **Distribuição:** %s", r.Case.FiledDate))
	}
	if r.Case.Subject != "" {
		add(fmt.Sprintf("- **Assunto:** %s", r.Case.Subject))
	}
	add("")

	if len(r.Parties) > 0 {
		add("## Partes", "", "| Polo | Nome |", "|------|------|")
		for _, p := range r.Parties {
			if skipValue(p.Name) {
				continue
			}
			add(fmt.Sprintf("| %s | %s |", orND(p.Role), p.Name))
		}
		add("")
	}

	if r.Subject != "" {
		add("## Objeto da Ação", "", r.Subject, "")
	}

	if r.FactsSummary != "" {
		add("## Resumo dos Fatos", "", formatParagraphs(r.FactsSummary), "")
	}

	if len(r.KeyDocuments) > 0 {
		add("## Documentos Importantes", "")
		for i, doc := range r.KeyDocuments {
			title := fmt.Sprintf("### %d. %s", i+1, orDefault(doc.Type, "Documento"))
			if doc.Date != "" {
				title += fmt.Sprintf(" (%s)", doc.Date)
			}
			add(title)
			if doc.Party != "" {
				add(fmt.Sprintf("**Apresentado por:** %s", doc.Party))
			}
			add("")
			if doc.Summary != "" {
				add(doc.Summary)
			}
			add("")
		}
		add("---", "")
	}

	switch {
	case len(r.ProceduralHistory) > 0:
		add("## Histórico Processual", "", "| Data | Descrição |", "|------|-----------|")
		for _, e := range r.ProceduralHistory {
			add(fmt.Sprintf("| %s | %s |", orND(e.Date), orND(eventDescription(e))))
		}
		add("")
	case len(r.Case.DocketEvents) > 0:
		// No model history at all: fall back to the raw docket rows.
		add("## Histórico Processual", "", "| Data | Tipo | Descrição |", "|------|------|-----------|")
		events := r.Case.DocketEvents
		if len(events) > 30 {
			events = events[:30]
		}
		for _, e := range events {
			add(fmt.Sprintf("| %s | %s | %s |", e.Date, e.Type, head(e.Description, 60)))
		}
		add("")
	}

	if len(r.FactTimeline) > 0 {
		add("## Linha do Tempo dos Fatos", "", "| Data | Descrição |", "|------|-----------|")
		for _, e := range r.FactTimeline {
			add(fmt.Sprintf("| %s | %s |", orND(e.Date), orND(eventDescription(e))))
		}
		add("")
	}

	if len(r.Amounts) > 0 {
		add("## Valores Identificados", "")
		for _, v := range r.Amounts {
			add(fmt.Sprintf("- **%s:** %s", orND(v.Description), orND(v.Value)))
		}
		add("")
	}

	if len(r.Claims) > 0 {
		add("## Pedidos", "")
		for _, claim := range r.Claims {
			add(fmt.Sprintf("- %s", claim))
		}
		add("")
	}

	if len(r.PlaintiffTheses) > 0 || len(r.DefendantTheses) > 0 {
		add("## Teses das Partes", "")
		if len(r.PlaintiffTheses) > 0 {
			add("**Autor:**")
			for _, t := range r.PlaintiffTheses {
				add(fmt.Sprintf("- %s", t))
			}
			add("")
		}
		if len(r.DefendantTheses) > 0 {
			add("**Réu:**")
			for _, t := range r.DefendantTheses {
				add(fmt.Sprintf("- %s", t))
			}
			add("")
		}
	}

	if len(r.Decisions) > 0 {
		add("## Decisões", "")
		for _, d := range r.Decisions {
			if skipValue(d.Content) {
				continue
			}
			add(fmt.Sprintf("- **%s - %s:** %s", orND(d.Date), orND(d.Type), d.Content))
		}
		add("")
	}

	if r.CurrentStatus != "" {
		add("## Status Atual", "", r.CurrentStatus, "")
	}

	add(
		"---",
		"",
		"*Documento gerado automaticamente.*",
		"*Este é um resumo factual. Não contém análises ou recomendações jurídicas.*",
	)

	return strings.Join(md, "\n")
}

// formatParagraphs unescapes literal \n sequences the model sometimes emits
// and, when the text came back as one long block, re-paragraphs it on
// sentence boundaries every ~300 characters.
func formatParagraphs(summary string) string {
	formatted := strings.ReplaceAll(summary, `\n\n`, "\n\n")
	formatted = strings.ReplaceAll(formatted, `\n`, "\n")

	if strings.Contains(formatted, "\n\n") || len(formatted) <= 500 {
		return formatted
	}

	var paragraphs []string
	var current strings.Builder
	for _, sentence := range strings.Split(formatted, ". ") {
		current.WriteString(sentence)
		current.WriteString(". ")
		if current.Len() > 300 {
			paragraphs = append(paragraphs, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		paragraphs = append(paragraphs, rest)
	}
	return strings.Join(paragraphs, "\n\n")
}

func eventDescription(e domain.Event) string {
	if e.Description != "" {
		return e.Description
	}
	return e.Type
}

// skipValue filters the null-ish strings models leak into fields.
func skipValue(s string) bool {
	return s == "" || s == "None" || s == "null"
}

func orND(s string) string {
	return orDefault(s, "N/D")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func head(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
