package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"sintese/internal/domain"
)

// Run sizes are half-points.
const (
	sizeTitle    = "48"
	sizeHeading  = "32"
	sizeSubhead  = "26"
	tableWidth   = 8220
	footerAccent = "808080"
)

// WriteDocx renders the report as a Word document at path. The layout
// mirrors the Markdown rendition so both artifacts read the same.
func WriteDocx(r *domain.Report, path string) error {
	w := docx.New().WithDefaultTheme()

	title(w, "Síntese Processual")

	number := r.Case.Number
	if number == "" {
		number = "Não identificado"
	}
	w.AddParagraph().AddText("Processo: " + number)
	w.AddParagraph().AddText("Gerado em: " + r.Run.GeneratedAt.Format("02/01/2006 às 15:04"))
	w.AddParagraph().AddText("Modo: " + strings.ToUpper(string(r.Run.Provider)))
	w.AddParagraph().AddText("Execução: " + r.Run.ID)
	rule(w)

	heading(w, "Dados Gerais")
	if r.Case.Class != "" {
		w.AddParagraph().AddText("Classe: " + r.Case.Class)
	}
	if r.Case.Court != "" {
		w.AddParagraph().AddText("Vara: " + r.Case.Court)
	}
	if r.Case.District != "" {
		w.AddParagraph().AddText("Comarca: " + r.Case.District)
	}
	if r.Case.AmountInDispute != "" {
		w.AddParagraph().AddText("Valor da causa: " + r.Case.AmountInDispute)
	}
	if r.Case.FiledDate != "" {
		w.AddParagraph().AddText("Distribuição: " + r.Case.FiledDate)
	}

	if len(r.Parties) > 0 {
		heading(w, "Partes")
		rows := [][]string{{"Polo", "Nome"}}
		for _, p := range r.Parties {
			if skipValue(p.Name) {
				continue
			}
			rows = append(rows, []string{orND(p.Role), p.Name})
		}
		table(w, rows)
	}

	if r.Subject != "" {
		heading(w, "Objeto da Ação")
		w.AddParagraph().AddText(r.Subject)
	}

	if r.FactsSummary != "" {
		heading(w, "Resumo dos Fatos")
		for _, paragraph := range strings.Split(formatParagraphs(r.FactsSummary), "\n\n") {
			if p := strings.TrimSpace(paragraph); p != "" {
				w.AddParagraph().AddText(p)
			}
		}
	}

	if len(r.KeyDocuments) > 0 {
		heading(w, "Documentos Importantes")
		for i, doc := range r.KeyDocuments {
			t := fmt.Sprintf("%d. %s", i+1, orDefault(doc.Type, "Documento"))
			if doc.Date != "" {
				t += fmt.Sprintf(" (%s)", doc.Date)
			}
			subheading(w, t)
			if doc.Party != "" {
				w.AddParagraph().AddText("Apresentado por: " + doc.Party)
			}
			if doc.Summary != "" {
				w.AddParagraph().AddText(doc.Summary)
			}
		}
	}

	switch {
	case len(r.ProceduralHistory) > 0:
		heading(w, "Histórico Processual")
		rows := [][]string{{"Data", "Descrição"}}
		for _, e := range r.ProceduralHistory {
			rows = append(rows, []string{orND(e.Date), orND(eventDescription(e))})
		}
		table(w, rows)
	case len(r.Case.DocketEvents) > 0:
		heading(w, "Histórico Processual")
		rows := [][]string{{"Data", "Tipo", "Descrição"}}
		events := r.Case.DocketEvents
		if len(events) > 30 {
			events = events[:30]
		}
		for _, e := range events {
			rows = append(rows, []string{orND(e.Date), orND(e.Type), orND(head(e.Description, 50))})
		}
		table(w, rows)
	}

	if len(r.FactTimeline) > 0 {
		heading(w, "Linha do Tempo dos Fatos")
		rows := [][]string{{"Data", "Descrição"}}
		for _, e := range r.FactTimeline {
			rows = append(rows, []string{orND(e.Date), orND(eventDescription(e))})
		}
		table(w, rows)
	}

	if len(r.Amounts) > 0 {
		heading(w, "Valores Identificados")
		for _, v := range r.Amounts {
			w.AddParagraph().AddText(fmt.Sprintf("• %s: %s", orND(v.Description), orND(v.Value)))
		}
	}

	if len(r.Claims) > 0 {
		heading(w, "Pedidos")
		for _, claim := range r.Claims {
			w.AddParagraph().AddText("• " + claim)
		}
	}

	if len(r.PlaintiffTheses) > 0 || len(r.DefendantTheses) > 0 {
		heading(w, "Teses das Partes")
		if len(r.PlaintiffTheses) > 0 {
			w.AddParagraph().AddText("Autor:").Bold()
			for _, t := range r.PlaintiffTheses {
				w.AddParagraph().AddText("• " + t)
			}
		}
		if len(r.DefendantTheses) > 0 {
			w.AddParagraph().AddText("Réu:").Bold()
			for _, t := range r.DefendantTheses {
				w.AddParagraph().AddText("• " + t)
			}
		}
	}

	if len(r.Decisions) > 0 {
		heading(w, "Decisões")
		for _, d := range r.Decisions {
			if skipValue(d.Content) {
				continue
			}
			w.AddParagraph().AddText(fmt.Sprintf("%s - %s: %s", orND(d.Date), orND(d.Type), d.Content))
		}
	}

	if r.CurrentStatus != "" {
		heading(w, "Status Atual")
		w.AddParagraph().AddText(r.CurrentStatus)
	}

	w.AddParagraph()
	rule(w)
	w.AddParagraph().AddText("Documento gerado automaticamente.").Italic().Color(footerAccent)
	w.AddParagraph().AddText("Este é um resumo factual. Não contém análises ou recomendações jurídicas.").Italic().Color(footerAccent)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating docx report: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := w.WriteTo(f); err != nil {
		return fmt.Errorf("writing docx report: %w", err)
	}
	return nil
}

func title(w *docx.Docx, text string) {
	w.AddParagraph().AddText(text).Size(sizeTitle).Bold()
}

func heading(w *docx.Docx, text string) {
	w.AddParagraph().AddText(text).Size(sizeHeading).Bold()
}

func subheading(w *docx.Docx, text string) {
	w.AddParagraph().AddText(text).Size(sizeSubhead).Bold()
}

func rule(w *docx.Docx) {
	w.AddParagraph().AddText(strings.Repeat("─", 50)).Color(footerAccent)
}

func table(w *docx.Docx, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	tbl := w.AddTable(len(rows), len(rows[0]), tableWidth, nil)
	for i, row := range rows {
		for j, cell := range row {
			run := tbl.TableRows[i].TableCells[j].AddParagraph().AddText(cell)
			if i == 0 {
				run.Bold()
			}
		}
	}
}
