package domain

import "time"

// ProcessDocument is the text extracted from one source PDF.
type ProcessDocument struct {
	Name     string
	Text     string
	Pages    int
	Priority bool
	// Hash is the md5 of the first 10k chars of Text, used to drop
	// duplicate scans of the same piece.
	Hash string
}

// Party is one litigant. JSON keys follow the extraction prompt schema,
// which instructs the model to answer in Portuguese field names.
type Party struct {
	Name     string `json:"nome"`
	Role     string `json:"polo"`
	Attorney string `json:"advogado,omitempty"`
}

// Event is one entry of the process history.
type Event struct {
	Date        string `json:"data"`
	Type        string `json:"evento,omitempty"`
	Description string `json:"descricao"`
}

// Decision is a judicial ruling (despacho, decisão, sentença).
type Decision struct {
	Date    string `json:"data"`
	Type    string `json:"tipo"`
	Content string `json:"conteudo"`
}

// MonetaryValue is an amount tied to the dispute, kept as the formatted
// string the document carries ("R$ 1.234,56").
type MonetaryValue struct {
	Description string `json:"descricao"`
	Value       string `json:"valor"`
}

// KeyDocument is a principal procedural piece (petição inicial, contestação,
// sentença) with a short content summary.
type KeyDocument struct {
	Type    string `json:"tipo"`
	Date    string `json:"data,omitempty"`
	Party   string `json:"parte,omitempty"`
	Summary string `json:"resumo,omitempty"`
}

// Extraction is the JSON object a single provider call must return.
type Extraction struct {
	Parties         []Party         `json:"partes"`
	Subject         string          `json:"objeto_acao"`
	FactsSummary    string          `json:"resumo_fatos"`
	Amounts         []MonetaryValue `json:"valores_relevantes"`
	Claims          []string        `json:"pedidos"`
	Decisions       []Decision      `json:"decisoes"`
	PlaintiffTheses []string        `json:"teses_autor"`
	DefendantTheses []string        `json:"teses_reu"`
	KeyDocuments    []KeyDocument   `json:"documentos_importantes"`
	History         []Event         `json:"historico_detalhado"`
	CurrentStatus   string          `json:"status_atual"`
}

// Empty reports whether the extraction carries no content at all.
func (e *Extraction) Empty() bool {
	return len(e.Parties) == 0 && e.Subject == "" && e.FactsSummary == "" &&
		len(e.Amounts) == 0 && len(e.Claims) == 0 && len(e.Decisions) == 0 &&
		len(e.PlaintiffTheses) == 0 && len(e.DefendantTheses) == 0 &&
		len(e.KeyDocuments) == 0 && len(e.History) == 0 && e.CurrentStatus == ""
}

// CaseData is the metadata pre-extracted from the raw text by the system
// detector, before any provider call.
type CaseData struct {
	Number          string
	Class           string
	Court           string
	District        string
	AmountInDispute string
	FiledDate       string
	Subject         string
	Parties         []Party
	DocketEvents    []Event
	System          SystemType
}

// Report aggregates everything the renderers emit.
type Report struct {
	Case CaseData

	Parties           []Party
	Subject           string
	FactsSummary      string
	KeyDocuments      []KeyDocument
	ProceduralHistory []Event
	FactTimeline      []Event
	Amounts           []MonetaryValue
	Claims            []string
	PlaintiffTheses   []string
	DefendantTheses   []string
	Decisions         []Decision
	CurrentStatus     string

	Run RunInfo
}

// RunInfo is per-run metadata carried into logs and the report header.
type RunInfo struct {
	ID          string
	Provider    Provider
	GeneratedAt time.Time
	Elapsed     time.Duration
	Chunks      int
	Documents   int
	TotalPages  int
}
