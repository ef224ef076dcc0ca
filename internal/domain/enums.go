package domain

// SystemType identifies which electronic-process platform produced a PDF.
type SystemType string

const (
	SystemPJe     SystemType = "pje"
	SystemEProc   SystemType = "eproc"
	SystemSAJ     SystemType = "saj"
	SystemProjudi SystemType = "projudi"
	SystemGeneric SystemType = "generico"
)

// Provider identifies an LLM backend mode.
type Provider string

const (
	ProviderLocal     Provider = "local"
	ProviderGoogle    Provider = "google"
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderXAI       Provider = "xai"
)

// Providers lists every supported mode, cloud providers first.
var Providers = []Provider{
	ProviderGoogle,
	ProviderAnthropic,
	ProviderOpenAI,
	ProviderXAI,
	ProviderLocal,
}

// IsCloud reports whether the provider is a remote API (affects chunk budget).
func (p Provider) IsCloud() bool {
	return p != ProviderLocal
}

// Valid reports whether p is a known provider mode.
func (p Provider) Valid() bool {
	for _, known := range Providers {
		if p == known {
			return true
		}
	}
	return false
}

// PartyRole is the polo of a party in the lawsuit.
type PartyRole string

const (
	RolePlaintiff PartyRole = "Autor"
	RoleDefendant PartyRole = "Réu"
	RoleOther     PartyRole = "Outro"
)

// EventCategory splits history entries into procedural acts and underlying facts.
type EventCategory string

const (
	CategoryProcedural EventCategory = "processual"
	CategoryFactual    EventCategory = "fatico"
)
