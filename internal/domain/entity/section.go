package entity

// Section identifica una de las seis etapas fijas del onboarding.
// Los valores string forman parte del contrato externo (enum onboarding_section
// en la base de datos) y no deben cambiarse.
type Section string

const (
	SectionBasic          Section = "basic"
	SectionFarm           Section = "farm"
	SectionFinancial      Section = "financial"
	SectionCompliance     Section = "compliance"
	SectionStorage        Section = "storage"
	SectionCommunications Section = "communications"
)

// SectionOrder es el orden total fijo del flujo de onboarding.
// Única fuente de verdad: tracker, orquestador y handlers referencian este
// arreglo; nadie lo re-deriva localmente.
var SectionOrder = []Section{
	SectionBasic,
	SectionFarm,
	SectionFinancial,
	SectionCompliance,
	SectionStorage,
	SectionCommunications,
}

// Valid informa si s es una de las seis secciones conocidas.
func (s Section) Valid() bool {
	return s.Index() >= 0
}

// Index devuelve la posición de s en SectionOrder, o -1 si no es válida.
func (s Section) Index() int {
	for i, sec := range SectionOrder {
		if sec == s {
			return i
		}
	}
	return -1
}

// Next devuelve la sección siguiente en el orden fijo, o "" si s es la última
// (o no es válida).
func (s Section) Next() Section {
	i := s.Index()
	if i < 0 || i >= len(SectionOrder)-1 {
		return ""
	}
	return SectionOrder[i+1]
}

// Previous devuelve la sección anterior en el orden fijo, o "" si s es la
// primera (o no es válida).
func (s Section) Previous() Section {
	i := s.Index()
	if i <= 0 {
		return ""
	}
	return SectionOrder[i-1]
}

// ParseSection convierte un string a Section validando que sea conocida.
func ParseSection(v string) (Section, bool) {
	s := Section(v)
	return s, s.Valid()
}
