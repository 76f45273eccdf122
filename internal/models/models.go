package models

import (
	"encoding/json"
	"strings"
)

// FlexID is an identifier the backend sends either as a JSON number or a
// JSON string. It keeps its text and is encoded back in the form it
// arrived in, so "007" stays a string and 7 stays a number.
type FlexID struct {
	text string
	num  bool
}

// TextID is an id encoded as a JSON string.
func TextID(s string) FlexID { return FlexID{text: s} }

// NumID is an id encoded as a JSON number; s must be a JSON number literal.
func NumID(s string) FlexID { return FlexID{text: s, num: true} }

func (id *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == "" {
		*id = FlexID{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*id = TextID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = NumID(n.String())
	return nil
}

func (id FlexID) MarshalJSON() ([]byte, error) {
	if id.num {
		return []byte(id.text), nil
	}
	return json.Marshal(id.text)
}

func (id FlexID) String() string { return id.text }

func (id FlexID) IsZero() bool { return id.text == "" }

type Call struct {
	ID            FlexID          `json:"id,omitzero"`
	CallID        FlexID          `json:"call_id,omitzero"`
	Pin           string          `json:"pin,omitempty"`
	Fecha         string          `json:"fecha"`
	Hora          string          `json:"hora,omitempty"`
	Telefono      string          `json:"telefono,omitempty"`
	Contact       string          `json:"contact,omitempty"`
	NumeroMarcado string          `json:"numero_marcado,omitempty"`
	Numero        string          `json:"numero,omitempty"`
	Resumen       string          `json:"resumen"`
	Duracion      json.RawMessage `json:"duracion,omitempty"`
	AudioURL      *string         `json:"audio_url,omitempty"`
	PDFURL        *string         `json:"pdf_url,omitempty"`
	Audio         *string         `json:"audio,omitempty"`
	PDF           *string         `json:"pdf,omitempty"`

	PalabrasClave     []string `json:"palabras_clave,omitempty"`
	ResumenAutomatico string   `json:"resumen_automatico,omitempty"`
	Emocion           string   `json:"emocion,omitempty"`
	Idioma            string   `json:"idioma,omitempty"`
	NotaAnalista      string   `json:"nota_analista,omitempty"`
}

// Key identifies a call within one response: id for call lists, call_id
// for per-contact lookups.
func (c Call) Key() string {
	return c.KeyID().String()
}

// KeyID is Key in its wire form.
func (c Call) KeyID() FlexID {
	if !c.ID.IsZero() {
		return c.ID
	}
	return c.CallID
}

// Number is the dialed number as shown in the contact summary table.
func (c Call) Number() string {
	for _, v := range []string{c.Contact, c.NumeroMarcado, c.Numero, c.Telefono} {
		if v != "" {
			return v
		}
	}
	return ""
}

func (c Call) AudioLink() string {
	if c.AudioURL != nil && *c.AudioURL != "" {
		return *c.AudioURL
	}
	if c.Audio != nil {
		return *c.Audio
	}
	return ""
}

func (c Call) PDFLink() string {
	if c.PDFURL != nil && *c.PDFURL != "" {
		return *c.PDFURL
	}
	if c.PDF != nil {
		return *c.PDF
	}
	return ""
}

type DailyCount struct {
	Fecha    string `json:"fecha"`
	Llamadas int    `json:"llamadas"`
}

type Enrichment struct {
	ID                FlexID   `json:"id"`
	PalabrasClave     []string `json:"palabras_clave"`
	ResumenAutomatico string   `json:"resumen_automatico"`
	Emocion           string   `json:"emocion"`
	Idioma            string   `json:"idioma,omitempty"`
}

type Transcription struct {
	ID    FlexID `json:"id"`
	Texto string `json:"texto"`
}

type Severity string

const (
	SeverityUrgente     Severity = "urgente"
	SeverityRelevante   Severity = "relevante"
	SeverityInformativa Severity = "informativa"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityUrgente, SeverityRelevante, SeverityInformativa:
		return true
	}
	return false
}

// BadgeColor maps a severity to the dashboard badge palette. Unknown
// severities get the neutral badge.
func (s Severity) BadgeColor() string {
	switch s {
	case SeverityUrgente:
		return "error"
	case SeverityRelevante:
		return "warning"
	case SeverityInformativa:
		return "info"
	default:
		return "light"
	}
}

type Alert struct {
	ID        FlexID   `json:"id"`
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
	Timestamp string   `json:"timestamp"`
	Keyword   string   `json:"keyword,omitempty"`
}

type User struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type DangerousWord struct {
	ID        int64  `json:"id"`
	Word      string `json:"word"`
	Category  string `json:"category"`
	AddedDate string `json:"added_date"`
}

type Crime struct {
	ID          FlexID `json:"id,omitzero"`
	CrimeName   string `json:"crime_name"`
	Description string `json:"description"`
}

type InvestigationFolder struct {
	ID                 FlexID          `json:"id,omitzero"`
	FolderNumber       string          `json:"folder_number"`
	PenitentiaryCenter string          `json:"penitentiary_center,omitempty"`
	Unit               string          `json:"unit,omitempty"`
	FolderType         string          `json:"folder_type,omitempty"`
	OpenedAt           string          `json:"opened_at,omitempty"`
	Place              string          `json:"place,omitempty"`
	Description        string          `json:"description,omitempty"`
	Participants       json.RawMessage `json:"participants,omitempty"`
	Evidences          json.RawMessage `json:"evidences,omitempty"`
	Interviews         json.RawMessage `json:"interviews,omitempty"`
	Actions            json.RawMessage `json:"actions,omitempty"`
	Analysis           string          `json:"analysis,omitempty"`
	Conclusions        string          `json:"conclusions,omitempty"`
	Recommendations    string          `json:"recommendations,omitempty"`
	ResolutionType     string          `json:"resolution_type,omitempty"`
	Notifications      json.RawMessage `json:"notifications,omitempty"`
	ExtraDocuments     json.RawMessage `json:"extra_documents,omitempty"`
	Crimes             []Crime         `json:"crimes,omitempty"`
}

type Inmate struct {
	Pin                  string                `json:"pin"`
	Name                 string                `json:"name,omitempty"`
	PhotoFilename        string                `json:"photo_filename,omitempty"`
	Status               string                `json:"status"`
	Crime                string                `json:"crime"`
	UploadDate           string                `json:"upload_date,omitempty"`
	InvestigationFolders []InvestigationFolder `json:"investigation_folders,omitempty"`
}

// DisplayName falls back to the PIN when the profile carries no name.
func (i Inmate) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Pin
}

type NodeType string

const (
	NodePin     NodeType = "pin"
	NodeContact NodeType = "contact"
)

type GraphNode struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Color    string   `json:"color,omitempty"`
	Type     NodeType `json:"type"`
	Phones   []string `json:"phones,omitzero"`
	Identity string   `json:"identity,omitempty"`
	Alias    string   `json:"alias,omitempty"`
}

// PhoneList is the set of numbers a drill-down queries: the associated
// phones, or the node id itself when the node carries no phone list at all.
// An explicitly empty list means there is nothing to query.
func (n GraphNode) PhoneList() []string {
	if n.Phones == nil {
		return []string{n.ID}
	}
	return n.Phones
}

// Endpoint is one end of a graph link. Graph renderers rewrite link ends
// from ids to node objects, so both forms decode to the node id.
type Endpoint string

func (e *Endpoint) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, "{") {
		var obj struct {
			ID FlexID `json:"id"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		*e = Endpoint(obj.ID.String())
		return nil
	}
	var id FlexID
	if err := id.UnmarshalJSON(b); err != nil {
		return err
	}
	*e = Endpoint(id.String())
	return nil
}

type GraphLink struct {
	Source Endpoint `json:"source"`
	Target Endpoint `json:"target"`
	Value  float64  `json:"value"`
}

// Touches reports whether the link is incident to the node id on either end.
func (l GraphLink) Touches(id string) bool {
	return string(l.Source) == id || string(l.Target) == id
}

type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}

func (g Graph) Node(id string) (GraphNode, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return GraphNode{}, false
}
