package aiquiz

import (
	"time"

	"github.com/google/uuid"
)

type ExcerptMode string

const (
	// ExcerptLiteral quotes the selected passage verbatim as texto-base.
	ExcerptLiteral ExcerptMode = "literal"
	// ExcerptAI asks the model to write a new texto-base from the source.
	ExcerptAI ExcerptMode = "ai"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

type QuestionRequest struct {
	Provedor           string       `json:"provedor"`
	Modelo             string       `json:"modelo"`
	Area               string       `json:"area"`
	Curso              string       `json:"curso"`
	Assunto            string       `json:"assunto"`
	TipoItem           string       `json:"tipo_item"`
	PerfilEgresso      string       `json:"perfil_egresso"`
	Competencia        string       `json:"competencia"`
	ObjetoConhecimento string       `json:"objeto_conhecimento"`
	Dificuldade        string       `json:"dificuldade"`
	Observacoes        string       `json:"observacoes"`
	Fonte              string       `json:"fonte"`
	Ano                string       `json:"ano"`
	Link               string       `json:"link"`
	TextoBase          string       `json:"texto_base"`
	ModoTextoBase      ExcerptMode  `json:"modo_texto_base"`
	Formato            OutputFormat `json:"formato"`
}

type SummaryRequest struct {
	Provedor string `json:"provedor"`
	Modelo   string `json:"modelo"`
	Texto    string `json:"texto"`
	Palavras int    `json:"palavras"`
}

type SummaryResponse struct {
	Resumo   string `json:"resumo"`
	Provedor string `json:"provedor"`
	Modelo   string `json:"modelo"`
}

// StructuredQuestion is the fixed JSON shape requested when Formato is json.
type StructuredQuestion struct {
	Contextualizacao string            `json:"contextualização"`
	Enunciado        string            `json:"enunciado"`
	Alternativas     map[string]string `json:"alternativas"`
	Gabarito         string            `json:"gabarito"`
	Justificativas   map[string]string `json:"justificativas"`
}

type GeneratedQuestion struct {
	ID          uuid.UUID           `json:"id"`
	Area        string              `json:"area"`
	Curso       string              `json:"curso"`
	Assunto     string              `json:"assunto"`
	Dificuldade string              `json:"dificuldade"`
	Provedor    string              `json:"provedor"`
	Modelo      string              `json:"modelo"`
	Formato     OutputFormat        `json:"formato"`
	Texto       string              `json:"texto"`
	Estruturada *StructuredQuestion `json:"estruturada,omitempty"`
	Referencia  string              `json:"referencia"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Body is the text offered for download: the rendered structured question
// when there is one, the model's answer otherwise.
func (q *GeneratedQuestion) Body() string {
	if q.Estruturada != nil {
		return q.Estruturada.Render()
	}
	return q.Texto
}
