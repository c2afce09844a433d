package source

import "errors"

var (
	ErrEmptySource        = errors.New("no text could be extracted from source")
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrFileTooLarge       = errors.New("file too large")
	ErrInvalidURL         = errors.New("invalid url")
	ErrUnexpectedStatus   = errors.New("unexpected status code")
	ErrEmptySearchQuery   = errors.New("search query is required")
	ErrMissingDocumentXML = errors.New("word/document.xml not found")
)

type Kind string

const (
	KindURL  Kind = "url"
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindText Kind = "txt"
)

// Source is an extracted texto-base. Origin is the URL or the uploaded file name
// and ends up in the "Disponível em" part of the reference.
type Source struct {
	Kind   Kind   `json:"kind"`
	Origin string `json:"origin"`
	Title  string `json:"title,omitempty"`
	Text   string `json:"text"`
}

type Paragraph struct {
	Index   int    `json:"index"`
	Text    string `json:"text"`
	Preview string `json:"preview"`
}

type Article struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type URLRequest struct {
	URL string `json:"url"`
}

type ParagraphsRequest struct {
	Text      string `json:"text"`
	MinLength int    `json:"min_length"`
	Selected  []int  `json:"selected"`
}

type ParagraphsResponse struct {
	Paragraphs []Paragraph `json:"paragraphs"`
	Excerpt    string      `json:"excerpt"`
	UsedWhole  bool        `json:"used_whole_text"`
}
