package source_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/saulo-duarte/enade-questoes/internal/source"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Primeiro parágrafo</w:t></w:r><w:r><w:t xml:space="preserve"> continua aqui.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Coluna</w:t><w:tab/><w:t>valor</w:t></w:r></w:p>
    <w:p><w:r><w:t>Linha um</w:t><w:br/><w:t>Linha dois</w:t></w:r></w:p>
  </w:body>
</w:document>`

func buildDocx(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("falha ao criar %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("falha ao escrever %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("falha ao fechar zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractDOCX(t *testing.T) {
	data := buildDocx(t, map[string]string{
		"[Content_Types].xml": "<Types/>",
		"word/document.xml":   documentXML,
	})

	text, err := source.ExtractDOCX(data)
	if err != nil {
		t.Fatalf("ExtractDOCX falhou: %v", err)
	}

	want := "Primeiro parágrafo continua aqui.\nColuna\tvalor\nLinha um\nLinha dois"
	if text != want {
		t.Errorf("texto extraído incorreto:\n%q\nesperado:\n%q", text, want)
	}
}

func TestExtractDOCXNestedParagraphs(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t xml:space="preserve">Antes da caixa </w:t></w:r>` +
		`<w:r><w:pict><w:txbxContent><w:p><w:r><w:t>Dentro</w:t></w:r></w:p></w:txbxContent></w:pict></w:r>` +
		`<w:r><w:t>depois da caixa</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	data := buildDocx(t, map[string]string{"word/document.xml": doc})

	text, err := source.ExtractDOCX(data)
	if err != nil {
		t.Fatalf("ExtractDOCX falhou: %v", err)
	}

	want := "Dentro\nAntes da caixa depois da caixa"
	if text != want {
		t.Errorf("texto extraído incorreto:\n%q\nesperado:\n%q", text, want)
	}
}

func TestExtractDOCXMissingDocument(t *testing.T) {
	data := buildDocx(t, map[string]string{"word/styles.xml": "<styles/>"})
	if _, err := source.ExtractDOCX(data); !errors.Is(err, source.ErrMissingDocumentXML) {
		t.Errorf("esperado ErrMissingDocumentXML, recebido %v", err)
	}
}

func TestExtractDOCXNotZip(t *testing.T) {
	if _, err := source.ExtractDOCX([]byte("não é um zip")); err == nil {
		t.Error("esperado erro para arquivo inválido")
	}
}
