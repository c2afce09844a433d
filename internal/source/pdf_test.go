package source_test

import (
	"os"
	"strings"
	"testing"

	"github.com/saulo-duarte/enade-questoes/internal/source"
)

func TestExtractPDF(t *testing.T) {
	data, err := os.ReadFile("testdata/tres_paginas.pdf")
	if err != nil {
		t.Fatalf("falha ao ler fixture: %v", err)
	}

	text, err := source.ExtractPDF(data)
	if err != nil {
		t.Fatalf("ExtractPDF falhou: %v", err)
	}

	first := strings.Index(text, "Primeira pagina do texto-base")
	last := strings.Index(text, "Terceira pagina com a conclusao")
	if first == -1 || last == -1 {
		t.Fatalf("texto das páginas válidas ausente: %q", text)
	}
	if first > last {
		t.Errorf("páginas fora de ordem: %q", text)
	}
	if strings.Contains(text, "fluxo") {
		t.Errorf("página corrompida não deveria contribuir texto: %q", text)
	}
}

func TestExtractPDFInvalid(t *testing.T) {
	if _, err := source.ExtractPDF([]byte("%PDF-quebrado")); err == nil {
		t.Error("esperado erro para PDF inválido")
	}
}
