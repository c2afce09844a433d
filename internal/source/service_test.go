package source_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/saulo-duarte/enade-questoes/internal/source"
)

func newTestService() source.Service {
	fetcher := fastFetcher(1)
	return source.NewService(fetcher, source.NewSearcher(fetcher, ""))
}

func TestFromURLCachesResult(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		io.WriteString(w, samplePage)
	}))
	defer srv.Close()

	svc := newTestService()

	first, err := svc.FromURL(context.Background(), srv.URL+"/noticia#topo")
	if err != nil {
		t.Fatalf("FromURL falhou: %v", err)
	}
	if first.Kind != source.KindURL || first.Origin != srv.URL+"/noticia" {
		t.Errorf("origem incorreta: %+v", first)
	}

	if _, err := svc.FromURL(context.Background(), srv.URL+"/noticia"); err != nil {
		t.Fatalf("segunda chamada falhou: %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("segunda extração deveria vir do cache, requisições: %d", calls)
	}
}

func TestFromURLErrors(t *testing.T) {
	svc := newTestService()

	for _, raw := range []string{"", "ftp://exemplo.com/arquivo", "nota-url"} {
		if _, err := svc.FromURL(context.Background(), raw); !errors.Is(err, source.ErrInvalidURL) {
			t.Errorf("URL %q: esperado ErrInvalidURL, recebido %v", raw, err)
		}
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body><nav>só menu</nav></body></html>")
	}))
	defer srv.Close()

	if _, err := svc.FromURL(context.Background(), srv.URL); !errors.Is(err, source.ErrEmptySource) {
		t.Errorf("esperado ErrEmptySource, recebido %v", err)
	}
}

func TestFromUpload(t *testing.T) {
	svc := newTestService()

	t.Run("Text", func(t *testing.T) {
		src, err := svc.FromUpload(context.Background(), "dir/notas.TXT", []byte("conteúdo"))
		if err != nil {
			t.Fatalf("FromUpload falhou: %v", err)
		}
		if src.Kind != source.KindText || src.Origin != "notas.TXT" || src.Text != "conteúdo" {
			t.Errorf("fonte incorreta: %+v", src)
		}
	})

	t.Run("Docx", func(t *testing.T) {
		data := buildDocx(t, map[string]string{"word/document.xml": documentXML})
		src, err := svc.FromUpload(context.Background(), "artigo.docx", data)
		if err != nil {
			t.Fatalf("FromUpload falhou: %v", err)
		}
		if src.Kind != source.KindDOCX || !strings.HasPrefix(src.Text, "Primeiro parágrafo") {
			t.Errorf("fonte incorreta: %+v", src)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		if _, err := svc.FromUpload(context.Background(), "planilha.xls", []byte("x")); !errors.Is(err, source.ErrUnsupportedFormat) {
			t.Errorf("esperado ErrUnsupportedFormat, recebido %v", err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := svc.FromUpload(context.Background(), "vazio.txt", []byte("  \n ")); !errors.Is(err, source.ErrEmptySource) {
			t.Errorf("esperado ErrEmptySource, recebido %v", err)
		}
	})

	t.Run("TooLarge", func(t *testing.T) {
		big := make([]byte, source.MaxUploadBytes+1)
		if _, err := svc.FromUpload(context.Background(), "grande.txt", big); !errors.Is(err, source.ErrFileTooLarge) {
			t.Errorf("esperado ErrFileTooLarge, recebido %v", err)
		}
	})
}

func TestHandlerUpload(t *testing.T) {
	router := source.Routes(source.NewHandler(newTestService()))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", "texto.txt")
	_, _ = part.Write([]byte("Texto-base enviado pelo docente."))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("esperado 200, recebido %d: %s", rec.Code, rec.Body.String())
	}
	var src source.Source
	if err := json.NewDecoder(rec.Body).Decode(&src); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if src.Origin != "texto.txt" {
		t.Errorf("origem incorreta: %s", src.Origin)
	}
}

func TestHandlerUploadTooLarge(t *testing.T) {
	router := source.Routes(source.NewHandler(newTestService()))

	tests := []struct {
		name string
		size int
	}{
		{"JustOverLimit", source.MaxUploadBytes + 1},
		{"FarOverLimit", 12 << 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body bytes.Buffer
			mw := multipart.NewWriter(&body)
			part, _ := mw.CreateFormFile("file", "grande.txt")
			_, _ = part.Write(bytes.Repeat([]byte("a"), tt.size))
			_ = mw.Close()

			req := httptest.NewRequest(http.MethodPost, "/upload", &body)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusRequestEntityTooLarge {
				t.Errorf("esperado 413, recebido %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandlerParagraphs(t *testing.T) {
	router := source.Routes(source.NewHandler(newTestService()))

	payload, _ := json.Marshal(source.ParagraphsRequest{
		Text:     "curto\n" + longLine("Longo"),
		Selected: []int{0},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/paragraphs", bytes.NewReader(payload)))

	if rec.Code != http.StatusOK {
		t.Fatalf("esperado 200, recebido %d", rec.Code)
	}
	var resp source.ParagraphsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if len(resp.Paragraphs) != 1 || resp.UsedWhole || !strings.HasPrefix(resp.Excerpt, "Longo") {
		t.Errorf("resposta incorreta: %+v", resp)
	}
}

func TestHandlerSearchEmptyQuery(t *testing.T) {
	router := source.Routes(source.NewHandler(newTestService()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("esperado 400, recebido %d", rec.Code)
	}
}
