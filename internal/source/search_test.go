package source_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/enade-questoes/internal/source"
)

const resultsPage = `<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexemplo.com.br%2Fartigo-1&amp;rut=abc">Artigo <b>um</b></a>
</div>
<div class="result">
  <a class="result__a" href="https://exemplo.org/artigo-2">Artigo dois</a>
</div>
<div class="result">
  <a class="result__a" href="https://exemplo.org/artigo-2">Duplicado</a>
  <a class="result__snippet" href="https://exemplo.org/snippet">Snippet</a>
</div>
<div class="result">
  <a class="result__a" href="javascript:void(0)">Inválido</a>
</div>
<div class="result">
  <a class="result__a" href="https://exemplo.net/artigo-3">Artigo três</a>
</div>
</body></html>`

func TestSearchArticles(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		io.WriteString(w, resultsPage)
	}))
	defer srv.Close()

	searcher := source.NewSearcher(fastFetcher(1), srv.URL+"/html/")

	t.Run("ParsesResults", func(t *testing.T) {
		articles, err := searcher.SearchArticles(context.Background(), "reforma tributária", 10)
		if err != nil {
			t.Fatalf("SearchArticles falhou: %v", err)
		}
		if gotQuery != "reforma tributária" {
			t.Errorf("consulta enviada incorreta: %q", gotQuery)
		}
		if len(articles) != 3 {
			t.Fatalf("esperado 3 artigos, recebido %d: %+v", len(articles), articles)
		}
		if articles[0].URL != "https://exemplo.com.br/artigo-1" || articles[0].Title != "Artigo um" {
			t.Errorf("redirecionamento não foi desembrulhado: %+v", articles[0])
		}
		if articles[2].URL != "https://exemplo.net/artigo-3" {
			t.Errorf("terceiro artigo incorreto: %+v", articles[2])
		}
	})

	t.Run("Limit", func(t *testing.T) {
		articles, err := searcher.SearchArticles(context.Background(), "reforma", 1)
		if err != nil {
			t.Fatalf("SearchArticles falhou: %v", err)
		}
		if len(articles) != 1 {
			t.Errorf("limite não respeitado: %d", len(articles))
		}
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		if _, err := searcher.SearchArticles(context.Background(), "   ", 5); !errors.Is(err, source.ErrEmptySearchQuery) {
			t.Errorf("esperado ErrEmptySearchQuery, recebido %v", err)
		}
	})
}

func TestSearchArticlesNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body><p>Nenhum resultado</p></body></html>")
	}))
	defer srv.Close()

	articles, err := source.NewSearcher(fastFetcher(1), srv.URL).SearchArticles(context.Background(), "xyz", 5)
	if err != nil {
		t.Fatalf("página sem resultados não deveria ser erro: %v", err)
	}
	if articles == nil || len(articles) != 0 {
		t.Errorf("esperada lista vazia, recebido %+v", articles)
	}
}
