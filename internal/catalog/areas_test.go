package catalog_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"testing"

	"github.com/saulo-duarte/enade-questoes/internal/catalog"
)

func TestAreasSorted(t *testing.T) {
	areas := catalog.Areas()
	if len(areas) == 0 {
		t.Fatal("nenhuma área retornada")
	}
	if !sort.StringsAreSorted(areas) {
		t.Errorf("áreas deveriam estar ordenadas: %v", areas)
	}
}

func TestValidateCourse(t *testing.T) {
	if err := catalog.ValidateCourse("Engenharias", "Engenharia de Software"); err != nil {
		t.Errorf("curso válido rejeitado: %v", err)
	}
	if err := catalog.ValidateCourse("Engenharias", "Medicina"); !errors.Is(err, catalog.ErrUnknownCourse) {
		t.Errorf("esperado ErrUnknownCourse, recebido %v", err)
	}
	if err := catalog.ValidateCourse("Artes Marciais", "Judô"); !errors.Is(err, catalog.ErrUnknownArea) {
		t.Errorf("esperado ErrUnknownArea, recebido %v", err)
	}
}

func TestCoursesReturnsCopy(t *testing.T) {
	courses, err := catalog.Courses("Ciências da Saúde")
	if err != nil {
		t.Fatalf("Courses falhou: %v", err)
	}
	courses[0] = "alterado"

	again, _ := catalog.Courses("Ciências da Saúde")
	if again[0] == "alterado" {
		t.Error("Courses deveria devolver uma cópia")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	if v, _ := catalog.NormalizeDifficulty(""); v != catalog.DifficultyMedium {
		t.Errorf("dificuldade padrão incorreta: %s", v)
	}
	if v, _ := catalog.NormalizeItemType(""); v != catalog.ItemMultipleChoice {
		t.Errorf("tipo padrão incorreto: %s", v)
	}
	if _, err := catalog.NormalizeDifficulty("Impossível"); !errors.Is(err, catalog.ErrUnknownDifficulty) {
		t.Errorf("esperado ErrUnknownDifficulty, recebido %v", err)
	}
	if _, err := catalog.NormalizeItemType("Verdadeiro ou Falso"); !errors.Is(err, catalog.ErrUnknownItemType) {
		t.Errorf("esperado ErrUnknownItemType, recebido %v", err)
	}
}

func TestRoutes(t *testing.T) {
	router := catalog.Routes(catalog.NewHandler())

	t.Run("Courses", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/areas/"+url.PathEscape("Engenharias")+"/courses", nil)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("esperado 200, recebido %d", rec.Code)
		}
		var courses []string
		if err := json.NewDecoder(rec.Body).Decode(&courses); err != nil {
			t.Fatalf("resposta inválida: %v", err)
		}
		if len(courses) != 23 {
			t.Errorf("esperado 23 cursos de engenharia, recebido %d", len(courses))
		}
	})

	t.Run("UnknownArea", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/areas/Nada/courses", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("esperado 404, recebido %d", rec.Code)
		}
	})

	t.Run("Options", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/options", nil))

		var opts catalog.OptionsResponse
		if err := json.NewDecoder(rec.Body).Decode(&opts); err != nil {
			t.Fatalf("resposta inválida: %v", err)
		}
		if len(opts.ItemTypes) != 3 || len(opts.Difficulties) != 3 {
			t.Errorf("opções incompletas: %+v", opts)
		}
		if models := opts.Models["gemini"]; len(models) == 0 || models[0] != "gemini-1.5-pro-latest" {
			t.Errorf("modelos do gemini incorretos: %v", opts.Models)
		}
	})
}
