package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/enade-questoes/internal/aiquiz"
	"github.com/xuri/excelize/v2"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	TXT  Format = "txt"
	JSON Format = "json"
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

const sheetName = "Questoes"

var columns = []string{
	"id", "data", "area", "curso", "assunto", "dificuldade",
	"provedor", "modelo", "referencia", "gabarito", "questao",
}

// ParseFormat defaults to txt, the format the question was always offered in.
func ParseFormat(v string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(v)), "."))
	switch f {
	case "":
		return TXT, nil
	case TXT, JSON, CSV, XLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, v)
}

func (f Format) ContentType() string {
	switch f {
	case JSON:
		return "application/json; charset=utf-8"
	case CSV:
		return "text/csv; charset=utf-8"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain; charset=utf-8"
	}
}

// FileName mirrors the download name questao_<curso>.<ext>, spaces replaced by underscores.
func FileName(curso string, f Format) string {
	name := strings.Join(strings.Fields(curso), "_")
	if name == "" {
		return "questao." + string(f)
	}
	return "questao_" + name + "." + string(f)
}

func Render(q *aiquiz.GeneratedQuestion, f Format) ([]byte, error) {
	switch f {
	case TXT:
		return []byte(q.Body()), nil
	case JSON:
		return json.MarshalIndent(q, "", "  ")
	case CSV:
		return renderCSV(q)
	case XLSX:
		return renderXLSX(q)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func row(q *aiquiz.GeneratedQuestion) []string {
	gabarito := ""
	if q.Estruturada != nil {
		gabarito = q.Estruturada.Gabarito
	}
	return []string{
		q.ID.String(),
		q.CreatedAt.Format("2006-01-02 15:04:05"),
		q.Area,
		q.Curso,
		q.Assunto,
		q.Dificuldade,
		q.Provedor,
		q.Modelo,
		q.Referencia,
		gabarito,
		q.Body(),
	}
}

func renderCSV(q *aiquiz.GeneratedQuestion) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, err
	}
	if err := w.Write(row(q)); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(q *aiquiz.GeneratedQuestion) ([]byte, error) {
	f, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := f.SetSheetRow(sheetName, "A2", toCells(row(q))); err != nil {
		return nil, fmt.Errorf("failed to write xlsx row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// newWorkbook creates a workbook whose only sheet already carries the header row.
func newWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(sheetName, "A1", toCells(columns)); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "K", "K", 80); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func toCells(values []string) *[]interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return &cells
}
