package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/saulo-duarte/enade-questoes/internal/aiquiz"
	"github.com/saulo-duarte/enade-questoes/internal/config"
	"github.com/xuri/excelize/v2"
)

// Ledger appends one row per generated question to a CSV file and/or an
// Excel workbook. Either path may be empty.
type Ledger struct {
	mu       sync.Mutex
	csvPath  string
	xlsxPath string
}

func NewLedger(csvPath, xlsxPath string) *Ledger {
	return &Ledger{csvPath: csvPath, xlsxPath: xlsxPath}
}

func (l *Ledger) Enabled() bool {
	return l.csvPath != "" || l.xlsxPath != ""
}

func (l *Ledger) Record(ctx context.Context, q *aiquiz.GeneratedQuestion) error {
	if !l.Enabled() {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	values := row(q)
	var errs []error
	if l.csvPath != "" {
		if err := appendCSV(l.csvPath, values); err != nil {
			errs = append(errs, fmt.Errorf("csv ledger: %w", err))
		}
	}
	if l.xlsxPath != "" {
		if err := appendXLSX(l.xlsxPath, values); err != nil {
			errs = append(errs, fmt.Errorf("xlsx ledger: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	config.WithContext(ctx).WithField("question_id", q.ID).Debug("[LEDGER] Questão registrada na planilha")
	return nil
}

func appendCSV(path string, values []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)
	if info.Size() == 0 {
		if err := w.Write(columns); err != nil {
			return err
		}
	}
	if err := w.Write(values); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func appendXLSX(path string, values []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var (
		f   *excelize.File
		err error
	)
	if _, statErr := os.Stat(path); statErr == nil {
		f, err = excelize.OpenFile(path)
	} else if errors.Is(statErr, os.ErrNotExist) {
		f, err = newWorkbook()
	} else {
		return statErr
	}
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, toCells(values)); err != nil {
		return err
	}
	return f.SaveAs(path)
}
