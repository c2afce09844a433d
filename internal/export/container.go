package export

import (
	"context"
	"errors"
	"time"

	"github.com/saulo-duarte/enade-questoes/internal/config"
)

type ExportContainer struct {
	Ledger   *Ledger
	Archiver *Archiver
	Handler  *Handler
}

func NewExportContainer(settings config.Settings) *ExportContainer {
	log := config.Logger

	ledger := NewLedger(settings.Ledger.CSVPath, settings.Ledger.XLSXPath)

	archiver, err := NewArchiver(settings.Storage)
	switch {
	case errors.Is(err, ErrArchiveDisabled):
		log.Info("Armazenamento de objetos desabilitado")
	case err != nil:
		log.WithError(err).Warn("Falha ao configurar armazenamento de objetos")
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := archiver.EnsureBucket(ctx); err != nil {
			log.WithError(err).Warnf("Não foi possível verificar o bucket %s", settings.Storage.Bucket)
		}
	}

	return &ExportContainer{
		Ledger:   ledger,
		Archiver: archiver,
		Handler:  NewHandler(archiver),
	}
}
