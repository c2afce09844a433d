package source

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/saulo-duarte/enade-questoes/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	MaxUploadBytes = 10 << 20
	cacheSize      = 256
	cacheTTL       = time.Hour
)

type Service interface {
	FromURL(ctx context.Context, rawURL string) (*Source, error)
	FromUpload(ctx context.Context, name string, data []byte) (*Source, error)
	Search(ctx context.Context, query string, limit int) ([]Article, error)
}

type service struct {
	fetcher  *Fetcher
	searcher *Searcher
	cache    *expirable.LRU[string, Source]
}

func NewService(fetcher *Fetcher, searcher *Searcher) Service {
	return &service{
		fetcher:  fetcher,
		searcher: searcher,
		cache:    expirable.NewLRU[string, Source](cacheSize, nil, cacheTTL),
	}
}

func (s *service) FromURL(ctx context.Context, rawURL string) (*Source, error) {
	log := config.WithContext(ctx).WithField("url", rawURL)

	normalized, err := normalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(normalized); ok {
		log.Debug("Source served from cache")
		return &cached, nil
	}

	body, err := s.fetcher.Get(ctx, normalized)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch source URL")
		return nil, fmt.Errorf("failed to fetch url: %w", err)
	}

	title, text, err := CleanHTML(bytes.NewReader(body))
	if err != nil {
		log.WithError(err).Warn("Failed to parse HTML")
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptySource
	}

	src := Source{Kind: KindURL, Origin: normalized, Title: title, Text: text}
	s.cache.Add(normalized, src)

	log.WithField("chars", len(text)).Info("Source extracted from URL")
	return &src, nil
}

func (s *service) FromUpload(ctx context.Context, name string, data []byte) (*Source, error) {
	log := config.WithContext(ctx).WithField("file", name)

	if len(data) > MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	kind, err := kindFromName(name)
	if err != nil {
		return nil, err
	}

	var text string
	switch kind {
	case KindPDF:
		text, err = ExtractPDF(data)
	case KindDOCX:
		text, err = ExtractDOCX(data)
	case KindText:
		text = string(data)
	}
	if err != nil {
		log.WithError(err).Warn("Failed to extract uploaded file")
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptySource
	}

	log.WithFields(logrus.Fields{
		"kind":  kind,
		"chars": len(text),
	}).Info("Source extracted from upload")

	return &Source{Kind: kind, Origin: filepath.Base(name), Text: text}, nil
}

func (s *service) Search(ctx context.Context, query string, limit int) ([]Article, error) {
	articles, err := s.searcher.SearchArticles(ctx, query, limit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Article search failed")
		return nil, err
	}
	return articles, nil
}

func normalizeURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", ErrInvalidURL
	}
	u.Fragment = ""
	return u.String(), nil
}

func kindFromName(name string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	case ".txt":
		return KindText, nil
	}
	return "", ErrUnsupportedFormat
}
