package aiquiz

import (
	"strings"
	"time"

	util "github.com/saulo-duarte/enade-questoes/internal/utils"
)

// BuildReference renders the simplified ABNT citation appended to the texto-base.
func BuildReference(fonte, ano, link string, now time.Time) string {
	var b strings.Builder
	b.WriteString("Fonte: ")
	b.WriteString(strings.TrimSpace(fonte))
	b.WriteString(", ")
	b.WriteString(strings.TrimSpace(ano))
	b.WriteString(".")
	b.WriteString(" Disponível em: ")
	b.WriteString(strings.TrimSpace(link))
	b.WriteString(".")
	b.WriteString(" Acesso em: ")
	b.WriteString(util.AccessDate(now))
	b.WriteString(".")
	return b.String()
}
