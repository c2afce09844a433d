package aiquiz

import (
	"fmt"
	"strings"
)

func (q *StructuredQuestion) Render() string {
	var b strings.Builder

	if q.Contextualizacao != "" {
		b.WriteString(strings.TrimSpace(q.Contextualizacao))
		b.WriteString("\n\n")
	}
	b.WriteString(strings.TrimSpace(q.Enunciado))
	b.WriteString("\n\n")

	for _, l := range letters {
		fmt.Fprintf(&b, "%s) %s\n", l, strings.TrimSpace(q.Alternativas[l]))
	}

	fmt.Fprintf(&b, "\nGabarito: Letra %s\n", q.Gabarito)

	if len(q.Justificativas) > 0 {
		b.WriteString("\nJustificativas:\n")
		for _, l := range letters {
			if j := strings.TrimSpace(q.Justificativas[l]); j != "" {
				fmt.Fprintf(&b, "%s) %s\n", l, j)
			}
		}
	}

	return b.String()
}
