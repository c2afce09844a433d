package aiquiz

import (
	"fmt"
	"strings"
)

const requisitosENADE = `
- Originalidade total (sem reprises de provas antigas).
- Texto-base imprescindível; referenciar Autor/Veículo, Ano, Link/Arquivo.
- Enunciado afirmativo, claro e objetivo.
- 5 alternativas (A–E), apenas 1 correta.
- Distratores plausíveis, mas incorretos.
- Linguagem formal, impessoal, norma-padrão.
- Foco em resolver situação-problema (não memorização).
- Evitar “sempre”, “nunca”, “todos”, “nenhum”, “apenas”, “somente”.
`

const jsonShape = `{
  "contextualização": "<texto-base seguido da referência>",
  "enunciado": "<comando da questão>",
  "alternativas": {"A": "...", "B": "...", "C": "...", "D": "...", "E": "..."},
  "gabarito": "<letra correta, de A a E>",
  "justificativas": {"A": "...", "B": "...", "C": "...", "D": "...", "E": "..."}
}`

// maxPromptSourceRunes bounds how much source text is pasted into a prompt.
const maxPromptSourceRunes = 12000

func SystemPrompt() string {
	return "Você é docente especialista ENADE. Siga estas regras:\n" + requisitosENADE
}

func BuildUserPrompt(req QuestionRequest, referencia string) string {
	var b strings.Builder

	b.WriteString("**ENCOMENDA ENADE**\n\n")

	texto := truncateRunes(req.TextoBase, maxPromptSourceRunes)
	if req.ModoTextoBase == ExcerptAI {
		b.WriteString("**1. CRIAR NOVO TEXTO-BASE:**\n")
		b.WriteString("Com base no material a seguir, redija um texto-base original e conciso.\n")
		b.WriteString(texto)
		b.WriteString("\n\nEm seguida, elabore a questão completa.\n\n")
	} else {
		b.WriteString("**1. TEXTO-BASE LITERAL:**\n")
		b.WriteString(texto)
		b.WriteString("\n\n")
	}

	b.WriteString(referencia)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "- Área: %s\n", req.Area)
	fmt.Fprintf(&b, "- Curso: %s\n", req.Curso)
	fmt.Fprintf(&b, "- Assunto: %s\n", req.Assunto)
	fmt.Fprintf(&b, "- Tipo de item: %s\n", req.TipoItem)
	fmt.Fprintf(&b, "- Perfil do egresso: %s\n", req.PerfilEgresso)
	fmt.Fprintf(&b, "- Competência: %s\n", req.Competencia)
	fmt.Fprintf(&b, "- Objeto de conhecimento: %s\n", req.ObjetoConhecimento)
	fmt.Fprintf(&b, "- Dificuldade: %s\n", req.Dificuldade)
	fmt.Fprintf(&b, "- Observações: %s\n\n", req.Observacoes)

	if req.Formato == FormatJSON {
		b.WriteString("**Tarefa:** Gere a questão completa e responda SOMENTE com um objeto JSON válido, sem texto fora do JSON, neste formato:\n")
		b.WriteString(jsonShape)
		b.WriteString("\nA contextualização deve conter o texto-base e a referência (ABNT simplificado).\n")
		return b.String()
	}

	b.WriteString("**Tarefa:** Gere a questão completa contendo:\n")
	b.WriteString("1) Texto-base (ABNT simplificado);\n")
	b.WriteString("2) Enunciado claro e objetivo;\n")
	b.WriteString("3) Cinco alternativas (A–E);\n")
	b.WriteString("4) Gabarito: \"Gabarito: Letra X\".\n")
	return b.String()
}

func BuildSummaryPrompt(texto string, palavras int) string {
	if palavras <= 0 {
		palavras = 250
	}
	return fmt.Sprintf(
		"Resuma o texto a seguir em até %d palavras, em português formal, preservando dados, "+
			"conceitos e argumentos centrais que possam servir de texto-base para uma questão ENADE. "+
			"Não acrescente informações que não estejam no texto.\n\n%s",
		palavras, truncateRunes(texto, maxPromptSourceRunes),
	)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
