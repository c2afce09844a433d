package catalog

import (
	"errors"
	"sort"
)

var (
	ErrUnknownArea       = errors.New("unknown area")
	ErrUnknownCourse     = errors.New("course does not belong to area")
	ErrUnknownItemType   = errors.New("unknown item type")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

const (
	ItemMultipleChoice = "Múltipla Escolha"
	ItemAssertion      = "Asserção-Razão"
	ItemDiscursive     = "Discursivo"

	DifficultyEasy   = "Fácil"
	DifficultyMedium = "Média"
	DifficultyHard   = "Difícil"
)

var areas = map[string][]string{
	"Ciências Sociais Aplicadas": {
		"Administração", "Arquitetura e Urbanismo", "Biblioteconomia",
		"Ciências Contábeis", "Ciências Econômicas", "Comunicação Social",
		"Direito", "Design", "Gestão de Políticas Públicas", "Jornalismo",
		"Publicidade e Propaganda", "Relações Internacionais", "Serviço Social",
		"Turismo",
	},
	"Engenharias": {
		"Engenharia Aeronáutica", "Engenharia Agrícola", "Engenharia Ambiental",
		"Engenharia Biomédica", "Engenharia Cartográfica", "Engenharia Civil",
		"Engenharia de Alimentos", "Engenharia de Computação",
		"Engenharia de Controle e Automação", "Engenharia de Materiais",
		"Engenharia de Minas", "Engenharia de Petróleo", "Engenharia de Produção",
		"Engenharia de Software", "Engenharia Elétrica", "Engenharia Eletrônica",
		"Engenharia Florestal", "Engenharia Mecânica", "Engenharia Mecatrônica",
		"Engenharia Metalúrgica", "Engenharia Naval", "Engenharia Química",
		"Engenharia Têxtil",
	},
	"Ciências da Saúde": {
		"Educação Física", "Enfermagem", "Farmácia", "Fisioterapia",
		"Fonoaudiologia", "Medicina", "Medicina Veterinária", "Nutrição",
		"Odontologia", "Saúde Coletiva",
	},
	"Licenciaturas": {
		"Artes Visuais", "Ciências Biológicas", "Educação Física", "Filosofia",
		"Física", "Geografia", "História", "Letras-Português", "Matemática",
		"Música", "Pedagogia", "Química", "Sociologia",
	},
	"Tecnologia": {
		"Análise e Desenvolvimento de Sistemas", "Gestão Comercial",
		"Gestão da Tecnologia da Informação", "Gestão de Recursos Humanos",
		"Gestão Financeira", "Logística", "Marketing", "Processos Gerenciais",
		"Redes de Computadores",
	},
}

var itemTypes = []string{ItemMultipleChoice, ItemAssertion, ItemDiscursive}

var difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Areas returns the grandes áreas sorted alphabetically.
func Areas() []string {
	names := make([]string, 0, len(areas))
	for name := range areas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Courses(area string) ([]string, error) {
	courses, ok := areas[area]
	if !ok {
		return nil, ErrUnknownArea
	}
	out := make([]string, len(courses))
	copy(out, courses)
	return out, nil
}

func ValidateCourse(area, course string) error {
	courses, ok := areas[area]
	if !ok {
		return ErrUnknownArea
	}
	if !contains(courses, course) {
		return ErrUnknownCourse
	}
	return nil
}

func ItemTypes() []string {
	return append([]string(nil), itemTypes...)
}

func Difficulties() []string {
	return append([]string(nil), difficulties...)
}

func NormalizeItemType(v string) (string, error) {
	if v == "" {
		return ItemMultipleChoice, nil
	}
	if !contains(itemTypes, v) {
		return "", ErrUnknownItemType
	}
	return v, nil
}

func NormalizeDifficulty(v string) (string, error) {
	if v == "" {
		return DifficultyMedium, nil
	}
	if !contains(difficulties, v) {
		return "", ErrUnknownDifficulty
	}
	return v, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
