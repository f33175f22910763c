package cadernos

import (
	"sort"

	"concurseiro/models"

	"github.com/jinzhu/gorm"
)

// NoArtigo é o nó folha do índice: um artigo de lei dentro de uma disciplina.
// Percentual é relativo ao subtotal da disciplina, em double — arredondamento
// é responsabilidade da camada de apresentação.
type NoArtigo struct {
	ArtigoID   int64   `json:"artigo_id"` // 0 para questões sem artigo vinculado
	Numero     string  `json:"numero"`
	Lei        string  `json:"lei"`
	Questoes   int     `json:"questoes"`
	Percentual float64 `json:"percentual"`
}

// NoDisciplina agrupa os artigos de uma disciplina no índice do caderno.
// Percentual é relativo ao total de questões do caderno.
type NoDisciplina struct {
	DisciplinaID int64      `json:"disciplina_id"`
	Disciplina   string     `json:"disciplina"`
	Questoes     int        `json:"questoes"`
	Percentual   float64    `json:"percentual"`
	Artigos      []NoArtigo `json:"artigos"`
}

// Indice é a visão hierárquica disciplina -> artigo do caderno,
// independente do estado de respostas.
type Indice struct {
	TotalQuestoes int            `json:"total_questoes"`
	Disciplinas   []NoDisciplina `json:"disciplinas"`
}

// MontarIndice agrupa as questões do caderno em dois níveis (disciplina e
// artigo de lei) com contagens e percentuais. Ordenação determinística nos
// dois níveis: mais questões primeiro, empate por id crescente.
func MontarIndice(db *gorm.DB, user models.User, cadernoID int64) (*Indice, error) {
	caderno, err := BuscarCaderno(db, user.ID, cadernoID)
	if err != nil {
		return nil, err
	}

	rows, err := db.Raw(`
		SELECT d.id,
		       d.nome,
		       coalesce(a.id, 0) AS artigo_id,
		       coalesce(a.numero, '') AS numero,
		       coalesce(l.sigla, '') AS lei,
		       count(*) AS questoes
		FROM cadernos_questoes cq
		INNER JOIN questoes q ON q.id = cq.questao_id
		INNER JOIN disciplinas d ON d.id = q.disciplina_id
		LEFT JOIN artigos a ON a.id = q.artigo_id
		LEFT JOIN leis l ON l.id = a.lei_id
		WHERE cq.caderno_id = ?
		GROUP BY d.id, d.nome, a.id, a.numero, l.sigla`, caderno.ID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	porDisciplina := map[int64]*NoDisciplina{}
	total := 0
	for rows.Next() {
		var (
			disciplinaID int64
			nome         string
			artigo       NoArtigo
		)
		if err := rows.Scan(&disciplinaID, &nome, &artigo.ArtigoID, &artigo.Numero, &artigo.Lei, &artigo.Questoes); err != nil {
			return nil, err
		}

		no, ok := porDisciplina[disciplinaID]
		if !ok {
			no = &NoDisciplina{DisciplinaID: disciplinaID, Disciplina: nome}
			porDisciplina[disciplinaID] = no
		}
		no.Questoes += artigo.Questoes
		no.Artigos = append(no.Artigos, artigo)
		total += artigo.Questoes
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	indice := Indice{TotalQuestoes: total}
	for _, no := range porDisciplina {
		if total > 0 {
			no.Percentual = 100 * float64(no.Questoes) / float64(total)
		}
		for i := range no.Artigos {
			if no.Questoes > 0 {
				no.Artigos[i].Percentual = 100 * float64(no.Artigos[i].Questoes) / float64(no.Questoes)
			}
		}
		sort.Slice(no.Artigos, func(i, j int) bool {
			a, b := no.Artigos[i], no.Artigos[j]
			if a.Questoes != b.Questoes {
				return a.Questoes > b.Questoes
			}
			return a.ArtigoID < b.ArtigoID
		})
		indice.Disciplinas = append(indice.Disciplinas, *no)
	}

	sort.Slice(indice.Disciplinas, func(i, j int) bool {
		a, b := indice.Disciplinas[i], indice.Disciplinas[j]
		if a.Questoes != b.Questoes {
			return a.Questoes > b.Questoes
		}
		return a.DisciplinaID < b.DisciplinaID
	})

	return &indice, nil
}
