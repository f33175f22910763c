package cadernos

import (
	"encoding/json"

	"github.com/jinzhu/gorm"
)

// FiltroCaderno é o conjunto de critérios opcionais usado para selecionar
// questões. Nenhum campo é obrigatório: o filtro vazio casa com todas as
// questões ativas e não anuladas. Os campos são combinados com AND; o
// conjunto de anos é OR entre si.
type FiltroCaderno struct {
	DisciplinaID *int64 `json:"disciplina_id,omitempty" form:"disciplina_id"`
	AssuntoID    *int64 `json:"assunto_id,omitempty" form:"assunto_id"`
	BancaID      *int64 `json:"banca_id,omitempty" form:"banca_id"`
	OrgaoID      *int64 `json:"orgao_id,omitempty" form:"orgao_id"`
	CarreiraID   *int64 `json:"carreira_id,omitempty" form:"carreira_id"`
	FormacaoID   *int64 `json:"formacao_id,omitempty" form:"formacao_id"`

	Escolaridade string `json:"escolaridade,omitempty" form:"escolaridade"`
	Regiao       string `json:"regiao,omitempty" form:"regiao"`
	Anos         []int  `json:"anos,omitempty" form:"anos"`
	Dificuldade  string `json:"dificuldade,omitempty" form:"dificuldade"`
	Busca        string `json:"busca,omitempty" form:"busca"`

	ApenasComentadas   bool `json:"apenas_comentadas,omitempty" form:"apenas_comentadas"`
	ApenasComMateriais bool `json:"apenas_com_materiais,omitempty" form:"apenas_com_materiais"`
	ExcluirRespondidas bool `json:"excluir_respondidas,omitempty" form:"excluir_respondidas"`
	ApenasFavoritas    bool `json:"apenas_favoritas,omitempty" form:"apenas_favoritas"`
}

// Codificar serializa o filtro para persistência como snapshot no caderno.
func (f FiltroCaderno) Codificar() (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodificarFiltro reconstrói o filtro a partir do snapshot persistido.
func DecodificarFiltro(snapshot string) (FiltroCaderno, error) {
	var f FiltroCaderno
	if snapshot == "" {
		return f, nil
	}
	if err := json.Unmarshal([]byte(snapshot), &f); err != nil {
		return FiltroCaderno{}, err
	}
	return f, nil
}

// aplicarFiltro traduz o filtro em predicados sobre a tabela questoes.
// Compilar e Contar passam pelo mesmo caminho, então o preview de contagem
// e a compilação final nunca divergem para o mesmo filtro e mesmo dado.
func aplicarFiltro(db *gorm.DB, f FiltroCaderno, userID int64) *gorm.DB {
	q := db.Table("questoes").
		Where("questoes.is_ativa = ? AND questoes.is_anulada = ?", true, false)

	if f.DisciplinaID != nil {
		q = q.Where("questoes.disciplina_id = ?", *f.DisciplinaID)
	}
	if f.AssuntoID != nil {
		q = q.Where("questoes.assunto_id = ?", *f.AssuntoID)
	}
	if f.BancaID != nil {
		q = q.Where("questoes.banca_id = ?", *f.BancaID)
	}
	if f.OrgaoID != nil {
		q = q.Where("questoes.orgao_id = ?", *f.OrgaoID)
	}
	if f.CarreiraID != nil {
		q = q.Where("questoes.carreira_id = ?", *f.CarreiraID)
	}
	if f.FormacaoID != nil {
		q = q.Where("questoes.formacao_id = ?", *f.FormacaoID)
	}
	if f.Escolaridade != "" {
		q = q.Where("questoes.escolaridade = ?", f.Escolaridade)
	}
	if f.Regiao != "" {
		q = q.Where("questoes.regiao = ?", f.Regiao)
	}
	if len(f.Anos) > 0 {
		q = q.Where("questoes.ano IN (?)", f.Anos)
	}
	if f.Dificuldade != "" {
		q = q.Where("questoes.dificuldade = ?", f.Dificuldade)
	}
	if f.Busca != "" {
		q = q.Where("questoes.enunciado LIKE ?", "%"+f.Busca+"%")
	}

	if f.ApenasComentadas {
		q = q.Where("EXISTS (SELECT 1 FROM questoes_comentarios qc WHERE qc.questao_id = questoes.id)")
	}
	if f.ApenasComMateriais {
		q = q.Where("EXISTS (SELECT 1 FROM questoes_materiais qm WHERE qm.questao_id = questoes.id)")
	}
	if f.ApenasFavoritas {
		q = q.Where("questoes.id IN (SELECT qf.questao_id FROM questoes_favoritas qf WHERE qf.user_id = ?)", userID)
	}
	if f.ExcluirRespondidas {
		// Subtrai questões já respondidas pelo usuário em qualquer caderno ativo.
		q = q.Where(`questoes.id NOT IN (
			SELECT r.questao_id FROM respostas_usuarios r
			INNER JOIN cadernos cad ON cad.id = r.caderno_id
			WHERE r.user_id = ? AND cad.is_ativo = ?)`, userID, true)
	}

	return q
}

// Compilar resolve o filtro em uma lista ordenada e determinística de IDs de
// questões. A ordenação é sempre por id crescente; limite > 0 trunca a lista
// seguindo essa mesma ordem (nunca amostragem aleatória). Lista vazia não é
// erro — quem chama decide se aceita um caderno vazio.
func Compilar(db *gorm.DB, f FiltroCaderno, userID int64, limite int) ([]int64, error) {
	q := aplicarFiltro(db, f, userID).Order("questoes.id asc")
	if limite > 0 {
		q = q.Limit(limite)
	}

	var ids []int64
	if err := q.Pluck("questoes.id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Contar retorna quantas questões o filtro alcança, pelo mesmo pipeline de
// predicados de Compilar (só não materializa os ids).
func Contar(db *gorm.DB, f FiltroCaderno, userID int64) (int, error) {
	var total int
	if err := aplicarFiltro(db, f, userID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
