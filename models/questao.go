package models

import "time"

/************************************************
/**** MARK: DIFICULDADE ****/
/************************************************/
const DIFICULDADE_FACIL = "facil"
const DIFICULDADE_MEDIA = "media"
const DIFICULDADE_DIFICIL = "dificil"

/************************************************
/**** MARK: ESCOLARIDADE ****/
/************************************************/
const ESCOLARIDADE_MEDIO = "medio"
const ESCOLARIDADE_SUPERIOR = "superior"

// Questao representa uma questão de prova de concurso.
// O campo Gabarito é a letra oficial (A..E); questões anuladas ou inativas
// nunca entram na compilação de cadernos.
type Questao struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Enunciado    string     `gorm:"type:text;not null" json:"enunciado" form:"enunciado"`
	Alternativas string     `gorm:"type:text" json:"alternativas" form:"alternativas"` // JSON: {"A": "...", "B": "..."}
	Gabarito     string     `gorm:"not null" json:"gabarito" form:"gabarito"`

	DisciplinaID int64  `gorm:"not null;index" json:"disciplina_id" form:"disciplina_id"`
	AssuntoID    *int64 `gorm:"index" json:"assunto_id" form:"assunto_id"`
	ArtigoID     *int64 `gorm:"index" json:"artigo_id" form:"artigo_id"`
	BancaID      *int64 `gorm:"index" json:"banca_id" form:"banca_id"`
	OrgaoID      *int64 `gorm:"index" json:"orgao_id" form:"orgao_id"`
	CarreiraID   *int64 `gorm:"index" json:"carreira_id" form:"carreira_id"`
	FormacaoID   *int64 `gorm:"index" json:"formacao_id" form:"formacao_id"`

	Escolaridade string `gorm:"default:''" json:"escolaridade" form:"escolaridade"`
	Regiao       string `gorm:"default:''" json:"regiao" form:"regiao"`
	Ano          int    `gorm:"index" json:"ano" form:"ano"`
	Dificuldade  string `gorm:"default:''" json:"dificuldade" form:"dificuldade"`

	IsAtiva   bool       `gorm:"not null;default:true" json:"is_ativa" form:"is_ativa"`
	IsAnulada bool       `gorm:"not null;default:false" json:"is_anulada" form:"is_anulada"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (Questao) TableName() string {
	return "questoes"
}
