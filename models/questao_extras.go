package models

import "time"

// QuestaoComentario é o comentário de professor sobre uma questão.
// A existência de pelo menos um comentário habilita o filtro "apenas comentadas".
type QuestaoComentario struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	QuestaoID int64      `gorm:"not null;index" json:"questao_id" form:"questao_id"`
	Autor     string     `gorm:"not null" json:"autor" form:"autor"`
	Texto     string     `gorm:"type:text;not null" json:"texto" form:"texto"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (QuestaoComentario) TableName() string {
	return "questoes_comentarios"
}

// QuestaoMaterial é um material extra vinculado a uma questão (vídeo, PDF, link).
type QuestaoMaterial struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	QuestaoID int64      `gorm:"not null;index" json:"questao_id" form:"questao_id"`
	Titulo    string     `gorm:"not null" json:"titulo" form:"titulo"`
	URL       string     `gorm:"not null" json:"url" form:"url"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (QuestaoMaterial) TableName() string {
	return "questoes_materiais"
}

// QuestaoFavorita marca uma questão como favorita do usuário.
// Par (user_id, questao_id) é único.
type QuestaoFavorita struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;unique_index:uix_questao_favorita" json:"user_id"`
	QuestaoID int64      `gorm:"not null;unique_index:uix_questao_favorita" json:"questao_id" form:"questao_id"`
	CreatedAt *time.Time `json:"created_at"`
}

func (QuestaoFavorita) TableName() string {
	return "questoes_favoritas"
}
