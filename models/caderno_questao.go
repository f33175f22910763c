package models

import "time"

// CadernoQuestao materializa o vínculo caderno -> questão.
// Ordem é contígua a partir de 1 na compilação e preservada depois;
// questões acrescentadas em recompilações continuam a numeração.
type CadernoQuestao struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CadernoID int64      `gorm:"not null;unique_index:uix_caderno_questao" json:"caderno_id"`
	QuestaoID int64      `gorm:"not null;unique_index:uix_caderno_questao" json:"questao_id"`
	Ordem     int        `gorm:"not null" json:"ordem"`
	CreatedAt *time.Time `json:"created_at"`
}

func (CadernoQuestao) TableName() string {
	return "cadernos_questoes"
}
