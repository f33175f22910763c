package models

import "time"

/************************************************
/**** MARK: MODOS DE RESPOSTA ****/
/************************************************/
const MODO_PRATICA = "pratica"
const MODO_PROVA = "prova"
const MODO_REVISAO = "revisao"

// RespostaUsuario registra a resposta do usuário para uma questão de um caderno.
// Uma linha por (caderno, questão, usuário) — o índice único fecha a corrida
// de submissões concorrentes; a linha é imutável depois de criada.
type RespostaUsuario struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CadernoID     int64      `gorm:"not null;unique_index:uix_resposta_caderno_questao_user" json:"caderno_id"`
	QuestaoID     int64      `gorm:"not null;unique_index:uix_resposta_caderno_questao_user" json:"questao_id"`
	UserID        int64      `gorm:"not null;unique_index:uix_resposta_caderno_questao_user" json:"user_id"`
	Resposta      string     `gorm:"not null" json:"resposta"`
	Correta       bool       `gorm:"not null;default:false" json:"correta"`
	TempoSegundos int64      `gorm:"not null;default:0" json:"tempo_segundos"`
	Modo          string     `gorm:"not null;default:'pratica'" json:"modo"`
	CreatedAt     *time.Time `json:"created_at"`
}

func (RespostaUsuario) TableName() string {
	return "respostas_usuarios"
}
