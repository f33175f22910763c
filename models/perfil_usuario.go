package models

import "time"

// PerfilUsuario guarda preferências de estudo do usuário.
// A linha é criada em best-effort no cadastro: se falhar, apenas logamos e
// seguimos — o perfil pode ser reconstruído depois sem travar o registro.
type PerfilUsuario struct {
	ID                 int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID             int64      `gorm:"not null;unique_index" json:"user_id"`
	MetaDiariaQuestoes int        `gorm:"not null;default:20" json:"meta_diaria_questoes" form:"meta_diaria_questoes"`
	ModoPadrao         string     `gorm:"not null;default:'pratica'" json:"modo_padrao" form:"modo_padrao"`
	CreatedAt          *time.Time `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

func (PerfilUsuario) TableName() string {
	return "perfis_usuarios"
}
