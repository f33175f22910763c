package models

import "time"

// PastaCaderno agrupa cadernos do usuário, com aninhamento opcional
// (lista de adjacência via PastaPaiID). Ciclos são rejeitados na
// movimentação — ver cadernos.MoverPasta.
type PastaCaderno struct {
	ID         int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID     int64      `gorm:"not null;index" json:"user_id"`
	Nome       string     `gorm:"not null" json:"nome" form:"nome"`
	PastaPaiID *int64     `gorm:"index" json:"pasta_pai_id" form:"pasta_pai_id"`
	CreatedAt  *time.Time `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

func (PastaCaderno) TableName() string {
	return "pastas_cadernos"
}
