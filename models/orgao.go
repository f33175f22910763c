package models

import "time"

// Orgao representa o órgão público do concurso (ex: TRF, Receita Federal).
type Orgao struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Nome      string     `gorm:"not null;unique" json:"nome" form:"nome"`
	Sigla     string     `gorm:"not null" json:"sigla" form:"sigla"`
	Regiao    string     `gorm:"default:''" json:"regiao" form:"regiao"` // ex: "sudeste", "nacional"
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (Orgao) TableName() string {
	return "orgaos"
}
