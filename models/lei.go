package models

import "time"

// Lei representa uma lei/norma (ex: CF/88, Lei 8.112/90).
type Lei struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Nome      string     `gorm:"not null" json:"nome" form:"nome"`
	Sigla     string     `gorm:"not null" json:"sigla" form:"sigla"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (Lei) TableName() string {
	return "leis"
}

// Artigo representa um artigo de lei ao qual questões podem ser vinculadas.
type Artigo struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	LeiID     int64      `gorm:"not null;index" json:"lei_id" form:"lei_id"`
	Numero    string     `gorm:"not null" json:"numero" form:"numero"` // ex: "5º", "37"
	Descricao string     `gorm:"type:text" json:"descricao" form:"descricao"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
