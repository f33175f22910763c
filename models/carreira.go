package models

import "time"

// Carreira representa a área de carreira do concurso (ex: fiscal, policial, tribunais).
type Carreira struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Nome      string     `gorm:"not null;unique" json:"nome" form:"nome"`
	Area      string     `gorm:"default:''" json:"area" form:"area"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Formacao representa a formação exigida pelo cargo (ex: Direito, Contabilidade).
type Formacao struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Nome      string     `gorm:"not null;unique" json:"nome" form:"nome"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (Formacao) TableName() string {
	return "formacoes"
}
