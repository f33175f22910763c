package models

import "time"

// Disciplina representa uma matéria de estudo (ex: Direito Constitucional).
type Disciplina struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Nome      string     `gorm:"not null;unique" json:"nome" form:"nome"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Assunto representa um tópico dentro de uma disciplina.
type Assunto struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	DisciplinaID int64      `gorm:"not null;index" json:"disciplina_id" form:"disciplina_id"`
	Nome         string     `gorm:"not null" json:"nome" form:"nome"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
