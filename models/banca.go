package models

import "time"

// Banca representa uma banca examinadora (ex: CESPE, FCC, FGV).
type Banca struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Nome      string     `gorm:"not null;unique" json:"nome" form:"nome"`
	Sigla     string     `gorm:"not null" json:"sigla" form:"sigla"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
