package models

import "time"

// Caderno representa o caderno de questões do usuário: uma coleção nomeada,
// compilada a partir de um snapshot de filtro e com progresso acompanhado.
//
// Os contadores (QuestoesRespondidas, TaxaAcerto, TempoTotalSegundos) são
// cache desnormalizado — a fonte de verdade é a tabela respostas_usuarios,
// e cadernos.RecalcularContadores reconstrói o cache a partir dela.
type Caderno struct {
	ID      int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID  int64  `gorm:"not null;index" json:"user_id"`
	Nome    string `gorm:"not null" json:"nome" form:"nome"`
	PastaID *int64 `gorm:"index" json:"pasta_id" form:"pasta_id"`

	// Filtro é o snapshot JSON do FiltroCaderno usado na compilação.
	// Persistido para permitir recompilar sem depender do estado atual da taxonomia.
	Filtro string `gorm:"type:text" json:"filtro"`
	Limite int    `gorm:"not null;default:0" json:"limite"`

	TotalQuestoes       int     `gorm:"not null;default:0" json:"total_questoes"`
	QuestoesRespondidas int     `gorm:"not null;default:0" json:"questoes_respondidas"`
	TaxaAcerto          float64 `gorm:"not null;default:0" json:"taxa_acerto"`
	TempoTotalSegundos  int64   `gorm:"not null;default:0" json:"tempo_total_segundos"`

	IsAtivo     bool `gorm:"not null;default:true" json:"is_ativo"`
	IsConcluido bool `gorm:"not null;default:false" json:"is_concluido"`

	UltimaSessaoEm *time.Time `json:"ultima_sessao_em"`
	ConcluidoEm    *time.Time `json:"concluido_em"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}
