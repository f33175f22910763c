package cadernos

import (
	"time"

	"concurseiro/models"

	"github.com/jinzhu/gorm"
)

// EstatisticasDisciplina é a linha do detalhamento por disciplina.
type EstatisticasDisciplina struct {
	DisciplinaID       int64   `json:"disciplina_id"`
	Disciplina         string  `json:"disciplina"`
	Questoes           int     `json:"questoes"`
	Respondidas        int     `json:"respondidas"`
	Corretas           int     `json:"corretas"`
	Erradas            int     `json:"erradas"`
	TaxaAcerto         float64 `json:"taxa_acerto"`
	TempoMedioSegundos float64 `json:"tempo_medio_segundos"`
}

// Estatisticas agrega o desempenho do usuário em um caderno.
type Estatisticas struct {
	TotalQuestoes       int     `json:"total_questoes"`
	Respondidas         int     `json:"respondidas"`
	Corretas            int     `json:"corretas"`
	Erradas             int     `json:"erradas"`
	NaoRespondidas      int     `json:"nao_respondidas"`
	TaxaAcerto          float64 `json:"taxa_acerto"`
	PercentualConcluido float64 `json:"percentual_concluido"`

	TempoTotalSegundos int64   `json:"tempo_total_segundos"`
	TempoMedioSegundos float64 `json:"tempo_medio_segundos"`
	TempoMinSegundos   int64   `json:"tempo_min_segundos"`
	TempoMaxSegundos   int64   `json:"tempo_max_segundos"`

	UltimaSessaoEm *time.Time               `json:"ultima_sessao_em"`
	PorDisciplina  []EstatisticasDisciplina `json:"por_disciplina"`
}

// CalcularEstatisticas deriva as estatísticas do caderno direto do ledger
// (cadernos_questoes + respostas_usuarios), nunca dos contadores cacheados
// no caderno — o cache é otimização de leitura, não fonte de verdade.
func CalcularEstatisticas(db *gorm.DB, user models.User, cadernoID int64) (*Estatisticas, error) {
	caderno, err := BuscarCaderno(db, user.ID, cadernoID)
	if err != nil {
		return nil, err
	}

	stats := Estatisticas{}

	if err := db.Model(&models.CadernoQuestao{}).
		Where("caderno_id = ?", caderno.ID).
		Count(&stats.TotalQuestoes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.RespostaUsuario{}).
		Where("caderno_id = ?", caderno.ID).
		Count(&stats.Respondidas).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.RespostaUsuario{}).
		Where("caderno_id = ? AND correta = ?", caderno.ID, true).
		Count(&stats.Corretas).Error; err != nil {
		return nil, err
	}

	stats.Erradas = stats.Respondidas - stats.Corretas
	stats.NaoRespondidas = stats.TotalQuestoes - stats.Respondidas
	if stats.Respondidas > 0 {
		stats.TaxaAcerto = 100 * float64(stats.Corretas) / float64(stats.Respondidas)
	}
	if stats.TotalQuestoes > 0 {
		stats.PercentualConcluido = 100 * float64(stats.Respondidas) / float64(stats.TotalQuestoes)
	}

	if stats.Respondidas > 0 {
		var tempos struct {
			Total int64
			Medio float64
			Min   int64
			Max   int64
		}
		if err := db.Table("respostas_usuarios").
			Select("coalesce(sum(tempo_segundos), 0) as total, coalesce(avg(tempo_segundos), 0) as medio, coalesce(min(tempo_segundos), 0) as min, coalesce(max(tempo_segundos), 0) as max").
			Where("caderno_id = ?", caderno.ID).
			Scan(&tempos).Error; err != nil {
			return nil, err
		}
		stats.TempoTotalSegundos = tempos.Total
		stats.TempoMedioSegundos = tempos.Medio
		stats.TempoMinSegundos = tempos.Min
		stats.TempoMaxSegundos = tempos.Max

		var ultima models.RespostaUsuario
		if err := db.Where("caderno_id = ?", caderno.ID).
			Order("created_at desc, id desc").
			First(&ultima).Error; err == nil {
			stats.UltimaSessaoEm = ultima.CreatedAt
		}
	}

	porDisciplina, err := estatisticasPorDisciplina(db, caderno.ID)
	if err != nil {
		return nil, err
	}
	stats.PorDisciplina = porDisciplina

	return &stats, nil
}

// estatisticasPorDisciplina agrupa as questões do caderno por disciplina,
// cruzando com as respostas registradas. Ordenação: mais questões primeiro,
// empate por id de disciplina crescente (estável para o top-N do dashboard).
func estatisticasPorDisciplina(db *gorm.DB, cadernoID int64) ([]EstatisticasDisciplina, error) {
	rows, err := db.Raw(`
		SELECT d.id,
		       d.nome,
		       count(cq.id) AS questoes,
		       count(r.id) AS respondidas,
		       coalesce(sum(CASE WHEN r.correta THEN 1 ELSE 0 END), 0) AS corretas,
		       coalesce(avg(CASE WHEN r.id IS NOT NULL THEN r.tempo_segundos END), 0) AS tempo_medio
		FROM cadernos_questoes cq
		INNER JOIN questoes q ON q.id = cq.questao_id
		INNER JOIN disciplinas d ON d.id = q.disciplina_id
		LEFT JOIN respostas_usuarios r
		       ON r.caderno_id = cq.caderno_id AND r.questao_id = cq.questao_id
		WHERE cq.caderno_id = ?
		GROUP BY d.id, d.nome
		ORDER BY questoes DESC, d.id ASC`, cadernoID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EstatisticasDisciplina
	for rows.Next() {
		var e EstatisticasDisciplina
		if err := rows.Scan(&e.DisciplinaID, &e.Disciplina, &e.Questoes, &e.Respondidas, &e.Corretas, &e.TempoMedioSegundos); err != nil {
			return nil, err
		}
		e.Erradas = e.Respondidas - e.Corretas
		if e.Respondidas > 0 {
			e.TaxaAcerto = 100 * float64(e.Corretas) / float64(e.Respondidas)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
