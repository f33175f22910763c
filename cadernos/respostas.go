package cadernos

import (
	"strings"
	"time"

	"concurseiro/models"

	"github.com/jinzhu/gorm"
)

// ResultadoResposta é o retorno de SalvarResposta: correção da resposta e o
// estado atualizado dos contadores do caderno.
type ResultadoResposta struct {
	Correta             bool    `json:"correta"`
	Gabarito            string  `json:"gabarito"`
	QuestoesRespondidas int     `json:"questoes_respondidas"`
	TotalQuestoes       int     `json:"total_questoes"`
	TaxaAcerto          float64 `json:"taxa_acerto"`
}

// SalvarResposta registra a resposta do usuário para uma questão do caderno
// (equivalente à procedure salvar_resposta_caderno). Toda a validação é feita
// aqui no servidor: posse do caderno, questão pertencente ao caderno, caderno
// não concluído e ausência de resposta anterior.
//
// A correção compara com o gabarito vigente no momento da submissão —
// correções posteriores do gabarito valem para questões ainda não
// respondidas, mas nunca alteram respostas já registradas.
//
// Inserção da resposta e atualização dos contadores desnormalizados do
// caderno acontecem na mesma transação; o índice único de respostas_usuarios
// fecha a corrida de duas submissões simultâneas para o mesmo par.
func SalvarResposta(db *gorm.DB, user models.User, cadernoID, questaoID int64, resposta string, tempoSegundos int64, modo string) (*ResultadoResposta, error) {
	resposta = strings.ToUpper(strings.TrimSpace(resposta))
	if resposta == "" {
		return nil, ErroValidacao{Msg: "resposta é obrigatória"}
	}
	if tempoSegundos < 0 {
		return nil, ErroValidacao{Msg: "tempo inválido"}
	}

	modo = strings.TrimSpace(modo)
	if modo == "" {
		modo = models.MODO_PRATICA
	}
	switch modo {
	case models.MODO_PRATICA, models.MODO_PROVA, models.MODO_REVISAO:
	default:
		return nil, ErroValidacao{Msg: "modo inválido (pratica, prova ou revisao)"}
	}

	caderno, err := BuscarCaderno(db, user.ID, cadernoID)
	if err != nil {
		return nil, err
	}
	if caderno.IsConcluido {
		return nil, ErrCadernoConcluido
	}

	var link models.CadernoQuestao
	if err := db.Where("caderno_id = ? AND questao_id = ?", cadernoID, questaoID).
		First(&link).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrQuestaoForaDoCaderno
		}
		return nil, err
	}

	var existente models.RespostaUsuario
	err = db.Where("caderno_id = ? AND questao_id = ? AND user_id = ?", cadernoID, questaoID, user.ID).
		First(&existente).Error
	if err == nil {
		return nil, ErrJaRespondida
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	var questao models.Questao
	if err := db.First(&questao, questaoID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErroNaoEncontrado{Recurso: "questão"}
		}
		return nil, err
	}

	correta := resposta == strings.ToUpper(questao.Gabarito)
	agora := time.Now()

	tx := db.Begin()

	registro := models.RespostaUsuario{
		CadernoID:     cadernoID,
		QuestaoID:     questaoID,
		UserID:        user.ID,
		Resposta:      resposta,
		Correta:       correta,
		TempoSegundos: tempoSegundos,
		Modo:          modo,
	}
	if err := tx.Create(&registro).Error; err != nil {
		tx.Rollback()
		if isViolacaoUnicidade(err) {
			// outra submissão chegou primeiro
			return nil, ErrJaRespondida
		}
		return nil, err
	}

	// recomputa a taxa dentro da transação, a partir do ledger
	var respondidas, corretas int
	if err := tx.Model(&models.RespostaUsuario{}).
		Where("caderno_id = ?", cadernoID).
		Count(&respondidas).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Model(&models.RespostaUsuario{}).
		Where("caderno_id = ? AND correta = ?", cadernoID, true).
		Count(&corretas).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	taxa := 0.0
	if respondidas > 0 {
		taxa = 100 * float64(corretas) / float64(respondidas)
	}

	updates := map[string]interface{}{
		"questoes_respondidas": respondidas,
		"taxa_acerto":          taxa,
		"tempo_total_segundos": gorm.Expr("tempo_total_segundos + ?", tempoSegundos),
		"ultima_sessao_em":     agora,
	}
	if err := tx.Model(&models.Caderno{}).
		Where("id = ?", cadernoID).
		Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	return &ResultadoResposta{
		Correta:             correta,
		Gabarito:            strings.ToUpper(questao.Gabarito),
		QuestoesRespondidas: respondidas,
		TotalQuestoes:       caderno.TotalQuestoes,
		TaxaAcerto:          taxa,
	}, nil
}

// RecalcularContadores reconstrói o cache desnormalizado do caderno a partir
// do ledger de respostas. Serve de reparo quando o cache diverge e de oráculo
// nos testes de consistência.
func RecalcularContadores(db *gorm.DB, cadernoID int64) error {
	var total, respondidas, corretas int
	if err := db.Model(&models.CadernoQuestao{}).
		Where("caderno_id = ?", cadernoID).
		Count(&total).Error; err != nil {
		return err
	}
	if err := db.Model(&models.RespostaUsuario{}).
		Where("caderno_id = ?", cadernoID).
		Count(&respondidas).Error; err != nil {
		return err
	}
	if err := db.Model(&models.RespostaUsuario{}).
		Where("caderno_id = ? AND correta = ?", cadernoID, true).
		Count(&corretas).Error; err != nil {
		return err
	}

	var tempoTotal struct {
		Total int64
	}
	if err := db.Table("respostas_usuarios").
		Select("coalesce(sum(tempo_segundos), 0) as total").
		Where("caderno_id = ?", cadernoID).
		Scan(&tempoTotal).Error; err != nil {
		return err
	}

	taxa := 0.0
	if respondidas > 0 {
		taxa = 100 * float64(corretas) / float64(respondidas)
	}

	updates := map[string]interface{}{
		"total_questoes":       total,
		"questoes_respondidas": respondidas,
		"taxa_acerto":          taxa,
		"tempo_total_segundos": tempoTotal.Total,
	}
	return db.Model(&models.Caderno{}).
		Where("id = ?", cadernoID).
		Updates(updates).Error
}

func isViolacaoUnicidade(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
