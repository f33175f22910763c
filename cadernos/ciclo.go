package cadernos

import (
	"strings"
	"time"

	"concurseiro/models"

	"github.com/jinzhu/gorm"
)

const NOME_MIN = 3
const NOME_MAX = 200

// BuscarCaderno carrega um caderno garantindo a posse.
// Caderno de outro usuário responde como inexistente.
func BuscarCaderno(db *gorm.DB, userID, cadernoID int64) (*models.Caderno, error) {
	var caderno models.Caderno
	err := db.Where("id = ? AND user_id = ?", cadernoID, userID).First(&caderno).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErroNaoEncontrado{Recurso: "caderno"}
		}
		return nil, err
	}
	return &caderno, nil
}

func validarNome(nome string) (string, error) {
	nome = strings.TrimSpace(nome)
	n := len([]rune(nome))
	if n < NOME_MIN {
		return "", ErroValidacao{Msg: "nome deve ter pelo menos 3 caracteres"}
	}
	if n > NOME_MAX {
		return "", ErroValidacao{Msg: "nome deve ter no máximo 200 caracteres"}
	}
	return nome, nil
}

func contarCadernosAtivos(db *gorm.DB, userID int64) (int, error) {
	var ativos int
	err := db.Model(&models.Caderno{}).
		Where("user_id = ? AND is_ativo = ? AND is_concluido = ?", userID, true, false).
		Count(&ativos).Error
	return ativos, err
}

// CriarCaderno compila o filtro e cria o caderno com os vínculos de questões.
// Valida nome, teto de questões do plano, teto de cadernos ativos e posse da
// pasta antes de tocar no banco.
func CriarCaderno(db *gorm.DB, user models.User, nome string, filtro FiltroCaderno, limite int, pastaID *int64) (*models.Caderno, error) {
	nome, err := validarNome(nome)
	if err != nil {
		return nil, err
	}
	if limite <= 0 {
		return nil, ErroValidacao{Msg: "limite de questões deve ser maior que zero"}
	}

	limites := LimitesDoPlano(user.Plano)
	if limite > limites.QuestoesPorCaderno {
		return nil, ErroLimitePlano{Plano: user.Plano, Recurso: "questões por caderno", Limite: limites.QuestoesPorCaderno}
	}

	ativos, err := contarCadernosAtivos(db, user.ID)
	if err != nil {
		return nil, err
	}
	if ativos >= limites.CadernosAtivos {
		return nil, ErroLimitePlano{Plano: user.Plano, Recurso: "cadernos ativos", Limite: limites.CadernosAtivos}
	}

	if pastaID != nil {
		if _, err := BuscarPasta(db, user.ID, *pastaID); err != nil {
			return nil, err
		}
	}

	ids, err := Compilar(db, filtro, user.ID, limite)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErroValidacao{Msg: "nenhuma questão encontrada para os filtros informados"}
	}

	snapshot, err := filtro.Codificar()
	if err != nil {
		return nil, err
	}

	caderno := models.Caderno{
		UserID:        user.ID,
		Nome:          nome,
		PastaID:       pastaID,
		Filtro:        snapshot,
		Limite:        limite,
		TotalQuestoes: len(ids),
		IsAtivo:       true,
	}

	tx := db.Begin()
	if err := tx.Create(&caderno).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for i, questaoID := range ids {
		link := models.CadernoQuestao{
			CadernoID: caderno.ID,
			QuestaoID: questaoID,
			Ordem:     i + 1,
		}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	return &caderno, nil
}

// Arquivar tira o caderno da lista de ativos (não conta mais no teto do plano).
func Arquivar(db *gorm.DB, user models.User, cadernoID int64) (*models.Caderno, error) {
	caderno, err := BuscarCaderno(db, user.ID, cadernoID)
	if err != nil {
		return nil, err
	}
	if !caderno.IsAtivo {
		return caderno, nil
	}
	if err := db.Model(caderno).Update("is_ativo", false).Error; err != nil {
		return nil, err
	}
	caderno.IsAtivo = false
	return caderno, nil
}

// Reativar volta o caderno para a lista de ativos. O teto de cadernos ativos
// é checado de novo aqui: arquivar não reserva capacidade para depois.
func Reativar(db *gorm.DB, user models.User, cadernoID int64) (*models.Caderno, error) {
	caderno, err := BuscarCaderno(db, user.ID, cadernoID)
	if err != nil {
		return nil, err
	}
	if caderno.IsAtivo {
		return caderno, nil
	}

	limites := LimitesDoPlano(user.Plano)
	ativos, err := contarCadernosAtivos(db, user.ID)
	if err != nil {
		return nil, err
	}
	if ativos >= limites.CadernosAtivos {
		return nil, ErroLimitePlano{Plano: user.Plano, Recurso: "cadernos ativos", Limite: limites.CadernosAtivos}
	}

	if err := db.Model(caderno).Update("is_ativo", true).Error; err != nil {
		return nil, err
	}
	caderno.IsAtivo = true
	return caderno, nil
}

// Concluir fecha o caderno. Depois disso nenhuma resposta nova é aceita.
func Concluir(db *gorm.DB, user models.User, cadernoID int64) (*models.Caderno, error) {
	caderno, err := BuscarCaderno(db, user.ID, cadernoID)
	if err != nil {
		return nil, err
	}
	if caderno.IsConcluido {
		return caderno, nil
	}

	agora := time.Now()
	updates := map[string]interface{}{
		"is_concluido": true,
		"concluido_em": agora,
	}
	if err := db.Model(caderno).Updates(updates).Error; err != nil {
		return nil, err
	}
	caderno.IsConcluido = true
	caderno.ConcluidoEm = &agora
	return caderno, nil
}

// Excluir remove o caderno. Sem respostas, exclui direto; com respostas,
// exige confirmado=true e cascateia a remoção dos vínculos e do histórico.
func Excluir(db *gorm.DB, user models.User, cadernoID int64, confirmado bool) error {
	caderno, err := BuscarCaderno(db, user.ID, cadernoID)
	if err != nil {
		return err
	}

	var respostas int
	if err := db.Model(&models.RespostaUsuario{}).
		Where("caderno_id = ?", caderno.ID).
		Count(&respostas).Error; err != nil {
		return err
	}
	if respostas > 0 && !confirmado {
		return ErroConfirmacaoNecessaria{Recurso: "respostas", Quantidade: respostas}
	}

	tx := db.Begin()
	if err := tx.Delete(&models.RespostaUsuario{}, "caderno_id = ?", caderno.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.CadernoQuestao{}, "caderno_id = ?", caderno.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Caderno{}, "id = ?", caderno.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

// Renomear troca o nome do caderno (mesma regra de validação da criação).
func Renomear(db *gorm.DB, user models.User, cadernoID int64, nome string) (*models.Caderno, error) {
	caderno, err := BuscarCaderno(db, user.ID, cadernoID)
	if err != nil {
		return nil, err
	}
	nome, err = validarNome(nome)
	if err != nil {
		return nil, err
	}
	if err := db.Model(caderno).Update("nome", nome).Error; err != nil {
		return nil, err
	}
	caderno.Nome = nome
	return caderno, nil
}

// Mover muda o caderno de pasta (ou para nenhuma, com pastaID nil).
func Mover(db *gorm.DB, user models.User, cadernoID int64, pastaID *int64) (*models.Caderno, error) {
	caderno, err := BuscarCaderno(db, user.ID, cadernoID)
	if err != nil {
		return nil, err
	}
	if pastaID != nil {
		if _, err := BuscarPasta(db, user.ID, *pastaID); err != nil {
			return nil, err
		}
	}
	if err := db.Model(caderno).Update("pasta_id", pastaID).Error; err != nil {
		return nil, err
	}
	caderno.PastaID = pastaID
	return caderno, nil
}

// AtualizarFiltro troca apenas o snapshot de filtro do caderno, sem mexer nas
// questões já compiladas. Recompilar é uma ação separada (AtualizarQuestoes):
// editar filtros nunca altera questões já respondidas.
func AtualizarFiltro(db *gorm.DB, user models.User, cadernoID int64, filtro FiltroCaderno) (*models.Caderno, error) {
	caderno, err := BuscarCaderno(db, user.ID, cadernoID)
	if err != nil {
		return nil, err
	}
	snapshot, err := filtro.Codificar()
	if err != nil {
		return nil, err
	}
	if err := db.Model(caderno).Update("filtro", snapshot).Error; err != nil {
		return nil, err
	}
	caderno.Filtro = snapshot
	return caderno, nil
}

// AtualizarQuestoes recompila o snapshot persistido e acrescenta ao caderno
// as questões que passaram a casar com o filtro, continuando a numeração de
// ordem. Questões existentes (respondidas ou não) nunca são removidas.
func AtualizarQuestoes(db *gorm.DB, user models.User, cadernoID int64) (*models.Caderno, int, error) {
	caderno, err := BuscarCaderno(db, user.ID, cadernoID)
	if err != nil {
		return nil, 0, err
	}
	if caderno.IsConcluido {
		return nil, 0, ErrCadernoConcluido
	}

	filtro, err := DecodificarFiltro(caderno.Filtro)
	if err != nil {
		return nil, 0, err
	}

	ids, err := Compilar(db, filtro, user.ID, caderno.Limite)
	if err != nil {
		return nil, 0, err
	}

	existentes := map[int64]bool{}
	var links []models.CadernoQuestao
	if err := db.Where("caderno_id = ?", caderno.ID).Find(&links).Error; err != nil {
		return nil, 0, err
	}
	ultimaOrdem := 0
	for _, l := range links {
		existentes[l.QuestaoID] = true
		if l.Ordem > ultimaOrdem {
			ultimaOrdem = l.Ordem
		}
	}

	tx := db.Begin()
	adicionadas := 0
	for _, questaoID := range ids {
		if existentes[questaoID] {
			continue
		}
		ultimaOrdem++
		link := models.CadernoQuestao{
			CadernoID: caderno.ID,
			QuestaoID: questaoID,
			Ordem:     ultimaOrdem,
		}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			return nil, 0, err
		}
		adicionadas++
	}

	if adicionadas > 0 {
		novoTotal := len(existentes) + adicionadas
		if err := tx.Model(&models.Caderno{}).
			Where("id = ?", caderno.ID).
			Update("total_questoes", novoTotal).Error; err != nil {
			tx.Rollback()
			return nil, 0, err
		}
		caderno.TotalQuestoes = novoTotal
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	return caderno, adicionadas, nil
}
