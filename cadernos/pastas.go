package cadernos

import (
	"concurseiro/models"

	"github.com/jinzhu/gorm"
)

// Profundidade máxima da árvore de pastas. Limita a caminhada de ancestrais
// na checagem de ciclos.
const PROFUNDIDADE_MAX_PASTAS = 10

// BuscarPasta carrega uma pasta garantindo a posse.
func BuscarPasta(db *gorm.DB, userID, pastaID int64) (*models.PastaCaderno, error) {
	var pasta models.PastaCaderno
	err := db.Where("id = ? AND user_id = ?", pastaID, userID).First(&pasta).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErroNaoEncontrado{Recurso: "pasta"}
		}
		return nil, err
	}
	return &pasta, nil
}

// CriarPasta cria uma pasta de cadernos, respeitando o teto de pastas do
// plano e a profundidade máxima de aninhamento.
func CriarPasta(db *gorm.DB, user models.User, nome string, pastaPaiID *int64) (*models.PastaCaderno, error) {
	nome, err := validarNome(nome)
	if err != nil {
		return nil, err
	}

	limites := LimitesDoPlano(user.Plano)
	var total int
	if err := db.Model(&models.PastaCaderno{}).
		Where("user_id = ?", user.ID).
		Count(&total).Error; err != nil {
		return nil, err
	}
	if total >= limites.Pastas {
		return nil, ErroLimitePlano{Plano: user.Plano, Recurso: "pastas", Limite: limites.Pastas}
	}

	if pastaPaiID != nil {
		pai, err := BuscarPasta(db, user.ID, *pastaPaiID)
		if err != nil {
			return nil, err
		}
		profundidade, err := profundidadePasta(db, pai)
		if err != nil {
			return nil, err
		}
		if profundidade+1 >= PROFUNDIDADE_MAX_PASTAS {
			return nil, ErroValidacao{Msg: "profundidade máxima de pastas atingida"}
		}
	}

	pasta := models.PastaCaderno{
		UserID:     user.ID,
		Nome:       nome,
		PastaPaiID: pastaPaiID,
	}
	if err := db.Create(&pasta).Error; err != nil {
		return nil, err
	}
	return &pasta, nil
}

// RenomearPasta troca o nome da pasta.
func RenomearPasta(db *gorm.DB, user models.User, pastaID int64, nome string) (*models.PastaCaderno, error) {
	pasta, err := BuscarPasta(db, user.ID, pastaID)
	if err != nil {
		return nil, err
	}
	nome, err = validarNome(nome)
	if err != nil {
		return nil, err
	}
	if err := db.Model(pasta).Update("nome", nome).Error; err != nil {
		return nil, err
	}
	pasta.Nome = nome
	return pasta, nil
}

// MoverPasta re-parenteia a pasta. A caminhada de ancestrais do novo pai
// rejeita qualquer movimento que criaria ciclo (pasta dentro dela mesma).
func MoverPasta(db *gorm.DB, user models.User, pastaID int64, novoPaiID *int64) (*models.PastaCaderno, error) {
	pasta, err := BuscarPasta(db, user.ID, pastaID)
	if err != nil {
		return nil, err
	}

	if novoPaiID != nil {
		if *novoPaiID == pasta.ID {
			return nil, ErroValidacao{Msg: "não é possível mover uma pasta para dentro dela mesma"}
		}
		pai, err := BuscarPasta(db, user.ID, *novoPaiID)
		if err != nil {
			return nil, err
		}

		atual := pai
		for passos := 0; passos < PROFUNDIDADE_MAX_PASTAS; passos++ {
			if atual.PastaPaiID == nil {
				break
			}
			if *atual.PastaPaiID == pasta.ID {
				return nil, ErroValidacao{Msg: "não é possível mover uma pasta para dentro dela mesma"}
			}
			atual, err = BuscarPasta(db, user.ID, *atual.PastaPaiID)
			if err != nil {
				return nil, err
			}
		}
	}

	if err := db.Model(pasta).Update("pasta_pai_id", novoPaiID).Error; err != nil {
		return nil, err
	}
	pasta.PastaPaiID = novoPaiID
	return pasta, nil
}

// ExcluirPasta remove a pasta. Pasta com conteúdo (cadernos ou subpastas)
// exige confirmado=true; nesse caso o conteúdo é reatribuído à pasta pai da
// pasta excluída (ou à raiz) — nunca órfão silencioso.
func ExcluirPasta(db *gorm.DB, user models.User, pastaID int64, confirmado bool) error {
	pasta, err := BuscarPasta(db, user.ID, pastaID)
	if err != nil {
		return err
	}

	var cadernos, subpastas int
	if err := db.Model(&models.Caderno{}).
		Where("pasta_id = ?", pasta.ID).
		Count(&cadernos).Error; err != nil {
		return err
	}
	if err := db.Model(&models.PastaCaderno{}).
		Where("pasta_pai_id = ?", pasta.ID).
		Count(&subpastas).Error; err != nil {
		return err
	}

	itens := cadernos + subpastas
	if itens > 0 && !confirmado {
		return ErroConfirmacaoNecessaria{Recurso: "itens", Quantidade: itens}
	}

	tx := db.Begin()
	if itens > 0 {
		if err := tx.Model(&models.Caderno{}).
			Where("pasta_id = ?", pasta.ID).
			Update("pasta_id", pasta.PastaPaiID).Error; err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Model(&models.PastaCaderno{}).
			Where("pasta_pai_id = ?", pasta.ID).
			Update("pasta_pai_id", pasta.PastaPaiID).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Delete(&models.PastaCaderno{}, "id = ?", pasta.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

func profundidadePasta(db *gorm.DB, pasta *models.PastaCaderno) (int, error) {
	profundidade := 0
	atual := pasta
	for profundidade < PROFUNDIDADE_MAX_PASTAS {
		if atual.PastaPaiID == nil {
			return profundidade, nil
		}
		pai, err := BuscarPasta(db, atual.UserID, *atual.PastaPaiID)
		if err != nil {
			return 0, err
		}
		atual = pai
		profundidade++
	}
	return profundidade, nil
}
