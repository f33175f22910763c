package controllers

import (
	"net/http"

	"concurseiro/cadernos"
	dbpkg "concurseiro/db"
	"concurseiro/models"

	"github.com/gin-gonic/gin"
)

// POST /api/questoes/count
// Preview ao vivo de quantas questões o filtro alcança. Passa pelo mesmo
// pipeline da compilação, então o número nunca diverge do caderno criado.
func CountQuestoes(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var filtro cadernos.FiltroCaderno
	if err := c.Bind(&filtro); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	total, err := cadernos.Contar(db, filtro, user.ID)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"total": total})
}

// POST /api/questoes/:id/favoritar
func FavoritarQuestao(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var questao models.Questao
	if err := db.First(&questao, id).Error; err != nil {
		RespondError(c, "questão não encontrada", http.StatusNotFound)
		return
	}

	// idempotente: favoritar duas vezes não duplica nem falha
	var existente models.QuestaoFavorita
	if err := db.Where("user_id = ? AND questao_id = ?", user.ID, id).
		First(&existente).Error; err == nil {
		RespondSuccess(c, gin.H{"favoritada": true})
		return
	}

	favorita := models.QuestaoFavorita{UserID: user.ID, QuestaoID: id}
	if err := db.Create(&favorita).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"favoritada": true})
}

// DELETE /api/questoes/:id/favoritar
func DesfavoritarQuestao(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.Delete(&models.QuestaoFavorita{}, "user_id = ? AND questao_id = ?", user.ID, id).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"favoritada": false})
}
