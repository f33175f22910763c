package controllers

import (
	"net/http"

	"concurseiro/cadernos"
	dbpkg "concurseiro/db"
	"concurseiro/models"

	"github.com/gin-gonic/gin"
)

type PastaRequest struct {
	Nome       string `json:"nome" form:"nome"`
	PastaPaiID *int64 `json:"pasta_pai_id" form:"pasta_pai_id"`
}

// GET /api/pastas
func GetPastas(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var pastas []models.PastaCaderno
	if err := db.Where("user_id = ?", user.ID).
		Order("nome asc").
		Find(&pastas).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"pastas": pastas})
}

// POST /api/pastas
func CreatePasta(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req PastaRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	pasta, err := cadernos.CriarPasta(db, user, req.Nome, req.PastaPaiID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"pasta": pasta})
}

// PUT /api/pastas/:id
// Renomeia e/ou move a pasta (pasta_pai_id null manda para a raiz).
func UpdatePasta(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req PastaRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var (
		pasta *models.PastaCaderno
		err   error
	)
	if req.Nome != "" {
		pasta, err = cadernos.RenomearPasta(db, user, id, req.Nome)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
	}
	pasta, err = cadernos.MoverPasta(db, user, id, req.PastaPaiID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondSuccess(c, gin.H{"pasta": pasta})
}

// DELETE /api/pastas/:id?confirm=true
// Pasta com conteúdo exige confirm=true; o conteúdo é reatribuído à pasta pai.
func DeletePasta(c *gin.Context) {
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

	if err := cadernos.ExcluirPasta(db, user, id, queryBool(c, "confirm")); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}
