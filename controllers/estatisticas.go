package controllers

import (
	"net/http"

	"concurseiro/cadernos"
	dbpkg "concurseiro/db"

	"github.com/gin-gonic/gin"
)

// GET /api/cadernos/:id/estatisticas
func GetCadernoEstatisticas(c *gin.Context) {
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

	stats, err := cadernos.CalcularEstatisticas(db, user, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, stats)
}

// GET /api/cadernos/:id/indice
func GetCadernoIndice(c *gin.Context) {
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

	indice, err := cadernos.MontarIndice(db, user, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, indice)
}
