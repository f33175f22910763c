package controllers

import (
	"net/http"

	"concurseiro/cadernos"

	"github.com/gin-gonic/gin"
)

// GET /api/me
// Devolve o usuário logado e os limites do plano dele (para o front montar
// os avisos de quota sem chamada extra).
func Me(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"limites": cadernos.LimitesDoPlano(user.Plano),
	})
}
