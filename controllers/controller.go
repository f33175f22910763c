package controllers

import (
	"errors"
	"net/http"

	"concurseiro/cadernos"

	"github.com/gin-gonic/gin"
)

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}

// RespondDomainError mapeia os erros tipados do pacote cadernos para HTTP.
// Os 409 carregam um campo "codigo" para o front distinguir os casos.
func RespondDomainError(c *gin.Context, err error) {
	var (
		validacao     cadernos.ErroValidacao
		limite        cadernos.ErroLimitePlano
		naoEncontrado cadernos.ErroNaoEncontrado
		confirmacao   cadernos.ErroConfirmacaoNecessaria
	)

	switch {
	case errors.As(err, &validacao):
		RespondError(c, err.Error(), http.StatusBadRequest)
	case errors.As(err, &limite):
		c.JSON(http.StatusForbidden, gin.H{
			"error":  err.Error(),
			"codigo": "limite_plano",
			"plano":  limite.Plano,
			"limite": limite.Limite,
		})
	case errors.As(err, &naoEncontrado):
		RespondError(c, err.Error(), http.StatusNotFound)
	case errors.As(err, &confirmacao):
		c.JSON(http.StatusConflict, gin.H{
			"error":      err.Error(),
			"codigo":     "confirmacao_necessaria",
			"quantidade": confirmacao.Quantidade,
		})
	case errors.Is(err, cadernos.ErrJaRespondida):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "codigo": "ja_respondida"})
	case errors.Is(err, cadernos.ErrCadernoConcluido):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "codigo": "caderno_concluido"})
	case errors.Is(err, cadernos.ErrQuestaoForaDoCaderno):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "codigo": "questao_fora_do_caderno"})
	default:
		RespondError(c, err.Error(), http.StatusBadRequest)
	}
}
