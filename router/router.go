package router

import (
	"log"

	"concurseiro/config"
	"concurseiro/controllers"
	"concurseiro/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public routes + authenticated
// routes (token required).
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/users", Logger(), controllers.CreateUser)
	api.POST("/login", Logger(), controllers.Login)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())

	auth.GET("/me", Logger(), controllers.Me)

	// Cadernos
	auth.POST("/cadernos", Logger(), controllers.CreateCaderno)
	auth.GET("/cadernos", Logger(), controllers.GetCadernos)
	auth.GET("/cadernos/:id", Logger(), controllers.GetCadernoByID)
	auth.PUT("/cadernos/:id", Logger(), controllers.UpdateCaderno)
	auth.DELETE("/cadernos/:id", Logger(), controllers.DeleteCaderno)

	// Ciclo de vida
	auth.POST("/cadernos/:id/arquivar", Logger(), controllers.ArquivarCaderno)
	auth.POST("/cadernos/:id/reativar", Logger(), controllers.ReativarCaderno)
	auth.POST("/cadernos/:id/concluir", Logger(), controllers.ConcluirCaderno)
	auth.POST("/cadernos/:id/mover", Logger(), controllers.MoverCaderno)
	auth.POST("/cadernos/:id/atualizar-questoes", Logger(), controllers.AtualizarQuestoesCaderno)

	// Respostas e visões derivadas
	auth.POST("/cadernos/:id/respostas", Logger(), controllers.SalvarRespostaCaderno)
	auth.GET("/cadernos/:id/estatisticas", Logger(), controllers.GetCadernoEstatisticas)
	auth.GET("/cadernos/:id/indice", Logger(), controllers.GetCadernoIndice)
	auth.GET("/cadernos/:id/gabarito", Logger(), controllers.GetCadernoGabarito)

	// Questões
	auth.POST("/questoes/count", Logger(), controllers.CountQuestoes)
	auth.POST("/questoes/:id/favoritar", Logger(), controllers.FavoritarQuestao)
	auth.DELETE("/questoes/:id/favoritar", Logger(), controllers.DesfavoritarQuestao)

	// Pastas
	auth.GET("/pastas", Logger(), controllers.GetPastas)
	auth.POST("/pastas", Logger(), controllers.CreatePasta)
	auth.PUT("/pastas/:id", Logger(), controllers.UpdatePasta)
	auth.DELETE("/pastas/:id", Logger(), controllers.DeletePasta)

	log.Printf("Routes initialized")
}
