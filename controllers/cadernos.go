package controllers

import (
	"net/http"
	"strings"

	"concurseiro/cadernos"
	dbpkg "concurseiro/db"
	"concurseiro/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type CreateCadernoRequest struct {
	Nome    string                 `json:"nome" form:"nome"`
	Limite  int                    `json:"limite" form:"limite"`
	PastaID *int64                 `json:"pasta_id" form:"pasta_id"`
	Filtro  cadernos.FiltroCaderno `json:"filtro" form:"filtro"`
}

// POST /api/cadernos
func CreateCaderno(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateCadernoRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	caderno, err := cadernos.CriarCaderno(db, user, req.Nome, req.Filtro, req.Limite, req.PastaID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondSuccess(c, gin.H{"caderno": caderno})
}

// GET /api/cadernos
// Query params:
// - status=ativos|arquivados|concluidos (optional)
// - pasta_id (optional)
// - sort_by=created_at|updated_at|ultima_sessao_em|nome|id (optional, default: created_at)
// - order=asc|desc (optional, default: desc)
// - limit (optional, default: 100, max: 200)
// - offset (optional, default: 0)
func GetCadernos(c *gin.Context) {
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

	status := strings.TrimSpace(c.Query("status"))
	sortBy := strings.TrimSpace(c.DefaultQuery("sort_by", "created_at"))
	order := strings.ToLower(strings.TrimSpace(c.DefaultQuery("order", "desc")))

	limit := clampInt(queryInt(c, "limit", 100), 1, 200)
	offset := clampInt(queryInt(c, "offset", 0), 0, 1_000_000)

	// whitelist sort fields
	switch sortBy {
	case "created_at", "updated_at", "ultima_sessao_em", "nome", "id":
	default:
		sortBy = "created_at"
	}
	if order != "asc" {
		order = "desc"
	}

	query := db.Model(&models.Caderno{}).Where("user_id = ?", user.ID)

	switch status {
	case "ativos":
		query = query.Where("is_ativo = ? AND is_concluido = ?", true, false)
	case "arquivados":
		query = query.Where("is_ativo = ?", false)
	case "concluidos":
		query = query.Where("is_concluido = ?", true)
	}
	if pastaID := queryInt(c, "pasta_id", 0); pastaID > 0 {
		query = query.Where("pasta_id = ?", pastaID)
	}

	var total int
	if err := query.Count(&total).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var lista []models.Caderno
	if err := query.Order(sortBy + " " + order).
		Limit(limit).
		Offset(offset).
		Find(&lista).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"total": total, "cadernos": lista})
}

// GET /api/cadernos/:id
func GetCadernoByID(c *gin.Context) {
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

	caderno, err := cadernos.BuscarCaderno(db, user.ID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"caderno": caderno})
}

type UpdateCadernoRequest struct {
	Nome   string                  `json:"nome" form:"nome"`
	Filtro *cadernos.FiltroCaderno `json:"filtro" form:"filtro"`
}

// PUT /api/cadernos/:id
// Atualização parcial: nome e/ou filtro. Trocar o filtro aqui NÃO recompila
// as questões — isso é o POST /cadernos/:id/atualizar-questoes.
func UpdateCaderno(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req UpdateCadernoRequest
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
		caderno *models.Caderno
		err     error
	)
	if req.Nome != "" {
		caderno, err = cadernos.Renomear(db, user, id, req.Nome)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
	}
	if req.Filtro != nil {
		caderno, err = cadernos.AtualizarFiltro(db, user, id, *req.Filtro)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
	}
	if caderno == nil {
		caderno, err = cadernos.BuscarCaderno(db, user.ID, id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	RespondSuccess(c, gin.H{"caderno": caderno})
}

// DELETE /api/cadernos/:id?confirm=true
// Sem respostas registradas, exclui direto; com respostas, exige confirm=true.
func DeleteCaderno(c *gin.Context) {
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

	if err := cadernos.Excluir(db, user, id, queryBool(c, "confirm")); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}

// POST /api/cadernos/:id/arquivar
func ArquivarCaderno(c *gin.Context) {
	lifecycleAction(c, cadernos.Arquivar)
}

// POST /api/cadernos/:id/reativar
// Reativar passa de novo pelo teto de cadernos ativos do plano.
func ReativarCaderno(c *gin.Context) {
	lifecycleAction(c, cadernos.Reativar)
}

// POST /api/cadernos/:id/concluir
func ConcluirCaderno(c *gin.Context) {
	lifecycleAction(c, cadernos.Concluir)
}

func lifecycleAction(c *gin.Context, action func(db *gorm.DB, user models.User, cadernoID int64) (*models.Caderno, error)) {
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

	caderno, err := action(db, user, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"caderno": caderno})
}

type MoverCadernoRequest struct {
	PastaID *int64 `json:"pasta_id" form:"pasta_id"`
}

// POST /api/cadernos/:id/mover
// Body: { "pasta_id": 12 } ou { "pasta_id": null } para tirar de pasta.
func MoverCaderno(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req MoverCadernoRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	caderno, err := cadernos.Mover(db, user, id, req.PastaID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"caderno": caderno})
}

// POST /api/cadernos/:id/atualizar-questoes
// Recompila o snapshot de filtro persistido e acrescenta as questões novas.
func AtualizarQuestoesCaderno(c *gin.Context) {
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

	caderno, adicionadas, err := cadernos.AtualizarQuestoes(db, user, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"caderno": caderno, "questoes_adicionadas": adicionadas})
}
