package controllers

import (
	"net/http"
	"time"

	"concurseiro/cadernos"
	dbpkg "concurseiro/db"

	"github.com/gin-gonic/gin"
)

type SalvarRespostaRequest struct {
	QuestaoID     int64  `json:"questao_id" form:"questao_id"`
	Resposta      string `json:"resposta" form:"resposta"`
	TempoSegundos int64  `json:"tempo_segundos" form:"tempo_segundos"`
	Modo          string `json:"modo" form:"modo"`
}

// POST /api/cadernos/:id/respostas
// Entrada da procedure salvar_resposta_caderno: toda a validação (posse,
// caderno aberto, não respondida) acontece aqui no servidor.
func SalvarRespostaCaderno(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req SalvarRespostaRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.QuestaoID <= 0 {
		RespondError(c, "questao_id é obrigatório", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	resultado, err := cadernos.SalvarResposta(db, user, id, req.QuestaoID, req.Resposta, req.TempoSegundos, req.Modo)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, resultado)
}

type gabaritoRow struct {
	Ordem        int        `json:"ordem"`
	QuestaoID    int64      `json:"questao_id"`
	Gabarito     string     `json:"gabarito"`
	Resposta     *string    `json:"resposta"`
	Correta      *bool      `json:"correta"`
	RespondidaEm *time.Time `json:"respondida_em"`
}

// GET /api/cadernos/:id/gabarito
// Visão questão a questão do gabarito oficial x resposta do usuário,
// derivada direto do join cadernos_questoes + respostas_usuarios.
func GetCadernoGabarito(c *gin.Context) {
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

	rows, err := db.Raw(`
		SELECT cq.ordem,
		       cq.questao_id,
		       q.gabarito,
		       r.resposta,
		       r.correta,
		       r.created_at
		FROM cadernos_questoes cq
		INNER JOIN questoes q ON q.id = cq.questao_id
		LEFT JOIN respostas_usuarios r
		       ON r.caderno_id = cq.caderno_id AND r.questao_id = cq.questao_id AND r.user_id = ?
		WHERE cq.caderno_id = ?
		ORDER BY cq.ordem ASC`, user.ID, caderno.ID).Rows()
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	defer rows.Close()

	var itens []gabaritoRow
	for rows.Next() {
		var item gabaritoRow
		if err := rows.Scan(&item.Ordem, &item.QuestaoID, &item.Gabarito, &item.Resposta, &item.Correta, &item.RespondidaEm); err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
		itens = append(itens, item)
	}

	RespondSuccess(c, gin.H{"caderno_id": caderno.ID, "gabarito": itens})
}
