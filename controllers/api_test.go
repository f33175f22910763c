package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"concurseiro/cadernos"
	"concurseiro/config"
	dbpkg "concurseiro/db"
	"concurseiro/models"
	"concurseiro/router"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// montarAPI sobe a API completa (rotas + middlewares) sobre um sqlite em
// memória, igual ao main menos o Run.
func montarAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	database, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	database.DB().SetMaxOpenConns(1)
	database.LogMode(false)
	require.NoError(t, dbpkg.AutoMigrate(database).Error)
	t.Cleanup(func() { database.Close() })

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(engine, config.Configuration{})
	return engine, database
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodificar(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func registrarELogar(t *testing.T, engine *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/users", "", gin.H{
		"name":     "Concurseiro de Teste",
		"email":    email,
		"password": "senha-muito-secreta",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	w = doJSON(t, engine, http.MethodPost, "/api/login", "", gin.H{
		"email":    email,
		"password": "senha-muito-secreta",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	token, _ := decodificar(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func semearQuestoes(t *testing.T, db *gorm.DB, n int) models.Disciplina {
	t.Helper()
	d := models.Disciplina{Nome: "Direito Constitucional"}
	require.NoError(t, db.Create(&d).Error)
	for i := 0; i < n; i++ {
		q := models.Questao{
			DisciplinaID: d.ID,
			Enunciado:    fmt.Sprintf("Questão %d", i+1),
			Gabarito:     "A",
			Ano:          2023,
			IsAtiva:      true,
		}
		require.NoError(t, db.Create(&q).Error)
	}
	return d
}

func TestAPIFluxoCompleto(t *testing.T) {
	engine, db := montarAPI(t)
	d := semearQuestoes(t, db, 10)
	token := registrarELogar(t, engine, "fluxo@teste.com")

	// cria o caderno
	w := doJSON(t, engine, http.MethodPost, "/api/cadernos", token, gin.H{
		"nome":   "Reta final",
		"limite": 10,
		"filtro": gin.H{"disciplina_id": d.ID},
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	caderno := decodificar(t, w)["caderno"].(map[string]interface{})
	cadernoID := int64(caderno["id"].(float64))
	assert.Equal(t, float64(10), caderno["total_questoes"])

	// descobre a primeira questão pelo gabarito
	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/cadernos/%d/gabarito", cadernoID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	itens := decodificar(t, w)["gabarito"].([]interface{})
	require.Len(t, itens, 10)
	primeira := itens[0].(map[string]interface{})
	questaoID := int64(primeira["questao_id"].(float64))

	// responde certo
	w = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/cadernos/%d/respostas", cadernoID), token, gin.H{
		"questao_id":     questaoID,
		"resposta":       "A",
		"tempo_segundos": 35,
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	resultado := decodificar(t, w)
	assert.Equal(t, true, resultado["correta"])
	assert.Equal(t, float64(1), resultado["questoes_respondidas"])

	// segunda submissão da mesma questão: 409 com código próprio
	w = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/cadernos/%d/respostas", cadernoID), token, gin.H{
		"questao_id":     questaoID,
		"resposta":       "B",
		"tempo_segundos": 5,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ja_respondida", decodificar(t, w)["codigo"])

	// estatísticas refletem a única resposta
	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/cadernos/%d/estatisticas", cadernoID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodificar(t, w)
	assert.Equal(t, float64(1), stats["respondidas"])
	assert.Equal(t, float64(100), stats["taxa_acerto"])

	// excluir sem confirmar: 409 informando a quantidade de respostas
	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/cadernos/%d", cadernoID), token, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	corpo := decodificar(t, w)
	assert.Equal(t, "confirmacao_necessaria", corpo["codigo"])
	assert.Equal(t, float64(1), corpo["quantidade"])

	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/cadernos/%d?confirm=true", cadernoID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAPILimiteDoPlanoVira403(t *testing.T) {
	engine, db := montarAPI(t)
	d := semearQuestoes(t, db, 10)
	token := registrarELogar(t, engine, "limite@teste.com")

	// plano free aceita limite de até 50 questões por caderno
	w := doJSON(t, engine, http.MethodPost, "/api/cadernos", token, gin.H{
		"nome":   "Caderno grande demais",
		"limite": 51,
		"filtro": gin.H{"disciplina_id": d.ID},
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	corpo := decodificar(t, w)
	assert.Equal(t, "limite_plano", corpo["codigo"])
	assert.Equal(t, "free", corpo["plano"])
	assert.Equal(t, float64(50), corpo["limite"])
}

func TestAPIExigeToken(t *testing.T) {
	engine, _ := montarAPI(t)

	w := doJSON(t, engine, http.MethodGet, "/api/cadernos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/cadernos", "token-invalido", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPICadernoAlheioResponde404(t *testing.T) {
	engine, db := montarAPI(t)
	semearQuestoes(t, db, 5)
	tokenDono := registrarELogar(t, engine, "dono@teste.com")
	tokenIntruso := registrarELogar(t, engine, "intruso@teste.com")

	var disciplina models.Disciplina
	require.NoError(t, db.First(&disciplina).Error)

	w := doJSON(t, engine, http.MethodPost, "/api/cadernos", tokenDono, gin.H{
		"nome":   "Particular",
		"limite": 5,
		"filtro": gin.H{"disciplina_id": disciplina.ID},
	})
	require.Equal(t, http.StatusOK, w.Code)
	cadernoID := int64(decodificar(t, w)["caderno"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/cadernos/%d", cadernoID), tokenIntruso, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// garante que o filtro enviado pela API chega inteiro no snapshot persistido
func TestAPIFiltroPersisteNoSnapshot(t *testing.T) {
	engine, db := montarAPI(t)
	d := semearQuestoes(t, db, 5)
	token := registrarELogar(t, engine, "snapshot@teste.com")

	w := doJSON(t, engine, http.MethodPost, "/api/cadernos", token, gin.H{
		"nome":   "Com filtro rico",
		"limite": 5,
		"filtro": gin.H{"disciplina_id": d.ID, "anos": []int{2023}, "dificuldade": "media"},
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	cadernoID := int64(decodificar(t, w)["caderno"].(map[string]interface{})["id"].(float64))

	var salvo models.Caderno
	require.NoError(t, db.First(&salvo, cadernoID).Error)
	filtro, err := cadernos.DecodificarFiltro(salvo.Filtro)
	require.NoError(t, err)
	require.NotNil(t, filtro.DisciplinaID)
	assert.Equal(t, d.ID, *filtro.DisciplinaID)
	assert.Equal(t, []int{2023}, filtro.Anos)
	assert.Equal(t, "media", filtro.Dificuldade)
}
