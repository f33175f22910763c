package cadernos

import (
	"testing"

	dbpkg "concurseiro/db"
	"concurseiro/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

// abrirBanco monta um banco sqlite em memória com o schema completo.
// SetMaxOpenConns(1) segura o :memory: numa conexão só.
func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	db.LogMode(false)

	require.NoError(t, dbpkg.AutoMigrate(db).Error)

	t.Cleanup(func() { db.Close() })
	return db
}

func criarUsuario(t *testing.T, db *gorm.DB, plano string) models.User {
	t.Helper()
	user := models.User{
		Name:     "Concurseiro de Teste",
		Email:    plano + "@teste.com",
		Password: "segredo",
		Plano:    plano,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func criarDisciplina(t *testing.T, db *gorm.DB, nome string) models.Disciplina {
	t.Helper()
	d := models.Disciplina{Nome: nome}
	require.NoError(t, db.Create(&d).Error)
	return d
}

func criarLeiComArtigo(t *testing.T, db *gorm.DB, sigla, numero string) models.Artigo {
	t.Helper()
	lei := models.Lei{Nome: "Lei " + sigla, Sigla: sigla}
	require.NoError(t, db.Create(&lei).Error)
	artigo := models.Artigo{LeiID: lei.ID, Numero: numero}
	require.NoError(t, db.Create(&artigo).Error)
	return artigo
}

// criarQuestao cria uma questão ativa. Campos não preenchidos ganham defaults
// razoáveis (gabarito "A", ano 2023).
func criarQuestao(t *testing.T, db *gorm.DB, q models.Questao) models.Questao {
	t.Helper()
	if q.Enunciado == "" {
		q.Enunciado = "Assinale a alternativa correta."
	}
	if q.Gabarito == "" {
		q.Gabarito = "A"
	}
	if q.Ano == 0 {
		q.Ano = 2023
	}
	q.IsAtiva = true
	require.NoError(t, db.Create(&q).Error)
	return q
}

// criarQuestoes cria n questões ativas de uma disciplina e devolve os IDs.
func criarQuestoes(t *testing.T, db *gorm.DB, disciplinaID int64, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		q := criarQuestao(t, db, models.Questao{DisciplinaID: disciplinaID})
		ids = append(ids, q.ID)
	}
	return ids
}

func desativarQuestao(t *testing.T, db *gorm.DB, questaoID int64) {
	t.Helper()
	require.NoError(t, db.Model(&models.Questao{}).
		Where("id = ?", questaoID).
		Update("is_ativa", false).Error)
}

func anularQuestao(t *testing.T, db *gorm.DB, questaoID int64) {
	t.Helper()
	require.NoError(t, db.Model(&models.Questao{}).
		Where("id = ?", questaoID).
		Update("is_anulada", true).Error)
}

func ptr(v int64) *int64 {
	return &v
}
