package cadernos

import (
	"testing"

	"concurseiro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMontarIndiceDoisNiveis(t *testing.T) {
	db := abrirBanco(t)
	user := criarUsuario(t, db, models.PLANO_BASICO)
	constitucional := criarDisciplina(t, db, "Direito Constitucional")
	portugues := criarDisciplina(t, db, "Português")
	art5 := criarLeiComArtigo(t, db, "CF", "5")
	art37 := criarLeiComArtigo(t, db, "CF88", "37")

	// 6 questões de constitucional (4 do art. 5, 2 do art. 37), 4 de português
	for i := 0; i < 4; i++ {
		criarQuestao(t, db, models.Questao{DisciplinaID: constitucional.ID, ArtigoID: ptr(art5.ID)})
	}
	for i := 0; i < 2; i++ {
		criarQuestao(t, db, models.Questao{DisciplinaID: constitucional.ID, ArtigoID: ptr(art37.ID)})
	}
	criarQuestoes(t, db, portugues.ID, 4)

	caderno, err := CriarCaderno(db, user, "Caderno", FiltroCaderno{}, 10, nil)
	require.NoError(t, err)

	indice, err := MontarIndice(db, user, caderno.ID)
	require.NoError(t, err)

	assert.Equal(t, 10, indice.TotalQuestoes)
	require.Len(t, indice.Disciplinas, 2)

	// mais questões primeiro: constitucional (6) antes de português (4)
	dc := indice.Disciplinas[0]
	assert.Equal(t, constitucional.ID, dc.DisciplinaID)
	assert.Equal(t, 6, dc.Questoes)
	assert.InDelta(t, 60.0, dc.Percentual, 0.001)

	pt := indice.Disciplinas[1]
	assert.Equal(t, portugues.ID, pt.DisciplinaID)
	assert.Equal(t, 4, pt.Questoes)
	assert.InDelta(t, 40.0, pt.Percentual, 0.001)

	// artigos da disciplina: percentual relativo ao subtotal, soma 100
	require.Len(t, dc.Artigos, 2)
	assert.Equal(t, art5.ID, dc.Artigos[0].ArtigoID)
	assert.Equal(t, 4, dc.Artigos[0].Questoes)
	assert.InDelta(t, 100*4.0/6.0, dc.Artigos[0].Percentual, 0.001)
	assert.Equal(t, art37.ID, dc.Artigos[1].ArtigoID)
	assert.InDelta(t, 100*2.0/6.0, dc.Artigos[1].Percentual, 0.001)
	assert.InDelta(t, 100.0, dc.Artigos[0].Percentual+dc.Artigos[1].Percentual, 0.001)

	// questões sem artigo caem no nó artigo_id 0
	require.Len(t, pt.Artigos, 1)
	assert.Zero(t, pt.Artigos[0].ArtigoID)
	assert.Equal(t, 4, pt.Artigos[0].Questoes)
	assert.InDelta(t, 100.0, pt.Artigos[0].Percentual, 0.001)
}

func TestMontarIndiceIndependeDeRespostas(t *testing.T) {
	db := abrirBanco(t)
	user := criarUsuario(t, db, models.PLANO_FREE)
	d := criarDisciplina(t, db, "Português")
	ids := criarQuestoes(t, db, d.ID, 4)

	caderno, err := CriarCaderno(db, user, "Caderno", FiltroCaderno{DisciplinaID: ptr(d.ID)}, 10, nil)
	require.NoError(t, err)

	antes, err := MontarIndice(db, user, caderno.ID)
	require.NoError(t, err)

	_, err = SalvarResposta(db, user, caderno.ID, ids[0], "A", 10, "")
	require.NoError(t, err)

	depois, err := MontarIndice(db, user, caderno.ID)
	require.NoError(t, err)

	assert.Equal(t, antes, depois)
}
