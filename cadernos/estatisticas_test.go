package cadernos

import (
	"testing"

	"concurseiro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstatisticasCadernoSemRespostas(t *testing.T) {
	db := abrirBanco(t)
	user := criarUsuario(t, db, models.PLANO_FREE)
	d := criarDisciplina(t, db, "Português")
	criarQuestoes(t, db, d.ID, 5)

	caderno, err := CriarCaderno(db, user, "Caderno", FiltroCaderno{DisciplinaID: ptr(d.ID)}, 10, nil)
	require.NoError(t, err)

	stats, err := CalcularEstatisticas(db, user, caderno.ID)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalQuestoes)
	assert.Zero(t, stats.Respondidas)
	assert.Equal(t, 5, stats.NaoRespondidas)
	assert.Zero(t, stats.TaxaAcerto)
	assert.Zero(t, stats.PercentualConcluido)
	assert.Nil(t, stats.UltimaSessaoEm)
}

func TestEstatisticasAgregados(t *testing.T) {
	db := abrirBanco(t)
	user := criarUsuario(t, db, models.PLANO_BASICO)
	d := criarDisciplina(t, db, "Direito Administrativo")
	ids := criarQuestoes(t, db, d.ID, 8)

	caderno, err := CriarCaderno(db, user, "Caderno", FiltroCaderno{DisciplinaID: ptr(d.ID)}, 10, nil)
	require.NoError(t, err)

	// gabarito default "A": 3 corretas, 1 errada
	tempos := []int64{20, 40, 60, 80}
	respostas := []string{"A", "A", "B", "A"}
	for i := range respostas {
		_, err = SalvarResposta(db, user, caderno.ID, ids[i], respostas[i], tempos[i], "")
		require.NoError(t, err)
	}

	stats, err := CalcularEstatisticas(db, user, caderno.ID)
	require.NoError(t, err)

	assert.Equal(t, 8, stats.TotalQuestoes)
	assert.Equal(t, 4, stats.Respondidas)
	assert.Equal(t, 3, stats.Corretas)
	assert.Equal(t, 1, stats.Erradas)
	assert.Equal(t, 4, stats.NaoRespondidas)
	assert.InDelta(t, 75.0, stats.TaxaAcerto, 0.001)
	assert.InDelta(t, 50.0, stats.PercentualConcluido, 0.001)

	assert.Equal(t, int64(200), stats.TempoTotalSegundos)
	assert.InDelta(t, 50.0, stats.TempoMedioSegundos, 0.001)
	assert.Equal(t, int64(20), stats.TempoMinSegundos)
	assert.Equal(t, int64(80), stats.TempoMaxSegundos)
	assert.NotNil(t, stats.UltimaSessaoEm)
}

func TestEstatisticasPorDisciplinaOrdenaPorVolume(t *testing.T) {
	db := abrirBanco(t)
	user := criarUsuario(t, db, models.PLANO_BASICO)
	menor := criarDisciplina(t, db, "Informática")
	maior := criarDisciplina(t, db, "Direito Constitucional")
	idsMenor := criarQuestoes(t, db, menor.ID, 2)
	criarQuestoes(t, db, maior.ID, 5)

	caderno, err := CriarCaderno(db, user, "Caderno", FiltroCaderno{}, 10, nil)
	require.NoError(t, err)

	_, err = SalvarResposta(db, user, caderno.ID, idsMenor[0], "A", 30, "")
	require.NoError(t, err)
	_, err = SalvarResposta(db, user, caderno.ID, idsMenor[1], "B", 50, "")
	require.NoError(t, err)

	stats, err := CalcularEstatisticas(db, user, caderno.ID)
	require.NoError(t, err)
	require.Len(t, stats.PorDisciplina, 2)

	// mais questões primeiro
	assert.Equal(t, maior.ID, stats.PorDisciplina[0].DisciplinaID)
	assert.Equal(t, 5, stats.PorDisciplina[0].Questoes)
	assert.Zero(t, stats.PorDisciplina[0].Respondidas)

	linha := stats.PorDisciplina[1]
	assert.Equal(t, menor.ID, linha.DisciplinaID)
	assert.Equal(t, 2, linha.Questoes)
	assert.Equal(t, 2, linha.Respondidas)
	assert.Equal(t, 1, linha.Corretas)
	assert.Equal(t, 1, linha.Erradas)
	assert.InDelta(t, 50.0, linha.TaxaAcerto, 0.001)
	assert.InDelta(t, 40.0, linha.TempoMedioSegundos, 0.001)
}

func TestEstatisticasCadernoAlheio(t *testing.T) {
	db := abrirBanco(t)
	dono := criarUsuario(t, db, models.PLANO_FREE)
	intruso := criarUsuario(t, db, models.PLANO_BASICO)
	d := criarDisciplina(t, db, "Português")
	criarQuestoes(t, db, d.ID, 3)

	caderno, err := CriarCaderno(db, dono, "Caderno", FiltroCaderno{DisciplinaID: ptr(d.ID)}, 10, nil)
	require.NoError(t, err)

	var naoEncontrado ErroNaoEncontrado
	_, err = CalcularEstatisticas(db, intruso, caderno.ID)
	require.ErrorAs(t, err, &naoEncontrado)
}
