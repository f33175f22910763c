package cadernos

import (
	"fmt"
	"testing"

	"concurseiro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarPastaRespeitaTetoDoPlano(t *testing.T) {
	db := abrirBanco(t)
	user := criarUsuario(t, db, models.PLANO_FREE) // teto de 3 pastas

	for i := 0; i < 3; i++ {
		_, err := CriarPasta(db, user, fmt.Sprintf("Pasta %d", i+1), nil)
		require.NoError(t, err)
	}

	_, err := CriarPasta(db, user, "Pasta 4", nil)
	var limite ErroLimitePlano
	require.ErrorAs(t, err, &limite)
	assert.Equal(t, "pastas", limite.Recurso)
	assert.Equal(t, 3, limite.Limite)
}

func TestCriarPastaAninhada(t *testing.T) {
	db := abrirBanco(t)
	user := criarUsuario(t, db, models.PLANO_BASICO)

	raiz, err := CriarPasta(db, user, "Editais", nil)
	require.NoError(t, err)

	filha, err := CriarPasta(db, user, "TRF 2024", &raiz.ID)
	require.NoError(t, err)
	require.NotNil(t, filha.PastaPaiID)
	assert.Equal(t, raiz.ID, *filha.PastaPaiID)
}

func TestMoverPastaRejeitaCiclo(t *testing.T) {
	db := abrirBanco(t)
	user := criarUsuario(t, db, models.PLANO_BASICO)

	avo, err := CriarPasta(db, user, "Avó", nil)
	require.NoError(t, err)
	pai, err := CriarPasta(db, user, "Pai", &avo.ID)
	require.NoError(t, err)
	filha, err := CriarPasta(db, user, "Filha", &pai.ID)
	require.NoError(t, err)

	var validacao ErroValidacao
	_, err = MoverPasta(db, user, avo.ID, &avo.ID)
	require.ErrorAs(t, err, &validacao)
	_, err = MoverPasta(db, user, avo.ID, &filha.ID)
	require.ErrorAs(t, err, &validacao, "mover para um descendente criaria ciclo")

	// mover a filha para a raiz é permitido
	movida, err := MoverPasta(db, user, filha.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, movida.PastaPaiID)
}

func TestExcluirPastaVaziaNaoExigeConfirmacao(t *testing.T) {
	db := abrirBanco(t)
	user := criarUsuario(t, db, models.PLANO_FREE)

	pasta, err := CriarPasta(db, user, "Vazia", nil)
	require.NoError(t, err)

	require.NoError(t, ExcluirPasta(db, user, pasta.ID, false))

	var naoEncontrado ErroNaoEncontrado
	_, err = BuscarPasta(db, user.ID, pasta.ID)
	require.ErrorAs(t, err, &naoEncontrado)
}

func TestExcluirPastaComConteudoReatribuiAoPai(t *testing.T) {
	db := abrirBanco(t)
	user := criarUsuario(t, db, models.PLANO_BASICO)
	d := criarDisciplina(t, db, "Português")
	criarQuestoes(t, db, d.ID, 5)

	raiz, err := CriarPasta(db, user, "Raiz", nil)
	require.NoError(t, err)
	meio, err := CriarPasta(db, user, "Meio", &raiz.ID)
	require.NoError(t, err)
	neta, err := CriarPasta(db, user, "Neta", &meio.ID)
	require.NoError(t, err)
	caderno, err := CriarCaderno(db, user, "Caderno", FiltroCaderno{DisciplinaID: ptr(d.ID)}, 5, &meio.ID)
	require.NoError(t, err)

	// com conteúdo (1 caderno + 1 subpasta) exige confirmação
	err = ExcluirPasta(db, user, meio.ID, false)
	var confirmacao ErroConfirmacaoNecessaria
	require.ErrorAs(t, err, &confirmacao)
	assert.Equal(t, 2, confirmacao.Quantidade)

	require.NoError(t, ExcluirPasta(db, user, meio.ID, true))

	// o conteúdo sobe para a pasta pai da excluída
	var cadernoDepois models.Caderno
	require.NoError(t, db.First(&cadernoDepois, caderno.ID).Error)
	require.NotNil(t, cadernoDepois.PastaID)
	assert.Equal(t, raiz.ID, *cadernoDepois.PastaID)

	var netaDepois models.PastaCaderno
	require.NoError(t, db.First(&netaDepois, neta.ID).Error)
	require.NotNil(t, netaDepois.PastaPaiID)
	assert.Equal(t, raiz.ID, *netaDepois.PastaPaiID)
}

func TestExcluirPastaRaizComConteudoSobeParaRaiz(t *testing.T) {
	db := abrirBanco(t)
	user := criarUsuario(t, db, models.PLANO_FREE)
	d := criarDisciplina(t, db, "Português")
	criarQuestoes(t, db, d.ID, 5)

	pasta, err := CriarPasta(db, user, "Pasta", nil)
	require.NoError(t, err)
	caderno, err := CriarCaderno(db, user, "Caderno", FiltroCaderno{DisciplinaID: ptr(d.ID)}, 5, &pasta.ID)
	require.NoError(t, err)

	require.NoError(t, ExcluirPasta(db, user, pasta.ID, true))

	var depois models.Caderno
	require.NoError(t, db.First(&depois, caderno.ID).Error)
	assert.Nil(t, depois.PastaID)
}

func TestPastaDeOutroUsuarioNaoVaza(t *testing.T) {
	db := abrirBanco(t)
	dono := criarUsuario(t, db, models.PLANO_FREE)
	intruso := criarUsuario(t, db, models.PLANO_BASICO)

	pasta, err := CriarPasta(db, dono, "Particular", nil)
	require.NoError(t, err)

	var naoEncontrado ErroNaoEncontrado
	_, err = BuscarPasta(db, intruso.ID, pasta.ID)
	require.ErrorAs(t, err, &naoEncontrado)
	_, err = RenomearPasta(db, intruso, pasta.ID, "Invadida")
	require.ErrorAs(t, err, &naoEncontrado)
	err = ExcluirPasta(db, intruso, pasta.ID, true)
	require.ErrorAs(t, err, &naoEncontrado)
}
