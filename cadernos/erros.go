package cadernos

import (
	"errors"
	"fmt"
)

var (
	// ErrJaRespondida: já existe resposta para (caderno, questão, usuário).
	ErrJaRespondida = errors.New("questão já respondida neste caderno")

	// ErrCadernoConcluido: caderno concluído não aceita novas respostas.
	ErrCadernoConcluido = errors.New("caderno concluído não aceita novas respostas")

	// ErrQuestaoForaDoCaderno: a questão não faz parte do caderno informado.
	ErrQuestaoForaDoCaderno = errors.New("questão não pertence a este caderno")
)

// ErroValidacao indica entrada malformada (nome curto, limite inválido, etc).
// A mensagem é exibida ao usuário como veio.
type ErroValidacao struct {
	Msg string
}

func (e ErroValidacao) Error() string {
	return e.Msg
}

// ErroLimitePlano indica que um teto do plano foi atingido.
// Carrega plano e limite para o front poder montar o prompt de upgrade.
type ErroLimitePlano struct {
	Plano   string
	Recurso string // "cadernos ativos", "questões por caderno", "pastas"
	Limite  int
}

func (e ErroLimitePlano) Error() string {
	return fmt.Sprintf("limite de %s atingido no plano %s (máximo: %d)", e.Recurso, e.Plano, e.Limite)
}

// ErroNaoEncontrado indica recurso inexistente ou pertencente a outro usuário.
// As duas situações respondem igual para não vazar existência de dados alheios.
type ErroNaoEncontrado struct {
	Recurso string
}

func (e ErroNaoEncontrado) Error() string {
	return e.Recurso + " não encontrado(a)"
}

// ErroConfirmacaoNecessaria indica exclusão que precisa de confirmação
// explícita (caderno com respostas, pasta com conteúdo). Quantidade informa
// quantos itens seriam afetados, para o aviso do front.
type ErroConfirmacaoNecessaria struct {
	Recurso    string // "respostas", "itens"
	Quantidade int
}

func (e ErroConfirmacaoNecessaria) Error() string {
	return fmt.Sprintf("existem %d %s vinculados; confirme a exclusão", e.Quantidade, e.Recurso)
}
