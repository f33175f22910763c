package cadernos

import "concurseiro/models"

// LimitesPlano são os tetos de um plano comercial.
type LimitesPlano struct {
	CadernosAtivos     int `json:"cadernos_ativos"`
	QuestoesPorCaderno int `json:"questoes_por_caderno"`
	Pastas             int `json:"pastas"`
}

// Tabela fixa de planos, carregada uma vez no processo.
// Nunca é mutada em runtime — upgrades trocam o campo plano do usuário.
var limitesPorPlano = map[string]LimitesPlano{
	models.PLANO_FREE:    {CadernosAtivos: 2, QuestoesPorCaderno: 50, Pastas: 3},
	models.PLANO_BASICO:  {CadernosAtivos: 10, QuestoesPorCaderno: 120, Pastas: 20},
	models.PLANO_PREMIUM: {CadernosAtivos: 50, QuestoesPorCaderno: 500, Pastas: 100},
}

// LimitesDoPlano retorna os tetos do plano informado.
// Plano desconhecido cai nos limites do free.
func LimitesDoPlano(plano string) LimitesPlano {
	if l, ok := limitesPorPlano[plano]; ok {
		return l
	}
	return limitesPorPlano[models.PLANO_FREE]
}
