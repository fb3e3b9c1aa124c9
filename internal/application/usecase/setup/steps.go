// Package setup contains the one-time initial setup wizard use cases.
package setup

import "github.com/financas-app/backend/internal/domain/entity"

// StepField is one money input on a wizard screen.
type StepField struct {
	Key         string
	Label       string
	Icon        string
	Placeholder string
}

// Step is one wizard screen: a fixed title, description and 2-4 money fields.
type Step struct {
	Key         string
	Title       string
	Description string
	Fields      []StepField
}

// Steps is the fixed ordered sequence of setup screens.
var Steps = []Step{
	{
		Key:         "rendas",
		Title:       "Suas rendas mensais",
		Description: "Informe suas fontes de renda.",
		Fields: []StepField{
			{Key: "rendaRecorrente", Label: "Renda recorrente (ex: salário)", Icon: "💼", Placeholder: "0,00"},
			{Key: "rendaExtra", Label: "Renda extra (ex: freelas, hora extra)", Icon: "✨", Placeholder: "0,00"},
		},
	},
	{
		Key:         "despesasFixas",
		Title:       "Despesas fixas",
		Description: "Despesas que se repetem todo mês.",
		Fields: []StepField{
			{Key: "moradia", Label: "Moradia/Aluguel", Icon: "🏠", Placeholder: "0,00"},
			{Key: "energia", Label: "Energia", Icon: "⚡", Placeholder: "0,00"},
			{Key: "agua", Label: "Água", Icon: "💧", Placeholder: "0,00"},
			{Key: "comunicacao", Label: "Internet", Icon: "📱", Placeholder: "0,00"},
		},
	},
	{
		Key:         "despesasVariaveis",
		Title:       "Despesas variáveis",
		Description: "Despesas que podem variar mensalmente.",
		Fields: []StepField{
			{Key: "alimentacao", Label: "Mercado", Icon: "🍔", Placeholder: "0,00"},
			{Key: "gas", Label: "Gás", Icon: "💨", Placeholder: "0,00"},
			{Key: "lazer", Label: "Lazer/Outros", Icon: "🎮", Placeholder: "0,00"},
		},
	},
	{
		Key:         "investimentos",
		Title:       "Investimentos & Poupança",
		Description: "Valores que você guarda para o futuro.",
		Fields: []StepField{
			{Key: "reservaEmergencia", Label: "Reserva de emergência", Icon: "💰", Placeholder: "0,00"},
			{Key: "outrasMetas", Label: "Outras Metas", Icon: "🎯", Placeholder: "0,00"},
		},
	},
}

// seedSpec describes the record written for one field when its value is
// positive at confirmation time.
type seedSpec struct {
	Key        string
	Kind       entity.TransactionKind
	Subtype    entity.Subtype
	Name       string
	CategoryID string
}

// seedSpecs maps every wizard field to the transaction it seeds, in write
// order. Fields left empty or at zero produce no record.
var seedSpecs = []seedSpec{
	{Key: "rendaRecorrente", Kind: entity.TransactionKindIncome, Subtype: entity.SubtypeRecurring, Name: "Renda recorrente"},
	{Key: "rendaExtra", Kind: entity.TransactionKindIncome, Subtype: entity.SubtypeExtra, Name: "Renda extra"},

	{Key: "moradia", Kind: entity.TransactionKindExpense, Subtype: entity.SubtypeFixed, Name: "Moradia/Aluguel", CategoryID: "moradia"},
	{Key: "energia", Kind: entity.TransactionKindExpense, Subtype: entity.SubtypeFixed, Name: "Energia", CategoryID: "energia"},
	{Key: "agua", Kind: entity.TransactionKindExpense, Subtype: entity.SubtypeFixed, Name: "Água", CategoryID: "agua"},
	{Key: "comunicacao", Kind: entity.TransactionKindExpense, Subtype: entity.SubtypeFixed, Name: "Internet", CategoryID: "comunicacao"},

	{Key: "alimentacao", Kind: entity.TransactionKindExpense, Subtype: entity.SubtypeVariable, Name: "Mercado", CategoryID: "alimentacao"},
	{Key: "gas", Kind: entity.TransactionKindExpense, Subtype: entity.SubtypeVariable, Name: "Gás", CategoryID: "gas"},
	{Key: "lazer", Kind: entity.TransactionKindExpense, Subtype: entity.SubtypeVariable, Name: "Lazer", CategoryID: "lazer"},

	{Key: "reservaEmergencia", Kind: entity.TransactionKindInvestment, Name: "Reserva de emergência", CategoryID: "reserva"},
	{Key: "outrasMetas", Kind: entity.TransactionKindInvestment, Name: "Outras metas", CategoryID: "metas"},
}
