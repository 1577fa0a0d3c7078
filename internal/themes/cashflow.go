package themes

import (
	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
)

// Cash-flow questionnaire vocabularies. The frequency tables are written
// pre-oriented (5 favorable), so none of these questions use Invert.
var (
	optionsDelay = []diagnosis.AnswerOption{"Always", "Sometimes", "Hardly ever"}
	mappingDelay = diagnosis.ScaleMapping{"Always": 1, "Sometimes": 3, "Hardly ever": 5}

	optionsBank = []diagnosis.AnswerOption{"Hardly ever", "Occasionally", "Frequently"}
	mappingBank = diagnosis.ScaleMapping{"Hardly ever": 1, "Occasionally": 3, "Frequently": 5}

	optionsStock = []diagnosis.AnswerOption{"A lot", "Some", "Hardly any"}
	mappingStock = diagnosis.ScaleMapping{"A lot": 1, "Some": 3, "Hardly any": 5}
)

// Cashflow is the cash-flow improvement diagnostic: where working capital
// gets stuck across collections, payments, inventory, bank relations and
// the forecasting process.
func Cashflow() *diagnosis.ThemeDefinition {
	return &diagnosis.ThemeDefinition{
		ID:    "cashflow",
		Title: "Cash-Flow Improvement | 3-Minute Diagnostic",
		Lead:  "Answer 10 questions to see where your cash flow gets stuck.",

		Categories: []diagnosis.Category{
			{
				Name: "Sales & Receivables",
				Questions: []diagnosis.Question{
					{
						ID:      "q1",
						Prompt:  "Do customer payments ever feel slightly late?",
						Options: optionsDelay,
						Mapping: mappingDelay,
					},
					{
						ID:      "q2",
						Prompt:  "Do you regularly review and improve the invoice-to-payment flow?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Payables & Purchasing",
				Questions: []diagnosis.Question{
					{
						ID:      "q3",
						Prompt:  "Are payment terms designed around your own cash cycle?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q4",
						Prompt:  "Can you see subcontractor and supplier payment schedules a month ahead?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Inventory & Fixed Costs",
				Questions: []diagnosis.Question{
					{
						ID:      "q5",
						Prompt:  "Is there unsold inventory sitting in your warehouse or offices?",
						Options: optionsStock,
						Mapping: mappingStock,
					},
					{
						ID:      "q6",
						Prompt:  "Do you manage fixed costs (rent, payroll) against seasonal swings?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Bank Relations",
				Questions: []diagnosis.Question{
					{
						ID:      "q7",
						Prompt:  "How often are you in touch with your bank?",
						Options: optionsBank,
						Mapping: mappingBank,
					},
					{
						ID:      "q8",
						Prompt:  "Do you know your repayment schedules and interest terms, and renegotiate when needed?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Cash Management Process",
				Questions: []diagnosis.Question{
					{
						ID:      "q9",
						Prompt:  "Do you run a short-term cash forecast?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q10",
						Prompt:  "Is there an agreed internal procedure for when a shortfall is forecast?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
		},

		BalancedType: "Well-Balanced Type",
		TypeByCategory: map[string]string{
			"Sales & Receivables":     "Receivables-Leak Type",
			"Payables & Purchasing":   "Payment-Squeeze Type",
			"Inventory & Fixed Costs": "Excess-Inventory Type",
			"Bank Relations":          "Weak-Bank-Ties Type",
			"Cash Management Process": "Unstructured-Process Type",
		},
		TypeText: map[string]string{
			"Receivables-Leak Type":     "Collections are the weak spot. Gaps between invoicing and payment and loose follow-up thin out your cash. Prioritize payment monitoring, delay alerts and credit rules.",
			"Payment-Squeeze Type":      "Payment and purchasing terms may not match your cash cycle. Renegotiating supplier terms and making the payment schedule visible pays off quickly.",
			"Excess-Inventory Type":     "Unsold stock and heavy fixed costs are pressing on cash. Consider clearing stale inventory, right-sizing stocktakes and flexing fixed costs.",
			"Weak-Bank-Ties Type":       "Thin day-to-day bank relationships put emergency funding on the back foot. Schedule regular conversations and take stock of your borrowing terms.",
			"Unstructured-Process Type": "Without a cash forecast and an agreed procedure, shortfalls surprise you. Start a rolling three-month forecast.",
			"Well-Balanced Type":        "The overall balance is sound. Next is maximizing cash efficiency: put surplus funds to work and optimize collection and payment terms.",
		},

		PromptPersona: "You are a consultant who specializes in small-business cash flow.",
	}
}
