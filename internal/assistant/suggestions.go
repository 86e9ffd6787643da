package assistant

import "strings"

// Suggestions are quick-reply chips for the client UI. FollowUp is set only
// for sub-dialogue roots and tells the client to send it back as the next
// turn's lastIntent.
type Suggestions struct {
	Chips     []string
	Rationale string
	FollowUp  *Intent
}

type suggestionSet struct {
	chips     []string
	rationale string
}

var suggestionsByIntent = map[Intent]suggestionSet{
	IntentGreet: {
		[]string{"About Canvas", "Create an invoice", "Tax Jar"},
		"You greeted me, so I introduced myself.",
	},
	IntentThankYou: {
		[]string{"Invoices", "Expenses", "Projects"},
		"You expressed thanks, so I offered to continue helping.",
	},
	IntentGoodbye: {
		[]string{},
		"You ended the conversation.",
	},
	IntentAboutApp: {
		[]string{"Invoices", "Expenses", "Projects"},
		"You asked about Canvas, so I described the app.",
	},
	IntentInvoicingHelp: {
		[]string{"1", "2", "3"},
		"I detected invoicing keywords and offered a short menu.",
	},
	IntentTaxJarInfo: {
		[]string{"How do you suggest a %?", "How do I customize it?", "What % should I use?"},
		"You asked about Tax Jar; I offered two follow-up paths.",
	},
	IntentTaxJarSuggest:   taxJarTopic,
	IntentTaxJarCustomize: taxJarTopic,
	IntentExpenseTracking: {
		[]string{"Add a receipt", "Categorize an expense", "Monthly spending"},
		"You mentioned expenses, so I explained how to log and categorize.",
	},
	IntentPaymentLogError: {
		[]string{"Edit payment", "Delete payment", "View payment history"},
		"You mentioned a mistaken payment; I provided correction steps.",
	},
	IntentProjectManagement: {
		[]string{"Create a Project", "Link an Invoice", "See profitability"},
		"You asked about projects; I summarized how they work.",
	},
	IntentConnectBank: {
		[]string{"Open Settings", "Is Plaid secure?", "Payment Methods location"},
		"You asked about bank linking; I explained the secure process.",
	},
	IntentClarifyPayment: {
		[]string{"Log a client payment", "Track an expense"},
		"'Payment' can be ambiguous; I asked a clarifying question.",
	},
	IntentAdviceDecline: {
		[]string{"Track expenses", "View Tax Jar", "Contact support"},
		"User asked for financial advice; I politely declined and offered to help organize data instead.",
	},
}

var (
	taxJarTopic = suggestionSet{
		[]string{"Open Tax Jar settings", "Change percentage", "Invoices"},
		"You chose a Tax Jar topic, so I explained that area.",
	}
	invoicingOption = suggestionSet{
		[]string{"Send an invoice", "See overdue invoices", "How to add late fees"},
		"You selected an invoicing option, so I provided specific steps.",
	}
	defaultSuggestions = suggestionSet{
		[]string{"Invoices", "Tax Jar", "Expenses"},
		"Your message didn't match known topics, so I suggested common ones.",
	}
)

// BuildSuggestions looks up the chips for an intent. Labels outside the known
// set get the default chips; it never fails.
func BuildSuggestions(intent Intent) Suggestions {
	set, ok := suggestionsByIntent[intent]
	if !ok {
		set = defaultSuggestions
		if strings.HasPrefix(string(intent), "invoicing_") {
			set = invoicingOption
		}
	}
	out := Suggestions{
		Chips:     append([]string{}, set.chips...),
		Rationale: set.rationale,
	}
	if intent.IsRoot() {
		root := intent
		out.FollowUp = &root
	}
	return out
}
