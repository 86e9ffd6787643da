package assistant

import "strings"

// Intent is a label from the closed set of things the assistant understands.
type Intent string

const (
	IntentGreet    Intent = "greet"
	IntentThankYou Intent = "thank_you"
	IntentGoodbye  Intent = "goodbye"

	IntentAboutApp Intent = "about_app"

	IntentInvoicingHelp   Intent = "invoicing_help"
	IntentInvoicingCreate Intent = "invoicing_create"
	IntentInvoicingTrack  Intent = "invoicing_track"
	IntentInvoicingLate   Intent = "invoicing_late"

	IntentTaxJarInfo      Intent = "tax_jar_info"
	IntentTaxJarSuggest   Intent = "tax_jar_suggest"
	IntentTaxJarCustomize Intent = "tax_jar_customize"

	IntentExpenseTracking   Intent = "expense_tracking_help"
	IntentPaymentLogError   Intent = "payment_log_error"
	IntentProjectManagement Intent = "project_management"
	IntentConnectBank       Intent = "connect_bank"
	IntentAdviceDecline     Intent = "financial_advice_decline"
	IntentClarifyPayment    Intent = "clarify_payment"
	IntentFallback          Intent = "fallback"
)

var allIntents = []Intent{
	IntentGreet, IntentThankYou, IntentGoodbye,
	IntentAboutApp,
	IntentInvoicingHelp, IntentInvoicingCreate, IntentInvoicingTrack, IntentInvoicingLate,
	IntentTaxJarInfo, IntentTaxJarSuggest, IntentTaxJarCustomize,
	IntentExpenseTracking, IntentPaymentLogError, IntentProjectManagement, IntentConnectBank,
	IntentAdviceDecline, IntentClarifyPayment, IntentFallback,
}

// Intents returns every known intent label.
func Intents() []Intent {
	return append([]Intent(nil), allIntents...)
}

func (i Intent) String() string { return string(i) }

// IsRoot reports whether the intent opens a sub-dialogue, i.e. expects the
// next user turn to pick one of its branches.
func (i Intent) IsRoot() bool {
	_, ok := subDialogues[i]
	return ok
}

// ParseIntent validates a raw label against the closed intent set.
func ParseIntent(raw string) (Intent, bool) {
	raw = strings.TrimSpace(raw)
	for _, it := range allIntents {
		if string(it) == raw {
			return it, true
		}
	}
	return "", false
}

// ConversationContext is the only memory carried between turns: the intent
// returned on the previous turn, if any.
type ConversationContext struct {
	LastIntent Intent
}

// NewContext builds a context from client supplied state. Unknown or empty
// labels mean "no prior intent".
func NewContext(lastIntent string) ConversationContext {
	it, ok := ParseIntent(lastIntent)
	if !ok {
		return ConversationContext{}
	}
	return ConversationContext{LastIntent: it}
}

// Root returns the sub-dialogue the conversation is currently inside.
func (c ConversationContext) Root() (Intent, bool) {
	if c.LastIntent.IsRoot() {
		return c.LastIntent, true
	}
	return "", false
}
