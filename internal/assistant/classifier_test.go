package assistant

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(hour int) func() time.Time {
	return func() time.Time { return time.Date(2025, 11, 3, hour, 15, 0, 0, time.UTC) }
}

func TestClassify_NoContext(t *testing.T) {
	c := NewClassifier(WithClock(fixedClock(9)))
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"greeting", "Hello", IntentGreet},
		{"greeting beats invoicing", "hi, invoice please", IntentGreet},
		{"thanks", "Thanks!", IntentThankYou},
		{"goodbye", "Bye", IntentGoodbye},
		{"goodbye curly apostrophe", "ok that’s all", IntentGoodbye},
		{"about app", "What is Canvas?", IntentAboutApp},
		{"invoicing", "How do I create an invoice?", IntentInvoicingHelp},
		{"overdue is invoicing", "my client is overdue", IntentInvoicingHelp},
		{"tax jar", "What is the Tax Jar?", IntentTaxJarInfo},
		{"taxes substring", "saving for taxes", IntentTaxJarInfo},
		{"expense", "How do I add an expense?", IntentExpenseTracking},
		{"payment with expense", "payment for an expense", IntentExpenseTracking},
		{"payment error", "I logged a payment by mistake", IntentPaymentLogError},
		{"projects", "How do projects work?", IntentProjectManagement},
		{"bank without exact phrase", "How do I connect my bank?", IntentFallback},
		{"bank account", "add a bank account", IntentConnectBank},
		{"advice llc", "should I register an LLC?", IntentAdviceDecline},
		{"advice invest", "can you pick an investment", IntentAdviceDecline},
		{"ambiguous payment", "I need help with a payment", IntentClarifyPayment},
		{"fallback", "What is the weather?", IntentFallback},
		{"empty", "", IntentFallback},
		{"whitespace", "   \t\n ", IntentFallback},
		{"digit outside sub-dialogue", "1", IntentFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message, ConversationContext{})
			assert.Equal(t, tt.want, got.Intent)
			assert.NotEmpty(t, got.Response)
		})
	}
}

func TestClassify_SubDialogue(t *testing.T) {
	tests := []struct {
		name    string
		message string
		last    Intent
		want    Intent
	}{
		{"menu 1", "1", IntentInvoicingHelp, IntentInvoicingCreate},
		{"menu 2", "2", IntentInvoicingHelp, IntentInvoicingTrack},
		{"menu 3", "3", IntentInvoicingHelp, IntentInvoicingLate},
		{"create keyword", "I want to create one", IntentInvoicingHelp, IntentInvoicingCreate},
		{"late payment", "late payment", IntentInvoicingHelp, IntentInvoicingLate},
		{"status", "check the STATUS", IntentInvoicingHelp, IntentInvoicingTrack},
		{"unclear re-asks", "xyz", IntentInvoicingHelp, IntentInvoicingHelp},
		{"greeting inside sub-dialogue re-asks", "hello", IntentInvoicingHelp, IntentInvoicingHelp},
		{"tax suggest", "how do you suggest", IntentTaxJarInfo, IntentTaxJarSuggest},
		{"tax customize", "customize", IntentTaxJarInfo, IntentTaxJarCustomize},
		{"tax unclear", "thanks", IntentTaxJarInfo, IntentTaxJarInfo},
		{"non-root context ignored", "1", IntentGreet, IntentFallback},
		{"branch child is not a root", "1", IntentInvoicingCreate, IntentFallback},
	}
	c := NewClassifier(WithClock(fixedClock(9)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message, ConversationContext{LastIntent: tt.last})
			assert.Equal(t, tt.want, got.Intent)
		})
	}
}

func TestClassify_ReaskPrompts(t *testing.T) {
	got := Classify("xyz", NewContext("invoicing_help"))
	assert.Equal(t, replyInvoicingReask, got.Response)

	got = Classify("xyz", NewContext("tax_jar_info"))
	assert.Equal(t, replyTaxJarReask, got.Response)
}

func TestClassify_Greeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good morning!"},
		{11, "Good morning!"},
		{12, "Good afternoon!"},
		{17, "Good afternoon!"},
		{18, "Good evening!"},
		{23, "Good evening!"},
	}
	for _, tt := range tests {
		c := NewClassifier(WithClock(fixedClock(tt.hour)))
		got := c.Classify("hey there", ConversationContext{})
		require.Equal(t, IntentGreet, got.Intent)
		assert.True(t, strings.HasPrefix(got.Response, tt.want), "hour %d: %q", tt.hour, got.Response)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier(WithClock(fixedClock(14)))
	msgs := []string{"hi", "invoice", "2", "random words", "should i invest", ""}
	for _, m := range msgs {
		for _, last := range []Intent{"", IntentInvoicingHelp, IntentTaxJarInfo} {
			cc := ConversationContext{LastIntent: last}
			first := c.Classify(m, cc)
			for i := 0; i < 5; i++ {
				assert.Equal(t, first, c.Classify(m, cc))
			}
		}
	}
}

func TestClassify_AlwaysKnownIntent(t *testing.T) {
	msgs := []string{"", "?", "💸💸", "INVOICE", "tax tax tax", "payment", "see you", "\x00\x01", strings.Repeat("a ", 500)}
	for _, m := range msgs {
		got := Classify(m, ConversationContext{})
		_, ok := ParseIntent(string(got.Intent))
		assert.True(t, ok, "message %q gave unknown intent %q", m, got.Intent)
	}
}

func TestRuleOrder(t *testing.T) {
	want := []Intent{
		IntentGreet, IntentThankYou, IntentGoodbye,
		IntentAboutApp, IntentInvoicingHelp, IntentTaxJarInfo, IntentExpenseTracking,
		IntentPaymentLogError, IntentProjectManagement, IntentConnectBank,
		IntentAdviceDecline, IntentClarifyPayment, IntentFallback,
	}
	assert.Equal(t, want, RuleOrder())
}
