package assistant

import (
	"strings"
	"time"
)

// Result is the outcome of classifying one user turn.
type Result struct {
	Intent   Intent
	Response string
}

type branch struct {
	intent   Intent
	keywords []string
	reply    string
}

// subDialogue lists the branches a root accepts on the following turn, in
// priority order, and the prompt repeated when none of them match.
type subDialogue struct {
	branches []branch
	reask    string
}

var subDialogues = map[Intent]subDialogue{
	IntentInvoicingHelp: {
		branches: []branch{
			{IntentInvoicingCreate, []string{"1", "create", "new invoice"}, replyInvoicingCreate},
			{IntentInvoicingTrack, []string{"2", "track", "existing", "view", "status"}, replyInvoicingTrack},
			{IntentInvoicingLate, []string{"3", "late", "overdue", "reminder"}, replyInvoicingLate},
		},
		reask: replyInvoicingReask,
	},
	IntentTaxJarInfo: {
		branches: []branch{
			{IntentTaxJarSuggest, []string{"suggest", "recommend", "percentage", "how you decide"}, replyTaxJarSuggest},
			{IntentTaxJarCustomize, []string{"custom", "adjust", "change", "settings"}, replyTaxJarCustomize},
		},
		reask: replyTaxJarReask,
	},
}

type rule struct {
	intent Intent
	match  func(msg string) bool
	reply  func(now time.Time) string
}

func keywords(k ...string) func(string) bool {
	return func(msg string) bool { return containsAny(msg, k) }
}

func static(s string) func(time.Time) string {
	return func(time.Time) string { return s }
}

// rules are evaluated top to bottom and the first match wins. Keyword sets
// overlap, so the order is part of the behaviour: social intents beat domain
// topics, and the advice guardrail and payment clarification sit just above
// the fallback.
var rules = []rule{
	{IntentGreet, keywords("hello", "hi", "hey"), greeting},
	{IntentThankYou, keywords("thanks", "thank you", "appreciate it"), static(replyThankYou)},
	{IntentGoodbye, keywords("bye", "goodbye", "see you", "that’s all", "thats all"), static(replyGoodbye)},

	{IntentAboutApp, keywords("what is canvas", "what can this app", "tell me about", "about app", "about canvas"), static(replyAboutApp)},
	{IntentInvoicingHelp, keywords("invoice", "invoicing", "overdue", "create invoice", "late payment"), static(replyInvoicingHelp)},
	{IntentTaxJarInfo, keywords("tax jar", "tax", "taxes", "save for taxes"), static(replyTaxJarInfo)},
	{IntentExpenseTracking, keywords("expense", "spending", "log expense", "software"), static(replyExpenseTracking)},
	{IntentPaymentLogError, keywords(
		"logged a payment by mistake", "edit payment", "incorrect payment", "fix payment", "mistake on an invoice payment",
	), static(replyPaymentLogError)},
	{IntentProjectManagement, keywords("projects tab", "how do projects", "project income", "projects"), static(replyProjectManagement)},
	{IntentConnectBank, keywords("connect bank", "link bank", "bank account", "payment methods", "is it safe to link"), static(replyConnectBank)},
	{IntentAdviceDecline, keywords(
		"should i", "advice", "recommend", "what should", "is it better", "should i register",
		"llc", "s-corp", "tax filing", "investment", "invest",
	), static(replyAdviceDecline)},
	{IntentClarifyPayment, isAmbiguousPayment, static(replyClarifyPayment)},
}

func isAmbiguousPayment(msg string) bool {
	return strings.Contains(msg, "payment") && !strings.Contains(msg, "expense")
}

// RuleOrder returns the intents of the top-level rules in evaluation order,
// ending with the fallback.
func RuleOrder() []Intent {
	out := make([]Intent, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.intent)
	}
	return append(out, IntentFallback)
}

// Classifier maps a message and the previous intent to a new intent and its
// base reply. It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	now func() time.Time
}

type Option func(*Classifier)

// WithClock overrides the clock used for the time-of-day greeting.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		if now != nil {
			c.now = now
		}
	}
}

func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

var defaultClassifier = NewClassifier()

// Classify uses a classifier with the wall clock.
func Classify(message string, cc ConversationContext) Result {
	return defaultClassifier.Classify(message, cc)
}

// Classify never fails: anything unrecognized resolves to the fallback intent,
// or to the current root's re-ask prompt inside a sub-dialogue.
func (c *Classifier) Classify(message string, cc ConversationContext) Result {
	msg := Normalize(message)

	if root, ok := cc.Root(); ok {
		sd := subDialogues[root]
		for _, b := range sd.branches {
			if containsAny(msg, b.keywords) {
				return Result{Intent: b.intent, Response: b.reply}
			}
		}
		return Result{Intent: root, Response: sd.reask}
	}

	for _, r := range rules {
		if r.match(msg) {
			return Result{Intent: r.intent, Response: r.reply(c.now())}
		}
	}
	return Result{Intent: IntentFallback, Response: replyFallback}
}
