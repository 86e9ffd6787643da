package assistant

import "time"

// Canned replies. Enhancement may rephrase them but they must stand alone.
const (
	replyThankYou = "You're very welcome! Is there anything else I can help you with today?"
	replyGoodbye  = "Glad I could help. Have a great, productive day!"

	replyAboutApp = "Canvas is an all-in-one financial app designed for creative freelancers. It helps you manage invoices, " +
		"track expenses, and automatically save for taxes, so you can focus on your creative work without financial stress."

	replyInvoicingHelp = "I can definitely help with invoices. Are you looking to:\n" +
		"1) Create a new invoice\n2) Track an existing invoice\n3) Handle a late payment"
	replyInvoicingReask = "I can help with invoices. Are you looking to:\n" +
		"1. Create a new invoice?\n2. Track an existing invoice?\n3. Handle a late payment?"
	replyInvoicingCreate = "Great — here’s how to create an invoice:\n" +
		"1) Open Invoices and tap ‘+’.\n" +
		"2) Add client, line items, and due date.\n" +
		"3) Preview, then Send.\n" +
		"Tip: Add payment terms so clients know when and how to pay."
	replyInvoicingTrack = "To track invoices:\n" +
		"• Go to Invoices and use the filters (Overdue, Outstanding, Paid).\n" +
		"• Tap an invoice to view timeline and payment history.\n" +
		"• Use search to jump to a specific client or number."
	replyInvoicingLate = "For late payments:\n" +
		"1) Open the overdue invoice.\n" +
		"2) Tap ‘Send Reminder’ to email a polite nudge.\n" +
		"3) Optionally add a late fee (if that’s your policy).\n" +
		"Canvas logs reminders so you have a clear trail."

	replyTaxJarInfo = "The 'Tax Jar' automatically sets aside a portion of your income for taxes. We recommend a percentage based on your income, " +
		"but you can adjust it anytime in Settings. Would you like to know more about how we suggest a percentage, or how to customize it?"
	replyTaxJarReask   = "Would you like to know more about how we suggest a percentage, or how to customize it?"
	replyTaxJarSuggest = "We estimate a savings percentage using your recent income pace and typical self‑employment tax rates.\n" +
		"It’s a starting point — not advice — and you can fine‑tune it anytime.\n" +
		"Rule of thumb: 20–30% works for many freelancers, but your situation may differ."
	replyTaxJarCustomize = "To customize Tax Jar:\n" +
		"1) Open Settings › Tax Jar.\n" +
		"2) Set your preferred % (you can change it anytime).\n" +
		"3) Canvas will auto‑set aside that % whenever you log a payment."

	replyExpenseTracking = "To record an expense and keep deductions tidy:\n" +
		"1) Open Expenses and tap ‘+’.\n" +
		"2) Add amount, vendor, and category (e.g., Software, Equipment).\n" +
		"3) Add a note or receipt if you have one — it helps at tax time."
	replyPaymentLogError = "Totally fixable. To correct a logged payment:\n" +
		"1) Open the invoice.\n" +
		"2) Tap Payment History.\n" +
		"3) Edit or delete the incorrect entry — Canvas will auto‑adjust your Tax Jar."
	replyProjectManagement = "Projects help you see the full picture:\n" +
		"• Create a project and set a budget.\n" +
		"• Link invoices and expenses to that project.\n" +
		"• Track profitability at a glance (income – costs)."
	replyConnectBank = "To link your bank securely:\n" +
		"1) Go to Settings › Payment Methods.\n" +
		"2) Choose ‘Connect bank’ and select your institution via Plaid.\n" +
		"Your credentials are encrypted and never stored by Canvas."

	replyAdviceDecline = "As an AI assistant for the Canvas app, I can't provide financial advice, but I can help you organize " +
		"your business data to discuss with a professional advisor. Would you like help tracking your expenses, invoices, or Tax Jar savings?"
	replyClarifyPayment = "Got it. Are you trying to log a payment you received from a client, or track an expense you paid?"
	replyFallback       = "I'm not sure I understand that. I can help with topics like invoicing, tax savings, expenses, and project management. " +
		"Could you try rephrasing your question?"
)

// greeting picks a time-of-day salutation from the local hour.
func greeting(now time.Time) string {
	h := now.Hour()
	when := "evening"
	switch {
	case h < 12:
		when = "morning"
	case h < 18:
		when = "afternoon"
	}
	return "Good " + when + "! I'm the Canvas Assistant. How can I help you with your freelance finances today?"
}
