package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout chrome
	message.SetString(lang, "title.console", "%s | Console")
	message.SetString(lang, "nav.account", "Account")
	message.SetString(lang, "nav.docs", "Docs")
	message.SetString(lang, "nav.sign_out", "Sign out")
	message.SetString(lang, "meta.description", "Seafort account and organization console.")

	// Login page
	message.SetString(lang, "title.login", "%s | Sign In")
	message.SetString(lang, "login.heading", "Sign in to continue")
	message.SetString(lang, "login.email", "Email")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Sign In")
	message.SetString(lang, "login.failed", "Invalid email or password.")
	message.SetString(lang, "login.signed_out", "You have been signed out.")

	// Logout
	message.SetString(lang, "logout.heading", "Sign out of Seafort?")
	message.SetString(lang, "logout.confirm", "Sign Out")
	message.SetString(lang, "logout.cancel", "Back to console")
	message.SetString(lang, "logout.failed", "Sign-out failed. You are still signed in.")

	// Account page
	message.SetString(lang, "title.account", "%s | Account")
	message.SetString(lang, "account.heading", "Your account")
	message.SetString(lang, "account.email", "Email")
	message.SetString(lang, "account.name", "Name")
	message.SetString(lang, "account.language", "Interface language")
	message.SetString(lang, "account.currency", "Billing currency")
	message.SetString(lang, "account.timezone", "Timezone")
	message.SetString(lang, "account.email_updates", "Email updates")
	message.SetString(lang, "account.orgs", "Your organizations")
	message.SetString(lang, "account.preference_saved", "Preference saved.")
	message.SetString(lang, "account.preference_invalid", "That option is not available.")

	// Organization console
	message.SetString(lang, "title.org", "%s | Organization")
	message.SetString(lang, "org.heading", "Organization")
	message.SetString(lang, "org.members", "Members")
	message.SetString(lang, "org.plan", "Plan")
	message.SetString(lang, "org.monthly_spend", "Monthly spend")
	message.SetString(lang, "org.billing_country", "Billing country")
	message.SetString(lang, "org.not_found", "Organization not found.")

	// Errors
	message.SetString(lang, "error.not_found", "Page not found.")
	message.SetString(lang, "error.internal", "Something went wrong.")
}
