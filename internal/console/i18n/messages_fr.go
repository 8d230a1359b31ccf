package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("fr-FR")

	message.SetString(lang, "title.console", "%s | Console")
	message.SetString(lang, "nav.account", "Compte")
	message.SetString(lang, "nav.docs", "Documentation")
	message.SetString(lang, "nav.sign_out", "Se déconnecter")
	message.SetString(lang, "meta.description", "Console des comptes et organisations Seafort.")

	message.SetString(lang, "title.login", "%s | Connexion")
	message.SetString(lang, "login.heading", "Connectez-vous pour continuer")
	message.SetString(lang, "login.email", "E-mail")
	message.SetString(lang, "login.password", "Mot de passe")
	message.SetString(lang, "login.submit", "Connexion")
	message.SetString(lang, "login.failed", "E-mail ou mot de passe incorrect.")
	message.SetString(lang, "login.signed_out", "Vous avez été déconnecté.")

	message.SetString(lang, "logout.heading", "Se déconnecter de Seafort ?")
	message.SetString(lang, "logout.confirm", "Se déconnecter")
	message.SetString(lang, "logout.cancel", "Retour au console")
	message.SetString(lang, "logout.failed", "Échec de la déconnexion. Vous êtes toujours connecté.")

	message.SetString(lang, "title.account", "%s | Compte")
	message.SetString(lang, "account.heading", "Votre compte")
	message.SetString(lang, "account.email", "E-mail")
	message.SetString(lang, "account.name", "Nom")
	message.SetString(lang, "account.language", "Langue de l'interface")
	message.SetString(lang, "account.currency", "Devise de facturation")
	message.SetString(lang, "account.timezone", "Fuseau horaire")
	message.SetString(lang, "account.email_updates", "Mises à jour par e-mail")
	message.SetString(lang, "account.orgs", "Vos organisations")
	message.SetString(lang, "account.preference_saved", "Préférence enregistrée.")
	message.SetString(lang, "account.preference_invalid", "Cette option n'est pas disponible.")

	message.SetString(lang, "title.org", "%s | Organisation")
	message.SetString(lang, "org.heading", "Organisation")
	message.SetString(lang, "org.members", "Membres")
	message.SetString(lang, "org.plan", "Offre")
	message.SetString(lang, "org.monthly_spend", "Dépense mensuelle")
	message.SetString(lang, "org.billing_country", "Pays de facturation")
	message.SetString(lang, "org.not_found", "Organisation introuvable.")

	message.SetString(lang, "error.not_found", "Page introuvable.")
	message.SetString(lang, "error.internal", "Une erreur est survenue.")
}
