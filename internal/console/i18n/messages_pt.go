package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, "title.console", "%s | Console")
	message.SetString(lang, "nav.account", "Conta")
	message.SetString(lang, "nav.docs", "Documentação")
	message.SetString(lang, "nav.sign_out", "Sair")
	message.SetString(lang, "meta.description", "Console de contas e organizações Seafort.")

	message.SetString(lang, "title.login", "%s | Entrar")
	message.SetString(lang, "login.heading", "Entre para continuar")
	message.SetString(lang, "login.email", "E-mail")
	message.SetString(lang, "login.password", "Senha")
	message.SetString(lang, "login.submit", "Entrar")
	message.SetString(lang, "login.failed", "E-mail ou senha inválidos.")
	message.SetString(lang, "login.signed_out", "Você saiu da sua conta.")

	message.SetString(lang, "logout.heading", "Sair do Seafort?")
	message.SetString(lang, "logout.confirm", "Sair")
	message.SetString(lang, "logout.cancel", "Voltar ao console")
	message.SetString(lang, "logout.failed", "Falha ao sair. Você continua conectado.")

	message.SetString(lang, "title.account", "%s | Conta")
	message.SetString(lang, "account.heading", "Sua conta")
	message.SetString(lang, "account.email", "E-mail")
	message.SetString(lang, "account.name", "Nome")
	message.SetString(lang, "account.language", "Idioma da interface")
	message.SetString(lang, "account.currency", "Moeda de cobrança")
	message.SetString(lang, "account.timezone", "Fuso horário")
	message.SetString(lang, "account.email_updates", "Atualizações por e-mail")
	message.SetString(lang, "account.orgs", "Suas organizações")
	message.SetString(lang, "account.preference_saved", "Preferência salva.")
	message.SetString(lang, "account.preference_invalid", "Essa opção não está disponível.")

	message.SetString(lang, "title.org", "%s | Organização")
	message.SetString(lang, "org.heading", "Organização")
	message.SetString(lang, "org.members", "Membros")
	message.SetString(lang, "org.plan", "Plano")
	message.SetString(lang, "org.monthly_spend", "Gasto mensal")
	message.SetString(lang, "org.billing_country", "País de cobrança")
	message.SetString(lang, "org.not_found", "Organização não encontrada.")

	message.SetString(lang, "error.not_found", "Página não encontrada.")
	message.SetString(lang, "error.internal", "Algo deu errado.")
}
