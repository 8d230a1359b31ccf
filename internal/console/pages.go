package console

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/seafortlabs/seafort/internal/console/docs"
	"github.com/seafortlabs/seafort/internal/console/identity"
	"github.com/seafortlabs/seafort/internal/console/templates"
)

func errorFragment(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="error-state"><p>%s</p></section>`, templ.EscapeString(text))
		return err
	})
}

// loginFragment renders the credential form, with an optional inline error.
func loginFragment(loc *message.Printer, errorText string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, templ.EscapeString(loc.Sprintf("login.heading"))); err != nil {
			return err
		}
		if errorText != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error" role="alert">%s</p>`, templ.EscapeString(errorText)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/login">`+
				`<label class="field"><span class="field-label">%s</span><input type="email" name="email" required autocomplete="email"></label>`+
				`<label class="field"><span class="field-label">%s</span><input type="password" name="password" required autocomplete="current-password"></label>`+
				`<button type="submit" class="primary">%s</button>`+
				`</form>`,
			templ.EscapeString(loc.Sprintf("login.email")),
			templ.EscapeString(loc.Sprintf("login.password")),
			templ.EscapeString(loc.Sprintf("login.submit")),
		)
		return err
	})
}

// logoutFragment renders the sign-out confirmation.
func logoutFragment(loc *message.Printer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="confirm"><h1>%s</h1>`+
				`<form method="post" action="/logout"><button type="submit" class="danger">%s</button></form>`+
				`<a href="/account">%s</a></section>`,
			templ.EscapeString(loc.Sprintf("logout.heading")),
			templ.EscapeString(loc.Sprintf("logout.confirm")),
			templ.EscapeString(loc.Sprintf("logout.cancel")),
		)
		return err
	})
}

type accountView struct {
	Viewer          identity.UserDisplay
	LanguageOptions []templates.SelectOption
	CurrencyOptions []templates.SelectOption
	TimezoneOptions []templates.SelectOption
	EmailUpdates    bool
	OrgSlugs        []string
}

func accountFragment(loc *message.Printer, view accountView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1><section class="profile">`, templ.EscapeString(loc.Sprintf("account.heading"))); err != nil {
			return err
		}
		if err := templates.Avatar(view.Viewer, "avatar-lg").Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<dl><dt>%s</dt><dd>%s</dd><dt>%s</dt><dd>%s</dd></dl></section>`,
			templ.EscapeString(loc.Sprintf("account.email")),
			templ.EscapeString(view.Viewer.Email),
			templ.EscapeString(loc.Sprintf("account.name")),
			templ.EscapeString(view.Viewer.DisplayName()),
		); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<form method="post" action="/account/language" class="preference">`); err != nil {
			return err
		}
		if err := templates.SelectField("language", loc.Sprintf("account.language"), view.LanguageOptions).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<button type="submit">OK</button></form>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<form method="post" action="/account/currency" class="preference">`); err != nil {
			return err
		}
		if err := templates.SelectField("currency", loc.Sprintf("account.currency"), view.CurrencyOptions).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<button type="submit">OK</button></form>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<form method="post" action="/account/timezone" class="preference">`); err != nil {
			return err
		}
		if err := templates.SelectField("timezone", loc.Sprintf("account.timezone"), view.TimezoneOptions).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<button type="submit">OK</button></form>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<form method="post" action="/account/notifications" class="preference">`); err != nil {
			return err
		}
		if err := templates.Switch("email_updates", view.EmailUpdates, loc.Sprintf("account.email_updates")).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<button type="submit">OK</button></form>`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<h2>%s</h2><ul class="org-list">`, templ.EscapeString(loc.Sprintf("account.orgs"))); err != nil {
			return err
		}
		for _, slug := range view.OrgSlugs {
			if _, err := fmt.Fprintf(w, `<li><a href="/orgs/%s">%s</a></li>`, templ.EscapeString(slug), templ.EscapeString(slug)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

type orgView struct {
	Org            Org
	MonthlySpend   string
	BillingCountry string
}

func orgFragment(loc *message.Printer, view orgView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1>%s</h1><p class="org-slug">%s</p>`+
				`<dl class="org-facts">`+
				`<dt>%s</dt><dd>%d</dd>`+
				`<dt>%s</dt><dd>%s</dd>`+
				`<dt>%s</dt><dd>%s</dd>`+
				`<dt>%s</dt><dd>%s</dd>`+
				`</dl>`,
			templ.EscapeString(view.Org.Name),
			templ.EscapeString(view.Org.Slug),
			templ.EscapeString(loc.Sprintf("org.members")),
			view.Org.MemberCount,
			templ.EscapeString(loc.Sprintf("org.plan")),
			templ.EscapeString(view.Org.Plan),
			templ.EscapeString(loc.Sprintf("org.monthly_spend")),
			templ.EscapeString(view.MonthlySpend),
			templ.EscapeString(loc.Sprintf("org.billing_country")),
			templ.EscapeString(view.BillingCountry),
		)
		return err
	})
}

func docsFragment(nav []docs.NavEntry, page docs.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="docs"><nav class="docs-nav"><ul>`); err != nil {
			return err
		}
		for _, entry := range nav {
			class := ""
			if entry.Slug == page.Slug {
				class = ` class="active"`
			}
			if _, err := fmt.Fprintf(w, `<li%s><a href="/docs/%s">%s</a></li>`, class, templ.EscapeString(entry.Slug), templ.EscapeString(entry.Title)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul></nav><article class="docs-body">`); err != nil {
			return err
		}
		// Page HTML is produced by the markdown renderer from repo-owned
		// content, not user input.
		if err := templ.Raw(page.HTML).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</article>`); err != nil {
			return err
		}
		if len(page.TOC) > 0 {
			if _, err := io.WriteString(w, `<aside class="docs-toc"><ul>`); err != nil {
				return err
			}
			for _, heading := range page.TOC {
				if _, err := fmt.Fprintf(w, `<li class="toc-l%d"><a href="#%s">%s</a></li>`, heading.Level, templ.EscapeString(heading.ID), templ.EscapeString(heading.Text)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</ul></aside>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
