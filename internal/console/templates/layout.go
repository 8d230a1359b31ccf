// Package templates renders the console's HTML shell and shared UI
// primitives as templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/seafortlabs/seafort/internal/console/identity"
)

// Toast is a one-time notice rendered at the top of the page shell.
type Toast struct {
	Kind    string
	Message string
}

// LayoutOptions tune the authenticated page shell.
type LayoutOptions struct {
	Title  string
	Lang   string
	Viewer identity.UserDisplay
	Toast  *Toast
	Mobile bool
}

// Layout renders the authenticated console shell around its children.
func Layout(opts LayoutOptions, loc *message.Printer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		bodyClass := "console"
		if opts.Mobile {
			bodyClass = "console console-mobile"
		}
		if err := writeHead(w, opts.Title, opts.Lang, loc.Sprintf("meta.description")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<body class="%s"><header class="topbar"><a class="brand" href="/account">Seafort</a><nav>`, templ.EscapeString(bodyClass)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<a href="/account">%s</a><a href="/docs">%s</a>`,
			templ.EscapeString(loc.Sprintf("nav.account")),
			templ.EscapeString(loc.Sprintf("nav.docs")),
		); err != nil {
			return err
		}
		if err := Avatar(opts.Viewer, "avatar-sm").Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<form method="post" action="/logout"><button type="submit" class="link">%s</button></form></nav></header>`,
			templ.EscapeString(loc.Sprintf("nav.sign_out")),
		); err != nil {
			return err
		}
		if opts.Toast != nil {
			if _, err := fmt.Fprintf(w,
				`<div class="toast toast-%s" role="status">%s</div>`,
				templ.EscapeString(opts.Toast.Kind),
				templ.EscapeString(opts.Toast.Message),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<main class="content">`); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// AuthLayout renders the unauthenticated shell used by the login page.
func AuthLayout(title, lang, metaDesc string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		if err := writeHead(w, title, lang, metaDesc); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<body class="auth"><main class="auth-card">`); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func writeHead(w io.Writer, title, lang, metaDesc string) error {
	_, err := fmt.Fprintf(w,
		`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><meta name="description" content="%s"><title>%s</title><link rel="stylesheet" href="/static/console.css"></head>`,
		templ.EscapeString(lang),
		templ.EscapeString(metaDesc),
		templ.EscapeString(title),
	)
	return err
}
