package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/seafortlabs/seafort/internal/console/identity"
)

// Avatar renders the user's avatar image, falling back to derived initials
// when no avatar URL is set. sizeClass is appended to the base avatar class.
func Avatar(user identity.UserDisplay, sizeClass string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "avatar"
		if trimmed := strings.TrimSpace(sizeClass); trimmed != "" {
			class += " " + trimmed
		}
		if url := strings.TrimSpace(user.AvatarURL); url != "" {
			_, err := fmt.Fprintf(w,
				`<img class="%s" src="%s" alt="%s">`,
				templ.EscapeString(class),
				templ.EscapeString(url),
				templ.EscapeString(user.DisplayName()),
			)
			return err
		}
		_, err := fmt.Fprintf(w,
			`<span class="%s avatar-initials" aria-label="%s">%s</span>`,
			templ.EscapeString(class),
			templ.EscapeString(user.DisplayName()),
			templ.EscapeString(user.Initials()),
		)
		return err
	})
}

// Skeleton renders a block of pulsing placeholder lines shown while a panel
// loads.
func Skeleton(lines int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if lines < 1 {
			lines = 1
		}
		if _, err := io.WriteString(w, `<div class="skeleton" aria-hidden="true">`); err != nil {
			return err
		}
		for i := 0; i < lines; i++ {
			if _, err := io.WriteString(w, `<div class="skeleton-line"></div>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Switch renders a labelled toggle input that submits with its form.
func Switch(name string, checked bool, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		checkedAttr := ""
		if checked {
			checkedAttr = " checked"
		}
		_, err := fmt.Fprintf(w,
			`<label class="switch"><input type="checkbox" role="switch" name="%s"%s><span class="switch-track"></span><span class="switch-label">%s</span></label>`,
			templ.EscapeString(name),
			checkedAttr,
			templ.EscapeString(label),
		)
		return err
	})
}

// Select renders a labelled select input from option pairs. The value of
// each pair is the submitted value, the label the visible text.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// SelectField renders a submit-on-change select bound to name.
func SelectField(name, label string, options []SelectOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<label class="field"><span class="field-label">%s</span><select name="%s">`,
			templ.EscapeString(label),
			templ.EscapeString(name),
		); err != nil {
			return err
		}
		for _, option := range options {
			selectedAttr := ""
			if option.Selected {
				selectedAttr = " selected"
			}
			if _, err := fmt.Fprintf(w,
				`<option value="%s"%s>%s</option>`,
				templ.EscapeString(option.Value),
				selectedAttr,
				templ.EscapeString(option.Label),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select></label>`)
		return err
	})
}
