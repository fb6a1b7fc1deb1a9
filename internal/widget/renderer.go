package widget

import (
	"context"
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"os"

	pkgLog "jewelry-concierge/pkg/log"
)

//go:embed widget.html
var widgetHTML string

// placeholderAvatar is served when no avatar asset is present on disk.
const placeholderAvatar = "https://via.placeholder.com/60x60.png?text=Brax"

// Renderer produces the embeddable chat widget page. The avatar is
// inlined as a data URI so the page stays a single request.
type Renderer struct {
	l         pkgLog.Logger
	tmpl      *template.Template
	avatarURI string
}

type pageData struct {
	ChatURL   string
	AvatarURI string
}

// NewRenderer parses the embedded template and loads the avatar from
// avatarPath. A missing avatar is not fatal; the placeholder is used.
func NewRenderer(l pkgLog.Logger, avatarPath string) (*Renderer, error) {
	tmpl, err := template.New("widget").Parse(widgetHTML)
	if err != nil {
		return nil, fmt.Errorf("parse widget template: %w", err)
	}

	r := &Renderer{
		l:         l,
		tmpl:      tmpl,
		avatarURI: placeholderAvatar,
	}

	if avatarPath != "" {
		raw, err := os.ReadFile(avatarPath)
		if err != nil {
			l.Warnf(context.Background(), "avatar not readable at %s, using fallback: %v", avatarPath, err)
		} else {
			r.avatarURI = "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
		}
	}

	return r, nil
}

// Render writes the widget page pointed at the given chat endpoint.
func (r *Renderer) Render(w io.Writer, chatURL string) error {
	return r.tmpl.Execute(w, pageData{
		ChatURL:   chatURL,
		AvatarURI: r.avatarURI,
	})
}
