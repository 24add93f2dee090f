package web

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/google/uuid"

	"github.com/jaminalder/nine-mens-morris/internal/domain"
)

type templates struct {
	base  *template.Template
	game  *template.Template
	board *template.Template
	index *template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"colorName": func(c domain.Color) string {
			switch c {
			case domain.White:
				return "White"
			case domain.Black:
				return "Black"
			default:
				return ""
			}
		},
	}
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Nine Men's Morris</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org/dist/ext/sse.js"></script>
</head><body>{{template "content" .}}</body></html>`))
	template.Must(base.New("board").Funcs(funcs()).Parse(boardTemplate))
	index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>Nine Men's Morris</h1><form action="/game" method="post"><button>Create</button></form>`))
	game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<div hx-ext="sse" hx-sse="connect:/game/{{.ID}}/events">
  <div id="board" hx-sse="swap:board">{{template "board" .Board}}</div>
</div>`))
	board := template.Must(template.New("board_only").Funcs(funcs()).Parse(boardTemplate))
	return &templates{base: base, game: game, board: board, index: index}
}

func renderTemplate(t *template.Template, name string, data any) []byte {
	var buf bytes.Buffer
	if name == "" {
		_ = t.Execute(&buf, data)
	} else {
		_ = t.ExecuteTemplate(&buf, name, data)
	}
	return buf.Bytes()
}

const boardTemplate = `
<div id="board" data-phase="{{.Phase}}" data-turn="{{colorName .Turn}}">
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{end}}
  {{if .Winner}}<div class="winner">{{colorName .Winner}} wins</div>
  {{else}}<div class="status">{{colorName .Turn}} to act ({{.Phase}})</div>{{end}}
  <table class="grid">
  {{range .Rows}}
    <tr>
    {{range .}}
      {{if .Valid}}<td class="point" data-point="{{.Point}}">{{.Symbol}}</td>{{else}}<td></td>{{end}}
    {{end}}
    </tr>
  {{end}}
  </table>
  <form hx-post="/game/{{.ID}}/play" hx-target="#board" hx-swap="outerHTML" method="post">
    <select name="op"><option value="P">place</option><option value="M">move</option><option value="R">remove</option></select>
    <input type="number" name="from" min="0" max="23">
    <input type="number" name="to" min="0" max="23">
    <button type="submit">Play</button>
  </form>
  <form hx-post="/game/{{.ID}}/undo" hx-target="#board" hx-swap="outerHTML" method="post">
    <button type="submit">Undo</button>
  </form>
</div>
`

// cellView is one square of the 7x7 grid the board is drawn on.
type cellView struct {
	Valid  bool
	Point  int
	Symbol string
}

// boardView is the data the board template renders.
type boardView struct {
	ID     string
	Error  string
	Phase  string
	Turn   domain.Color
	Winner domain.Color
	Rows   [7][7]cellView
}

func newBoardView(id string, g *domain.Game, errMsg string) boardView {
	v := boardView{
		ID:     id,
		Error:  errMsg,
		Phase:  g.Phase().String(),
		Turn:   g.Turn(),
		Winner: g.Winner(),
	}
	pts := g.Points()
	for p, rc := range domain.Layout {
		sym := "·"
		switch pts[p] {
		case domain.White:
			sym = "○"
		case domain.Black:
			sym = "●"
		}
		v.Rows[rc[0]][rc[1]] = cellView{Valid: true, Point: p, Symbol: sym}
	}
	return v
}

// Helper to set cookie
func ensurePlayerCookie(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie("player_id"); err == nil && c.Value != "" {
		return c.Value
	}
	v := uuid.NewString()
	http.SetCookie(w, &http.Cookie{Name: "player_id", Value: v, Path: "/"})
	return v
}
