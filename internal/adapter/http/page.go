package http

import (
	"html/template"

	"github.com/couchcryptid/weather-widget-service/internal/domain"
)

type page struct {
	Title       string
	Description string
	Placeholder string
	View        domain.View
}

func newPage(v domain.View) page {
	return page{
		Title:       domain.WidgetTitle,
		Description: domain.WidgetDescription,
		Placeholder: domain.InputPlaceholder,
		View:        v,
	}
}

var pageTemplate = template.Must(template.New("widget").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { display: flex; justify-content: center; align-items: center; min-height: 100vh; margin: 0; background: #2563eb; font-family: system-ui, sans-serif; }
.card { width: 100%; max-width: 28rem; background: #dbeafe; border-radius: .5rem; padding: 1.5rem; box-shadow: 0 10px 15px rgba(0,0,0,.2); }
h1 { font-size: 1.5rem; color: #1f2937; margin: 0 0 .25rem; }
.desc { color: #4b5563; margin: 0 0 1rem; }
form { display: flex; gap: .5rem; margin-bottom: 1rem; }
input { flex: 1; padding: .5rem; border: 1px solid #d1d5db; border-radius: .5rem; }
button { background: #3b82f6; color: #fff; border: 0; border-radius: .5rem; padding: .5rem 1rem; }
button:disabled { background: #60a5fa; cursor: wait; }
.error { color: #ef4444; font-weight: 600; }
.panels { display: grid; gap: 1rem; }
.panel { display: flex; gap: .5rem; align-items: center; padding: 1rem; border-radius: .5rem; box-shadow: 0 4px 6px rgba(0,0,0,.1); color: #1f2937; }
.temp { background: #dbeafe; } .cond { background: #fef9c3; } .loc { background: #dcfce7; }
</style>
</head>
<body>
<div class="card">
  <h1>{{.Title}}</h1>
  <p class="desc">{{.Description}}</p>
  <form method="post" action="/">
    <input type="text" name="location" placeholder="{{.Placeholder}}" value="{{.View.Query}}">
    <button type="submit"{{if .View.ButtonDisabled}} disabled{{end}}>{{.View.ButtonLabel}}</button>
  </form>
  {{with .View.Error}}<div class="error" role="alert">{{.}}</div>{{end}}
  {{if .View.Record}}
  <div class="panels">
    <div class="panel temp"><span aria-hidden="true">&#x1F321;</span><div>{{.View.Temperature}}</div></div>
    <div class="panel cond"><span aria-hidden="true">&#x2601;</span><div>{{.View.Condition}}</div></div>
    <div class="panel loc"><span aria-hidden="true">&#x1F4CD;</span><div>{{.View.Location}}</div></div>
  </div>
  {{end}}
</div>
</body>
</html>
`))
