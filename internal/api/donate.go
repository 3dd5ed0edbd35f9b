package api

import (
	"html/template"
	"log"
	"net/http"

	"github.com/meur/gamevault/internal/donate"
)

var donateTmpl = template.Must(template.New("donate").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Subtitle}}</p>
<h2>Instructions:</h2>
<ol>
{{range .Steps}}<li>{{.}}</li>
{{end}}</ol>
<img src="{{.QRImage}}" alt="{{.QRAlt}}">
<p><a href="{{.BackURL}}">&larr; {{.BackText}}</a></p>
</body>
</html>
`))

// handleDonateBinance renders the Binance Pay instructions page
func (s *Server) handleDonateBinance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := donateTmpl.Execute(w, donate.Binance()); err != nil {
		log.Printf("api: render donate page: %v", err)
	}
}
