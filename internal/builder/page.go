package builder

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/resume/model"
)

//go:embed page/index.html
var pageFiles embed.FS

var pageTemplate = template.Must(template.ParseFS(pageFiles, "page/index.html"))

// pageData feeds the editor page; DataJSON prefills the document textarea.
type pageData struct {
	DataJSON       string
	APIBase        string
	ExportFileName string
	SaveFileName   string
}

// RegisterPage serves the browser editor at GET /. The page posts to the
// builder routes under apiBase. A ?data= query holding document JSON
// prefills the editor; anything unparseable starts from an empty document.
func (h *Handler) RegisterPage(r *gin.Engine, apiBase string) {
	r.SetHTMLTemplate(pageTemplate)
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", pageData{
			DataJSON:       initialJSON(c.Query("data")),
			APIBase:        apiBase,
			ExportFileName: ExportFileName,
			SaveFileName:   SaveFileName,
		})
	})
}

func initialJSON(raw string) string {
	doc := model.New()
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), doc); err != nil {
			doc = model.New()
		}
	}
	data, err := model.Save(doc)
	if err != nil {
		return "{}"
	}
	return string(data)
}
