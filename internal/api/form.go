package api

import (
	"net/http"

	"github.com/BerylCAtieno/persona-marketing-agent/internal/models"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/pipeline"
	"github.com/gin-gonic/gin"
)

const formTemplate = "index.tmpl"

// pageForm is the single form of the UI. Both buttons post all fields so
// the page can be re-rendered with the user's input intact.
type pageForm struct {
	models.CampaignRequest
	models.RefineRequest
}

type pageData struct {
	Options     models.Options
	Form        models.CampaignRequest
	Output      string
	Instruction string
}

// ShowForm handles GET /
func (h *Handler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplate, pageData{
		Options: models.DefaultOptions(),
		Form:    models.CampaignRequest{}.WithDefaults(),
	})
}

// SubmitGenerate handles POST /generate. Failures are shown in the
// output area as a "Fehler:" message.
func (h *Handler) SubmitGenerate(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}

	output, err := h.generator.Generate(c.Request.Context(), form.CampaignRequest)
	if err != nil {
		logFailure(c.Request.Context(), err)
		output = pipeline.UserMessage(err)
	}
	render(c, form, output)
}

// SubmitRefine handles POST /refine. The refined text replaces the output
// it was derived from.
func (h *Handler) SubmitRefine(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}

	output, err := h.generator.Refine(c.Request.Context(), form.CurrentOutput, form.Instruction)
	if err != nil {
		logFailure(c.Request.Context(), err)
		output = pipeline.UserMessage(err)
	}
	render(c, form, output)
}

func bindForm(c *gin.Context) (pageForm, bool) {
	var form pageForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, formTemplate, pageData{
			Options: models.DefaultOptions(),
			Form:    models.CampaignRequest{}.WithDefaults(),
			Output:  msgInvalidRequest,
		})
		return form, false
	}
	return form, true
}

func render(c *gin.Context, form pageForm, output string) {
	c.HTML(http.StatusOK, formTemplate, pageData{
		Options:     models.DefaultOptions(),
		Form:        form.CampaignRequest.WithDefaults(),
		Output:      output,
		Instruction: form.Instruction,
	})
}
