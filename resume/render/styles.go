package render

// CSS class names shared between the section markup and the built-in
// stylesheet in templates/resume_template.html.
const (
	ClassBlocks    = "blocks"
	ClassDate      = "date"
	ClassDecorator = "decorator"
	ClassDetails   = "details"
	ClassPlace     = "place"
	ClassLocation  = "location"
)
