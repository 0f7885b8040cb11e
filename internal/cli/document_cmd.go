package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-builder/internal/preview"
	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// errInvalidDocument is returned by validate when issues were printed.
var errInvalidDocument = errors.New("document has validation issues")

func newNewCmd(app *App) *cobra.Command {
	var (
		name, subtitle string
		contact        model.Contact
		force          bool
	)
	cmd := &cobra.Command{
		Use:   "new FILE",
		Short: "Create an empty résumé document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := util.EnsureExt(args[0], ".json")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			doc := model.New()
			doc.SetHeader(name, subtitle)
			if err := doc.SetContact(contact); err != nil {
				return err
			}
			written, err := writeDocument(path, doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleOK.Render("Created "+written))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&subtitle, "subtitle", "", "headline shown under the name")
	cmd.Flags().StringVar(&contact.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&contact.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&contact.Website, "website", "", "personal website")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print a document summary with entry IDs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			// Printed IDs must match the file for remove to find them.
			if doc.EnsureIDs() {
				if err := rewriteDocument(args[0], doc); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), styleDim.Render("Assigned IDs to entries that had none"))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatDocument(doc))
			return nil
		},
	}
}

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check dates and email; exits non-zero on problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			issues := preview.Warnings(doc)
			out := cmd.OutOrStdout()
			if len(issues) == 0 {
				fmt.Fprintln(out, styleOK.Render("OK"))
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintln(out, styleErr.Render("✗ ")+issue)
			}
			return errInvalidDocument
		},
	}
}

func newRenderCmd(app *App) *cobra.Command {
	var outPath string
	var templates []string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a document to a standalone HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = strings.TrimSuffix(args[0], ".json")
			}
			outPath = util.EnsureExt(outPath, ".html")

			paths := append(append([]string{}, templates...), app.TemplatePaths...)
			renderer := render.NewRenderer(render.DefaultSource(paths))
			out := cmd.OutOrStdout()
			if tmpl, ok := renderer.Source.Resolve(); ok {
				if missing := tmpl.Missing(); len(missing) > 0 {
					fmt.Fprintln(out, styleWarn.Render("! ")+tmpl.Origin+" lacks "+strings.Join(missing, ", "))
				}
			}
			res := preview.New(renderer).Render(doc)
			if err := os.WriteFile(outPath, []byte(res.HTML), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}

			for _, w := range res.Warnings {
				fmt.Fprintln(out, styleWarn.Render("! ")+w)
			}
			fmt.Fprintln(out, styleOK.Render("Wrote "+outPath))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: FILE with .html)")
	cmd.Flags().StringArrayVar(&templates, "template", nil, "template file to try first (repeatable)")
	return cmd
}

func formatDocument(doc *model.ResumeDocument) string {
	var b strings.Builder
	name := doc.Name
	if name == "" {
		name = "(no name)"
	}
	b.WriteString(styleTitle.Render(name) + "\n")
	if doc.Subtitle != "" {
		b.WriteString(doc.Subtitle + "\n")
	}
	for _, v := range []string{doc.Contact.Email, doc.Contact.Phone, doc.Contact.Website} {
		if v != "" {
			b.WriteString(styleDim.Render(v) + "\n")
		}
	}

	section := func(title string, n int) {
		b.WriteString("\n" + styleSection.Render(fmt.Sprintf("%s (%d)", title, n)) + "\n")
	}
	line := func(id, text string) {
		b.WriteString(styleEntry.Render(styleDim.Render(id)+"  "+text) + "\n")
	}
	dates := func(start, end string) string {
		if start == "" && end == "" {
			return ""
		}
		return styleDim.Render(" [" + start + " - " + end + "]")
	}

	section("Experience", len(doc.Experience))
	for _, e := range doc.Experience {
		line(e.ID, e.Title+" @ "+e.Company+dates(e.StartDate, e.EndDate))
	}
	section("Projects", len(doc.Projects))
	for _, p := range doc.Projects {
		line(p.ID, p.Title+dates(p.StartDate, p.EndDate))
	}
	section("Education", len(doc.Education))
	for _, e := range doc.Education {
		line(e.ID, e.Degree+", "+e.School+dates(e.StartDate, e.EndDate))
	}
	section("Skills", len(doc.Skills))
	for _, s := range doc.Skills {
		line(s.ID, s.Category+": "+s.Skills)
	}
	return b.String()
}
