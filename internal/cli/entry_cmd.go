package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"resume-builder/resume/model"
)

func newAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an entry to a document section",
	}
	cmd.AddCommand(
		newAddExperienceCmd(app),
		newAddProjectCmd(app),
		newAddEducationCmd(app),
		newAddSkillCmd(app),
	)
	return cmd
}

// addEntry loads the file, prompts for input when the terminal allows and
// required flags are missing, then appends and saves. Invalid input leaves
// the file untouched.
func addEntry(cmd *cobra.Command, app *App, path string, needsPrompt bool, prompt func() error, add func(*model.ResumeDocument) (string, error)) error {
	doc, err := readEditable(path)
	if err != nil {
		return err
	}
	if needsPrompt && app.interactive() {
		if err := prompt(); err != nil {
			return err
		}
	}
	id, err := add(doc)
	if err != nil {
		return err
	}
	if _, err := writeDocument(path, doc); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styleOK.Render("Added ")+id)
	return nil
}

func newAddExperienceCmd(app *App) *cobra.Command {
	var in model.ExperienceInput
	cmd := &cobra.Command{
		Use:     "experience FILE",
		Aliases: []string{"exp"},
		Short:   "Add a job",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return addEntry(cmd, app, args[0],
				in.Title == "" || in.Company == "",
				func() error { return promptExperience(&in) },
				func(doc *model.ResumeDocument) (string, error) { return doc.AddExperience(in) },
			)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Title, "title", "", "job title")
	f.StringVar(&in.Company, "company", "", "employer")
	f.StringVar(&in.Location, "location", "", "city or remote")
	f.StringVar(&in.StartDate, "start", "", "start date, e.g. 2020 or Jan 2020")
	f.StringVar(&in.EndDate, "end", "", "end date or Present")
	f.StringArrayVar(&in.Bullets, "bullet", nil, "achievement line (repeatable)")
	return cmd
}

func newAddProjectCmd(app *App) *cobra.Command {
	var in model.ProjectInput
	cmd := &cobra.Command{
		Use:     "project FILE",
		Aliases: []string{"projects"},
		Short:   "Add a project",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return addEntry(cmd, app, args[0],
				in.Title == "",
				func() error { return promptProject(&in) },
				func(doc *model.ResumeDocument) (string, error) { return doc.AddProject(in) },
			)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Title, "title", "", "project name")
	f.StringVar(&in.Subtitle, "subtitle", "", "short description")
	f.StringVar(&in.StartDate, "start", "", "start date")
	f.StringVar(&in.EndDate, "end", "", "end date or Present")
	f.StringArrayVar(&in.Bullets, "bullet", nil, "detail line (repeatable)")
	return cmd
}

func newAddEducationCmd(app *App) *cobra.Command {
	var in model.EducationInput
	cmd := &cobra.Command{
		Use:   "education FILE",
		Short: "Add a degree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return addEntry(cmd, app, args[0],
				in.Degree == "" || in.School == "",
				func() error { return promptEducation(&in) },
				func(doc *model.ResumeDocument) (string, error) { return doc.AddEducation(in) },
			)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Degree, "degree", "", "degree or certificate")
	f.StringVar(&in.School, "school", "", "institution")
	f.StringVar(&in.Location, "location", "", "city")
	f.StringVar(&in.StartDate, "start", "", "start date")
	f.StringVar(&in.EndDate, "end", "", "end date or Present")
	f.StringVar(&in.Notes, "notes", "", "free-form notes")
	return cmd
}

func newAddSkillCmd(app *App) *cobra.Command {
	var in model.SkillInput
	cmd := &cobra.Command{
		Use:     "skill FILE",
		Aliases: []string{"skills"},
		Short:   "Add a skill group",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return addEntry(cmd, app, args[0],
				in.Category == "" || in.Skills == "",
				func() error { return promptSkill(&in) },
				func(doc *model.ResumeDocument) (string, error) { return doc.AddSkill(in) },
			)
		},
	}
	cmd.Flags().StringVar(&in.Category, "category", "", "group label, e.g. Languages")
	cmd.Flags().StringVar(&in.Skills, "skills", "", "comma-separated skills")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove SECTION ID FILE",
		Short: "Remove one entry by ID (see show for IDs)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := model.ParseSection(args[0])
			if err != nil {
				return err
			}
			doc, err := readEditable(args[2])
			if err != nil {
				return err
			}
			if err := doc.Remove(section, args[1]); err != nil {
				return err
			}
			if _, err := writeDocument(args[2], doc); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleOK.Render("Removed ")+args[1])
			return nil
		},
	}
}

func newServeCmd(app *App) *cobra.Command {
	var (
		host  string
		port  int
		debug bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Serve == nil {
				return fmt.Errorf("serve is not available in this build")
			}
			addr := net.JoinHostPort(host, strconv.Itoa(port))
			fmt.Fprintln(cmd.OutOrStdout(), styleDim.Render("Listening on http://"+addr))
			return app.Serve(addr, debug)
		},
	}
	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "interface to bind")
	cmd.Flags().IntVar(&port, "port", 5000, "port to listen on")
	cmd.Flags().BoolVar(&debug, "debug", false, "verbose gin logging")
	return cmd
}
