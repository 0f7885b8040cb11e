package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

func main() {
	outPath := flag.String("out", "./out/sample_resume.html", "output path for generated HTML")
	templatePath := flag.String("template", "", "optional template file tried before the built-in one")
	flag.Parse()

	doc, err := sampleResume()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sample failed: %v\n", err)
		os.Exit(1)
	}

	var paths []string
	if *templatePath != "" {
		paths = append(paths, *templatePath)
	}
	html := render.NewRenderer(render.DefaultSource(paths)).Render(doc)

	if err := writeOutputs(*outPath, doc, html); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := checkRendered(html); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func writeOutputs(outPath string, doc *model.ResumeDocument, html string) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
		return err
	}

	payload, err := model.Save(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "sample_resume_data.json"), payload, 0o644)
}

func sampleResume() (*model.ResumeDocument, error) {
	doc := model.New()
	doc.SetHeader("Jordan Lee", "Senior Backend Engineer")
	if err := doc.SetContact(model.Contact{
		Website: "https://github.com/jordanlee",
		Email:   "jordan.lee@example.com",
		Phone:   "+1-555-0102",
	}); err != nil {
		return nil, err
	}

	steps := []func() (string, error){
		func() (string, error) {
			return doc.AddExperience(model.ExperienceInput{
				Title:     "Senior Backend Engineer",
				Company:   "Acme Logistics",
				Location:  "Austin, TX",
				StartDate: "Apr 2021",
				EndDate:   "Present",
				Bullets: []string{
					"Designed a routing service that reduced shipment latency by 18%.",
					"Implemented distributed tracing to cut incident triage time by 35%.",
				},
			})
		},
		func() (string, error) {
			return doc.AddExperience(model.ExperienceInput{
				Title:     "Backend Engineer",
				Company:   "Blue Harbor Systems",
				Location:  "Seattle, WA",
				StartDate: "Jan 2018",
				EndDate:   "Mar 2021",
				Bullets:   []string{"Built event-driven ingestion pipelines for compliance data feeds."},
			})
		},
		func() (string, error) {
			return doc.AddProject(model.ProjectInput{
				Title:     "drift",
				Subtitle:  "Open-source schema diff tool",
				StartDate: "2022",
				Bullets:   model.SplitBullets("Written in Go\n\nUsed by 40+ teams"),
			})
		},
		func() (string, error) {
			return doc.AddEducation(model.EducationInput{
				Degree:    "B.S. Computer Science",
				School:    "University of Texas",
				Location:  "Austin, TX",
				StartDate: "2010",
				EndDate:   "2014",
				Notes:     "Graduated with honors",
			})
		},
		func() (string, error) {
			return doc.AddSkill(model.SkillInput{Category: "Languages", Skills: "Go, Java, SQL"})
		},
		func() (string, error) {
			return doc.AddSkill(model.SkillInput{Category: "Cloud", Skills: "AWS, Docker, Kubernetes"})
		},
	}
	for _, step := range steps {
		if _, err := step(); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func checkRendered(html string) error {
	if html == render.FallbackDocument {
		return fmt.Errorf("template not found")
	}
	if idx := strings.Index(html, "{{"); idx != -1 {
		end := idx + 40
		if end > len(html) {
			end = len(html)
		}
		return fmt.Errorf("unresolved template tokens near: %s", html[idx:end])
	}
	return nil
}
