package utils

import (
	"io"
	"strings"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"

	"careeragent/models"
)

func GenerateWordFile(content string, filepath string) error {
	doc := document.New()
	doc.AddParagraph().AddRun().AddText(content)
	return doc.SaveToFile(filepath)
}

// RenderResumeDocx writes a resume document as a .docx file.
func RenderResumeDocx(resume *models.ResumeDocument, w io.Writer) error {
	doc := document.New()

	name := doc.AddParagraph().AddRun()
	name.Properties().SetBold(true)
	name.Properties().SetSize(20 * measurement.Point)
	name.AddText(resume.Header.Name)

	if resume.Header.Title != "" {
		title := doc.AddParagraph().AddRun()
		title.Properties().SetSize(13 * measurement.Point)
		title.AddText(resume.Header.Title)
	}

	contact := contactLine(resume.Contact)
	if contact != "" {
		doc.AddParagraph().AddRun().AddText(contact)
	}

	if resume.Summary != "" {
		addSectionHeading(doc, "Summary")
		doc.AddParagraph().AddRun().AddText(resume.Summary)
	}

	if len(resume.Skills) > 0 {
		addSectionHeading(doc, "Skills")
		names := make([]string, 0, len(resume.Skills))
		for _, s := range resume.Skills {
			names = append(names, s.Name)
		}
		doc.AddParagraph().AddRun().AddText(strings.Join(names, ", "))
	}

	if len(resume.Experience) > 0 {
		addSectionHeading(doc, "Experience")
		for _, exp := range resume.Experience {
			head := doc.AddParagraph().AddRun()
			head.Properties().SetBold(true)
			head.AddText(joinNonEmpty(" | ", exp.Role, exp.Company, exp.Location, exp.Duration))
			for _, point := range exp.Points {
				doc.AddParagraph().AddRun().AddText("• " + point)
			}
		}
	}

	if len(resume.Projects) > 0 {
		addSectionHeading(doc, "Projects")
		for _, p := range resume.Projects {
			head := doc.AddParagraph().AddRun()
			head.Properties().SetBold(true)
			head.AddText(p.Title)
			if len(p.TechStack) > 0 {
				doc.AddParagraph().AddRun().AddText("Tech: " + strings.Join(p.TechStack, ", "))
			}
			for _, point := range p.Points {
				doc.AddParagraph().AddRun().AddText("• " + point)
			}
		}
	}

	if len(resume.Education) > 0 {
		addSectionHeading(doc, "Education")
		for _, edu := range resume.Education {
			doc.AddParagraph().AddRun().AddText(joinNonEmpty(" | ", edu.Degree, edu.Institution, edu.Year, edu.Details))
		}
	}

	if len(resume.Certifications) > 0 {
		addSectionHeading(doc, "Certifications")
		for _, cert := range resume.Certifications {
			doc.AddParagraph().AddRun().AddText("• " + cert)
		}
	}

	return doc.Save(w)
}

func addSectionHeading(doc *document.Document, text string) {
	run := doc.AddParagraph().AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(14 * measurement.Point)
	run.AddText(text)
}

func contactLine(c models.ResumeContact) string {
	return joinNonEmpty(" | ", c.Email, c.Phone, c.Address, c.Website, c.LinkedIn)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
