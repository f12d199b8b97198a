// Package syllabus models the upskill questionnaire and builds the
// generation prompt from its answers.
package syllabus

import (
	"fmt"
	"strings"
)

// ClassType selects which recommendation branch the prompt asks for.
type ClassType string

const (
	ClassUpskill  ClassType = "upskill"
	ClassLanguage ClassType = "language"
)

// ClassTypes lists the selectable class types, in display order.
func ClassTypes() []ClassType {
	return []ClassType{ClassUpskill, ClassLanguage}
}

// Languages lists the language classes on offer.
func Languages() []string {
	return []string{
		"English",
		"Mandarin",
		"Japanese",
		"Korean",
		"Bahasa Indonesia",
	}
}

// UpskillScopes lists the upskill class scopes on offer.
func UpskillScopes() []string {
	return []string{
		"Business & Management",
		"Media & Creative",
		"Tourism & Hospitality",
		"Language",
		"Engineering",
		"Technology",
		"Career & Development",
		"Agriculture",
		"Green & Sustainability",
		"Education",
	}
}

// ClassFormats lists the delivery formats.
func ClassFormats() []string {
	return []string{"offline", "online"}
}

// Questionnaire holds the answers collected from the user. Free-text fields
// are interpolated into the prompt as-is, with no escaping or validation.
type Questionnaire struct {
	CompanyName       string
	CompanyIndustry   string
	JobTitle          string
	JobLevel          string
	ClassType         ClassType
	UpskillScopes     []string
	Languages         []string
	ClassFormat       string
	LearningObjective string
}

// Default returns a questionnaire pre-filled with the stock placeholder
// answers shown before the user edits anything.
func Default() Questionnaire {
	return Questionnaire{
		CompanyName:       "Company Name",
		CompanyIndustry:   "Company Industry",
		JobTitle:          "Job Title",
		JobLevel:          "Job Level",
		ClassType:         ClassUpskill,
		ClassFormat:       "offline",
		LearningObjective: "Job Level",
	}
}

// promptGuidelines is the fixed tail of the syllabus prompt.
const promptGuidelines = `Provide a clear introduction to the course, outlining its objectives, learning outcomes, and the skills students will acquire.
Divide the course into logical sections or modules. Each module should cover specific topics in detail and include subtopics as needed. Ensure the order of topics is coherent and follows a natural progression of learning.
Specify the types of assessments (e.g., quizzes, assignments, projects) and how they align with learning outcomes. Include a grading rubric or percentage breakdown.
Provide a list of textbooks, articles, or other materials that students need to review. Include both mandatory and supplementary readings.
Highlight any practical activities, labs, or case studies included in the syllabus to deepen understanding of the subject.`

// Prompt renders the syllabus generation prompt. Both class-type branches
// are stated conditionally and the model resolves which applies, mirroring
// the questionnaire one-to-one.
func (q Questionnaire) Prompt() string {
	var sb strings.Builder

	sb.WriteString("Write a comprehensive syllabus on the following premise:\n\n")
	fmt.Fprintf(&sb, "company_industry: %s\n", q.CompanyIndustry)
	fmt.Fprintf(&sb, "job_title: %s\n", q.JobTitle)
	fmt.Fprintf(&sb, "job_level: %s\n", q.JobLevel)
	fmt.Fprintf(&sb, "If the class_type: %s then create upskill recommendation syllabus based on %s type\n",
		q.ClassType, strings.Join(q.UpskillScopes, ", "))
	fmt.Fprintf(&sb, "If the class_type: %s then create language recommendation syllabus based on %s type\n",
		q.ClassType, strings.Join(q.Languages, ", "))
	sb.WriteString(promptGuidelines)

	return sb.String()
}
