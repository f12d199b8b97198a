package main

import (
	"github.com/charmbracelet/huh"

	"github.com/cakap/upskill/pkg/assistant"
	"github.com/cakap/upskill/pkg/genai/vertex"
	"github.com/cakap/upskill/pkg/syllabus"
)

// runQuestionnaire collects the syllabus questionnaire and the model choice.
// The class-scope step depends on the chosen class type, so the form runs in
// sequential stages rather than one screen.
func runQuestionnaire(ast *assistant.Assistant) (syllabus.Questionnaire, *vertex.Model, error) {
	q := syllabus.Default()
	m := ast.Fast

	models := ast.Models()
	modelOpts := make([]huh.Option[*vertex.Model], len(models))
	for i, h := range models {
		modelOpts[i] = huh.NewOption(h.DisplayName(), h)
	}

	classTypes := syllabus.ClassTypes()
	classTypeOpts := make([]huh.Option[syllabus.ClassType], len(classTypes))
	for i, ct := range classTypes {
		classTypeOpts[i] = huh.NewOption(string(ct), ct)
	}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[*vertex.Model]().
			Title("Select Gemini model").
			Options(modelOpts...).
			Value(&m),
		huh.NewInput().Title("Company name").Value(&q.CompanyName),
		huh.NewInput().Title("Company industry").Value(&q.CompanyIndustry),
		huh.NewInput().Title("Job title").Value(&q.JobTitle),
		huh.NewInput().Title("Job level").Value(&q.JobLevel),
		huh.NewSelect[syllabus.ClassType]().
			Title("Class type").
			Options(classTypeOpts...).
			Value(&q.ClassType),
	)).Run(); err != nil {
		return q, nil, err
	}

	switch q.ClassType {
	case syllabus.ClassLanguage:
		if err := huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which languages do you need?").
				Options(huh.NewOptions(syllabus.Languages()...)...).
				Value(&q.Languages),
		)).Run(); err != nil {
			return q, nil, err
		}
	default:
		if err := huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which upskill scopes do you need?").
				Options(huh.NewOptions(syllabus.UpskillScopes()...)...).
				Value(&q.UpskillScopes),
		)).Run(); err != nil {
			return q, nil, err
		}
	}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Class format").
			Options(huh.NewOptions(syllabus.ClassFormats()...)...).
			Value(&q.ClassFormat),
		huh.NewInput().Title("Your goal with this course").Value(&q.LearningObjective),
	)).Run(); err != nil {
		return q, nil, err
	}

	return q, m, nil
}
