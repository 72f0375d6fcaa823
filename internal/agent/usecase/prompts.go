package usecase

import (
	"github.com/aymerick/raymond"
)

// System roles
const (
	RoleLeadGen  = "You are a lead generation expert for a photography and videography business in Hurghada, Egypt."
	RoleResearch = "You are a market research analyst. Be concise and factual."
	RoleScrape   = "You are a business analyst extracting actionable insights from web pages."
	RoleEnrich   = "You are a lead qualification expert. Score prospects for a Hurghada photography business."
	RoleDefault  = "You are a helpful business assistant."
)

var (
	tmplLeadGen = raymond.MustParse(`Generate a lead generation strategy for: {{{prompt}}}
List target customer types, platforms to search and an outreach message.`)

	tmplResearch = raymond.MustParse(`Provide a short market research analysis on: {{{topic}}}
Cover demand, competitors and opportunities.`)

	tmplScrape = raymond.MustParse(`Summarize the key business insights of this page.
URL: {{{url}}}
{{#if title}}Title: {{{title}}}
{{/if}}{{#if description}}Description: {{{description}}}
{{/if}}Content: {{{excerpt}}}`)

	tmplEnrich = raymond.MustParse(`Rate this profile from 0 to 100 as a potential client and explain why in two sentences:
{{{text}}}`)

	tmplDefault = raymond.MustParse(`{{{prompt}}}`)
)
