// Package content holds the hardcoded portfolio profile rendered by the site.
package content

import (
	"errors"
	"fmt"
	"strings"
)

type SocialLink struct {
	Label string
	URL   string
	Color string // accent used for the button background and hover glow
}

type Education struct {
	Institution string
	Degree      string
	Graduation  string
	GPA         string
	Focus       []string
}

// FocusSummary joins the focus areas as an English list,
// e.g. "Data Analysis, Visualization, and Systems Thinking".
func (e Education) FocusSummary() string {
	switch len(e.Focus) {
	case 0:
		return ""
	case 1:
		return e.Focus[0]
	case 2:
		return e.Focus[0] + " and " + e.Focus[1]
	}
	last := len(e.Focus) - 1
	return strings.Join(e.Focus[:last], ", ") + ", and " + e.Focus[last]
}

// Period is a date range such as "Nov 2023 – Aug 2025".
type Period struct {
	Start string
	End   string
}

func (p Period) String() string {
	return p.Start + " – " + p.End
}

// Role is a single experience or leadership entry.
type Role struct {
	Organization string
	Title        string
	Period       Period
	Highlights   []string
}

type Project struct {
	Title  string
	Status string
	Accent string
}

type Profile struct {
	Name       string
	Headline   string
	Bio        string
	Avatar     string // path of the profile picture; empty renders the frame only
	Links      []SocialLink
	Education  Education
	Experience []Role
	Leadership []Role
	Projects   []Project
	Footer     string
}

// Validate reports every empty field in the profile. The avatar is optional.
func (p Profile) Validate() error {
	var errs []error
	check := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s is empty", field))
		}
	}

	check("name", p.Name)
	check("headline", p.Headline)
	check("bio", p.Bio)
	check("footer", p.Footer)

	for i, l := range p.Links {
		check(fmt.Sprintf("links[%d].label", i), l.Label)
		check(fmt.Sprintf("links[%d].url", i), l.URL)
		check(fmt.Sprintf("links[%d].color", i), l.Color)
	}

	check("education.institution", p.Education.Institution)
	check("education.degree", p.Education.Degree)
	check("education.graduation", p.Education.Graduation)
	check("education.gpa", p.Education.GPA)
	for i, f := range p.Education.Focus {
		check(fmt.Sprintf("education.focus[%d]", i), f)
	}

	checkRoles := func(section string, roles []Role) {
		for i, r := range roles {
			prefix := fmt.Sprintf("%s[%d]", section, i)
			check(prefix+".organization", r.Organization)
			check(prefix+".title", r.Title)
			check(prefix+".period.start", r.Period.Start)
			check(prefix+".period.end", r.Period.End)
			for j, h := range r.Highlights {
				check(fmt.Sprintf("%s.highlights[%d]", prefix, j), h)
			}
		}
	}
	checkRoles("experience", p.Experience)
	checkRoles("leadership", p.Leadership)

	for i, pr := range p.Projects {
		check(fmt.Sprintf("projects[%d].title", i), pr.Title)
		check(fmt.Sprintf("projects[%d].status", i), pr.Status)
		check(fmt.Sprintf("projects[%d].accent", i), pr.Accent)
	}

	return errors.Join(errs...)
}
