package main

import "html/template"

type Profile struct {
	Name      string
	Headline  string
	Image     string
	About     string
	Objective string
}

type Stat struct {
	Label string
	Value string
}

type Fact struct {
	Title  string
	Detail string
	Period string
	Icon   template.HTML
}

type SkillGroup struct {
	Title        string
	Technologies []string
}

type SoftSkill struct {
	Name string
	Icon string
}

type Project struct {
	Title       string
	Description string
	Tags        []string
}

type Certification struct {
	Title  string
	Detail string
}

// Contact carries an action reference that is rendered verbatim.
type Contact struct {
	Label    string
	Href     template.URL
	Display  string
	External bool
	Icon     template.HTML
}

var profile = Profile{
	Name:     "Srivisnu S",
	Headline: `Third-year CSE Student at PEC. Passionate about crafting digital experiences through Web Development and complex logic in Java.`,
	Image:    "/images/Formal.png",
	About: `I’m a B.E. Computer Science and Engineering student at PEC, currently in my third year.
	I have a strong interest in Web Development and Java programming, and I enjoy building efficient,
	user-friendly applications while continuously improving my technical skills.`,
	Objective: `Seeking a challenging role where I can apply my technical skills and grow in a dynamic environment.`,
}

var stats = []Stat{
	{Label: "CGPA", Value: "8.45"},
	{Label: "Internships", Value: "2"},
	{Label: "Certifications", Value: "3+"},
	{Label: "Projects", Value: "3"},
}

var facts = []Fact{
	{
		Title:  "Education",
		Detail: "B.E. CSE, Pondicherry Engineering College",
		Period: "2023 — 2027",
		Icon:   `<path d="M12 14l9-5-9-5-9 5 9 5z"/><path d="M12 14l6.16-3.422a12.083 12.083 0 01.665 6.479A11.952 11.952 0 0012 20.055a11.952 11.952 0 00-6.824-2.998 12.078 12.078 0 01.665-6.479L12 14z"/>`,
	},
	{
		Title:  "Location",
		Detail: "Mannargudi, Tamil Nadu, India",
		Icon:   `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M17.657 16.657L13.414 20.9a1.998 1.998 0 01-2.827 0l-4.244-4.243a8 8 0 1111.314 0z"/><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M15 11a3 3 0 11-6 0 3 3 0 016 0z"/>`,
	},
}

var hardSkills = []SkillGroup{
	{Title: "Frontend", Technologies: []string{"React", "Tailwind CSS", "JavaScript"}},
	{Title: "Backend", Technologies: []string{"Node.js", "Firebase"}},
	{Title: "Programming", Technologies: []string{"Java", "Python"}},
	{Title: "Database", Technologies: []string{"SQL"}},
}

var softSkills = []SoftSkill{
	{Name: "Time Management", Icon: "M12 8v4l3 3m6-3a9 9 0 11-18 0 9 9 0 0118 0z"},
	{Name: "Leadership", Icon: "M9 12l2 2 4-4M7.835 4.697a3.42 3.42 0 001.946-.806 3.42 3.42 0 014.438 0 3.42 3.42 0 001.946.806 3.42 3.42 0 013.138 3.138 3.42 3.42 0 00.806 1.946 3.42 3.42 0 010 4.438 3.42 3.42 0 00-.806 1.946 3.42 3.42 0 01-3.138 3.138 3.42 3.42 0 00-1.946.806 3.42 3.42 0 01-4.438 0 3.42 3.42 0 00-1.946-.806 3.42 3.42 0 01-3.138-3.138 3.42 3.42 0 00-.806-1.946 3.42 3.42 0 010-4.438 3.42 3.42 0 00.806-1.946 3.42 3.42 0 013.138-3.138z"},
	{Name: "Collaborative", Icon: "M17 20h5v-2a3 3 0 00-5.356-1.857M17 20H7m10 0v-2c0-.656-.126-1.283-.356-1.857M7 20H2v-2a3 3 0 015.356-1.857M7 20v-2c0-.656.126-1.283.356-1.857m0 0a5.002 5.002 0 019.288 0M15 7a3 3 0 11-6 0 3 3 0 016 0zm6 3a2 2 0 11-4 0 2 2 0 014 0zM7 10a2 2 0 11-4 0 2 2 0 014 0z"},
	{Name: "Problem Solving", Icon: "M9.663 17h4.673M12 3v1m6.364 1.636l-.707.707M21 12h-1M4 12H3m3.343-5.657l-.707-.707m2.828 9.9a5 5 0 117.072 0l-.548.547A3.374 3.374 0 0014 18.469V19a2 2 0 11-4 0v-.531c0-.895-.356-1.754-.989-2.386l-.548-.547z"},
}

var projects = []Project{
	{
		Title:       "Fraudulent Job Detection",
		Description: "A CLI based system using Multi-Model detection for job postings.",
		Tags:        []string{"Node.js", "ML"},
	},
	{
		Title:       "AROKYA SAHAYAK",
		Description: "A comprehensive health application for student wellness.",
		Tags:        []string{"React", "Firebase"},
	},
	{
		Title:       "My Portfolio",
		Description: "A personal portfolio website showcasing my skills, projects, and certifications.",
		Tags:        []string{"React", "Tailwind"},
	},
}

var certifications = []Certification{
	{Title: "UiPath RPA Associate", Detail: "Official certification in Robotic Process Automation."},
	{Title: "NASSCOM (GOLD-74%)", Detail: "Data Science for Beginners Certification."},
	{Title: "Intro to Machine Learning", Detail: "NPTEL (IIT Madras) 2025"},
}

var contacts = []Contact{
	{
		Label:   "Email",
		Href:    "mailto:srivisnu25@gmail.com",
		Display: "srivisnu25@gmail.com",
		Icon:    `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M3 8l7.89 5.26a2 2 0 002.22 0L22 8M5 19h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z"/>`,
	},
	{
		Label:   "Phone",
		Href:    "tel:+918248231261",
		Display: "+91 8667005255",
		Icon:    `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M3 5a2 2 0 012-2h3.28a1 1 0 01.948.684l1.498 4.493a1 1 0 01-.502 1.21l-2.257 1.13a11.042 11.042 0 005.516 5.516l1.13-2.257a1 1 0 011.21-.502l4.493 1.498a1 1 0 01.684.949V19a2 2 0 01-2 2h-1C9.716 21 3 14.284 3 6V5z"/>`,
	},
	{
		Label:    "LinkedIn",
		Href:     "https://linkedin.com/in/srivisnus/",
		Display:  "www.linkedin.com/in/s-srivisnu",
		External: true,
		Icon:     `<path fill="currentColor" stroke="none" d="M19 0h-14c-2.761 0-5 2.239-5 5v14c0 2.761 2.239 5 5 5h14c2.762 0 5-2.239 5-5v-14c0-2.761-2.238-5-5-5zm-11 19h-3v-11h3v11zm-1.5-12.268c-.966 0-1.75-.79-1.75-1.764s.784-1.764 1.75-1.764 1.75.79 1.75 1.764-.783 1.764-1.75 1.764zm13.5 12.268h-3v-5.604c0-3.368-4-3.113-4 0v5.604h-3v-11h3v1.765c1.396-2.586 7-2.777 7 2.476v6.759z"/>`,
	},
	{
		Label:    "GitHub",
		Href:     "https://github.com/Srivisnu25",
		Display:  "https://github.com/srivisnu25",
		External: true,
		Icon:     `<path fill="currentColor" stroke="none" d="M12 0c-6.626 0-12 5.373-12 12 0 5.302 3.438 9.8 8.207 11.387.599.111.793-.261.793-.577v-2.234c-3.338.726-4.042-1.416-4.042-1.416-.546-1.387-1.333-1.756-1.333-1.756-1.089-.745.083-.729.083-.729 1.205.084 1.839 1.237 1.839 1.237 1.07 1.834 2.807 1.304 3.492.997.107-.775.418-1.305.762-1.604-2.665-.305-5.467-1.334-5.467-5.931 0-1.311.469-2.381 1.236-3.221-.124-.303-.535-1.524.117-3.176 0 0 1.008-.322 3.301 1.23.957-.266 1.983-.399 3.003-.404 1.02.005 2.047.138 3.006.404 2.291-1.552 3.297-1.23 3.297-1.23.653 1.653.242 2.874.118 3.176.77.84 1.235 1.911 1.235 3.221 0 4.609-2.807 5.624-5.479 5.921.43.372.823 1.102.823 2.222v3.293c0 .319.192.694.801.576 4.765-1.589 8.199-6.086 8.199-11.386 0-6.627-5.373-12-12-12z"/>`,
	},
}
