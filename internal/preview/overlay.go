// Package preview fills empty parts of a document with sample content for
// the interactive preview. Its output must never be persisted or exported.
package preview

import "resume-builder/internal/domain"

// Sample is the content shown in place of empty fields.
func Sample() domain.ResumeDocument {
	return domain.ResumeDocument{
		PersonalDetails: domain.PersonalDetails{
			FullName: "Alex Morgan",
			JobTitle: "Senior Product Designer",
			Email:    "alex.morgan@example.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
			Website:  "alexmorgan.design",
			LinkedIn: "linkedin.com/in/alexmorgan",
		},
		Summary: domain.Summary{Content: "Creative and detail-oriented Product Designer with 5+ years of experience in building user-centric digital products. Proficient in Figma, prototyping, and design systems. Passionate about solving complex problems through elegant design solutions."},
		Experience: []domain.ExperienceEntry{
			{
				ID: "mock1", Role: "Senior Product Designer", Company: "TechFlow Inc.",
				StartDate: "Jan 2021", IsCurrent: true, Location: "San Francisco, CA", Enabled: true,
				Description: "• Led the redesign of the core mobile application, increasing user retention by 25%\n" +
					"• Collaborated with cross-functional teams to launch 3 major features\n" +
					"• Established design system used across 5 product teams",
			},
			{
				ID: "mock2", Role: "UI/UX Designer", Company: "Creative Studio",
				StartDate: "Jun 2018", EndDate: "Dec 2020", Location: "New York, NY", Enabled: true,
				Description: "• Designed intuitive interfaces for web and mobile platforms for various clients\n" +
					"• Conducted user research and usability testing to validate design decisions\n" +
					"• Mentored 2 junior designers on best practices and workflows",
			},
		},
		Education: []domain.EducationEntry{
			{ID: "mockEdu1", Institution: "Rhode Island School of Design", Degree: "Bachelor of Fine Arts in Graphic Design", StartDate: "2014", EndDate: "2018", Enabled: true},
		},
		Skills: []domain.SkillCategory{
			{ID: "mockSkill1", Name: "Design Tools", Items: []string{"Figma", "Adobe XD", "Sketch", "Protopie"}, Enabled: true},
			{ID: "mockSkill2", Name: "Development", Items: []string{"HTML/CSS", "React Basics", "Design Systems"}, Enabled: true},
		},
		Projects: []domain.ProjectEntry{
			{
				ID: "mockProj1", Title: "E-Commerce Mobile App", Link: "behance.net/alex_ecommerce", Enabled: true,
				Description:  "Designed a complete mobile shopping experience for a fashion brand, resulting in a 15% conversion rate increase.",
				Technologies: []string{"Figma", "Protopie"},
			},
		},
		Certifications: []domain.CertificationEntry{},
	}
}

// Overlay returns a copy of doc with every empty field or collection
// replaced by its sample, plus the paths that were filled. doc itself is
// not modified.
func Overlay(doc domain.ResumeDocument) (domain.ResumeDocument, []string) {
	sample := Sample()
	out := doc.Clone()
	var filled []string

	fill := func(path string, dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
			filled = append(filled, path)
		}
	}
	pd, spd := &out.PersonalDetails, sample.PersonalDetails
	fill("personalDetails.fullName", &pd.FullName, spd.FullName)
	fill("personalDetails.jobTitle", &pd.JobTitle, spd.JobTitle)
	fill("personalDetails.email", &pd.Email, spd.Email)
	fill("personalDetails.phone", &pd.Phone, spd.Phone)
	fill("personalDetails.location", &pd.Location, spd.Location)
	fill("personalDetails.website", &pd.Website, spd.Website)
	fill("personalDetails.linkedin", &pd.LinkedIn, spd.LinkedIn)
	fill("summary", &out.Summary.Content, sample.Summary.Content)

	if len(out.Experience) == 0 {
		out.Experience, filled = sample.Experience, append(filled, "experience")
	}
	if len(out.Education) == 0 {
		out.Education, filled = sample.Education, append(filled, "education")
	}
	if len(out.Skills) == 0 {
		out.Skills, filled = sample.Skills, append(filled, "skills")
	}
	if len(out.Projects) == 0 {
		out.Projects, filled = sample.Projects, append(filled, "projects")
	}
	return out, filled
}
