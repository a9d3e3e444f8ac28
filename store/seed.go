package store

import "context"

// DefaultProfile is the stub served before the admin writes a real profile.
func DefaultProfile() *Profile {
	return &Profile{
		Name:        "Muhammad Haikal",
		Title:       "Project Manager & Fullstack Engineer",
		Bio:         "Bridging the gap between technical excellence and project success. I bring both hands-on development skills and strategic project management expertise.",
		Email:       "haikal@example.com",
		Phone:       "+6285777123456",
		Location:    "Jakarta, Indonesia",
		LinkedinURL: "https://linkedin.com/in/haikal-dev",
		GithubURL:   "https://github.com/haikal-dev-fs",
		Skills: SkillGroups{
			"Management": {"Agile/Scrum", "Team Leadership", "Risk Assessment"},
			"Frontend":   {"React", "Next.js", "JavaScript", "Tailwind CSS", "Bootstrap CSS", "HTML"},
			"Backend":    {"PHP", "Laravel", "Lumen", "Swagger", "Node.js", "Python", "PostgreSQL", "MongoDB", "MySQL"},
			"DevOps":     {"CI/CD", "Git"},
		},
	}
}

// DefaultProjects is the placeholder portfolio served until real projects
// are created.
func DefaultProjects() []Project {
	return []Project{
		{
			Title:           "Fleet Management System",
			Description:     "A comprehensive fleet management system for mining operations with real-time monitoring and reporting capabilities.",
			LongDescription: "A comprehensive fleet management system for mining operations with real-time monitoring, reporting, and fleet tracking across sites.",
			Technologies:    Tags{"PHP", "Laravel", "MySQL", "Vue.js", "Bootstrap"},
			Category:        "Full Stack",
			Featured:        true,
			Order:           0,
		},
		{
			Title:           "Company Website Migration",
			Description:     "Successfully migrated PT Polytama Propindo website to modern platform with improved functionality.",
			LongDescription: "Migrated PT Polytama Propindo's website to a modern platform, significantly improving functionality and user experience, and enhanced the performance of several company sites.",
			Technologies:    Tags{"Laravel", "PHP", "Bootstrap", "PostgreSQL", "JavaScript"},
			Category:        "Web Development",
			Featured:        true,
			Order:           1,
		},
		{
			Title:           "Portfolio Website",
			Description:     "Modern and responsive portfolio website built with advanced animations and optimized performance.",
			LongDescription: "Modern and responsive portfolio website with advanced animations, an admin dashboard, and optimized performance.",
			Technologies:    Tags{"Next.js", "React", "Tailwind CSS", "TypeScript"},
			Category:        "Frontend",
			Featured:        true,
			Order:           2,
		},
	}
}

// DefaultExperiences is the placeholder employment history.
func DefaultExperiences() []Experience {
	return []Experience{
		{
			Company:     "PT TOWUTI KARYA ABADI",
			Position:    "Project Manager & Fullstack Engineer",
			Description: "Led cross-functional teams of 5+ members to deliver high-impact projects on time and within budget. Developed FMS systems for mining operations and implemented real-time fleet monitoring.",
			StartDate:   "2024-12-01",
			Location:    "Jakarta, Indonesia",
			Skills:      Tags{"Agile", "Scrum", "Team Leadership", "PHP", "Laravel", "Lumen", "Swagger", "MySQL", "Vue"},
			Order:       0,
		},
		{
			Company:     "PT POLYTAMA PROPINDO",
			Position:    "Application Developer - Intern",
			Description: "Migrated the company's outdated website to a modern platform, significantly improving functionality and user experience, and enhanced the performance and interface of several internal sites.",
			StartDate:   "2023-09-01",
			EndDate:     "2024-02-01",
			Location:    "Indramayu, Indonesia",
			Skills:      Tags{"Laravel", "PHP", "Bootstrap", "PostgreSQL", "JavaScript"},
			Order:       1,
		},
		{
			Company:     "PT NUSHA DIGITAL SOLUTION",
			Position:    "Front End Engineer",
			Description: "Developed responsive web applications using the Laravel framework for clients and implemented front-end components ensuring optimal user experience.",
			StartDate:   "2022-08-01",
			EndDate:     "2023-07-01",
			Location:    "Jakarta, Indonesia",
			Skills:      Tags{"PHP", "Swagger", "HTML", "CSS", "MySQL", "Bootstrap", "JavaScript"},
			Order:       2,
		},
		{
			Company:     "PT SUCOFINDO",
			Position:    "IT Officer - Intern",
			Description: "Managed IT infrastructure and support services for the organization, ensured system reliability and security, and handled data entry and management.",
			StartDate:   "2019-08-01",
			EndDate:     "2019-11-01",
			Location:    "Cirebon, Indonesia",
			Skills:      Tags{"PHP", "HTML", "CSS", "MySQL"},
			Order:       3,
		},
	}
}

// Seed inserts the default content for every entity that is still empty.
// It is idempotent: entities the admin already populated are left alone.
func Seed(ctx context.Context, s Store) error {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return err
	}
	if profile == nil {
		if _, err := s.UpsertProfile(ctx, DefaultProfile()); err != nil {
			return err
		}
	}

	projects, err := s.ListProjects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		for _, p := range DefaultProjects() {
			if _, err := s.CreateProject(ctx, &p); err != nil {
				return err
			}
		}
	}

	experiences, err := s.ListExperiences(ctx)
	if err != nil {
		return err
	}
	if len(experiences) == 0 {
		for _, e := range DefaultExperiences() {
			if _, err := s.CreateExperience(ctx, &e); err != nil {
				return err
			}
		}
	}
	return nil
}
