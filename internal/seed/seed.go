// internal/seed/seed.go

// Package seed holds the static demo data the store is loaded with at
// startup. Values are process-local literals; nothing is fetched or
// persisted.
package seed

import "jobboard/internal/models"

// Jobs returns the six sample postings. A fresh slice is returned on
// every call so callers can mutate their copy freely.
func Jobs() []models.Job {
	return []models.Job{
		{
			ID:          "1",
			Title:       "Senior Frontend Developer",
			Company:     "TechCorp",
			Location:    "Mumbai, Maharashtra",
			Type:        models.JobTypeFullTime,
			Level:       models.JobLevelSenior,
			Salary:      "₹12,00,000 - ₹16,00,000",
			Description: "We are looking for a Senior Frontend Developer to join our dynamic team. You will be responsible for developing and maintaining our web applications using modern frameworks and technologies.",
			Requirements: []string{
				"5+ years of experience with React, Vue.js, or Angular",
				"Strong knowledge of JavaScript, HTML5, and CSS3",
				"Experience with TypeScript and modern build tools",
				"Familiarity with testing frameworks",
				"Bachelor's degree in Computer Science or related field",
			},
			Benefits: []string{
				"Competitive salary and equity",
				"Health, dental, and vision insurance",
				"Flexible working hours and remote work options",
				"401(k) with company matching",
				"Professional development budget",
			},
			Posted:     "2 days ago",
			Featured:   true,
			Remote:     true,
			Category:   "Technology",
			EmployerID: "emp1",
		},
		{
			ID:          "2",
			Title:       "Product Manager",
			Company:     "InnovateLabs",
			Location:    "Bangalore, Karnataka",
			Type:        models.JobTypeFullTime,
			Level:       models.JobLevelMid,
			Salary:      "₹9,00,000 - ₹13,00,000",
			Description: "Join our product team to drive the development of cutting-edge solutions. You'll work closely with engineering, design, and marketing teams to bring innovative products to market.",
			Requirements: []string{
				"3+ years of product management experience",
				"Strong analytical and problem-solving skills",
				"Experience with Agile/Scrum methodologies",
				"Excellent communication skills",
				"MBA or equivalent experience preferred",
			},
			Benefits: []string{
				"Competitive compensation package",
				"Comprehensive health benefits",
				"Stock options",
				"Flexible PTO policy",
				"Learning and development opportunities",
			},
			Posted:     "1 day ago",
			Featured:   true,
			Remote:     false,
			Category:   "Product",
			EmployerID: "emp2",
		},
		{
			ID:          "3",
			Title:       "UX/UI Designer",
			Company:     "DesignStudio",
			Location:    "Pune, Maharashtra",
			Type:        models.JobTypeFullTime,
			Level:       models.JobLevelMid,
			Salary:      "₹7,00,000 - ₹9,50,000",
			Description: "We're seeking a talented UX/UI Designer to create intuitive and beautiful user experiences. You'll work on various projects from mobile apps to web platforms.",
			Requirements: []string{
				"3+ years of UX/UI design experience",
				"Proficiency in Figma, Sketch, or Adobe Creative Suite",
				"Strong portfolio demonstrating design process",
				"Understanding of user-centered design principles",
				"Experience with design systems",
			},
			Benefits: []string{
				"Creative and collaborative environment",
				"Health and wellness benefits",
				"Flexible work arrangements",
				"Design tool subscriptions",
				"Conference and workshop budget",
			},
			Posted:     "3 days ago",
			Featured:   true,
			Remote:     true,
			Category:   "Design",
			EmployerID: "emp3",
		},
		{
			ID:          "4",
			Title:       "Data Scientist",
			Company:     "DataDriven Inc",
			Location:    "Hyderabad, Telangana",
			Type:        models.JobTypeFullTime,
			Level:       models.JobLevelSenior,
			Salary:      "₹13,00,000 - ₹17,00,000",
			Description: "Looking for a Data Scientist to extract insights from large datasets and build machine learning models to drive business decisions.",
			Requirements: []string{
				"PhD or Master's in Statistics, Mathematics, or related field",
				"Strong programming skills in Python and R",
				"Experience with machine learning frameworks",
				"Knowledge of SQL and database systems",
				"Strong statistical analysis skills",
			},
			Benefits: []string{
				"Competitive salary and bonuses",
				"Comprehensive benefits package",
				"Research and development time",
				"Conference attendance",
				"Cutting-edge technology access",
			},
			Posted:     "1 week ago",
			Featured:   false,
			Remote:     true,
			Category:   "Data Science",
			EmployerID: "emp4",
		},
		{
			ID:          "5",
			Title:       "Marketing Manager",
			Company:     "GrowthCo",
			Location:    "Delhi, NCR",
			Type:        models.JobTypeFullTime,
			Level:       models.JobLevelMid,
			Salary:      "₹8,00,000 - ₹11,00,000",
			Description: "Drive our marketing initiatives and help us reach new audiences. You'll develop and execute marketing campaigns across multiple channels.",
			Requirements: []string{
				"4+ years of marketing experience",
				"Experience with digital marketing platforms",
				"Strong analytical skills",
				"Excellent written and verbal communication",
				"Bachelor's degree in Marketing or related field",
			},
			Benefits: []string{
				"Performance-based bonuses",
				"Health and dental insurance",
				"Professional development opportunities",
				"Flexible work schedule",
				"Marketing tools and software",
			},
			Posted:     "5 days ago",
			Featured:   false,
			Remote:     false,
			Category:   "Marketing",
			EmployerID: "emp5",
		},
		{
			ID:          "6",
			Title:       "DevOps Engineer",
			Company:     "CloudTech Solutions",
			Location:    "Chennai, Tamil Nadu",
			Type:        models.JobTypeFullTime,
			Level:       models.JobLevelSenior,
			Salary:      "₹11,00,000 - ₹15,00,000",
			Description: "Join our infrastructure team to build and maintain scalable, reliable systems. You'll work with cutting-edge cloud technologies and automation tools.",
			Requirements: []string{
				"5+ years of DevOps/Infrastructure experience",
				"Strong knowledge of AWS, GCP, or Azure",
				"Experience with containerization (Docker, Kubernetes)",
				"Proficiency in Infrastructure as Code tools",
				"Scripting skills in Python, Bash, or PowerShell",
			},
			Benefits: []string{
				"Competitive salary",
				"Remote work flexibility",
				"Health and wellness benefits",
				"Professional certifications support",
				"Home office setup budget",
			},
			Posted:     "4 days ago",
			Featured:   false,
			Remote:     true,
			Category:   "Engineering",
			EmployerID: "emp6",
		},
	}
}

// DemoCandidate is the account the demo auto-login signs in.
func DemoCandidate() models.Candidate {
	return models.Candidate{
		ID:         "user1",
		Email:      "john.doe@email.com",
		Name:       "John Doe",
		Title:      "Frontend Developer",
		Skills:     []string{"React", "JavaScript", "TypeScript", "CSS"},
		Experience: "3 years",
		Education:  "Bachelor's in Computer Science",
	}
}

// DemoEmployer is the sample hiring account behind the first posting.
func DemoEmployer() models.Employer {
	return models.Employer{
		ID:      "emp1",
		Email:   "hr@techcorp.com",
		Name:    "Sarah Johnson",
		Company: "TechCorp",
		Title:   "HR Manager",
	}
}
