package content

const underConstruction = "Under Construction..."

var Default = Profile{
	Name:     "Farah Firdavsi",
	Headline: "Hi, I'm Farah Firdavsi 🌿",
	Bio:      "I’m a data analysis student passionate about uncovering insights and turning complexity into clarity.",
	Avatar:   "/images/profile.jpg",

	Links: []SocialLink{
		{Label: "LinkedIn", URL: "https://linkedin.com", Color: "#C7D8CF"},
		{Label: "GitHub", URL: "https://github.com", Color: "#E6D8CE"},
	},

	Education: Education{
		Institution: "University of Michigan",
		Degree:      "B.S. in Information Analysis",
		Graduation:  "2027",
		GPA:         "3.8",
		Focus:       []string{"Data Analysis", "Visualization", "Systems Thinking"},
	},

	Experience: []Role{
		{
			Organization: "Kalamazoo Public Library",
			Title:        "Technology Service Intern",
			Period:       Period{Start: "Nov 2023", End: "Aug 2025"},
			Highlights: []string{
				"Cleaned and structured datasets for 17,000+ libraries across North America, improving data reliability for board reports.",
				"Used Python (pandas) to validate 10,000+ hotspot usage records and generate weekly summaries.",
				"Led 3 digital literacy workshops on mobile app use for 60+ participants.",
				"Documented workflows and provided technical support for community users.",
			},
		},
		{
			Organization: "Kalamazoo Public Schools",
			Title:        "Technology Information Intern",
			Period:       Period{Start: "May 2024", End: "Aug 2024"},
			Highlights: []string{
				"Analyzed performance data from 3,000+ Chromebooks to identify causes of device failure.",
				"Created Tableau dashboards to guide technology purchasing decisions.",
				"Coordinated imaging and deployment of 5,000 student devices for the academic year.",
				"Streamlined repair-tracking, reducing turnaround time by 40%.",
			},
		},
	},

	Leadership: []Role{
		{
			Organization: "+Tech Ross Innovation Jam",
			Title:        "Business Analyst",
			Period:       Period{Start: "Sep 2025", End: "Present"},
			Highlights: []string{
				"Conducted market and competitor analysis of 10+ comparable solutions to define scope and prototype direction.",
				"Collaborated with a team of 5 to model cost structures and success metrics for a proposed business solution.",
			},
		},
		{
			Organization: "Mintify",
			Title:        "Vice President of Finance",
			Period:       Period{Start: "Aug 2025", End: "Present"},
			Highlights: []string{
				"Managed $2,000+ annual budget, processed reimbursements, and maintained financial records in Excel.",
			},
		},
		{
			Organization: "Mintify",
			Title:        "User Experience Analyst",
			Period:       Period{Start: "Sep 2025", End: "Present"},
			Highlights: []string{
				"Analyzed form clarity and usability through surveys with 30+ participants, providing recommendations for legal aid partners.",
			},
		},
	},

	Projects: []Project{
		{Title: "Campus Resource Dashboard", Status: underConstruction, Accent: "#E6D8CE"},
		{Title: "Data Cleaning Pipeline (Python)", Status: underConstruction, Accent: "#C7D8CF"},
	},

	Footer: "© 2025 Farah Firdavsi | Made with Go",
}
