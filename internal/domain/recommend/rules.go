package recommend

import "career-guide/internal/domain/profile"

var (
	graduate   = educationIn(profile.EducationBachelors, profile.EducationMasters)
	dataMinded = anyOf(
		skillsContain("python", "data", "analysis"),
		interestsContain("data", "analytics"),
	)
)

// DefaultRules is evaluated top to bottom. Order is also the tie-break between equal scores.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:  "after-10th",
			Match: educationIn(profile.EducationHighSchool, profile.EducationTenthPass, profile.EducationUnset),
			Templates: []Record{
				{Title: "Delivery Partner", Description: "Deliver packages and goods to customers efficiently and on time using bikes or vehicles.", Score: "75%", Tags: []string{"Driving", "Time Management", "Customer Service"}, Icon: "🛵", Salary: "₹12,000 – ₹20,000"},
				{Title: "Office Assistant", Description: "Provide administrative support, manage files, handle basic office tasks and assist staff.", Score: "73%", Tags: []string{"Organization", "Communication", "Computer Skills"}, Icon: "📋", Salary: "₹10,000 – ₹18,000"},
				{Title: "Security Guard", Description: "Monitor premises, control access, and ensure safety and security of property and people.", Score: "72%", Tags: []string{"Alertness", "Physical Fitness", "Responsibility"}, Icon: "🛡️", Salary: "₹10,000 – ₹18,000"},
				{Title: "Warehouse Worker", Description: "Handle inventory, load/unload goods, and maintain warehouse organization and cleanliness.", Score: "74%", Tags: []string{"Physical Stamina", "Teamwork", "Organization"}, Icon: "📦", Salary: "₹12,000 – ₹20,000"},
				{Title: "Store Keeper", Description: "Manage inventory, track stock levels, receive and dispatch goods in stores or warehouses.", Score: "76%", Tags: []string{"Inventory Management", "Attention to Detail", "Record Keeping"}, Icon: "🏪", Salary: "₹15,000 – ₹22,000"},
				{Title: "Driver (Cab/Truck)", Description: "Transport passengers or goods safely, maintain vehicle, and follow traffic regulations.", Score: "77%", Tags: []string{"Driving License", "Navigation", "Punctuality"}, Icon: "🚗", Salary: "₹15,000 – ₹30,000"},
			},
		},
		{
			Name:  "after-12th",
			Match: educationIn(profile.EducationHighSchool, profile.EducationTwelfthPass, profile.EducationBachelors, profile.EducationUnset),
			Templates: []Record{
				{Title: "Customer Care Executive", Description: "Handle customer inquiries, resolve complaints, and provide excellent service over phone or chat.", Score: "80%", Tags: []string{"Communication", "Problem Solving", "Patience"}, Icon: "📞", Salary: "₹15,000 – ₹28,000"},
				{Title: "Receptionist", Description: "Greet visitors, answer calls, schedule appointments, and manage front desk operations.", Score: "78%", Tags: []string{"Communication", "Organization", "Professional Appearance"}, Icon: "🏢", Salary: "₹14,000 – ₹25,000"},
				{Title: "Computer Operator", Description: "Operate computer systems, enter data, manage files, and perform basic IT tasks.", Score: "79%", Tags: []string{"Computer Skills", "Typing", "MS Office"}, Icon: "💻", Salary: "₹15,000 – ₹25,000"},
				{Title: "Data Entry Clerk", Description: "Input and maintain accurate data in computer systems and databases with high attention to detail.", Score: "76%", Tags: []string{"Data Entry", "Accuracy", "Typing Speed"}, Icon: "⌨️", Salary: "₹12,000 – ₹20,000"},
				{Title: "Sales Executive", Description: "Generate leads, meet clients, present products, and achieve sales targets.", Score: "81%", Tags: []string{"Sales", "Communication", "Persuasion"}, Icon: "💼", Salary: "₹15,000 – ₹30,000"},
				{Title: "Telecaller", Description: "Make outbound calls, generate leads, follow up with customers, and maintain call records.", Score: "75%", Tags: []string{"Communication", "Persuasion", "Patience"}, Icon: "📱", Salary: "₹12,000 – ₹22,000"},
			},
		},
		{
			Name:  "iti-diploma",
			Match: anyOf(educationIn(profile.EducationDiploma, profile.EducationITI), skillsContain("technical")),
			Templates: []Record{
				{Title: "Electrician", Description: "Install, maintain, and repair electrical systems, wiring, and equipment.", Score: "82%", Tags: []string{"Electrical Skills", "Safety", "Problem Solving"}, Icon: "⚡", Salary: "₹15,000 – ₹30,000"},
				{Title: "Mechanic (Auto/AC/Diesel)", Description: "Diagnose, repair, and maintain vehicles, AC units, or diesel engines.", Score: "83%", Tags: []string{"Mechanical Skills", "Tools", "Troubleshooting"}, Icon: "🔧", Salary: "₹18,000 – ₹30,000"},
				{Title: "Technician (Electrical/Mechanical)", Description: "Install, maintain, and repair technical equipment and machinery.", Score: "84%", Tags: []string{"Technical Skills", "Maintenance", "Safety"}, Icon: "⚙️", Salary: "₹18,000 – ₹35,000"},
				{Title: "Quality Inspector", Description: "Inspect products and processes to ensure they meet quality standards and specifications.", Score: "81%", Tags: []string{"Attention to Detail", "Quality Control", "Inspection"}, Icon: "🔍", Salary: "₹18,000 – ₹35,000"},
			},
		},
		{
			Name: "software",
			Match: anyOf(
				skillsContain("javascript", "python", "programming"),
				interestsContain("software", "technology", "coding"),
				graduate,
			),
			Templates: []Record{
				{Title: "Software Developer", Description: "Design, develop, and maintain software applications using various programming languages. Work on web, mobile, or desktop applications.", Score: "92%", Tags: []string{"Programming", "Problem Solving", "Technology", "Creativity"}, Icon: "💻", Salary: "₹40,000 – ₹1,00,000+"},
				{Title: "Web Developer", Description: "Build and maintain websites and web applications. Work with HTML, CSS, JavaScript, and modern frameworks.", Score: "90%", Tags: []string{"Web Development", "Frontend", "Backend", "JavaScript"}, Icon: "🌐", Salary: "₹35,000 – ₹90,000"},
			},
		},
		{
			Name:  "professional-degree",
			Match: graduate,
			Templates: []Record{
				{Title: "Data Scientist", Description: "Use advanced analytics, machine learning, and statistical methods to extract insights from data.", Score: "94%", Tags: []string{"Machine Learning", "Python", "Statistics", "AI"}, Icon: "🧠", Salary: "₹50,000 – ₹1,50,000+"},
				{Title: "Cloud Engineer", Description: "Design, implement, and manage cloud infrastructure and services for scalable applications.", Score: "91%", Tags: []string{"Cloud Computing", "AWS", "DevOps", "Infrastructure"}, Icon: "☁️", Salary: "₹45,000 – ₹1,20,000"},
				{Title: "Cybersecurity Analyst", Description: "Protect systems and networks from cyber threats, monitor security incidents, and implement safeguards.", Score: "93%", Tags: []string{"Cybersecurity", "Network Security", "Risk Analysis"}, Icon: "🔒", Salary: "₹40,000 – ₹1,10,000"},
				{Title: "Product Manager", Description: "Define product vision, manage roadmaps, and work with teams to deliver successful products.", Score: "92%", Tags: []string{"Product Management", "Strategy", "Agile", "Leadership"}, Icon: "📊", Salary: "₹60,000 – ₹2,00,000+"},
			},
		},
		{
			Name:  "graduation",
			Match: graduate,
			Templates: []Record{
				{Title: "Accountant", Description: "Manage financial records, prepare reports, handle tax filings, and ensure compliance.", Score: "85%", Tags: []string{"Accounting", "Tally", "Excel", "Finance"}, Icon: "📊", Salary: "₹20,000 – ₹40,000"},
				{Title: "HR Executive", Description: "Manage recruitment, employee relations, training, and HR processes.", Score: "84%", Tags: []string{"HR", "Recruitment", "Communication", "People Management"}, Icon: "👥", Salary: "₹22,000 – ₹45,000"},
				{Title: "Marketing Executive", Description: "Develop marketing strategies, manage campaigns, and promote products or services.", Score: "86%", Tags: []string{"Marketing", "Communication", "Creativity", "Strategy"}, Icon: "📣", Salary: "₹25,000 – ₹50,000"},
				{Title: "Business Development Associate", Description: "Identify business opportunities, build client relationships, and drive revenue growth.", Score: "87%", Tags: []string{"Sales", "Business Strategy", "Communication", "Networking"}, Icon: "📈", Salary: "₹25,000 – ₹60,000"},
			},
		},
		{
			Name:  "data",
			Match: dataMinded,
			Templates: []Record{
				{Title: "Data Analyst", Description: "Analyze complex data sets to help organizations make informed business decisions. Create reports and visualizations.", Score: "88%", Tags: []string{"Data Analysis", "Statistics", "Visualization", "Excel"}, Icon: "📊"},
			},
		},
		{
			Name:  "data-graduate",
			Match: allOf(dataMinded, graduate),
			Templates: []Record{
				{Title: "Data Scientist", Description: "Use advanced analytics, machine learning, and statistical methods to extract insights from data.", Score: "89%", Tags: []string{"Machine Learning", "Python", "Statistics", "AI"}, Icon: "🧠"},
			},
		},
		{
			Name:  "communication",
			Match: skillsContain("communication", "customer"),
			Templates: []Record{
				{Title: "Customer Service Representative", Description: "Assist customers with inquiries, provide support, and ensure satisfaction across various industries.", Score: "85%", Tags: []string{"Communication", "Customer Service", "Problem Solving", "Empathy"}, Icon: "📞"},
				{Title: "Sales Representative", Description: "Build relationships with clients, present products or services, and achieve sales targets.", Score: "83%", Tags: []string{"Sales", "Communication", "Negotiation", "Client Relations"}, Icon: "💼"},
			},
		},
		{
			Name:  "marketing",
			Match: interestsContain("marketing", "social media", "digital"),
			Templates: []Record{
				{Title: "Digital Marketing Specialist", Description: "Develop and implement online marketing strategies, manage social media, and analyze campaign performance.", Score: "86%", Tags: []string{"Digital Marketing", "SEO", "Social Media", "Content"}, Icon: "📣"},
			},
		},
		{
			Name:  "design",
			Match: interestsContain("design", "creative", "art"),
			Templates: []Record{
				{Title: "UI/UX Designer", Description: "Create intuitive and visually appealing user interfaces and experiences for digital products.", Score: "87%", Tags: []string{"Design", "User Experience", "Creativity", "Figma"}, Icon: "🎨"},
			},
		},
		{
			Name:  "management",
			Match: allOf(graduate, skillsContain("leadership", "management")),
			Templates: []Record{
				{Title: "Project Manager", Description: "Plan, execute, and oversee projects from initiation to completion. Lead teams and manage resources.", Score: "84%", Tags: []string{"Project Management", "Leadership", "Communication", "Agile"}, Icon: "📈"},
			},
		},
		{
			Name:  "teamwork",
			Match: skillsContain("teamwork"),
			Templates: []Record{
				{Title: "Operations Coordinator", Description: "Coordinate day-to-day operations, support team activities, and ensure smooth workflow processes.", Score: "81%", Tags: []string{"Organization", "Teamwork", "Coordination", "Communication"}, Icon: "⚙️"},
			},
		},
		{
			Name:  "problem-solving",
			Match: skillsContain("problem"),
			Templates: []Record{
				{Title: "Business Analyst", Description: "Analyze business processes, identify improvement opportunities, and provide data-driven solutions.", Score: "86%", Tags: []string{"Problem Solving", "Analysis", "Communication", "Strategic Thinking"}, Icon: "💡"},
			},
		},
		{
			Name:  "organization",
			Match: skillsContain("time management", "organization"),
			Templates: []Record{
				{Title: "Executive Assistant", Description: "Provide high-level administrative support, manage schedules, and coordinate executive communications.", Score: "80%", Tags: []string{"Time Management", "Organization", "Communication", "Multitasking"}, Icon: "📅"},
			},
		},
		{
			Name:  "teaching",
			Match: interestsContain("teaching", "education"),
			Templates: []Record{
				{Title: "Corporate Trainer", Description: "Design and deliver training programs to enhance employee skills and knowledge in corporate settings.", Score: "84%", Tags: []string{"Teaching", "Communication", "Presentation", "Curriculum Design"}, Icon: "👨‍🏫"},
			},
		},
		{
			Name:  "finance",
			Match: skillsContain("finance", "accounting"),
			Templates: []Record{
				{Title: "Financial Analyst", Description: "Analyze financial data, prepare reports, and provide insights to support business decisions.", Score: "87%", Tags: []string{"Finance", "Analysis", "Excel", "Reporting"}, Icon: "💰"},
			},
		},
		{
			Name:  "writing",
			Match: skillsContain("writing", "content"),
			Templates: []Record{
				{Title: "Content Writer", Description: "Create engaging written content for websites, blogs, social media, and marketing materials.", Score: "82%", Tags: []string{"Writing", "Creativity", "SEO", "Research"}, Icon: "✍️"},
			},
		},
		{
			Name:  "human-resources",
			Match: interestsContain("hr", "human resource", "recruitment"),
			Templates: []Record{
				{Title: "HR Specialist", Description: "Manage recruitment, employee relations, and HR processes to support organizational goals.", Score: "83%", Tags: []string{"HR", "Recruitment", "Communication", "People Management"}, Icon: "👥"},
			},
		},
		{
			Name:  "quality",
			Match: skillsContain("testing", "quality"),
			Templates: []Record{
				{Title: "QA Tester", Description: "Test software applications, identify bugs, and ensure products meet quality standards.", Score: "85%", Tags: []string{"Testing", "Attention to Detail", "Problem Solving", "Documentation"}, Icon: "🔍"},
			},
		},
		{
			Name:  "healthcare",
			Match: interestsContain("health", "medical"),
			Templates: []Record{
				{Title: "Healthcare Administrator", Description: "Manage healthcare facility operations, coordinate patient services, and ensure regulatory compliance.", Score: "81%", Tags: []string{"Healthcare", "Administration", "Organization", "Compliance"}, Icon: "🏥"},
			},
		},
		{
			Name:  "supply-chain",
			Match: skillsContain("logistics", "supply"),
			Templates: []Record{
				{Title: "Supply Chain Analyst", Description: "Optimize supply chain processes, analyze inventory data, and improve operational efficiency.", Score: "84%", Tags: []string{"Logistics", "Analysis", "Planning", "Optimization"}, Icon: "📦"},
			},
		},
		{
			Name:  "security",
			Match: skillsContain("security", "cyber"),
			Templates: []Record{
				{Title: "Cybersecurity Analyst", Description: "Protect systems and networks from cyber threats, monitor security incidents, and implement safeguards.", Score: "91%", Tags: []string{"Cybersecurity", "Network Security", "Risk Analysis", "Monitoring"}, Icon: "🔒"},
			},
		},
		{
			Name:  "cloud",
			Match: skillsContain("cloud", "aws", "azure"),
			Templates: []Record{
				{Title: "Cloud Engineer", Description: "Design, implement, and manage cloud infrastructure and services for scalable applications.", Score: "90%", Tags: []string{"Cloud Computing", "AWS", "DevOps", "Infrastructure"}, Icon: "☁️"},
			},
		},
		{
			Name:  "mobile",
			Match: skillsContain("mobile", "android", "ios"),
			Templates: []Record{
				{Title: "Mobile App Developer", Description: "Build native or cross-platform mobile applications for iOS and Android platforms.", Score: "89%", Tags: []string{"Mobile Development", "React Native", "Flutter", "API Integration"}, Icon: "📱"},
			},
		},
		{
			Name:  "devops",
			Match: skillsContain("devops", "ci/cd", "docker"),
			Templates: []Record{
				{Title: "DevOps Engineer", Description: "Automate deployment processes, manage CI/CD pipelines, and ensure system reliability.", Score: "91%", Tags: []string{"DevOps", "Docker", "Kubernetes", "Automation"}, Icon: "🚀"},
			},
		},
		{
			Name:  "product",
			Match: skillsContain("product", "strategy"),
			Templates: []Record{
				{Title: "Product Manager", Description: "Define product vision, manage roadmaps, and work with teams to deliver successful products.", Score: "88%", Tags: []string{"Product Management", "Strategy", "Agile", "Stakeholder Management"}, Icon: "📊", Salary: "₹60,000 – ₹2,00,000+"},
			},
		},
		{
			Name:  "creative",
			Match: interestsContain("creative", "design", "art"),
			Templates: []Record{
				{Title: "Video Editor", Description: "Edit and produce video content for films, YouTube, social media, and corporate projects.", Score: "84%", Tags: []string{"Video Editing", "Creativity", "Adobe Premiere", "Final Cut"}, Icon: "🎬", Salary: "₹20,000 – ₹60,000"},
				{Title: "Graphic Designer", Description: "Create visual content, logos, brochures, and marketing materials using design software.", Score: "86%", Tags: []string{"Design", "Photoshop", "Illustrator", "Creativity"}, Icon: "🎨", Salary: "₹25,000 – ₹50,000"},
				{Title: "Photographer", Description: "Capture professional photos for events, products, portraits, or creative projects.", Score: "82%", Tags: []string{"Photography", "Camera Skills", "Editing", "Creativity"}, Icon: "📷", Salary: "₹15,000 – ₹50,000"},
				{Title: "Animator", Description: "Create animated content for movies, games, advertisements, and digital media.", Score: "85%", Tags: []string{"Animation", "3D Modeling", "Creativity", "Software Skills"}, Icon: "🎭", Salary: "₹25,000 – ₹70,000"},
			},
		},
		{
			Name:  "fashion-interior",
			Match: interestsContain("fashion", "interior"),
			Templates: []Record{
				{Title: "Fashion Designer", Description: "Design clothing, accessories, and fashion products. Create unique styles and trends.", Score: "83%", Tags: []string{"Fashion", "Creativity", "Design", "Trend Analysis"}, Icon: "👗", Salary: "₹25,000 – ₹70,000"},
				{Title: "Interior Designer", Description: "Design interior spaces for homes, offices, and commercial properties.", Score: "85%", Tags: []string{"Interior Design", "Creativity", "Space Planning", "CAD"}, Icon: "🏠", Salary: "₹30,000 – ₹80,000"},
			},
		},
		{
			Name:  "social-content",
			Match: interestsContain("social media", "content", "influencer"),
			Templates: []Record{
				{Title: "Social Media Manager", Description: "Manage social media accounts, create content, and grow online presence for brands.", Score: "84%", Tags: []string{"Social Media", "Content Creation", "Marketing", "Analytics"}, Icon: "📱", Salary: "₹25,000 – ₹60,000"},
				{Title: "Content Creator / Influencer", Description: "Create engaging content for YouTube, Instagram, or other platforms and build audience.", Score: "80%", Tags: []string{"Content Creation", "Creativity", "Video Production", "Marketing"}, Icon: "🎥", Salary: "₹15,000 – ₹1,00,000+"},
				{Title: "Freelancer", Description: "Work independently in any field - writing, design, programming, consulting, etc.", Score: "81%", Tags: []string{"Self-Management", "Skills", "Client Relations", "Flexibility"}, Icon: "💼", Salary: "₹15,000 – ₹1,00,000+"},
			},
		},
	}
}

// DefaultFallback is used only when no rule matched.
func DefaultFallback() []Record {
	return []Record{
		{Title: "Administrative Assistant", Description: "Provide administrative support, manage schedules, handle correspondence, and maintain office efficiency.", Score: "75%", Tags: []string{"Organization", "Communication", "Multitasking", "Office Skills"}, Icon: "📋"},
		{Title: "Customer Service Associate", Description: "Help customers with inquiries, process transactions, and provide excellent service in retail or office settings.", Score: "78%", Tags: []string{"Customer Service", "Communication", "Problem Solving"}, Icon: "🛍️"},
		{Title: "Office Clerk", Description: "Perform various administrative tasks including data entry, filing, and general office support.", Score: "76%", Tags: []string{"Data Entry", "Organization", "Attention to Detail"}, Icon: "🗄️"},
	}
}
