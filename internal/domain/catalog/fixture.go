package catalog

var fixture = []Entry{
	{Title: "Delivery Partner", Salary: "₹12,000 – ₹20,000", Description: "Deliver food, groceries, or parcels to customers using bike/scooter. Flexible hours and location-based delivery jobs.", Category: CategoryTenthPass, Company: "QuickDeliver Services"},
	{Title: "Office Assistant", Salary: "₹10,000 – ₹18,000", Description: "Maintain files, assist office staff, handle photocopying, emails, and errands.", Category: CategoryTenthPass, Company: "Corporate Office Solutions"},
	{Title: "Helper / Cleaner", Salary: "₹9,000 – ₹15,000", Description: "Cleaning, organizing materials, and supporting day-to-day office or site maintenance.", Category: CategoryTenthPass, Company: "CleanPro Services"},
	{Title: "Security Guard", Salary: "₹10,000 – ₹18,000", Description: "Protect premises, monitor CCTV, and manage entry points in offices or apartments.", Category: CategoryTenthPass, Company: "SecureGuard Services"},
	{Title: "Warehouse Worker", Salary: "₹12,000 – ₹20,000", Description: "Sorting, packing, loading, and unloading goods in warehouses.", Category: CategoryTenthPass, Company: "Logistics Hub Inc."},
	{Title: "Store Keeper", Salary: "₹15,000 – ₹22,000", Description: "Maintain inventory records and manage incoming/outgoing goods.", Category: CategoryTenthPass, Company: "Inventory Masters Ltd."},
	{Title: "Driver", Salary: "₹15,000 – ₹30,000", Description: "Transport goods or passengers safely. Must hold a valid driving license.", Category: CategoryTenthPass, Company: "FastTrack Transport"},
	{Title: "Sales Associate", Salary: "₹12,000 – ₹20,000", Description: "Assist customers in retail stores and manage product sales.", Category: CategoryTenthPass, Company: "Retail Store Inc."},
	{Title: "Factory Helper", Salary: "₹10,000 – ₹17,000", Description: "Support machine operators and ensure factory cleanliness.", Category: CategoryTenthPass, Company: "Manufacturing Co."},
	{Title: "Field Worker", Salary: "₹12,000 – ₹18,000", Description: "Outdoor work such as surveys, collections, or basic field support.", Category: CategoryTenthPass, Company: "Field Services Ltd."},

	{Title: "Customer Care Executive", Salary: "₹15,000 – ₹28,000", Description: "Handle customer calls, solve queries, and record feedback.", Category: CategoryTwelfthPass, Company: "Customer First Inc."},
	{Title: "Receptionist", Salary: "₹14,000 – ₹25,000", Description: "Manage front desk, answer calls, and greet clients.", Category: CategoryTwelfthPass, Company: "Professional Services Co."},
	{Title: "Computer Operator", Salary: "₹15,000 – ₹25,000", Description: "Operate computer systems, maintain records, and handle MS Office tasks.", Category: CategoryTwelfthPass, Company: "Tech Office Solutions"},
	{Title: "Data Entry Clerk", Salary: "₹12,000 – ₹20,000", Description: "Enter and manage data into systems accurately.", Category: CategoryTwelfthPass, Company: "DataPro Services"},
	{Title: "Sales Executive", Salary: "₹15,000 – ₹30,000", Description: "Promote and sell company products to clients or customers.", Category: CategoryTwelfthPass, Company: "Sales Masters Ltd."},
	{Title: "Telecaller", Salary: "₹12,000 – ₹22,000", Description: "Make or receive calls to promote services and collect leads.", Category: CategoryTwelfthPass, Company: "CallCenter Pro"},
	{Title: "Cashier", Salary: "₹15,000 – ₹25,000", Description: "Handle cash counters, billing, and customer payments.", Category: CategoryTwelfthPass, Company: "Retail Chain Inc."},
	{Title: "Air Ticketing Executive", Salary: "₹18,000 – ₹35,000", Description: "Book flight tickets, assist travelers, and manage travel queries.", Category: CategoryTwelfthPass, Company: "Travel Solutions"},
	{Title: "Travel Agent", Salary: "₹18,000 – ₹30,000", Description: "Create travel packages, manage bookings, and assist customers.", Category: CategoryTwelfthPass, Company: "Tour & Travels Co."},
	{Title: "Police / Army (Constable)", Salary: "₹25,000 – ₹40,000", Description: "Maintain law and order, public safety, and discipline.", Category: CategoryTwelfthPass, Company: "Government of India"},

	{Title: "Electrician", Salary: "₹15,000 – ₹30,000", Description: "Install and maintain electrical systems and equipment.", Category: CategoryITIDiploma, Company: "ElectroTech Services"},
	{Title: "Fitter", Salary: "₹14,000 – ₹28,000", Description: "Assemble and repair machinery and mechanical parts.", Category: CategoryITIDiploma, Company: "Mechanical Works"},
	{Title: "Welder", Salary: "₹14,000 – ₹25,000", Description: "Join metal parts using welding equipment.", Category: CategoryITIDiploma, Company: "Welding Solutions"},
	{Title: "Plumber", Salary: "₹15,000 – ₹25,000", Description: "Install and repair water supply and drainage systems.", Category: CategoryITIDiploma, Company: "Plumbing Services"},
	{Title: "Mechanic (Auto / AC / Diesel)", Salary: "₹18,000 – ₹30,000", Description: "Diagnose and repair vehicles or machinery.", Category: CategoryITIDiploma, Company: "AutoCare Workshop"},
	{Title: "Technician (Electrical / Mechanical)", Salary: "₹18,000 – ₹35,000", Description: "Maintain and repair technical equipment and systems.", Category: CategoryITIDiploma, Company: "TechFix Solutions"},
	{Title: "Machine Operator", Salary: "₹15,000 – ₹30,000", Description: "Operate and monitor industrial machines.", Category: CategoryITIDiploma, Company: "Industrial Corp."},
	{Title: "Quality Inspector", Salary: "₹18,000 – ₹35,000", Description: "Check product quality and ensure standards.", Category: CategoryITIDiploma, Company: "Quality Assurance Labs"},
	{Title: "Draftsman", Salary: "₹20,000 – ₹40,000", Description: "Prepare technical drawings using CAD software.", Category: CategoryITIDiploma, Company: "Engineering Design Co."},
	{Title: "Site Supervisor", Salary: "₹18,000 – ₹35,000", Description: "Oversee on-site construction and labor activities.", Category: CategoryITIDiploma, Company: "Construction Corp."},

	{Title: "Accountant", Salary: "₹20,000 – ₹40,000", Description: "Manage company accounts, GST, and daily transactions.", Category: CategoryGraduation, Company: "Finance Pros Inc."},
	{Title: "HR Executive", Salary: "₹22,000 – ₹45,000", Description: "Handle recruitment, payroll, and employee relations.", Category: CategoryGraduation, Company: "Talent Solutions Group"},
	{Title: "Marketing Executive", Salary: "₹25,000 – ₹50,000", Description: "Execute marketing campaigns and analyze results.", Category: CategoryGraduation, Company: "Marketing Hub"},
	{Title: "Business Development Associate", Salary: "₹25,000 – ₹60,000", Description: "Find business leads and convert clients.", Category: CategoryGraduation, Company: "Growth Partners Inc."},
	{Title: "Customer Relationship Manager", Salary: "₹25,000 – ₹50,000", Description: "Maintain long-term relationships with clients.", Category: CategoryGraduation, Company: "Client Solutions"},
	{Title: "Data Analyst", Salary: "₹30,000 – ₹60,000", Description: "Analyze business data and prepare reports.", Category: CategoryGraduation, Company: "Analytics Corp."},
	{Title: "Graphic Designer", Salary: "₹25,000 – ₹50,000", Description: "Design visual content using tools like Photoshop or Canva.", Category: CategoryGraduation, Company: "Design Pro Agency"},
	{Title: "Content Writer", Salary: "₹20,000 – ₹45,000", Description: "Write blogs, articles, and marketing content.", Category: CategoryGraduation, Company: "Content Creators Agency"},
	{Title: "Social Media Manager", Salary: "₹25,000 – ₹60,000", Description: "Manage brand presence on Instagram, LinkedIn, etc.", Category: CategoryGraduation, Company: "Social Buzz Agency"},
	{Title: "Government Clerk / Assistant", Salary: "₹30,000 – ₹45,000", Description: "Manage records and paperwork in government offices.", Category: CategoryGraduation, Company: "Government Office"},

	{Title: "Software Developer", Salary: "₹40,000 – ₹1,00,000+", Description: "Develop and maintain software applications.", Category: CategoryProfessionalDegree, Company: "Tech Solutions Inc."},
	{Title: "Web / App Developer", Salary: "₹35,000 – ₹90,000", Description: "Build and update websites and mobile applications.", Category: CategoryProfessionalDegree, Company: "Digital Agency Co."},
	{Title: "Data Scientist", Salary: "₹50,000 – ₹1,50,000+", Description: "Analyze data using AI/ML tools for business insights.", Category: CategoryProfessionalDegree, Company: "Data Insights LLC"},
	{Title: "Cloud Engineer", Salary: "₹45,000 – ₹1,20,000", Description: "Manage cloud systems like AWS, Azure, or GCP.", Category: CategoryProfessionalDegree, Company: "CloudTech Solutions"},
	{Title: "Cybersecurity Analyst", Salary: "₹40,000 – ₹1,10,000", Description: "Protect systems from security breaches and malware.", Category: CategoryProfessionalDegree, Company: "SecureNet Technologies"},
	{Title: "Mechanical / Civil / Electrical Engineer", Salary: "₹30,000 – ₹80,000", Description: "Design, build, and manage engineering projects.", Category: CategoryProfessionalDegree, Company: "Engineering Solutions"},
	{Title: "Architect", Salary: "₹40,000 – ₹90,000", Description: "Design residential and commercial building structures.", Category: CategoryProfessionalDegree, Company: "Architecture Firm"},
	{Title: "Doctor", Salary: "₹60,000 – ₹2,00,000+", Description: "Provide medical diagnosis and treatment.", Category: CategoryProfessionalDegree, Company: "Hospital / Clinic"},
	{Title: "Chartered Accountant", Salary: "₹50,000 – ₹1,50,000+", Description: "Manage auditing, taxation, and financial records.", Category: CategoryProfessionalDegree, Company: "CA Firm"},
	{Title: "Product / Project Manager", Salary: "₹60,000 – ₹2,00,000+", Description: "Plan, execute, and manage product or project development.", Category: CategoryProfessionalDegree, Company: "Product Excellence Inc."},

	{Title: "Video Editor", Salary: "₹20,000 – ₹60,000", Description: "Edit and produce videos for social media or films.", Category: CategoryCreativeFreelance, Company: "Creative Studios"},
	{Title: "Photographer", Salary: "₹15,000 – ₹50,000", Description: "Capture and edit professional photos.", Category: CategoryCreativeFreelance, Company: "Picture Perfect Studios"},
	{Title: "Animator", Salary: "₹25,000 – ₹70,000", Description: "Create animated graphics and motion visuals.", Category: CategoryCreativeFreelance, Company: "Animation Works"},
	{Title: "Game Designer", Salary: "₹30,000 – ₹90,000", Description: "Design gameplay, levels, and game art.", Category: CategoryCreativeFreelance, Company: "Game Studio"},
	{Title: "Fashion Designer", Salary: "₹25,000 – ₹70,000", Description: "Create and design apparel and accessories.", Category: CategoryCreativeFreelance, Company: "Fashion House"},
	{Title: "Interior Designer", Salary: "₹30,000 – ₹80,000", Description: "Design and decorate residential and commercial interiors.", Category: CategoryCreativeFreelance, Company: "Interior Concepts"},
	{Title: "Blogger / Influencer", Salary: "₹15,000 – ₹1,00,000+", Description: "Create online content and earn through brand deals.", Category: CategoryCreativeFreelance, Company: "Content Creators Network"},
	{Title: "YouTuber", Salary: "₹10,000 – ₹1,00,000+", Description: "Create and upload engaging video content.", Category: CategoryCreativeFreelance, Company: "YouTube Platform"},
	{Title: "Music Producer", Salary: "₹25,000 – ₹80,000", Description: "Compose, record, and mix songs or soundtracks.", Category: CategoryCreativeFreelance, Company: "Music Studios"},
	{Title: "Freelancer (Any Field)", Salary: "₹15,000 – ₹1,00,000+", Description: "Offer skills online such as writing, design, coding, etc.", Category: CategoryCreativeFreelance, Company: "Independent Professional"},
}

// Fixture returns a copy of the 60 seed entries in their fixed order.
func Fixture() []Entry {
	out := make([]Entry, len(fixture))
	copy(out, fixture)
	return out
}
