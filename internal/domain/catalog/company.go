package catalog

const DefaultCompany = "Professional Services Inc."

var companyTable = []struct {
	title   string
	company string
}{
	{"Delivery Partner", "QuickDeliver Services"},
	{"Office Assistant", "Corporate Office Solutions"},
	{"Security Guard", "SecureGuard Services"},
	{"Warehouse Worker", "Logistics Hub Inc."},
	{"Store Keeper", "Inventory Masters Ltd."},
	{"Driver (Cab/Truck)", "FastTrack Transport"},
	{"Customer Care Executive", "Customer First Inc."},
	{"Receptionist", "Professional Services Co."},
	{"Computer Operator", "Tech Office Solutions"},
	{"Data Entry Clerk", "DataPro Services"},
	{"Sales Executive", "Sales Masters Ltd."},
	{"Telecaller", "CallCenter Pro"},
	{"Electrician", "ElectroTech Services"},
	{"Mechanic (Auto/AC/Diesel)", "AutoCare Workshop"},
	{"Technician (Electrical/Mechanical)", "TechFix Solutions"},
	{"Quality Inspector", "Quality Assurance Labs"},
	{"Accountant", "Finance Pros Inc."},
	{"HR Executive", "Talent Solutions Group"},
	{"Marketing Executive", "Marketing Hub"},
	{"Business Development Associate", "Growth Partners Inc."},
	{"Software Developer", "Tech Solutions Inc."},
	{"Web Developer", "Digital Agency Co."},
	{"Data Analyst", "Analytics Corp."},
	{"Data Scientist", "Data Insights LLC"},
	{"Cloud Engineer", "CloudTech Solutions"},
	{"Cybersecurity Analyst", "SecureNet Technologies"},
	{"Product Manager", "Product Excellence Inc."},
	{"Video Editor", "Creative Studios"},
	{"Graphic Designer", "Design Pro Agency"},
	{"Photographer", "Picture Perfect Studios"},
	{"Animator", "Animation Works"},
	{"Fashion Designer", "Fashion House"},
	{"Interior Designer", "Interior Concepts"},
	{"Social Media Manager", "Social Buzz Agency"},
	{"Content Creator / Influencer", "Content Creators Network"},
	{"Freelancer", "Independent Professional"},
	{"Customer Service Representative", "Service Pro Inc."},
	{"Sales Representative", "Sales Masters Ltd."},
	{"Digital Marketing Specialist", "Marketing Hub"},
	{"UI/UX Designer", "Design Studio"},
	{"Project Manager", "Enterprise Solutions"},
	{"Operations Coordinator", "Operations Group"},
	{"Administrative Assistant", "Business Services Co."},
	{"Customer Service Associate", "Customer First Inc."},
	{"Office Clerk", "Office Solutions Ltd."},
	{"Business Analyst", "Strategy Consulting Group"},
	{"Executive Assistant", "Executive Partners LLC"},
	{"Corporate Trainer", "Learning & Development Co."},
	{"Financial Analyst", "Finance Pros Inc."},
	{"Content Writer", "Content Creators Agency"},
	{"HR Specialist", "Talent Solutions Group"},
	{"QA Tester", "Quality Assurance Labs"},
	{"Healthcare Administrator", "MediCare Systems"},
	{"Supply Chain Analyst", "Logistics Partners Inc."},
	{"Mobile App Developer", "AppDev Studios"},
	{"DevOps Engineer", "DevOps Innovators"},
}

var companies = indexCompanies()

func indexCompanies() map[string]string {
	m := make(map[string]string, len(companyTable))
	for _, it := range companyTable {
		m[it.title] = it.company
	}
	return m
}

// CompanyName resolves the employer shown next to a recommended title.
func CompanyName(title string) string {
	if c, ok := companies[title]; ok {
		return c
	}
	return DefaultCompany
}
