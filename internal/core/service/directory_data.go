package service

import "github.com/legalconnect/platform-api/internal/core/ports"

var directoryLawyers = []ports.LawyerProfile{
	{
		ID:           "1",
		Name:         "Sarah Chen",
		Photo:        "/api/placeholder/300/300",
		Specialty:    "Criminal Law",
		Experience:   12,
		Rating:       4.9,
		Location:     "New York, NY",
		Bio:          "Experienced criminal defense attorney with a track record of successful cases.",
		Availability: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		Fees:         "$300/hour",
	},
	{
		ID:           "2",
		Name:         "Michael Rodriguez",
		Photo:        "/api/placeholder/300/300",
		Specialty:    "Civil Law",
		Experience:   8,
		Rating:       4.8,
		Location:     "Los Angeles, CA",
		Bio:          "Civil litigation specialist focusing on personal injury and contract disputes.",
		Availability: []string{"Mon", "Wed", "Fri"},
		Fees:         "$250/hour",
	},
	{
		ID:           "3",
		Name:         "Emily Johnson",
		Photo:        "/api/placeholder/300/300",
		Specialty:    "Family Law",
		Experience:   10,
		Rating:       4.9,
		Location:     "Chicago, IL",
		Bio:          "Compassionate family law attorney helping clients through difficult transitions.",
		Availability: []string{"Tue", "Thu", "Sat"},
		Fees:         "$275/hour",
	},
	{
		ID:           "4",
		Name:         "David Kumar",
		Photo:        "/api/placeholder/300/300",
		Specialty:    "Corporate Law",
		Experience:   15,
		Rating:       4.7,
		Location:     "San Francisco, CA",
		Bio:          "Corporate attorney specializing in business formation and intellectual property.",
		Availability: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		Fees:         "$400/hour",
	},
	{
		ID:           "5",
		Name:         "Lisa Thompson",
		Photo:        "/api/placeholder/300/300",
		Specialty:    "Immigration Law",
		Experience:   9,
		Rating:       4.8,
		Location:     "Miami, FL",
		Bio:          "Immigration attorney helping individuals and families navigate complex legal processes.",
		Availability: []string{"Mon", "Wed", "Thu", "Fri"},
		Fees:         "$200/hour",
	},
	{
		ID:           "6",
		Name:         "Robert Wilson",
		Photo:        "/api/placeholder/300/300",
		Specialty:    "Real Estate Law",
		Experience:   11,
		Rating:       4.6,
		Location:     "Austin, TX",
		Bio:          "Real estate attorney with expertise in property transactions and zoning law.",
		Availability: []string{"Tue", "Wed", "Thu", "Fri"},
		Fees:         "$225/hour",
	},
}

var directoryTestimonials = []ports.Testimonial{
	{
		ID:          "1",
		ClientName:  "James Patterson",
		ClientPhoto: "/api/placeholder/100/100",
		Rating:      5,
		Review:      "Sarah Chen was incredible! She handled my case with professionalism and got me the best possible outcome. Highly recommended!",
		LawyerName:  "Sarah Chen",
		CaseType:    "Criminal Defense",
	},
	{
		ID:          "2",
		ClientName:  "Maria Garcia",
		ClientPhoto: "/api/placeholder/100/100",
		Rating:      5,
		Review:      "Michael Rodriguez fought hard for my rights and secured a fair settlement. The communication was excellent throughout the process.",
		LawyerName:  "Michael Rodriguez",
		CaseType:    "Personal Injury",
	},
	{
		ID:          "3",
		ClientName:  "John Smith",
		ClientPhoto: "/api/placeholder/100/100",
		Rating:      4,
		Review:      "Emily Johnson made our divorce process as smooth as possible. She's compassionate and knowledgeable.",
		LawyerName:  "Emily Johnson",
		CaseType:    "Family Law",
	},
	{
		ID:          "4",
		ClientName:  "Priya Patel",
		ClientPhoto: "/api/placeholder/100/100",
		Rating:      5,
		Review:      "David Kumar helped us set up our startup legally. His expertise in corporate law is unmatched.",
		LawyerName:  "David Kumar",
		CaseType:    "Corporate Law",
	},
	{
		ID:          "5",
		ClientName:  "Ahmed Hassan",
		ClientPhoto: "/api/placeholder/100/100",
		Rating:      5,
		Review:      "Lisa Thompson guided us through the immigration process with patience and expertise. We're now proud citizens!",
		LawyerName:  "Lisa Thompson",
		CaseType:    "Immigration",
	},
	{
		ID:          "6",
		ClientName:  "Jennifer Lee",
		ClientPhoto: "/api/placeholder/100/100",
		Rating:      4,
		Review:      "Robert Wilson made our home purchase seamless. He caught issues we never would have noticed.",
		LawyerName:  "Robert Wilson",
		CaseType:    "Real Estate",
	},
}

var directoryFAQs = []ports.FAQ{
	{
		ID:       "1",
		Question: "How do I book an appointment with a lawyer?",
		Answer:   "Simply search for lawyers by specialty or location, view their profiles, and click 'Book Appointment'. You can select from their available time slots and receive instant confirmation.",
	},
	{
		ID:       "2",
		Question: "Are consultations conducted online or in-person?",
		Answer:   "Both options are available! Most lawyers offer Google Meet consultations for convenience, while some also provide in-person meetings at their office locations.",
	},
	{
		ID:       "3",
		Question: "How secure is my personal information?",
		Answer:   "We use industry-standard encryption to protect all your data. Your communications with lawyers are confidential and stored securely in compliance with legal privacy requirements.",
	},
	{
		ID:       "4",
		Question: "Can I cancel or reschedule my appointment?",
		Answer:   "Yes, you can cancel or reschedule appointments up to 24 hours before the scheduled time through your client dashboard. Some lawyers may have different policies, which will be clearly stated.",
	},
	{
		ID:       "5",
		Question: "How do I pay for legal services?",
		Answer:   "Payment methods vary by lawyer. Most accept credit cards, bank transfers, and some offer payment plans. Payment details and options are shown on each lawyer's profile.",
	},
	{
		ID:       "6",
		Question: "What if I'm not satisfied with the service?",
		Answer:   "We have a satisfaction guarantee policy. If you're not satisfied with your consultation, please contact our support team within 48 hours for a resolution.",
	},
}

var directoryServices = []ports.ServiceOffering{
	{
		ID:          "1",
		Title:       "Smart Lawyer Matching",
		Description: "Find the perfect lawyer for your case using our intelligent matching system.",
		Icon:        "UserCheck",
		Features: []string{
			"AI-powered recommendations",
			"Filter by specialty and location",
			"Read verified reviews and ratings",
			"Compare lawyer profiles side-by-side",
		},
	},
	{
		ID:          "2",
		Title:       "Easy Appointment Booking",
		Description: "Schedule consultations with just a few clicks using our streamlined booking system.",
		Icon:        "Calendar",
		Features: []string{
			"Real-time availability",
			"Instant confirmation",
			"Automated reminders",
			"Google Meet integration",
		},
	},
	{
		ID:          "3",
		Title:       "Case Management Dashboard",
		Description: "Track your legal matters and communicate with your lawyer in one centralized place.",
		Icon:        "FileText",
		Features: []string{
			"Document upload and sharing",
			"Case progress tracking",
			"Milestone notifications",
			"Secure messaging system",
		},
	},
	{
		ID:          "4",
		Title:       "Secure Communication",
		Description: "Communicate with your lawyer through our encrypted messaging and video platform.",
		Icon:        "MessageSquare",
		Features: []string{
			"End-to-end encryption",
			"Real-time chat",
			"Video consultations",
			"File sharing capabilities",
		},
	},
}

var directorySpecialties = []string{
	"Criminal Law",
	"Civil Law",
	"Family Law",
	"Corporate Law",
	"Immigration Law",
	"Real Estate Law",
	"Personal Injury",
	"Employment Law",
	"Intellectual Property",
	"Tax Law",
	"Bankruptcy Law",
	"Environmental Law",
}

var directoryCities = []string{
	"New York, NY",
	"Los Angeles, CA",
	"Chicago, IL",
	"Houston, TX",
	"Phoenix, AZ",
	"Philadelphia, PA",
	"San Antonio, TX",
	"San Diego, CA",
	"Dallas, TX",
	"San Jose, CA",
	"Austin, TX",
	"Jacksonville, FL",
	"Fort Worth, TX",
	"Columbus, OH",
	"Charlotte, NC",
	"San Francisco, CA",
	"Indianapolis, IN",
	"Seattle, WA",
	"Denver, CO",
	"Washington, DC",
	"Boston, MA",
	"El Paso, TX",
	"Nashville, TN",
	"Detroit, MI",
	"Oklahoma City, OK",
	"Portland, OR",
	"Las Vegas, NV",
	"Memphis, TN",
	"Louisville, KY",
	"Baltimore, MD",
	"Milwaukee, WI",
	"Albuquerque, NM",
	"Tucson, AZ",
	"Fresno, CA",
	"Sacramento, CA",
	"Mesa, AZ",
	"Kansas City, MO",
	"Atlanta, GA",
	"Long Beach, CA",
	"Colorado Springs, CO",
	"Raleigh, NC",
	"Miami, FL",
	"Virginia Beach, VA",
	"Omaha, NE",
	"Oakland, CA",
	"Minneapolis, MN",
	"Tulsa, OK",
	"Arlington, TX",
	"Tampa, FL",
	"New Orleans, LA",
}
