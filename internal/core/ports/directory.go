package ports

// Directory is the read-only marketing catalog behind the public site: the
// lawyer roster, testimonials, FAQs and service descriptions. The data is
// fixture content compiled into the binary, so there is no context or error.
type Directory interface {
	Lawyers() []LawyerProfile
	Testimonials() []Testimonial
	FAQs() []FAQ
	Services() []ServiceOffering
	Specialties() []string
	Cities() []string
}

// LawyerProfile is a directory listing, richer than the bare User record.
type LawyerProfile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Photo        string   `json:"photo"`
	Specialty    string   `json:"specialty"`
	Experience   int      `json:"experience"`
	Rating       float64  `json:"rating"`
	Location     string   `json:"location"`
	Bio          string   `json:"bio"`
	Availability []string `json:"availability"`
	Fees         string   `json:"fees"`
}

type Testimonial struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ClientPhoto string `json:"clientPhoto"`
	Rating      int    `json:"rating"`
	Review      string `json:"review"`
	LawyerName  string `json:"lawyerName"`
	CaseType    string `json:"caseType"`
}

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ServiceOffering struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
}
