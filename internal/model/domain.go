package model

// CareerDomain is one of the fixed career-aptitude categories used to tag
// responses and insights.
type CareerDomain string

const (
	DomainTechnical       CareerDomain = "technical"
	DomainLeadership      CareerDomain = "leadership"
	DomainCreative        CareerDomain = "creative"
	DomainAnalytical      CareerDomain = "analytical"
	DomainSocial          CareerDomain = "social"
	DomainEntrepreneurial CareerDomain = "entrepreneurial"
	DomainTraditional     CareerDomain = "traditional"
	DomainInvestigative   CareerDomain = "investigative"
)

// AllDomains lists every career domain in canonical order.
var AllDomains = []CareerDomain{
	DomainTechnical,
	DomainLeadership,
	DomainCreative,
	DomainAnalytical,
	DomainSocial,
	DomainEntrepreneurial,
	DomainTraditional,
	DomainInvestigative,
}

// DomainInfo holds the presentation strings for a domain, kept out of the
// scoring logic itself.
type DomainInfo struct {
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

var domainInfos = map[CareerDomain]DomainInfo{
	DomainTechnical:       {"Technical", "Building, engineering and working with systems, tools and technology"},
	DomainLeadership:      {"Leadership", "Guiding people, making decisions and taking responsibility for outcomes"},
	DomainCreative:        {"Creative", "Generating ideas, designing and expressing through original work"},
	DomainAnalytical:      {"Analytical", "Working with data, patterns and structured problem solving"},
	DomainSocial:          {"Social", "Helping, teaching and collaborating with other people"},
	DomainEntrepreneurial: {"Entrepreneurial", "Spotting opportunities, persuading and building ventures"},
	DomainTraditional:     {"Traditional", "Organizing, administering and maintaining reliable processes"},
	DomainInvestigative:   {"Investigative", "Researching, questioning and digging into how things work"},
}

// Info returns the presentation strings for the domain. Unknown domains get
// a zero-value DomainInfo.
func (d CareerDomain) Info() DomainInfo {
	return domainInfos[d]
}

// IsValid reports whether the domain is one of the known categories.
func (d CareerDomain) IsValid() bool {
	_, ok := domainInfos[d]
	return ok
}
