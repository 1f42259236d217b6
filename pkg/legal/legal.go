package legal

// Domain is a legal subject-matter category.
type Domain string

const (
	DomainFamilyLaw            Domain = "family_law"
	DomainCriminalLaw          Domain = "criminal_law"
	DomainCorporateLaw         Domain = "corporate_law"
	DomainPropertyLaw          Domain = "property_law"
	DomainEmploymentLaw        Domain = "employment_law"
	DomainImmigrationLaw       Domain = "immigration_law"
	DomainIntellectualProperty Domain = "intellectual_property"
	DomainTaxLaw               Domain = "tax_law"
	DomainConstitutionalLaw    Domain = "constitutional_law"
	DomainContractLaw          Domain = "contract_law"
	DomainTortLaw              Domain = "tort_law"
	DomainBankruptcyLaw        Domain = "bankruptcy_law"
	DomainEnvironmentalLaw     Domain = "environmental_law"
	DomainHealthcareLaw        Domain = "healthcare_law"
	DomainUnknown              Domain = "unknown"
)

// Domains lists every known domain in priority order. The order matters:
// the classifier breaks score ties by taking the domain that appears
// first in this slice.
var Domains = []Domain{
	DomainFamilyLaw,
	DomainCriminalLaw,
	DomainCorporateLaw,
	DomainPropertyLaw,
	DomainEmploymentLaw,
	DomainImmigrationLaw,
	DomainIntellectualProperty,
	DomainTaxLaw,
	DomainConstitutionalLaw,
	DomainContractLaw,
	DomainTortLaw,
	DomainBankruptcyLaw,
	DomainEnvironmentalLaw,
	DomainHealthcareLaw,
}

// IsValid reports whether d is a known domain or "unknown".
func (d Domain) IsValid() bool {
	if d == DomainUnknown {
		return true
	}
	for _, known := range Domains {
		if d == known {
			return true
		}
	}
	return false
}

func (d Domain) String() string {
	return string(d)
}

// UserType describes who is asking.
type UserType string

const (
	UserTypeCommonPerson      UserType = "common_person"
	UserTypeLawFirm           UserType = "law_firm"
	UserTypeLegalProfessional UserType = "legal_professional"
)

// IsValid reports whether u is a supported user type.
func (u UserType) IsValid() bool {
	switch u {
	case UserTypeCommonPerson, UserTypeLawFirm, UserTypeLegalProfessional:
		return true
	}
	return false
}

// UserTypes lists the supported user categories.
var UserTypes = []UserType{
	UserTypeCommonPerson,
	UserTypeLawFirm,
	UserTypeLegalProfessional,
}

// Feedback is an explicit outcome signal for one interaction.
type Feedback string

const (
	FeedbackUpvote   Feedback = "upvote"
	FeedbackDownvote Feedback = "downvote"
	FeedbackNeutral  Feedback = "neutral"
)

// IsValid reports whether f is a supported feedback value.
func (f Feedback) IsValid() bool {
	switch f {
	case FeedbackUpvote, FeedbackDownvote, FeedbackNeutral:
		return true
	}
	return false
}
