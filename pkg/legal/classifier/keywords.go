package classifier

import "law-agent-be/pkg/legal"

// domainKeywords maps every domain to the lexical signals that vote
// for it. Multi-word entries are matched as phrases against the
// normalized query, single words against the query's token set.
var domainKeywords = map[legal.Domain][]string{
	legal.DomainFamilyLaw: {
		"divorce", "custody", "child support", "alimony", "marriage", "adoption",
		"domestic violence", "prenuptial", "separation", "visitation", "paternity",
		"guardianship", "family court", "spousal support", "parental rights",
	},
	legal.DomainCriminalLaw: {
		"arrest", "arrested", "charges", "felony", "misdemeanor", "bail", "trial",
		"conviction", "sentence", "probation", "parole", "criminal defense",
		"plea bargain", "assault", "theft", "fraud", "dui", "drug charges",
		"murder", "robbery",
	},
	legal.DomainCorporateLaw: {
		"business", "corporation", "llc", "partnership", "merger", "acquisition",
		"securities", "compliance", "board of directors", "shareholder", "ipo",
		"corporate governance", "business formation", "commercial law",
	},
	legal.DomainPropertyLaw: {
		"real estate", "property", "deed", "title", "mortgage", "foreclosure",
		"landlord", "tenant", "lease", "eviction", "zoning", "easement",
		"property tax", "boundary dispute", "homeowners association", "hoa",
	},
	legal.DomainEmploymentLaw: {
		"workplace", "employee", "employer", "discrimination", "harassment",
		"wrongful termination", "wages", "overtime", "benefits",
		"workers compensation", "union", "collective bargaining", "fmla", "ada",
		"workplace safety", "fired",
	},
	legal.DomainImmigrationLaw: {
		"visa", "green card", "citizenship", "deportation", "asylum", "refugee",
		"immigration", "naturalization", "work permit", "student visa",
		"family reunification", "border", "ice", "uscis", "immigration court",
	},
	legal.DomainIntellectualProperty: {
		"patent", "trademark", "copyright", "trade secret",
		"intellectual property", "infringement", "licensing", "royalty", "dmca",
		"fair use", "brand protection", "invention", "software patent",
	},
	legal.DomainTaxLaw: {
		"tax", "irs", "audit", "deduction", "tax return", "tax evasion",
		"tax planning", "estate tax", "income tax", "sales tax",
		"tax liability", "tax refund", "tax penalty", "tax court",
	},
	legal.DomainConstitutionalLaw: {
		"constitutional", "civil rights", "first amendment", "freedom of speech",
		"due process", "equal protection", "constitutional violation",
		"civil liberties", "state rights", "supreme court",
	},
	legal.DomainContractLaw: {
		"contract", "agreement", "breach", "obligation", "consideration",
		"offer", "acceptance", "contract dispute", "contract negotiation",
		"contract review", "terms and conditions",
	},
	legal.DomainTortLaw: {
		"personal injury", "negligence", "liability", "damages", "accident",
		"medical malpractice", "slip and fall", "car accident",
		"product liability", "defamation", "invasion of privacy",
		"emotional distress", "wrongful death",
	},
	legal.DomainBankruptcyLaw: {
		"bankruptcy", "debt", "creditor", "debtor", "chapter 7", "chapter 11",
		"chapter 13", "discharge", "liquidation", "reorganization", "trustee",
		"automatic stay", "debt relief", "insolvency",
	},
	legal.DomainEnvironmentalLaw: {
		"environmental", "pollution", "epa", "clean air", "clean water",
		"hazardous waste", "environmental impact", "nepa", "climate change",
		"renewable energy", "environmental protection",
	},
	legal.DomainHealthcareLaw: {
		"healthcare", "medical", "hipaa", "patient rights", "medical records",
		"medical device", "fda", "pharmaceutical", "healthcare fraud",
		"medical ethics", "telemedicine", "health insurance",
	},
}
